// Package app provides the orchestration layer for the quill application.
//
// # Overview
//
// This package wires together configuration, the notes service client,
// session state, and the UI to create the complete quill TUI experience. It
// serves as the composition root where all dependencies are initialized and
// connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load quill configuration from ~/.config/quill/config.toml
//  2. Apply any command-line server override
//  3. Load user preferences (theme), degrading to defaults on any failure
//  4. Initialize the HTTP client for the notes service
//  5. Create the shared session.State for the UI controllers
//  6. Start the TUI and block until the user exits or the context cancels
//
// There is no background poller: every refresh in quill is an explicit,
// user-visible consequence of an action, so the UI issues its own service
// calls from the Bubble Tea loop.
//
// # Error Handling
//
// Errors before the UI starts are fatal and returned from Run: a missing or
// malformed configuration file, or an unparseable server URL. Preference
// load failures are not fatal; quill falls back to the default theme.
//
// Once the UI is running, service failures surface as notices inside the
// interface and never terminate the program.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to quill config.toml (default: ~/.config/quill/config.toml)
//   - ServerURL: Overrides the configured notes service URL when non-empty
//   - PrefsPath: Path to prefs.toml (default: ~/.config/quill/prefs.toml)
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("quill failed: %v", err)
//	}
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (notes, config, prefs, session,
// ui). The app package simply connects these pieces with sensible defaults
// for the single-user local use case.
package app
