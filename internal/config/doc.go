// Package config handles loading and parsing quill configuration files.
//
// # Overview
//
// This package reads quill's TOML configuration to discover the notes
// service endpoint. The configuration surface is deliberately small: quill
// only needs to know where its server lives.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/quill/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/quill/config.toml
//   - Server URL: 127.0.0.1:8000
//
// # TOML Format
//
// Example quill config.toml:
//
//	server_url = "127.0.0.1:8000"
//
// The field is optional. Tilde expansion is performed on the config path.
//
// # Path Expansion
//
// The package handles several path formats:
//
//   - Absolute paths: Used as-is ("/etc/quill/config.toml")
//   - Tilde paths: Expanded to home directory ("~/.config/quill")
//   - Relative paths: Converted to absolute based on current directory
//
// # Validation
//
// Config.Validate checks the loaded configuration with ozzo-validation and
// reports an empty server URL. Load never produces an invalid Config on its
// own because missing fields degrade to defaults; Validate exists for
// callers that construct or mutate a Config directly.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows quill to work out-of-the-box against a local server.
//
// # Usage Example
//
//	// Use default config path
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//
//	// Use explicit config path
//	cfg, err := config.Load("/etc/quill/config.toml")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//
//	// Access configuration
//	client, err := notes.NewClient(cfg.ServerURL)
//
// # Design Philosophy
//
// This package follows the principle of sensible defaults. quill should work
// immediately against a notes server on the default local port, without
// requiring any configuration file to exist.
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
//
// # Testing Considerations
//
// When testing code that uses this package:
//   - Provide explicit config paths to avoid dependency on user's home directory
//   - Use Config struct directly rather than Load() for unit tests
package config
