package app

import (
	"context"
	"fmt"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/notes"
	"github.com/quillhq/quill/internal/prefs"
	"github.com/quillhq/quill/internal/session"
	"github.com/quillhq/quill/internal/ui"
)

// Options configure the quill application.
type Options struct {
	ConfigPath string
	ServerURL  string // overrides the configured server when set
	PrefsPath  string // empty uses default ~/.config/quill/prefs.toml
}

// Run boots the quill TUI until the context is cancelled or the user quits.
// Anything failing before the UI starts is fatal: the interface is unusable
// without a configured client.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := notes.NewClient(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("init notes client: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Service:   client,
		Session:   session.New(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
