package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillhq/quill/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override quill config path (optional)")
	serverURL := flag.String("server", "", "notes service URL (overrides config)")
	debug := flag.Bool("debug", false, "write bubbletea debug logs to quill-debug.log")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("quill-debug.log", "quill")
		if err != nil {
			fmt.Fprintf(os.Stderr, "quill: open debug log: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, ServerURL: *serverURL}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		return 1
	}
	return 0
}
