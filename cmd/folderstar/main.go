package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"folderstar/internal/adapters/editor"
	"folderstar/internal/adapters/filemanager"
	"folderstar/internal/adapters/tui"
	"folderstar/internal/adapters/watcher"
	"folderstar/internal/bootstrap"
	"folderstar/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "config file (default "+config.FilePath()+")")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// stdout belongs to the TUI; log to a file or nowhere
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "folderstar")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := tui.NewFlags()
	core, err := bootstrap.Open(ctx, cfg, flags)
	if err != nil {
		return err
	}
	defer core.Close()

	// Publish the derived flags once at startup
	core.Store.NotifyChanged()

	welcome, first, err := core.Onboarding.Welcome(ctx)
	if err != nil {
		log.Printf("onboarding: %v", err)
	}
	if !first {
		welcome = ""
	}

	opts := tui.Options{
		FS:       core.FS,
		Revealer: filemanager.NewOpener(cfg.RevealCommand),
		Editor:   editor.NewOpener(cfg.Editor),
		Flags:    flags,
		Welcome:  welcome,
	}

	w, err := watcher.New(log.Default())
	if err != nil {
		log.Printf("watcher disabled: %v", err)
	} else {
		defer w.Close()
		opts.Watcher = w
	}

	app := tui.NewApp(ctx, core.View, opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err = p.Run()
	return err
}
