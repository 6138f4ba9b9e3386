package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/editor"
	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tada",
		Short:         "A tiny in-memory todo list editor for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	// Root flags; each overrides the matching config key.
	f := cmd.Flags()
	f.String("config", "", "path to a TOML config file")
	f.String("theme", "", "color theme: classic, neon or mono")
	f.String("log-file", "", "append debug logs to this file")
	f.String("log-level", "", "log level: debug, info, warn or error")
	return cmd
}

func run(cfg config.Config) error {
	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(cfg.Log.File, lvl)
	if err != nil {
		return err
	}
	defer closeLog()

	ui.SetTheme(cfg.UI.Theme)
	log.Info("starting", "theme", ui.Current().Name)

	m := editor.New(editor.Options{
		Title:        cfg.UI.Title,
		EmptyMessage: cfg.UI.EmptyMessage,
		Placeholder:  cfg.UI.Placeholder,
		CharLimit:    cfg.UI.CharLimit,
		Width:        cfg.UI.Width,
		Logger:       log,
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	fm, ok := final.(editor.Model)
	if !ok {
		return nil
	}

	done, pending := fm.Stats()
	log.Info("exiting", "done", done, "pending", pending)
	ui.OK(fmt.Sprintf("%d done, %d pending (not saved)", done, pending))
	return nil
}
