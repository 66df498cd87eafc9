package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/todo/internal/config"
	"github.com/nikbrunner/todo/internal/exporter"
	"github.com/nikbrunner/todo/internal/logging"
	"github.com/nikbrunner/todo/internal/model"
	"github.com/nikbrunner/todo/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "todo [items...]",
		Short: "In-memory terminal todo list",
		Long: `todo - a single-screen todo list

Items live in memory for the lifetime of the program. Any arguments are
added as items before the list opens.

Keys: a add, e/enter edit, d remove, D delete all, y yank, E export,
/ filter, ? help, q quit. Double-click an item to edit it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runTUI(cfg, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is $HOME/.config/todo/config.yaml)")

	rootCmd.AddCommand(newRenderCmd(&configPath))
	return rootCmd
}

func newRenderCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "render [items...]",
		Short: "Print the list as an HTML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), cfg, args)
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(config.New(path))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// runTUI runs the interactive list seeded with items.
func runTUI(cfg *config.Config, items []string) error {
	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Prefix: "todo",
	})
	if err != nil {
		return fmt.Errorf("setting up log: %w", err)
	}
	defer closer.Close()

	opts := tui.Options{
		Title:            cfg.UI.Title,
		Placeholder:      cfg.UI.Placeholder,
		ConfirmRemoveAll: cfg.UI.ConfirmRemoveAll,
		ExportDir:        cfg.Export.Dir,
	}
	app := tui.NewApp(tui.AppParams{
		List:    model.Seed(model.NewList(), items...),
		Options: &opts,
		Logger:  logger,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	logger.Info("starting", "items", len(items), "mouse", cfg.UI.Mouse)
	finalModel, err := tea.NewProgram(app, programOpts...).Run()
	if err != nil {
		return fmt.Errorf("running app: %w", err)
	}

	if finalApp, ok := finalModel.(tui.App); ok {
		logger.Info("exiting", "items", finalApp.List().Len())
	}
	return nil
}

// runRender writes the HTML render of a list seeded with items to w.
func runRender(w io.Writer, cfg *config.Config, items []string) error {
	list := model.Seed(model.NewList(), items...)
	opts := exporter.DefaultOptions()
	if cfg.UI.Title != "" {
		opts.Title = cfg.UI.Title
	}
	if cfg.UI.Placeholder != "" {
		opts.Placeholder = cfg.UI.Placeholder
	}
	doc, err := exporter.RenderHTML(list, opts)
	if err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	_, err = io.WriteString(w, doc)
	return err
}
