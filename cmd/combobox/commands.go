package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"combobox/internal/config"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
	"combobox/internal/ui"
)

var (
	configPath string
	inputID    string
	label      string
	items      []string
	dataFile   string
	openDelay  int
	closeDelay int
	listHeight int
	logLevel   string
	force      bool
)

// forwardedEvents are shown in the UI status line
var forwardedEvents = []eventbus.EventType{
	eventbus.EventValueCommitted,
	eventbus.EventValueCleared,
	eventbus.EventConfigLoaded,
}

func runPicker(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	defer bus.Close()

	// Events are buffered until the program exists to receive them
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range forwardedEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				logging.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
			}
		})
	}

	svc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	if err := logging.Initialize(level, cfg.Log.File); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Sync() }()

	logging.Info("starting",
		zap.String("config", svc.Path()),
		zap.String("id", cfg.ID),
		zap.Int("items", len(cfg.Data)),
	)

	model, err := ui.NewModel(cfg, bus)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	model.SetProgram(p)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	_, err = p.Run()
	bus.Close()
	close(eventChan)
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if model.Accepted() {
		logging.Info("accepted", zap.String("value", model.Value()))
		fmt.Fprintln(cmd.OutOrStdout(), model.Value())
	}
	return nil
}

// applyFlags overrides config values with the flags given on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("id") {
		cfg.ID = inputID
	}
	if flags.Changed("label") {
		cfg.Label = label
	}
	if flags.Changed("item") {
		cfg.SetData(items)
	}
	if flags.Changed("data-file") {
		if err := cfg.SetDataFile(dataFile, "."); err != nil {
			return err
		}
	}
	if flags.Changed("open-delay") {
		cfg.OpenAnimationDelay = openDelay
	}
	if flags.Changed("close-delay") {
		cfg.CloseAnimationDelay = closeDelay
	}
	if flags.Changed("list-height") {
		cfg.ListHeight = listHeight
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := config.NewConfigService(configPath)
		if _, err := os.Stat(svc.Path()); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		cfg := config.DefaultConfig()
		cfg.Data = []string{"Apple", "Banana", "Cherry"}
		if err := svc.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svc.Path())
		return nil
	},
}
