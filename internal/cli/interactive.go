package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stigoleg/movement/internal/logger"
	"github.com/stigoleg/movement/internal/ui"
)

func newInteractiveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive [START]",
		Aliases: []string{"i", "tui"},
		Short:   "Start the interactive calculator",
		Long: `Start a terminal UI that keeps a running watch. Enter a start time, then
type operations such as "+1:30" or "-4343" and press enter to apply them.

Logs are written to the file named by MOVEMENT_LOG_FILE (default debug.log)
because the terminal is in use.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interactive(args)
		},
	}
}

func (a *app) interactive(args []string) error {
	model := ui.InitialModel(a.cfg.Meridiem)
	if len(args) == 1 {
		var err error
		model, err = ui.InitialModelWithStart(args[0], a.cfg.Meridiem)
		if err != nil {
			return &ExitError{Code: ExitParse, Err: fmt.Errorf("start time: %w", err)}
		}
	}

	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("open log file: %w", err)}
	}
	defer f.Close()

	lc := a.cfg.Logger()
	lc.NoColor = true
	log := logger.NewWithOutput(lc, f).With("mode", "interactive")
	model.SetLogger(log)
	model.SetVersion(Version)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithoutSignalHandler())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().Str("signal", sig.String()).Msg("received signal")
			p.Kill()
		case <-done:
		}
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error().Err(err).Msg("error running program")
		return err
	}
	return nil
}
