// Package cli implements the cobra command tree for movement.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stigoleg/movement/internal/config"
	"github.com/stigoleg/movement/internal/logger"
	"github.com/stigoleg/movement/internal/ui"
	"github.com/stigoleg/movement/internal/watch"
)

// Version is reported by --version and shown in the interactive title.
// Overridden at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Exit codes.
const (
	ExitOK    = 0
	ExitParse = 1
	ExitUsage = 2
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it with os.Args, and returns the
// exit code. Errors are rendered on stderr.
func Execute() int {
	return run(NewRootCommand(), os.Stderr)
}

func run(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, ui.RenderError(err))

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitParse
}

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRootCommand constructs the top-level cobra.Command with all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{log: logger.Nop()}
	var verbose, asJSON bool

	cmd := &cobra.Command{
		Use:   "movement [flags] START [OP...]",
		Short: "Add and subtract durations from a time of day",
		Long: `movement moves a wall-clock time by durations and reports the result,
counting how many midnights were crossed.

START is a 24-hour ("13:34", "09:45:10") or 12-hour ("1:34 PM",
"2:15:01 A.M") time. Each OP is an optional sign followed by whole seconds
("4343", "-1000") or a duration ("+1:23:45", "-0:23:03"). A bare number is
seconds; write "3:00" for three hours.

Flags must come before START so that "-1000" is read as an operation.`,
		Example: `  movement 13:34 +4343
  movement -m "2:15:01 A.M" 3:14
  movement 13:33:23 -23:44:03 -7989`,
		Version:       Version,
		Args:          startArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			if err := cfg.ApplyFlags(cmd); err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			if cfg.NoColor {
				ui.DisableColor()
			}
			a.cfg = cfg
			a.log = logger.New(cfg.Logger())
			a.log.Debug().
				Bool("meridiem", cfg.Meridiem).
				Str("logLevel", cfg.LogLevel).
				Msg("configuration loaded")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return a.calculateJSON(cmd.OutOrStdout(), args[0], args[1:])
			}
			return a.calculate(cmd.OutOrStdout(), args[0], args[1:], verbose)
		},
	}
	cmd.SetVersionTemplate("Movement Version: {{.Version}}\n")

	// Stop at START so negative operations are not taken for flags.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the result after every operation")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as a JSON object")

	pf := cmd.PersistentFlags()
	pf.BoolP(config.FlagMeridiem, "m", false, "display in 12-hour format with AM/PM")
	pf.String(config.FlagLogLevel, "warn", "log level: debug, info, warn, error")
	pf.String(config.FlagLogFormat, "console", "log format: console, json")
	pf.Bool(config.FlagNoColor, false, "disable colored output")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	cmd.AddCommand(newInteractiveCommand(a), newVersionCommand())

	return cmd
}

func startArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &ExitError{Code: ExitUsage, Err: errors.New("missing START time")}
	}
	return nil
}

// calculate parses start, applies ops in order and prints the result.
func (a *app) calculate(out io.Writer, start string, ops []string, verbose bool) error {
	var step func(label string, w watch.Watch)
	if verbose {
		step = func(label string, w watch.Watch) {
			fmt.Fprintf(out, "%-14s %s\n", label, w)
		}
	}

	w, err := a.evaluate(start, ops, step)
	if err != nil {
		return err
	}
	if !verbose {
		fmt.Fprintln(out, w)
	}
	return nil
}

// result is the --json output. Watch values encode through MarshalText.
type result struct {
	Start  watch.Watch `json:"start"`
	Result watch.Watch `json:"result"`
	Days   int64       `json:"days"`
	Offset int64       `json:"offset"`
}

func (a *app) calculateJSON(out io.Writer, start string, ops []string) error {
	var first watch.Watch
	w, err := a.evaluate(start, ops, func(label string, w watch.Watch) {
		if label == "start" {
			first = w
		}
	})
	if err != nil {
		return err
	}
	return json.NewEncoder(out).Encode(result{
		Start:  first,
		Result: w,
		Days:   w.Days(),
		Offset: w.Offset(),
	})
}

// evaluate parses start and applies ops in order, calling step (if set)
// with the start value and after every operation.
func (a *app) evaluate(start string, ops []string, step func(label string, w watch.Watch)) (watch.Watch, error) {
	w, err := watch.New(start, a.cfg.Meridiem)
	if err != nil {
		return w, &ExitError{Code: ExitParse, Err: fmt.Errorf("start time: %w", err)}
	}
	a.log.Debug().Str("input", start).Str("watch", w.String()).Msg("parsed start time")
	if step != nil {
		step("start", w)
	}

	for _, raw := range ops {
		op, err := watch.ParseOp(raw)
		if err != nil {
			return w, &ExitError{Code: ExitParse, Err: fmt.Errorf("operation %q: %w", raw, err)}
		}
		if err := op.Apply(&w); err != nil {
			return w, &ExitError{Code: ExitParse, Err: fmt.Errorf("operation %q: %w", raw, err)}
		}
		a.log.Debug().
			Str("op", op.String()).
			Str("watch", w.String()).
			Int64("days", w.Days()).
			Msg("operation applied")
		if step != nil {
			step(op.String(), w)
		}
	}
	return w, nil
}
