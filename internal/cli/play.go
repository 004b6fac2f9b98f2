package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"valuesquiz/internal/config"
	"valuesquiz/internal/logging"
	"valuesquiz/internal/report"
	"valuesquiz/internal/session"
	"valuesquiz/internal/ui/live"
	"valuesquiz/internal/ui/plain"
	"valuesquiz/internal/values"
)

// Hooks replaced in tests.
var (
	playInput io.Reader = os.Stdin
	runLive             = live.Run
	runPlain            = plain.Run
)

// playOptions are the flag overrides for a play session.
type playOptions struct {
	configPath string
	valuesFile string
	uiMode     string
	noColor    bool
	width      int
	format     string
	logFile    string
	logLevel   string
}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		var opts playOptions
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: search for .valuesquiz/config.yml)")
		flags.StringVar(&opts.valuesFile, "values", "", "YAML or JSON values file replacing the built-in list")
		flags.StringVar(&opts.uiMode, "ui", "", "UI mode: auto|live|plain")
		flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors")
		flags.IntVar(&opts.width, "width", 0, "Layout width (0 follows the terminal)")
		flags.StringVar(&opts.format, "format", "", "Results format: text|markdown|json|yaml|none")
		flags.StringVar(&opts.logFile, "log-file", "", "Write a session log to this file")
		flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error")
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := playConfig(opts)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}

		logger, closeLog, err := logging.New(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer func() { _ = closeLog() }()

		labels, err := values.Resolve(cfg.ValuesFile)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load values:\n%v\n", err)
			return ExitError
		}
		sess, err := session.New(labels, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start session: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(cfg.UI.Mode, playInput, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if decision.useLive {
			err = runLive(ctx, sess, live.Options{
				NoColor:   cfg.UI.NoColor,
				Width:     cfg.UI.Width,
				AltScreen: true,
				Input:     playInput,
				Output:    stdout,
			})
		} else {
			err = runPlain(ctx, sess, playInput, stdout)
		}
		sess.End()
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(stderr, "Interrupted")
			} else {
				logger.Error("session failed", zap.Error(err))
				fmt.Fprintf(stderr, "Session failed: %v\n", err)
			}
			return ExitError
		}

		if err := writeSummary(stdout, cfg, report.FromState(sess.ID, sess.State())); err != nil {
			fmt.Fprintf(stderr, "Failed to write results: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// playConfig loads the config and applies flag overrides.
func playConfig(opts playOptions) (config.Config, error) {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.valuesFile != "" {
		cfg.ValuesFile = opts.valuesFile
	}
	if opts.uiMode != "" {
		cfg.UI.Mode = opts.uiMode
	}
	if opts.noColor {
		cfg.UI.NoColor = true
	}
	if opts.width != 0 {
		cfg.UI.Width = opts.width
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	config.Normalize(&cfg)
	if err := config.Validate(&cfg, "."); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// writeSummary prints the results, rendering markdown for terminals.
func writeSummary(stdout io.Writer, cfg config.Config, summary report.Summary) error {
	if cfg.Output.Format == "markdown" && !cfg.UI.NoColor && isTerminal(stdout) {
		rendered, err := report.RenderTerminal(summary, cfg.UI.Width, cfg.UI.NoColor)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, rendered)
		return err
	}
	if cfg.Output.Format != "none" {
		fmt.Fprintln(stdout)
	}
	return report.Write(stdout, cfg.Output.Format, summary)
}
