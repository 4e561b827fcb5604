package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/crimson/internal/config"
	"github.com/idilsaglam/crimson/internal/logging"
	"github.com/idilsaglam/crimson/internal/store"
	"github.com/idilsaglam/crimson/internal/store/seedfile"
	"github.com/idilsaglam/crimson/internal/tui"
	"github.com/idilsaglam/crimson/internal/ui"
)

// App carries the root flags and what PersistentPreRunE builds from them.
type App struct {
	ConfigPath string
	Theme      string
	NoColor    bool
	LogFile    string
	LogLevel   string
	LogFormat  string

	cfg      *config.Config
	logger   *log.Logger
	closeLog func() error

	// runTUI is swapped out in tests.
	runTUI func(tui.Options) error
}

// usageError marks bad invocations; Run maps it to exit code 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	app := &App{runTUI: tui.Run}
	defer app.close()

	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var uerr usageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}

// NewRootCmd wires the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	if app.runTUI == nil {
		app.runTUI = tui.Run
	}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A single-screen todo list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		Example: strings.TrimSpace(`
  # Start the interactive screen
  todo

  # Print the starting items
  todo ls --group

  # Use another brand
  todo --config ./crimson.toml --theme neon
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newStore()
			if err != nil {
				return err
			}
			app.logger.Info("session started", "items", s.Len(), "config", app.cfg.Path)
			err = app.runTUI(tui.Options{
				Store:    s,
				Theme:    ui.Current(),
				Title:    app.cfg.Title,
				Subtitle: app.cfg.Subtitle,
				Logo:     app.cfg.Logo,
				Logger:   app.logger,
			})
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			done, pending := s.Stats()
			app.logger.Info("session ended", "done", done, "pending", pending)
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("session ended: %d done, %d pending", done, pending))
			return nil
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to a TOML config (default: $"+config.EnvConfigPath+", ./"+config.ConfigFileName+")")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Theme: classic, neon or mono (overrides config)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colors")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&app.LogFormat, "log-format", "text", "Log format: text, json, logfmt")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	return cmd
}

func (app *App) setup() error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.Theme != "" {
		cfg.Theme = app.Theme
		if err := cfg.Validate(); err != nil {
			return usageError{msg: err.Error()}
		}
	}
	app.cfg = cfg

	ui.SetColorMode(app.NoColor)
	ui.SetTheme(cfg.Theme, ui.Brand{Primary: cfg.Brand.Primary, Secondary: cfg.Brand.Secondary})

	logger, closeLog, err := logging.New(logging.Options{
		Path:      app.LogFile,
		Level:     app.LogLevel,
		Formatter: app.LogFormat,
	})
	if err != nil {
		return err
	}
	app.logger, app.closeLog = logger, closeLog
	return nil
}

// close releases the log file; safe to call more than once.
func (app *App) close() error {
	if app.closeLog == nil {
		return nil
	}
	c := app.closeLog
	app.closeLog = nil
	return c()
}

// newStore seeds a store from the seed file when one is configured, else
// from the config's seed texts.
func (app *App) newStore() (*store.Store, error) {
	seed := seedfile.FromTexts(app.cfg.Seed)
	if app.cfg.SeedFile != "" {
		items, err := seedfile.Load(app.cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", app.cfg.SeedFile, err)
		}
		seed = items
	}
	s, err := store.NewWithItems(seed)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return s, nil
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{msg: fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}
