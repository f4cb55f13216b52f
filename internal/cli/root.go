// Package cli is the notes command tree. Run returns the process exit code:
// 0 ok, 1 runtime error, 2 usage error.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/config"
	"github.com/idilsaglam/notes/internal/logging"
	"github.com/idilsaglam/notes/internal/store/backend"
	"github.com/idilsaglam/notes/internal/ui"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// usageError marks bad invocations: wrong arguments, unknown flags or commands.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(err error) error { return usageError{err: err} }

func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usage(err)
		}
		return nil
	}
}

// session carries what every command shares once flags are parsed.
type session struct {
	stdout, stderr io.Writer

	configFile string
	theme      string
	forceColor bool
	noColor    bool

	cfg *config.Config
}

// open builds the logger and the store for one command. The returned
// function releases both.
func (s *session) open(toStderr bool) (*backend.Backend, *logrus.Logger, func(), error) {
	log, logCloser, err := logging.New(s.cfg.Log, toStderr)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := backend.Open(s.cfg, log)
	if err != nil {
		logCloser.Close()
		return nil, nil, nil, err
	}
	return b, log, func() {
		if err := b.Close(); err != nil {
			log.WithError(err).Warn("close storage")
		}
		logCloser.Close()
	}, nil
}

func newRootCmd(ctx context.Context, s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "notes",
		Short: "Take short text notes from the terminal",
		Long: `notes keeps short text notes either in a local data directory or on a
remote notes service. Run it without a subcommand for the full-screen editor.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(s.configFile)
			if err != nil {
				return err
			}
			s.cfg = cfg
			theme := cfg.UI.Theme
			if cmd.Flags().Changed("theme") {
				theme = s.theme
			}
			if !ui.SetTheme(theme) {
				ui.Hint(s.stderr, "unknown theme "+theme+", using classic")
			}
			ui.SetColorForcing(s.forceColor, s.noColor || ui.Current().Name == "mono")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctx, s)
		},
	}
	root.SetOut(s.stdout)
	root.SetErr(s.stderr)
	root.SetContext(ctx)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })

	pf := root.PersistentFlags()
	pf.StringVar(&s.configFile, "config", "", "config file (default: <storage dir>/config.yaml or ./config.yaml)")
	pf.StringVar(&s.theme, "theme", "classic", "output theme: classic, neon or mono")
	pf.BoolVar(&s.forceColor, "color", false, "force colored output")
	pf.BoolVar(&s.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newListCmd(s),
		newAddCmd(s),
		newEditCmd(s),
		newShowCmd(s),
		newRemoveCmd(s),
		newConfigCmd(s),
		newServeCmd(ctx, s),
	)
	return root
}

// Run executes the command line args (without the program name).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s := &session{stdout: stdout, stderr: stderr}
	root := newRootCmd(ctx, s)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		ui.Hint(stderr, "Run 'notes --help' for usage.")
		return ExitUsage
	}
	return ExitFailure
}
