// Package cli implements the compat-migrate command line.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/toyz/compat-migrate/internal/config"
	"github.com/toyz/compat-migrate/internal/errors"
	"github.com/toyz/compat-migrate/internal/utils"
)

// app carries the state shared by all commands of one invocation
type app struct {
	out    io.Writer
	errOut io.Writer

	verbose    bool
	debug      bool
	quiet      bool
	configPath string

	diagnostics *utils.DiagnosticSystem
}

// Execute runs the command line with the process arguments and exits on failure
func Execute() {
	os.Exit(Run(os.Args[1:], nil, nil))
}

// Run executes the command line with args and returns the exit status.
// Nil writers select the process' standard output and error.
func Run(args []string, out, errOut io.Writer) int {
	a := &app{out: out, errOut: errOut}

	root := a.newRootCommand()
	root.SetArgs(args)
	if out != nil {
		root.SetOut(out)
	}
	if errOut != nil {
		root.SetErr(errOut)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "compat-migrate",
		Short: "Moves a project onto the framework 8 compatibility packages",
		Long: `compat-migrate rewrites the Java sources of a project so that every class
which moved into the compatibility packages is imported from com.vaadin.v7,
and rewrites the tags and version meta data of declarative HTML designs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.diagnostics = a.newDiagnostics()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output, including every unchanged file")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Only show errors")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (defaults to "+config.FileName+" in the project root)")

	root.AddCommand(
		a.newMigrateCommand(),
		a.newClassesCommand(),
		a.newVersionCommand(),
	)

	return root
}

func (a *app) newDiagnostics() *utils.DiagnosticSystem {
	var diagnostics *utils.DiagnosticSystem
	switch {
	case a.quiet:
		diagnostics = utils.NewQuietDiagnostics()
	case a.debug:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticDebug)
	case a.verbose:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	if a.out != nil {
		errOut := a.errOut
		if errOut == nil {
			errOut = a.out
		}
		diagnostics = diagnostics.WithWriters(a.out, errOut)
	}
	return diagnostics
}

// reportError prints err and its suggestions
func (a *app) reportError(err error) {
	if a.diagnostics == nil {
		a.diagnostics = a.newDiagnostics()
	}
	a.diagnostics.Error("%v", err)

	var migrationErr errors.MigrationError
	if stderrors.As(err, &migrationErr) {
		a.diagnostics.Indent()
		for _, suggestion := range migrationErr.Suggestions() {
			a.diagnostics.List("%s", suggestion)
		}
		a.diagnostics.Unindent()
	}
}
