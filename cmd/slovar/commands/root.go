// Package commands implements the slovar command line.
package commands

import (
	"io"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/slovar-dev/slovar/internal/catalog"
	"github.com/slovar-dev/slovar/internal/config"
	"github.com/slovar-dev/slovar/internal/di"
	"github.com/slovar-dev/slovar/internal/logger"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	flags    config.Flags
	injector *do.RootScope
}

// Execute runs the command line against the process arguments.
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line with explicit arguments and streams.
// Logs go to stderr; rendered pages go to stdout.
func Run(args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer a.close()
	return root.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "slovar",
		Short:        "Dictionary of literary terms",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.injector = di.NewContainer(di.Options{
				Flags:     a.flags,
				LogWriter: cmd.ErrOrStderr(),
			})
			return di.Bootstrap(a.injector)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.Env, "env", "", "environment: development, staging or production")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.flags.LogFormat, "log-format", "", "log format: json or pretty")
	pf.StringVar(&a.flags.DataPath, "data", "", "path to a terms JSON file (default embedded seed)")
	pf.StringVar(&a.flags.EnvFile, "env-file", "", "path to a .env file (default .env)")

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.indexCmd(),
		a.searchCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) catalog() *catalog.Catalog {
	return do.MustInvoke[*catalog.Catalog](a.injector)
}

func (a *app) logger() *logger.Logger {
	return do.MustInvoke[*logger.Logger](a.injector)
}

// close shuts the container down. Safe when the root never ran.
func (a *app) close() {
	if a.injector == nil {
		return
	}
	injector := a.injector
	a.injector = nil
	log, _ := do.Invoke[*logger.Logger](injector)
	if err := injector.Shutdown(); err != nil && log != nil {
		log.Error("Shutdown error", "error", err)
	}
}
