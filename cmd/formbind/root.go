package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"form-binder/internal/analyze"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	verbose bool
	dir     string
	logger  *log.Logger
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// NewRootCmd creates the formbind command tree. Each call returns fresh
// commands and flags.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "formbind",
		Short:         "Generate and check bindings between Go structs and web forms.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", "Directory to resolve package patterns from")

	cmd.AddCommand(
		newGenCmd(opts),
		newAnalyzeCmd(opts),
		newCheckCmd(opts),
		newInitCmd(opts),
	)

	return cmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "formbind"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

func (o *globalOptions) analyzer() *analyze.Analyzer {
	a := analyze.NewAnalyzer()
	a.Dir = o.dir

	return a
}

func heading(s string) string {
	return headingStyle.Render(s)
}
