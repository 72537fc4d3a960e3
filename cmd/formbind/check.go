package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"form-binder/binder"
	"form-binder/internal/check"
	"form-binder/markup"
)

type checkOptions struct {
	form   string
	pkg    string
	types  []string
	suffix string
	strict bool
}

// errFindings is returned when the check reports problems.
var errFindings = errors.New("form check failed")

func newCheckCmd(g *globalOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare struct types with the controls of an HTML form",
		Long: `Parse an HTML form and report, for every property of the given types,
which control it binds to, which properties bind to nothing (with near-miss
suggestions) and which bound controls Save cannot read.`,
		Example: `  formbind check --form customer.html --pkg ./models --type Customer`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.form, "form", "f", "", "HTML file holding the form")
	cmd.Flags().StringVar(&opts.pkg, "pkg", "", "Package pattern holding the types")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "Struct types to check (default all)")
	cmd.Flags().StringVar(&opts.suffix, "suffix", binder.DefaultSuffixFormat, "Control ID suffix format")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on warnings too")
	_ = cmd.MarkFlagRequired("form")
	_ = cmd.MarkFlagRequired("pkg")

	return cmd
}

func runCheck(cmd *cobra.Command, g *globalOptions, opts *checkOptions) error {
	f, err := os.Open(opts.form)
	if err != nil {
		return fmt.Errorf("opening form: %w", err)
	}
	defer f.Close()

	doc, err := markup.Parse(f)
	if err != nil {
		return err
	}

	structs, err := loadStructs(g, opts.pkg, opts.types)
	if err != nil {
		return err
	}

	m := binder.New(binder.WithSuffixFormat(opts.suffix), binder.WithLogger(g.logger))
	out := cmd.OutOrStdout()
	failed := false

	for _, st := range structs {
		r := check.Form(doc.Root, st, m)

		fmt.Fprintln(out, heading(st.ID.String()))

		if len(r.Bindings) > 0 {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("PROPERTY", "TYPE", "CONTROL", "KIND")

			for _, b := range r.Bindings {
				t.Row(b.Field, b.GoType, b.ControlID, b.Kind.String())
			}

			fmt.Fprintln(out, t.Render())
		}

		for _, d := range r.Diagnostics.All() {
			fmt.Fprintf(out, "  %s: %s\n", d.Severity, d)
		}

		if r.Diagnostics.HasErrors() || (opts.strict && len(r.Diagnostics.Warnings) > 0) {
			failed = true
		}
	}

	if failed {
		return errFindings
	}

	return nil
}
