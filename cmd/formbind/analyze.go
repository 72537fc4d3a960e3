package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"form-binder/internal/analyze"
)

type analyzeOptions struct {
	pkg   string
	types []string
	dump  bool
}

func newAnalyzeCmd(g *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show how the fields of struct types bind",
		Example: `  formbind analyze --pkg ./models
  formbind analyze --pkg ./models --type Customer --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			structs, err := loadStructs(g, opts.pkg, opts.types)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if opts.dump {
				spew.Fdump(out, structs)
				return nil
			}

			for _, st := range structs {
				fmt.Fprintln(out, heading(st.ID.String()))
				fmt.Fprintln(out, fieldTable(st))

				for _, s := range st.Skipped {
					fmt.Fprintf(out, "  skipped %s: %s\n", s.Name, s.Reason)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.pkg, "pkg", "", "Package pattern to analyze")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "Struct types to show (default all)")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Print the raw analysis")
	_ = cmd.MarkFlagRequired("pkg")

	return cmd
}

func fieldTable(st *analyze.StructInfo) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PROPERTY", "FIELD", "TYPE", "DESCRIPTOR", "ACCESS")

	for _, f := range st.Fields {
		access := "read/write"
		if f.ReadOnly {
			access = "read"
		}

		t.Row(f.Name, f.GoName, f.GoType, f.Constructor(), access)
	}

	return t.Render()
}
