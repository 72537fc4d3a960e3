package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"form-binder/internal/gen"
	"form-binder/internal/manifest"
)

type genOptions struct {
	config   string
	pkg      string
	types    []string
	fileName string
	output   string
	dryRun   bool
}

func newGenCmd(g *globalOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate BindingFields methods",
		Long: `Generate one file per package declaring the form binding descriptors of
the configured struct types. Types come from a manifest (--config) or from
--pkg and --type.`,
		Example: `  formbind gen --config formbind.yaml
  formbind gen --pkg ./models --type Customer --type Order`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Manifest file")
	cmd.Flags().StringVar(&opts.pkg, "pkg", "", "Package pattern holding the types")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "Struct type to generate for (repeatable)")
	cmd.Flags().StringVar(&opts.fileName, "filename", "", "Generated file name (default "+gen.DefaultFileName+")")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write files here instead of the package directories")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generated code instead of writing it")
	cmd.MarkFlagsMutuallyExclusive("config", "pkg")
	cmd.MarkFlagsRequiredTogether("pkg", "type")

	return cmd
}

func (o *genOptions) manifest() (*manifest.File, error) {
	if o.config != "" {
		f, err := manifest.LoadFile(o.config)
		if err != nil {
			return nil, err
		}

		if o.fileName != "" {
			f.FileName = o.fileName
		}

		return f, nil
	}

	if o.pkg == "" {
		return nil, errors.New("either --config or --pkg and --type is required")
	}

	f := &manifest.File{
		Version:  manifest.CurrentVersion,
		FileName: o.fileName,
		Packages: []manifest.PackageEntry{{Path: o.pkg, Types: o.types}},
	}
	if f.FileName == "" {
		f.FileName = gen.DefaultFileName
	}

	return f, nil
}

func runGen(cmd *cobra.Command, g *globalOptions, opts *genOptions) error {
	mf, err := opts.manifest()
	if err != nil {
		return err
	}

	diags := manifest.Validate(mf)
	for _, w := range diags.Warnings {
		g.logger.Warn(w.String())
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	patterns := make([]string, 0, len(mf.Packages))
	for _, p := range mf.Packages {
		patterns = append(patterns, p.Path)
	}

	g.logger.Debug("loading packages", "patterns", patterns)

	graph, err := g.analyzer().LoadPackages(patterns...)
	if err != nil {
		return err
	}

	generator := gen.NewGenerator(gen.Config{
		FileName:       mf.FileName,
		Header:         mf.Header,
		PropertyImport: mf.PropertyImport,
	})

	var files []gen.GeneratedFile

	for _, entry := range mf.Packages {
		pkg := resolvePackage(graph, g.dir, entry.Path)
		if pkg == nil {
			return fmt.Errorf("package %s was not loaded", entry.Path)
		}

		structs, err := gen.SortedStructs(graph, pkg.Path, entry.Types)
		if err != nil {
			return err
		}

		for _, st := range structs {
			for _, s := range st.Skipped {
				g.logger.Debug("field not bound", "type", st.ID.Name, "field", s.Name, "reason", s.Reason)
			}
		}

		file, err := generator.Generate(pkg, structs)
		if err != nil {
			return fmt.Errorf("generating %s: %w", pkg.Path, err)
		}

		files = append(files, *file)
	}

	if opts.dryRun {
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", f.Filename, f.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files, opts.output); err != nil {
		return err
	}

	for _, f := range files {
		g.logger.Info("generated", "dir", f.Dir, "file", f.Filename)
	}

	return nil
}
