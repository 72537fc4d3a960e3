package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"form-binder/internal/gen"
	"form-binder/internal/manifest"
)

func newInitCmd(g *globalOptions) *cobra.Command {
	var (
		pkg   string
		types []string
		force bool
	)

	cmd := &cobra.Command{
		Use:     "init [file]",
		Short:   "Write a starter manifest",
		Example: `  formbind init --pkg form-binder/examples/customer --type Customer`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "formbind.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			mf := &manifest.File{
				Version:  manifest.CurrentVersion,
				FileName: gen.DefaultFileName,
				Packages: []manifest.PackageEntry{{Path: pkg, Types: types}},
			}

			if err := manifest.Validate(mf).Error(); err != nil {
				return fmt.Errorf("invalid manifest: %w", err)
			}

			if err := manifest.WriteFile(mf, path); err != nil {
				return err
			}

			g.logger.Info("wrote manifest", "path", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&pkg, "pkg", "", "Package holding the types")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Struct type to generate for (repeatable)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing manifest")
	_ = cmd.MarkFlagRequired("pkg")

	return cmd
}
