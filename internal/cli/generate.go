package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/sweepgen/internal/app"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <instance> <config>",
		Short: "Write one config file per test parameter combination",
		Long: `Generate writes <instance>-<index>.yml for every combination of the test
parameters declared in <config>. The output directory is created if needed.

  sweepgen generate kernel sweep.yaml -o configs/
  sweepgen generate kernel sweep.hcl --template bench.tmpl --ext toml
  sweepgen generate kernel suite.json --root experiments.kernel --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputDir, _ := cmd.Flags().GetString("output-dir")
			templatePath, _ := cmd.Flags().GetString("template")
			ext, _ := cmd.Flags().GetString("ext")
			limit, _ := cmd.Flags().GetInt("limit")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			quiet, _ := cmd.Flags().GetBool("quiet")

			a, err := newApp(cmd, app.Config{
				Instance:     args[0],
				SpecPath:     args[1],
				OutputDir:    outputDir,
				TemplatePath: templatePath,
				Extension:    ext,
				Limit:        limit,
				DryRun:       dryRun,
				Quiet:        quiet,
			})
			if err != nil {
				return err
			}

			_, err = a.Generate(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringP("output-dir", "o", "", "Specify output directory")
	cmd.Flags().StringP("template", "t", "", "Template file (default: built-in YAML template)")
	cmd.Flags().String("ext", "yml", "Extension of generated files")
	cmd.Flags().Int("limit", 0, "Stop after this many files (0 = all)")
	cmd.Flags().Bool("dry-run", false, "Render every file but do not write anything")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print the summary")

	return cmd
}
