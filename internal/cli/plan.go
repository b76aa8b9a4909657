package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/sweepgen/internal/app"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <config>",
		Short: "Show the grid a sweep document produces",
		Long: `Plan prints the parameter layout and the number of combinations. With
--limit N it also prints the first N parameter blocks and their file names.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, _ := cmd.Flags().GetString("instance")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			ext, _ := cmd.Flags().GetString("ext")
			limit, _ := cmd.Flags().GetInt("limit")

			a, err := newApp(cmd, app.Config{
				Instance:  instance,
				SpecPath:  args[0],
				OutputDir: outputDir,
				Extension: ext,
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			return a.Plan(cmd.Context())
		},
	}

	cmd.Flags().StringP("instance", "i", "", "Instance name used for file names")
	cmd.Flags().StringP("output-dir", "o", "", "Output directory used for file names")
	cmd.Flags().String("ext", "yml", "Extension of generated files")
	cmd.Flags().IntP("limit", "n", 0, "Print the first N parameter blocks")

	return cmd
}
