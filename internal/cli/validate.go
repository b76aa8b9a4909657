package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/sweepgen/internal/app"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config>",
		Short: "Check a sweep document without generating anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, app.Config{SpecPath: args[0]})
			if err != nil {
				return err
			}
			_, err = a.Validate(cmd.Context())
			return err
		},
	}
}
