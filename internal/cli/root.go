package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/sweepgen/internal/app"
)

var version = "0.1.0"

// NewRootCmd builds the command tree. Results are printed to out, logs and
// errors go to errW.
func NewRootCmd(out, errW io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sweepgen",
		Short:   "Generate one benchmark config per combination of test parameters",
		Version: version,
		Long: `sweepgen reads a sweep document that declares boolean test parameters and
constant parameters, and writes one configuration file for every combination
of the test parameters. Constant parameters are copied unchanged into every
file. Files are numbered in binary counting order with the first declared test
parameter as the least significant bit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			// If no subcommand is provided, print help
			cmd.Help()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errW)

	rootCmd.PersistentFlags().String("log-level", "warn", "Logging level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log output format: text or json")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("root", "", "Path of the sweep object inside a larger YAML/JSON document (e.g. experiments.kernel)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newPlanCmd())

	return rootCmd
}

// Execute runs the root command against os.Args. Ctrl-C stops generation
// before the next file is written.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// newApp builds an App from the command's flags.
func newApp(cmd *cobra.Command, cfg app.Config) (*app.App, error) {
	flags := cmd.Flags()
	cfg.LogLevel, _ = flags.GetString("log-level")
	cfg.LogFormat, _ = flags.GetString("log-format")
	cfg.NoColor, _ = flags.GetBool("no-color")
	cfg.Root, _ = flags.GetString("root")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, err
	}
	return app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), config), nil
}
