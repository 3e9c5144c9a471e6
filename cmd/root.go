// Package cmd wires the provider pair conversions into a command line
// interface. Each supported pair is a subcommand reading one input
// configuration and writing one converted document.
package cmd

import (
	"fmt"
	"os"

	"github.com/marcuscabrera/terracognita-fork/config"
	"github.com/marcuscabrera/terracognita-fork/convert"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Root is the root command. Subcommands register themselves in their init
// functions.
var Root = &cobra.Command{
	Use:           "terracognita-fork",
	Short:         "Convert Terraform configurations between cloud providers",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	Root.PersistentFlags().StringP("input", "i", "", "Input Terraform configuration (.tf, .hcl or .json)")
	Root.PersistentFlags().StringP("output", "o", "", "Output path for the converted Terraform JSON document")
	Root.PersistentFlags().Bool("strict", false, "Exit with an error if any resource could not be converted")
	Root.PersistentFlags().BoolP("verbose", "v", false, "Log every converted resource")

	viper.SetEnvPrefix("TC")
	viper.AutomaticEnv()
}

// bindConversionFlags binds the shared flags into viper. Called from each
// subcommand's PreRunE so that flag values and TC_* environment variables
// resolve the same way.
func bindConversionFlags(cmd *cobra.Command) error {
	for _, name := range []string{"input", "output", "strict", "verbose"} {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// runConversion executes a provider pair's pass with the bound flags and
// prints the report.
func runConversion(cmd *cobra.Command, pass *convert.Pass) error {
	input := viper.GetString("input")
	output := viper.GetString("output")
	if input == "" || output == "" {
		return fmt.Errorf("both --input and --output are required")
	}

	logger, err := buildLogger(viper.GetBool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync() // nolint: errcheck
	pass.Logger = logger

	report, err := pass.Run(input, output)
	if err != nil {
		if config.WriteDiagnostics(os.Stderr, err) {
			return fmt.Errorf("invalid configuration: %s", input)
		}
		return err
	}

	printReport(cmd, report)
	if viper.GetBool("strict") {
		return report.Err()
	}
	return nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func printReport(cmd *cobra.Command, report *convert.Report) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Converted %d resources\n", len(report.Successes))
	for _, id := range report.Successes {
		fmt.Fprintf(w, "  %s\n", id)
	}
	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "%d resources could not be converted\n", len(report.Errors))
		for _, msg := range report.Errors {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}
}
