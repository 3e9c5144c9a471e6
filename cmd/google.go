package cmd

import (
	"github.com/marcuscabrera/terracognita-fork/google"
	"github.com/spf13/cobra"
)

var googleCmd = &cobra.Command{
	Use:   "google",
	Short: "Convert Google Cloud resources to their AzureRM equivalents",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindConversionFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, google.NewPass())
	},
}

func init() {
	Root.AddCommand(googleCmd)
}
