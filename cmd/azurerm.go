package cmd

import (
	"github.com/marcuscabrera/terracognita-fork/azurerm"
	"github.com/spf13/cobra"
)

var azurermCmd = &cobra.Command{
	Use:   "azurerm",
	Short: "Convert AzureRM resources to their AWS equivalents",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindConversionFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, azurerm.NewPass())
	},
}

func init() {
	Root.AddCommand(azurermCmd)
}
