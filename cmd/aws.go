package cmd

import (
	"github.com/marcuscabrera/terracognita-fork/aws"
	"github.com/spf13/cobra"
)

var awsCmd = &cobra.Command{
	Use:   "aws",
	Short: "Convert AWS resources to their Huawei Cloud equivalents",
	Long: "Reads a Terraform configuration written against the AWS provider and rewrites " +
		"its resources as the closest Huawei Cloud equivalents. Resources without a safe " +
		"automatic mapping are reported and skipped.",
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindConversionFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, aws.NewPass())
	},
}

func init() {
	Root.AddCommand(awsCmd)
}
