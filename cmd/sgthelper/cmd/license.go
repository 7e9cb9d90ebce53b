package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sgthelper/internal/tui"
)

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Print the license",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), tui.License)
	},
}

func init() {
	rootCmd.AddCommand(licenseCmd)
}
