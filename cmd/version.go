package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the refblast version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of refblast",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("refblast %s\n", rootCmd.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
