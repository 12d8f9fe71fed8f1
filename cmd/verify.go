package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/y1zhou/bacillus-operon/config"
	"github.com/y1zhou/bacillus-operon/internal/refblast"
)

// verifyCmd dumps the contents of the built database.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "List every database record's accession and sequence length",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		if err := refblast.CheckTools(); err != nil {
			stderr.Fatalf("%v", err)
		}
		if err := refblast.VerifyDB(c, os.Stdout); err != nil {
			stderr.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
