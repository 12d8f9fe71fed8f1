package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/y1zhou/bacillus-operon/config"
	"github.com/y1zhou/bacillus-operon/internal/refblast"
)

// makedbCmd builds the local BLAST database from the fetched references.
var makedbCmd = &cobra.Command{
	Use:   "makedb",
	Short: "Build the local BLAST database from the downloaded references",
	Long: `Makedb runs makeblastdb on sequences/references.fasta with the
taxid map attached, writing the version 5 database files into the db
subdirectory under the configured database name. With --verify it also
dumps every record's accession and sequence length afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		if err := refblast.CheckTools(); err != nil {
			stderr.Fatalf("%v", err)
		}
		if err := refblast.Setup(c); err != nil {
			stderr.Fatalf("%v", err)
		}
		if err := refblast.MakeDB(c); err != nil {
			stderr.Fatalf("%v", err)
		}

		if c.Verify {
			if err := refblast.VerifyDB(c, os.Stdout); err != nil {
				stderr.Fatalf("%v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(makedbCmd)
}
