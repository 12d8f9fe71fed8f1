package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/y1zhou/bacillus-operon/config"
	"github.com/y1zhou/bacillus-operon/internal/refblast"
)

// fetchCmd runs the retrieval half of the pipeline only.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Stage the query and download the reference sequences and taxid map",
	Long: `Fetch stages the query FASTA and materializes the two cache files:
sequences/references.fasta (via esearch | elink | efetch on the composed
accession expression) and sequences/taxid_map.txt (one taxonomy lookup
per accession). Either file is reused as-is when it already exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := refblast.Fetch(config.New(), os.Stdout); err != nil {
			stderr.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
