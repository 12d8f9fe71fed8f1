package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/y1zhou/bacillus-operon/config"
	"github.com/y1zhou/bacillus-operon/internal/refblast"
)

// runCmd executes the whole pipeline in order.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the whole pipeline: fetch references, build the database, search",
	Long: `Run executes every stage of the workflow in order:

1. Check that the Entrez Direct and BLAST+ executables are on the PATH
2. Stage the query FASTA into the query subdirectory
3. Download the reference sequences for the accessions in the CSV
   (skipped when sequences/references.fasta already exists)
4. Resolve each accession's taxonomy id into sequences/taxid_map.txt
   (skipped when the file already exists)
5. Build a local BLAST database from the downloaded references
6. Optionally dump the database contents (--verify)
7. Search the staged query against the database, writing an HTML and a
   plain-text report into the results subdirectory

Each run is recorded in the refblast.db manifest and summarized in
results/run-summary.yaml.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := refblast.Run(config.New(), os.Stdout); err != nil {
			stderr.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
