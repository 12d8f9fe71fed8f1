package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/y1zhou/bacillus-operon/config"
	"github.com/y1zhou/bacillus-operon/internal/refblast"
)

// searchCmd runs the blastn searches against an already-built database.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the staged query against the built database",
	Long: `Search runs blastn twice against the constructed database with the
staged query: once writing an HTML report and once writing a plain-text
report, both into the results subdirectory. Existing reports are
overwritten.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		if err := refblast.CheckTools(); err != nil {
			stderr.Fatalf("%v", err)
		}
		if err := refblast.Setup(c); err != nil {
			stderr.Fatalf("%v", err)
		}
		if err := refblast.Search(c); err != nil {
			stderr.Fatalf("%v", err)
		}

		fmt.Printf("BLAST results written to %s\n", c.HTMLReportPath())
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
