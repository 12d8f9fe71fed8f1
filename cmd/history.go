package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/y1zhou/bacillus-operon/config"
	"github.com/y1zhou/bacillus-operon/internal/manifest"
)

// historyCmd lists the runs recorded in the working directory's manifest.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded pipeline runs and their stage outcomes",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		store, err := manifest.Open(c.ManifestPath())
		if err != nil {
			stderr.Fatalf("%v", err)
		}
		defer store.Close()

		runs, err := store.Runs()
		if err != nil {
			stderr.Fatalf("%v", err)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
		fmt.Fprintf(tw, "run\tstarted\tstage\tstatus\tartifact\t\n")
		for _, r := range runs {
			for _, s := range r.Stages {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
					r.ID, r.Started.Format(time.RFC3339), s.Name, s.Status, s.Artifact)
			}
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
