package refblast

import (
	"os/exec"

	"github.com/y1zhou/bacillus-operon/config"
)

// Search runs blastn twice against the constructed database with the
// staged query: once for an HTML report and once for a plain-text
// report. Both reports are overwritten every run. The second run only
// happens if the first succeeds, matching the conjunctive chaining of
// the original workflow.
//
// https://www.ncbi.nlm.nih.gov/books/NBK279682/
func Search(c *config.Config) error {
	htmlCmd := exec.Command(
		"blastn",
		"-query", c.StagedQuery(),
		"-db", c.DatabasePath(),
		"-html",
		"-out", c.HTMLReportPath(),
	)
	if output, err := htmlCmd.CombinedOutput(); err != nil {
		return &ExecError{Tool: "blastn", Output: output, Err: err}
	}

	textCmd := exec.Command(
		"blastn",
		"-query", c.StagedQuery(),
		"-db", c.DatabasePath(),
		"-out", c.TextReportPath(),
	)
	if output, err := textCmd.CombinedOutput(); err != nil {
		return &ExecError{Tool: "blastn", Output: output, Err: err}
	}

	return nil
}
