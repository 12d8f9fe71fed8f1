package refblast

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/y1zhou/bacillus-operon/config"
)

// BuildTaxidMap resolves the taxonomy id of every accession in the
// composed expression and appends one "accession taxid" line per
// lookup to the taxid map file. If the file already exists the whole
// stage is skipped. Lookups run in the expression's token order with
// no deduplication; a failed lookup aborts mid-file, the same way the
// appended shell pipeline would.
func BuildTaxidMap(c *config.Config, expr string) (skipped bool, err error) {
	mapPath := c.TaxidMapPath()
	if _, err := os.Stat(mapPath); err == nil {
		return true, nil
	}

	f, err := os.OpenFile(mapPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open taxid map at %s: %w", mapPath, err)
	}
	defer f.Close()

	for _, acc := range SplitQuery(expr) {
		taxid, err := lookupTaxid(c.EntrezDB, acc)
		if err != nil {
			return false, err
		}

		if _, err := fmt.Fprintf(f, "%s %s\n", acc, taxid); err != nil {
			return false, fmt.Errorf("failed to append to taxid map: %w", err)
		}
	}

	return false, nil
}

// lookupTaxid resolves a single accession to its taxonomy id through
// the esearch | elink | efetch chain.
func lookupTaxid(entrezDB, acc string) (string, error) {
	out, err := chain(
		exec.Command("esearch", "-db", entrezDB, "-query", acc),
		exec.Command("elink", "-target", "taxonomy"),
		exec.Command("efetch", "-format", "uid"),
	)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
