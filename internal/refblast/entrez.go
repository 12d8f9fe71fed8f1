package refblast

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/y1zhou/bacillus-operon/config"
)

// chain runs commands in order, feeding each command's stdout to the
// next command's stdin, and returns the final stdout. This mirrors the
// esearch | elink | efetch shell pipelines Entrez Direct is built for,
// except every stage's exit status is checked individually.
func chain(cmds ...*exec.Cmd) ([]byte, error) {
	var in []byte

	for _, cmd := range cmds {
		var stdout, stderr bytes.Buffer
		cmd.Stdin = bytes.NewReader(in)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			return nil, &ExecError{Tool: cmd.Args[0], Output: stderr.Bytes(), Err: err}
		}

		in = stdout.Bytes()
	}

	return in, nil
}

// FetchReferences materializes the combined reference FASTA for the
// composed accession expression. If the cache file already exists the
// network round trip is skipped entirely (no re-validation of the
// file's contents). Returns whether the stage was skipped.
func FetchReferences(c *config.Config, expr string) (skipped bool, err error) {
	out := c.ReferencesPath()
	if _, err := os.Stat(out); err == nil {
		return true, nil
	}

	// search the accessions, link assembly records to their INSDC
	// nucleotide records, fetch those as FASTA
	fasta, err := chain(
		exec.Command("esearch", "-db", c.EntrezDB, "-query", expr),
		exec.Command("elink", "-target", "nuccore", "-name", "assembly_nuccore_insdc"),
		exec.Command("efetch", "-format", "fasta"),
	)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(out, fasta, 0644); err != nil {
		return false, fmt.Errorf("failed to write reference sequences to %s: %w", out, err)
	}
	return false, nil
}
