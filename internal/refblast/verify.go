package refblast

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/y1zhou/bacillus-operon/config"
)

// VerifyDB dumps every record's accession and sequence length from the
// constructed database to out. Purely diagnostic, gated on the verify
// setting by the caller.
func VerifyDB(c *config.Config, out io.Writer) error {
	var stderr bytes.Buffer

	dumpCmd := exec.Command(
		"blastdbcmd",
		"-db", c.DatabasePath(),
		"-entry", "all",
		"-outfmt", "%a %l",
	)
	dumpCmd.Stdout = out
	dumpCmd.Stderr = &stderr

	if err := dumpCmd.Run(); err != nil {
		return &ExecError{Tool: "blastdbcmd", Output: stderr.Bytes(), Err: err}
	}
	return nil
}
