package refblast

import (
	"os/exec"
	"path/filepath"

	"github.com/y1zhou/bacillus-operon/config"
)

// MakeDB indexes the retrieved reference FASTA into a named, versioned
// local BLAST database. makeblastdb runs with its working directory set
// to the database subdirectory so the artifact files land there, the
// input paths are relative to it.
//
// https://www.ncbi.nlm.nih.gov/books/NBK569841/
func MakeDB(c *config.Config) error {
	in := filepath.Join("..", config.SeqDirName, config.ReferencesFile)
	taxidMap := filepath.Join("..", config.SeqDirName, config.TaxidMapFile)

	makeCmd := exec.Command(
		"makeblastdb",
		"-in", in,
		"-dbtype", "nucl",
		"-parse_seqids",
		"-out", c.DBName,
		"-title", c.DBName,
		"-taxid_map", taxidMap,
		"-blastdb_version", "5",
	)
	makeCmd.Dir = c.DBDir()

	if output, err := makeCmd.CombinedOutput(); err != nil {
		return &ExecError{Tool: "makeblastdb", Output: output, Err: err}
	}
	return nil
}
