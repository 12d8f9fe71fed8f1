package refblast

import (
	"fmt"
	"os"

	"github.com/y1zhou/bacillus-operon/config"
)

// Setup creates the working directory tree. Directories that already
// exist are left alone, the tree persists across runs.
func Setup(c *config.Config) error {
	dirs := []string{
		c.QueryDir(),
		c.SeqDir(),
		c.ResultsDir(),
		c.DBDir(),
		c.CustomDBDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// StageQuery copies the query FASTA from the working directory into
// the query staging subdirectory, byte-for-byte, under the same name.
// A missing query file is fatal before any external tool is invoked.
func StageQuery(c *config.Config) error {
	src := c.QuerySource()

	contents, err := os.ReadFile(src)
	if os.IsNotExist(err) {
		return &InputMissingError{Path: src}
	} else if err != nil {
		return fmt.Errorf("failed to read query file %s: %w", src, err)
	}

	if err := os.WriteFile(c.StagedQuery(), contents, 0644); err != nil {
		return fmt.Errorf("failed to stage query file at %s: %w", c.StagedQuery(), err)
	}
	return nil
}
