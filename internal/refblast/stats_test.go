package refblast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastaStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.fasta")
	fasta := ">a first record\nACGT\n>b\nGG\n>c\nTT\nTT\n"
	require.NoError(t, os.WriteFile(path, []byte(fasta), 0644))

	records, bases, err := FastaStats(path)
	require.NoError(t, err)
	assert.Equal(t, 3, records)
	assert.Equal(t, 10, bases)
}

func TestFastaStatsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fasta")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	records, bases, err := FastaStats(path)
	require.NoError(t, err)
	assert.Zero(t, records)
	assert.Zero(t, bases)
}

func TestFastaStatsMissing(t *testing.T) {
	_, _, err := FastaStats(filepath.Join(t.TempDir(), "nope.fasta"))
	assert.Error(t, err)
}
