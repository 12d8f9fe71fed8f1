package refblast

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupCreatesTree(t *testing.T) {
	c := testConfig(t)

	for _, dir := range []string{c.QueryDir(), c.SeqDir(), c.ResultsDir(), c.DBDir(), c.CustomDBDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	c := testConfig(t)

	assert.NoError(t, Setup(c))
}

func TestStageQuery(t *testing.T) {
	c := testConfig(t)

	contents := []byte(">operon\nACGTACGTAGGA\n")
	require.NoError(t, os.WriteFile(c.QuerySource(), contents, 0644))

	require.NoError(t, StageQuery(c))

	staged, err := os.ReadFile(c.StagedQuery())
	require.NoError(t, err)
	assert.Equal(t, contents, staged, "staged copy must be byte-for-byte identical")
}

func TestStageQueryMissing(t *testing.T) {
	c := testConfig(t)

	err := StageQuery(c)

	var missing *InputMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, c.QuerySource(), missing.Path)
}
