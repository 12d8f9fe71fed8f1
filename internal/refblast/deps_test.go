package refblast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckToolsMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // nothing on the path

	err := CheckTools()
	require.Error(t, err)

	var missing *ToolMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "esearch", missing.Tool)
	assert.Contains(t, err.Error(), "esearch")
	assert.Contains(t, err.Error(), "conda install")
}

func TestCheckToolsPartial(t *testing.T) {
	dir := t.TempDir()
	stubEntrez(t, dir) // only the Entrez Direct half
	t.Setenv("PATH", dir)

	err := CheckTools()
	require.Error(t, err)

	var missing *ToolMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "makeblastdb", missing.Tool)
}

func TestCheckToolsAllPresent(t *testing.T) {
	stubAll(t)

	assert.NoError(t, CheckTools())
}
