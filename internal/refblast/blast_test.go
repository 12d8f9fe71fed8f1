package refblast

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	stubs := stubAll(t)
	c := testConfig(t)

	require.NoError(t, Search(c))

	html, err := os.ReadFile(c.HTMLReportPath())
	require.NoError(t, err)
	assert.Contains(t, string(html), "-html")
	assert.Contains(t, string(html), "-query "+c.StagedQuery())
	assert.Contains(t, string(html), "-db "+c.DatabasePath())

	text, err := os.ReadFile(c.TextReportPath())
	require.NoError(t, err)
	assert.NotContains(t, string(text), "-html")
	assert.Contains(t, string(text), "-db "+c.DatabasePath())

	assert.Len(t, calls(t, stubs, "blastn"), 2)
}

// a failing HTML run short-circuits the plain-text run
func TestSearchFailureShortCircuits(t *testing.T) {
	stubs := stubAll(t)
	writeStub(t, stubs, "blastn", countingStub(stubs, "blastn", `echo "BLAST engine error" >&2
exit 2`))

	c := testConfig(t)

	err := Search(c)
	require.Error(t, err)

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "blastn", execErr.Tool)

	assert.Len(t, calls(t, stubs, "blastn"), 1, "text report run must not start")
}

func TestVerifyDB(t *testing.T) {
	stubs := stubAll(t)
	c := testConfig(t)

	var out bytes.Buffer
	require.NoError(t, VerifyDB(c, &out))

	assert.Contains(t, out.String(), "ref_1 10")
	assert.Contains(t, out.String(), "ref_3 4")

	dumps := calls(t, stubs, "blastdbcmd")
	require.Len(t, dumps, 1)
	assert.Contains(t, dumps[0], "-db "+c.DatabasePath())
	assert.Contains(t, dumps[0], "-entry all")
	assert.Contains(t, dumps[0], "-outfmt %a %l")
}
