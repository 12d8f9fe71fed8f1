package refblast

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/y1zhou/bacillus-operon/config"
)

// testConfig returns a Config rooted in a fresh temp directory with the
// directory tree already created.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	c := &config.Config{
		Dir:        t.TempDir(),
		Query:      "query.fasta",
		Accessions: "accessions.csv",
		DBName:     "references",
		EntrezDB:   "assembly",
	}
	require.NoError(t, Setup(c))

	return c
}

// writeStub writes an executable shell script named name into dir.
func writeStub(t *testing.T, dir, name, script string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
}

// countingStub is a stub body that appends one line per invocation to
// a calls file before running the rest of the script.
func countingStub(dir, name, rest string) string {
	return fmt.Sprintf(`echo "$@" >> %s`, filepath.Join(dir, name+".calls")) + "\n" + rest
}

// calls returns the recorded invocations of a counting stub, one per line.
func calls(t *testing.T, dir, name string) []string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(dir, name+".calls"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var lines []string
	for _, l := range splitNonEmpty(string(b)) {
		lines = append(lines, l)
	}
	return lines
}

func splitNonEmpty(s string) (out []string) {
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return
}

// stubEntrez places working esearch/elink/efetch stubs into dir. The
// efetch stub answers FASTA requests with a 3-record file and uid
// requests with a fixed taxid.
func stubEntrez(t *testing.T, dir string) {
	t.Helper()

	writeStub(t, dir, "esearch", countingStub(dir, "esearch", `echo "<ENTREZ_DIRECT>$@</ENTREZ_DIRECT>"`))
	writeStub(t, dir, "elink", countingStub(dir, "elink", `cat > /dev/null
echo "<ENTREZ_DIRECT>linked</ENTREZ_DIRECT>"`))
	writeStub(t, dir, "efetch", countingStub(dir, "efetch", `cat > /dev/null
case "$*" in
*fasta*) printf '>ref_1 Bacillus cereus chromosome\nACGTACGTAC\n>ref_2\nGGGGCC\n>ref_3\nTTTT\n' ;;
*uid*) echo 1396 ;;
esac`))
}

// stubBlast places working makeblastdb/blastdbcmd/blastn stubs into dir.
func stubBlast(t *testing.T, dir string) {
	t.Helper()

	// makeblastdb records its args and working directory and fakes a
	// database artifact named after -out
	writeStub(t, dir, "makeblastdb", countingStub(dir, "makeblastdb", `out=""
prev=""
for a in "$@"; do
  [ "$prev" = "-out" ] && out="$a"
  prev="$a"
done
pwd > makeblastdb.pwd
echo "$@" > makeblastdb.args
echo "mock database" > "$out.ndb"`))

	writeStub(t, dir, "blastdbcmd", countingStub(dir, "blastdbcmd", `echo "ref_1 10"
echo "ref_2 6"
echo "ref_3 4"`))

	// blastn writes its full invocation into whatever -out names
	writeStub(t, dir, "blastn", countingStub(dir, "blastn", `out=""
prev=""
for a in "$@"; do
  [ "$prev" = "-out" ] && out="$a"
  prev="$a"
done
echo "blastn $@" > "$out"`))
}

// stubAll places all six required tool stubs into dir and points PATH
// at it exclusively.
func stubAll(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	stubEntrez(t, dir)
	stubBlast(t, dir)
	t.Setenv("PATH", dir)

	return dir
}

// writeTestInputs drops a query FASTA and a 3-row accession CSV into
// the working directory.
func writeTestInputs(t *testing.T, c *config.Config) {
	t.Helper()

	require.NoError(t, os.WriteFile(c.QuerySource(), []byte(">operon\nACGTACGT\n"), 0644))
	csv := "assembly_accession,organism\nA1,Bacillus cereus\nA2,Bacillus anthracis\nA3,Bacillus thuringiensis\n"
	require.NoError(t, os.WriteFile(c.AccessionsPath(), []byte(csv), 0644))
}
