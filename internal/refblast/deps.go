package refblast

import (
	"os/exec"
)

// tool is an external executable the pipeline shells out to.
type tool struct {
	// name of the executable on the PATH
	name string

	// hint is the suggested install command when it's missing
	hint string
}

// requiredTools are the six executables every run depends on. The
// Entrez Direct clients handle remote retrieval, the BLAST+ binaries
// handle indexing and alignment.
var requiredTools = []tool{
	{"esearch", "conda install -c bioconda entrez-direct"},
	{"elink", "conda install -c bioconda entrez-direct"},
	{"efetch", "conda install -c bioconda entrez-direct"},
	{"makeblastdb", "conda install -c bioconda blast"},
	{"blastdbcmd", "conda install -c bioconda blast"},
	{"blastn", "conda install -c bioconda blast"},
}

// CheckTools confirms every required executable resolves on the PATH.
// The first missing tool is returned as a ToolMissingError. This is a
// precondition gate: nothing external is invoked before it passes.
func CheckTools() error {
	for _, t := range requiredTools {
		if _, err := exec.LookPath(t.name); err != nil {
			return &ToolMissingError{Tool: t.name, Hint: t.hint}
		}
	}
	return nil
}
