// Package refblast orchestrates the sequence-retrieval and local
// alignment workflow on top of Entrez Direct and BLAST+. Every
// computational step is delegated to the external executables; the
// packages here only sequence them, check their exit statuses, and
// maintain the working directory tree.
package refblast

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/y1zhou/bacillus-operon/config"
	"github.com/y1zhou/bacillus-operon/internal/manifest"
)

// stage names recorded in the manifest and the run summary
const (
	StageStaging = "query-staging"
	StageFetch   = "reference-retrieval"
	StageTaxmap  = "taxonomy-map"
	StageMakeDB  = "database-construction"
	StageVerify  = "database-verification"
	StageSearch  = "search"
)

// stage statuses
const (
	StatusRan     = "ran"
	StatusSkipped = "skipped"
)

// StageResult is one stage's outcome in the run summary.
type StageResult struct {
	Stage    string `yaml:"stage"`
	Status   string `yaml:"status"`
	Artifact string `yaml:"artifact,omitempty"`
}

// Summary is the machine-readable record of a full run, written to
// the results directory as YAML.
type Summary struct {
	DBName   string        `yaml:"db-name"`
	Query    string        `yaml:"query"`
	Finished time.Time     `yaml:"finished"`
	Stages   []StageResult `yaml:"stages"`
}

// Run executes the whole pipeline in order: environment check, query
// staging, reference retrieval, taxonomy map, database construction,
// optional verification, and the blastn searches. Strictly sequential,
// each stage gated on the last. Progress goes to out.
func Run(c *config.Config, out io.Writer) error {
	if err := CheckTools(); err != nil {
		return err
	}

	if err := Setup(c); err != nil {
		return err
	}

	store, err := manifest.Open(c.ManifestPath())
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.BeginRun()
	if err != nil {
		return err
	}

	var stages []StageResult
	record := func(stage, status, artifact string) error {
		stages = append(stages, StageResult{Stage: stage, Status: status, Artifact: artifact})
		return store.RecordStage(runID, stage, status, artifact)
	}

	// stage the query FASTA
	if err := StageQuery(c); err != nil {
		return err
	}
	if err := record(StageStaging, StatusRan, c.StagedQuery()); err != nil {
		return err
	}

	// compose the disjunctive search expression from the CSV
	accs, err := ReadAccessions(c.AccessionsPath(), c.AccessionColumn)
	if err != nil {
		return err
	}
	expr := BuildQuery(accs)

	// retrieve the reference sequences, or reuse the cached file
	fetchSkipped, err := FetchReferences(c, expr)
	if err != nil {
		return err
	}
	if fetchSkipped {
		fmt.Fprintf(out, "using cached reference sequences at %s\n", c.ReferencesPath())
	} else {
		records, bases, err := FastaStats(c.ReferencesPath())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "retrieved %d records (%d bp) into %s\n", records, bases, c.ReferencesPath())
	}
	if err := record(StageFetch, status(fetchSkipped), c.ReferencesPath()); err != nil {
		return err
	}

	// map each accession to its taxonomy id, or reuse the cached map
	taxSkipped, err := BuildTaxidMap(c, expr)
	if err != nil {
		return err
	}
	if taxSkipped {
		fmt.Fprintf(out, "using cached taxid map at %s\n", c.TaxidMapPath())
	}
	if err := record(StageTaxmap, status(taxSkipped), c.TaxidMapPath()); err != nil {
		return err
	}

	// index the references into a local BLAST database
	if err := MakeDB(c); err != nil {
		return err
	}
	if err := record(StageMakeDB, StatusRan, c.DatabasePath()); err != nil {
		return err
	}

	// optional diagnostic dump of the database contents
	if c.Verify {
		if err := VerifyDB(c, out); err != nil {
			return err
		}
		if err := record(StageVerify, StatusRan, ""); err != nil {
			return err
		}
	} else if err := record(StageVerify, StatusSkipped, ""); err != nil {
		return err
	}

	// run the searches, HTML then plain-text
	if err := Search(c); err != nil {
		return err
	}
	if err := record(StageSearch, StatusRan, c.HTMLReportPath()); err != nil {
		return err
	}

	fmt.Fprintf(out, "BLAST results written to %s\n", c.HTMLReportPath())

	if err := store.FinishRun(runID); err != nil {
		return err
	}

	return writeSummary(c, stages)
}

// Fetch runs only the retrieval half of the pipeline: environment
// check, directory setup, query staging, reference retrieval, and the
// taxonomy map.
func Fetch(c *config.Config, out io.Writer) error {
	if err := CheckTools(); err != nil {
		return err
	}
	if err := Setup(c); err != nil {
		return err
	}
	if err := StageQuery(c); err != nil {
		return err
	}

	accs, err := ReadAccessions(c.AccessionsPath(), c.AccessionColumn)
	if err != nil {
		return err
	}
	expr := BuildQuery(accs)

	skipped, err := FetchReferences(c, expr)
	if err != nil {
		return err
	}
	if skipped {
		fmt.Fprintf(out, "using cached reference sequences at %s\n", c.ReferencesPath())
	} else {
		records, bases, err := FastaStats(c.ReferencesPath())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "retrieved %d records (%d bp) into %s\n", records, bases, c.ReferencesPath())
	}

	if _, err := BuildTaxidMap(c, expr); err != nil {
		return err
	}
	return nil
}

// status maps a skip flag to its recorded stage status.
func status(skipped bool) string {
	if skipped {
		return StatusSkipped
	}
	return StatusRan
}

// writeSummary writes the run summary YAML into the results directory.
func writeSummary(c *config.Config, stages []StageResult) error {
	s := Summary{
		DBName:   c.DBName,
		Query:    c.Query,
		Finished: time.Now().UTC(),
		Stages:   stages,
	}

	b, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	if err := os.WriteFile(c.SummaryPath(), b, 0644); err != nil {
		return fmt.Errorf("failed to write run summary to %s: %w", c.SummaryPath(), err)
	}
	return nil
}
