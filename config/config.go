// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// names of the subdirectories created under the working directory
const (
	// QueryDirName is where the query FASTA is staged
	QueryDirName = "query"

	// SeqDirName is where retrieved sequences and the taxid map are stored
	SeqDirName = "sequences"

	// ResultsDirName is where blastn reports are written
	ResultsDirName = "results"

	// DBDirName is where makeblastdb writes the database files
	DBDirName = "db"

	// CustomDBDirName is where user-supplied databases live
	CustomDBDirName = "custom_db"
)

// names of the two cache files under the sequences directory
const (
	// ReferencesFile is the combined reference FASTA from efetch
	ReferencesFile = "references.fasta"

	// TaxidMapFile maps each accession to its taxonomy id
	TaxidMapFile = "taxid_map.txt"
)

// Config is the root-level settings struct and is a mix of settings
// available in refblast.yaml and those passed from the command line
type Config struct {
	// Dir is the working directory everything happens beneath
	Dir string `mapstructure:"dir"`

	// Query is the query FASTA filename, expected inside Dir
	Query string `mapstructure:"query"`

	// Accessions is the accession CSV filename, expected inside Dir
	Accessions string `mapstructure:"accessions"`

	// AccessionColumn is the zero-based CSV column holding accessions
	AccessionColumn int `mapstructure:"accession-column"`

	// DBName is the human-assigned name of the BLAST database
	DBName string `mapstructure:"db-name"`

	// EntrezDB is the Entrez database the accessions are searched in
	EntrezDB string `mapstructure:"entrez-db"`

	// Verify toggles the blastdbcmd dump after makeblastdb
	Verify bool `mapstructure:"verify"`
}

// New returns a new Config struct populated by Viper settings
// (either from the local refblast.yaml) and/or command line arguments
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return c.withDefaults()
}

// withDefaults fills any unset field with its default value
func (c *Config) withDefaults() *Config {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Query == "" {
		c.Query = "query.fasta"
	}
	if c.Accessions == "" {
		c.Accessions = "accessions.csv"
	}
	if c.DBName == "" {
		c.DBName = "references"
	}
	if c.EntrezDB == "" {
		c.EntrezDB = "assembly"
	}
	return c
}

// QueryDir is the staging directory for query FASTAs
func (c *Config) QueryDir() string {
	return filepath.Join(c.Dir, QueryDirName)
}

// SeqDir is the raw sequence storage directory
func (c *Config) SeqDir() string {
	return filepath.Join(c.Dir, SeqDirName)
}

// ResultsDir is where alignment reports are written
func (c *Config) ResultsDir() string {
	return filepath.Join(c.Dir, ResultsDirName)
}

// DBDir is the BLAST database storage directory
func (c *Config) DBDir() string {
	return filepath.Join(c.Dir, DBDirName)
}

// CustomDBDir is the storage directory for user-supplied databases
func (c *Config) CustomDBDir() string {
	return filepath.Join(c.Dir, CustomDBDirName)
}

// QuerySource is the user-supplied query FASTA inside the working directory
func (c *Config) QuerySource() string {
	return filepath.Join(c.Dir, c.Query)
}

// StagedQuery is the copied query FASTA inside the staging directory
func (c *Config) StagedQuery() string {
	return filepath.Join(c.QueryDir(), c.Query)
}

// AccessionsPath is the accession CSV inside the working directory
func (c *Config) AccessionsPath() string {
	return filepath.Join(c.Dir, c.Accessions)
}

// ReferencesPath is the combined reference FASTA cache file
func (c *Config) ReferencesPath() string {
	return filepath.Join(c.SeqDir(), ReferencesFile)
}

// TaxidMapPath is the accession to taxid map cache file
func (c *Config) TaxidMapPath() string {
	return filepath.Join(c.SeqDir(), TaxidMapFile)
}

// DatabasePath is the BLAST database, name included, under DBDir
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DBDir(), c.DBName)
}

// HTMLReportPath is the blastn HTML report for this database
func (c *Config) HTMLReportPath() string {
	return filepath.Join(c.ResultsDir(), c.DBName+".html")
}

// TextReportPath is the blastn plain-text report for this database
func (c *Config) TextReportPath() string {
	return filepath.Join(c.ResultsDir(), c.DBName+".txt")
}

// SummaryPath is the machine-readable run summary written after a full run
func (c *Config) SummaryPath() string {
	return filepath.Join(c.ResultsDir(), "run-summary.yaml")
}

// ManifestPath is the SQLite run manifest inside the working directory
func (c *Config) ManifestPath() string {
	return filepath.Join(c.Dir, "refblast.db")
}
