// Package cmd is for command line interactions with the refblast application
package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "refblast",
	Short: `Download reference assemblies by accession, build a local BLAST
database from them, and search a query sequence against it`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./refblast.yaml or ~/.config/refblast/config.yaml)")
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "working directory for all pipeline artifacts")
	rootCmd.PersistentFlags().StringP("query", "q", "query.fasta", "query FASTA filename inside the working directory")
	rootCmd.PersistentFlags().StringP("accessions", "a", "accessions.csv", "accession CSV filename inside the working directory")
	rootCmd.PersistentFlags().Int("accession-column", 0, "zero-based CSV column holding the accessions")
	rootCmd.PersistentFlags().StringP("db-name", "n", "references", "name of the BLAST database to build and search")
	rootCmd.PersistentFlags().String("entrez-db", "assembly", "Entrez database the accessions are searched in")
	rootCmd.PersistentFlags().Bool("verify", false, "dump every record's accession and length after building the database")

	// bind the parameters to viper
	viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("query", rootCmd.PersistentFlags().Lookup("query"))
	viper.BindPFlag("accessions", rootCmd.PersistentFlags().Lookup("accessions"))
	viper.BindPFlag("accession-column", rootCmd.PersistentFlags().Lookup("accession-column"))
	viper.BindPFlag("db-name", rootCmd.PersistentFlags().Lookup("db-name"))
	viper.BindPFlag("entrez-db", rootCmd.PersistentFlags().Lookup("entrez-db"))
	viper.BindPFlag("verify", rootCmd.PersistentFlags().Lookup("verify"))
}

// initConfig finds and reads the refblast.yaml config file, if one exists.
// Flags and REFBLAST_* env vars override its settings.
func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("refblast")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "refblast"))
		}
	}

	viper.SetEnvPrefix("REFBLAST")
	viper.AutomaticEnv()

	// a missing config file is fine, the flag defaults cover everything
	viper.ReadInConfig()
}
