package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logmon/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logmon",
	Short: "Analyze job lifecycle logs: match START/END pairs, compute durations, report alerts.",
	Long: `logmon ingests a CSV log of job lifecycle events (HH:MM:SS,description,action,pid),
matches START/END pairs per pid, computes durations across midnight rollovers,
and classifies each completed job into OK/WARNING/ERROR alert tiers.

Jobs above the warning threshold (default 5 minutes) are flagged WARNING,
jobs above the error threshold (default 10 minutes) are flagged ERROR.`,
	Example: `
  # Analyze a log file and print the report
  logmon analyze ./jobs.log

  # Analyze with custom alert thresholds
  logmon analyze ./jobs.log --warn-minutes 3 --error-minutes 8

  # Export the detail listing to CSV or Excel
  logmon export ./jobs.log --output ./jobs.csv
  logmon export ./jobs.log --output ./jobs.xlsx

  # Export the aggregate summary only
  logmon export ./jobs.log --mode summary --output ./summary.csv

  # Start the local dashboard
  logmon serve --port 8080

  # Create configuration file
  logmon config create
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.logmon.yaml, then ./.logmon.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".logmon" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".logmon")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		return
	}
	if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Warning: could not read config file %s, using defaults\n", cfgFile)
	}
}
