package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage logmon configuration file values.",
	Long: `Create and display the logmon configuration file.

The configuration stores application-wide values:
- thresholds.warning_minutes
- thresholds.error_minutes
- serve.port`,
	Example: `
  # Create default config in $HOME/.logmon.yaml
  logmon config create

  # Show active config and source file
  logmon config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
