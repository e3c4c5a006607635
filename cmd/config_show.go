package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logmon/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  logmon config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file found, using defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("thresholds.warning_minutes: %v\n", cfg.Thresholds.WarningMinutes)
		fmt.Printf("thresholds.error_minutes: %v\n", cfg.Thresholds.ErrorMinutes)
		fmt.Printf("serve.port: %d\n", cfg.Serve.Port)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
