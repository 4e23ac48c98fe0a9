package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and change settings stored in the config file",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString("api_key")
			if apiKey != "" {
				apiKey = maskKey(apiKey)
			} else {
				apiKey = NotAvailable
			}

			settings := map[string]string{
				"api":     formatString(viper.GetString("api")),
				"api_key": apiKey,
				"output":  viper.GetString("output"),
			}

			return renderEntity(settings, [][]string{
				{"api", settings["api"]},
				{"api_key", settings["api_key"]},
				{"output", settings["output"]},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set(args[0], args[1])

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

// saveConfig persists the current viper settings to the active config file,
// falling back to $HOME/.paygate/config.yml when none was loaded yet.
func saveConfig() error {
	if viper.ConfigFileUsed() != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	path := filepath.Join(home, ".paygate", "config.yml")

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// maskKey keeps the environment prefix and last four characters visible.
func maskKey(key string) string {
	if len(key) <= 9 {
		return "***"
	}

	return key[:5] + "***" + key[len(key)-4:]
}
