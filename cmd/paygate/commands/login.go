package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/paygate-io/payapi/pkg/payapi"
	"github.com/paygate-io/payapi/pkg/payclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify an API key against the API and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			config := &payapi.Config{
				APIKey:      apiKey,
				APIEndpoint: viper.GetString("api"),
			}

			client, err := payclient.New(config)
			if err != nil {
				return err
			}

			// Verify the key with a harmless read before persisting it.
			_, err = client.Methods().List(context.Background(), payapi.NewListOptions().WithLimit(1))
			if err != nil {
				return fmt.Errorf("verifying API key: %w", err)
			}

			viper.Set("api_key", apiKey)

			if err := saveConfig(); err != nil {
				return err
			}

			mode := "live"
			if strings.HasPrefix(apiKey, "test_") {
				mode = "test"
			}

			fmt.Printf("Logged in with a %s key\n", mode)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("api_key", "")

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
