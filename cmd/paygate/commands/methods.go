package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewMethodsCommand creates the methods command group
func NewMethodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "methods",
		Aliases: []string{"method"},
		Short:   "Browse payment methods",
	}

	cmd.AddCommand(newMethodsListCommand())
	cmd.AddCommand(newMethodsGetCommand())

	return cmd
}

func newMethodsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available payment methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			page, err := client.Methods().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("listing methods: %w", err)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, method := range page.Items {
				rows = append(rows, []string{
					method.ID,
					formatString(method.Description),
					formatAmount(method.MinimumAmount),
					formatAmount(method.MaximumAmount),
				})
			}

			return renderList(page.Items, []string{"ID", "Description", "Minimum", "Maximum"}, rows)
		},
	}
}

func newMethodsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <method-id>",
		Short: "Show a payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			method, err := client.Methods().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("getting method: %w", err)
			}

			return renderEntity(method, [][]string{
				{"ID", method.ID},
				{"Description", formatString(method.Description)},
				{"Status", formatString(method.Status)},
				{"Minimum", formatAmount(method.MinimumAmount)},
				{"Maximum", formatAmount(method.MaximumAmount)},
			})
		},
	}
}
