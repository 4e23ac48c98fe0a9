package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paygate-io/payapi/pkg/payapi"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			page, err := client.Customers().List(context.Background(), payapi.NewListOptions().WithLimit(limit))
			if err != nil {
				return fmt.Errorf("listing customers: %w", err)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, customer := range page.Items {
				rows = append(rows, []string{
					customer.ID,
					formatString(customer.Name),
					formatString(customer.Email),
					formatTime(customer.CreatedAt),
				})
			}

			return renderList(page.Items, []string{"ID", "Name", "Email", "Created"}, rows)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of customers per page")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <customer-id>",
		Short: "Show a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("getting customer: %w", err)
			}

			return renderEntity(customer, [][]string{
				{"ID", customer.ID},
				{"Name", formatString(customer.Name)},
				{"Email", formatString(customer.Email)},
				{"Locale", formatString(customer.Locale)},
				{"Created", formatTime(customer.CreatedAt)},
			})
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		name   string
		email  string
		locale string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(context.Background(), &payapi.CustomerCreateRequest{
				Name:   name,
				Email:  email,
				Locale: locale,
			})
			if err != nil {
				return fmt.Errorf("creating customer: %w", err)
			}

			return renderEntity(customer, [][]string{
				{"ID", customer.ID},
				{"Name", formatString(customer.Name)},
				{"Email", formatString(customer.Email)},
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().StringVar(&email, "email", "", "customer email address")
	cmd.Flags().StringVar(&locale, "locale", "", "customer locale, e.g. nl_NL")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <customer-id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Customers().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("deleting customer: %w", err)
			}

			fmt.Printf("Customer %s deleted\n", args[0])

			return nil
		},
	}
}
