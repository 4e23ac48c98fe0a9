package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paygate-io/payapi/pkg/payapi"
)

// NewSubscriptionsCommand creates the subscriptions command group.
// Subscriptions are nested under customers, so every subcommand takes
// --customer.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "Create, list and cancel the subscriptions of a customer",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions of a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return ErrCustomerIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			page, err := client.Subscriptions().Bind(customerID).List(context.Background(), payapi.NewListOptions())
			if err != nil {
				return fmt.Errorf("listing subscriptions: %w", err)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, subscription := range page.Items {
				rows = append(rows, []string{
					subscription.ID,
					subscription.Status,
					formatAmount(subscription.Amount),
					formatString(subscription.Interval),
					formatString(subscription.Description),
				})
			}

			return renderList(page.Items, []string{"ID", "Status", "Amount", "Interval", "Description"}, rows)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer id (cst_...)")

	return cmd
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		customerID  string
		amount      string
		currency    string
		interval    string
		description string
		times       int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription for a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return ErrCustomerIDRequired
			}

			if amount == "" {
				return ErrAmountRequired
			}

			if currency == "" {
				return ErrCurrencyRequired
			}

			if interval == "" {
				return ErrIntervalRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Create(context.Background(), &payapi.SubscriptionCreateRequest{
				Amount:      payapi.Amount{Currency: currency, Value: amount},
				Interval:    interval,
				Description: description,
				Times:       times,
			}, &payapi.Options{ParentID: customerID})
			if err != nil {
				return fmt.Errorf("creating subscription: %w", err)
			}

			return renderEntity(subscription, [][]string{
				{"ID", subscription.ID},
				{"Status", subscription.Status},
				{"Amount", formatAmount(subscription.Amount)},
				{"Interval", formatString(subscription.Interval)},
			})
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer id (cst_...)")
	cmd.Flags().StringVar(&amount, "amount", "", "decimal amount per charge, e.g. 25.00")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&interval, "interval", "", "charge interval, e.g. '1 month'")
	cmd.Flags().StringVar(&description, "description", "", "subscription description")
	cmd.Flags().IntVar(&times, "times", 0, "total number of charges (0 for until canceled)")

	return cmd
}

func newSubscriptionsCancelCommand() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "cancel <subscription-id>",
		Short: "Cancel a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return ErrCustomerIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Subscriptions().Cancel(context.Background(), args[0], &payapi.Options{ParentID: customerID})
			if err != nil {
				return fmt.Errorf("canceling subscription: %w", err)
			}

			fmt.Printf("Subscription %s canceled\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer id (cst_...)")

	return cmd
}
