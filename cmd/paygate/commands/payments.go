package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paygate-io/payapi/pkg/payapi"
)

// NewPaymentsCommand creates the payments command group
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Manage payments",
		Long:    "Create, list and cancel payments",
	}

	cmd.AddCommand(newPaymentsListCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsCreateCommand())
	cmd.AddCommand(newPaymentsCancelCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var (
		limit int
		from  string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := payapi.NewListOptions().WithLimit(limit).WithFrom(from)

			page, err := client.Payments().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("listing payments: %w", err)
			}

			payments := page.Items

			if all {
				payments, err = payapi.NewPageIterator(page).All(ctx)
				if err != nil {
					return fmt.Errorf("listing payments: %w", err)
				}
			}

			rows := make([][]string, 0, len(payments))
			for _, payment := range payments {
				rows = append(rows, []string{
					payment.ID,
					payment.Status,
					formatAmount(payment.Amount),
					formatString(payment.Description),
					formatString(payment.Method),
					formatTime(payment.CreatedAt),
				})
			}

			return renderList(payments, []string{"ID", "Status", "Amount", "Description", "Method", "Created"}, rows)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of payments per page")
	cmd.Flags().StringVar(&from, "from", "", "payment id to start listing from")
	cmd.Flags().BoolVar(&all, "all", false, "follow pagination and list every payment")

	return cmd
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <payment-id>",
		Short: "Show a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("getting payment: %w", err)
			}

			return renderEntity(payment, [][]string{
				{"ID", payment.ID},
				{"Mode", payment.Mode},
				{"Status", payment.Status},
				{"Amount", formatAmount(payment.Amount)},
				{"Description", formatString(payment.Description)},
				{"Method", formatString(payment.Method)},
				{"Checkout", formatString(payment.CheckoutURL())},
				{"Created", formatTime(payment.CreatedAt)},
				{"Paid", formatTime(payment.PaidAt)},
			})
		},
	}
}

func newPaymentsCreateCommand() *cobra.Command {
	var (
		amount      string
		currency    string
		description string
		redirectURL string
		method      string
		customerID  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount == "" {
				return ErrAmountRequired
			}

			if currency == "" {
				return ErrCurrencyRequired
			}

			if description == "" {
				return ErrDescriptionRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Create(context.Background(), &payapi.PaymentCreateRequest{
				Amount:      payapi.Amount{Currency: currency, Value: amount},
				Description: description,
				RedirectURL: redirectURL,
				Method:      method,
				CustomerID:  customerID,
			})
			if err != nil {
				return fmt.Errorf("creating payment: %w", err)
			}

			return renderEntity(payment, [][]string{
				{"ID", payment.ID},
				{"Status", payment.Status},
				{"Amount", formatAmount(payment.Amount)},
				{"Checkout", formatString(payment.CheckoutURL())},
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "decimal amount, e.g. 10.00")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&description, "description", "", "payment description")
	cmd.Flags().StringVar(&redirectURL, "redirect-url", "", "URL the customer returns to after checkout")
	cmd.Flags().StringVar(&method, "method", "", "restrict to a payment method")
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id to attach the payment to")

	return cmd
}

func newPaymentsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <payment-id>",
		Short: "Cancel a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Payments().Cancel(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("canceling payment: %w", err)
			}

			fmt.Printf("Payment %s canceled\n", args[0])

			return nil
		},
	}
}
