package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paygate-io/payapi/pkg/payapi"
)

// NewRefundsCommand creates the refunds command group. Refunds are nested
// under payments, so every subcommand takes --payment.
func NewRefundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund"},
		Short:   "Manage refunds",
		Long:    "Create, list and cancel refunds of a payment",
	}

	cmd.AddCommand(newRefundsListCommand())
	cmd.AddCommand(newRefundsCreateCommand())
	cmd.AddCommand(newRefundsCancelCommand())

	return cmd
}

func newRefundsListCommand() *cobra.Command {
	var paymentID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List refunds of a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if paymentID == "" {
				return ErrPaymentIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			page, err := client.Refunds().List(context.Background(), payapi.NewListOptions().WithParentID(paymentID))
			if err != nil {
				return fmt.Errorf("listing refunds: %w", err)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, refund := range page.Items {
				rows = append(rows, []string{
					refund.ID,
					refund.Status,
					formatAmount(refund.Amount),
					formatString(refund.Description),
				})
			}

			return renderList(page.Items, []string{"ID", "Status", "Amount", "Description"}, rows)
		},
	}

	cmd.Flags().StringVar(&paymentID, "payment", "", "payment id (tr_...)")

	return cmd
}

func newRefundsCreateCommand() *cobra.Command {
	var (
		paymentID   string
		amount      string
		currency    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Refund a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if paymentID == "" {
				return ErrPaymentIDRequired
			}

			if amount == "" {
				return ErrAmountRequired
			}

			if currency == "" {
				return ErrCurrencyRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Create(context.Background(), &payapi.RefundCreateRequest{
				Amount:      payapi.Amount{Currency: currency, Value: amount},
				Description: description,
			}, &payapi.Options{ParentID: paymentID})
			if err != nil {
				return fmt.Errorf("creating refund: %w", err)
			}

			return renderEntity(refund, [][]string{
				{"ID", refund.ID},
				{"Status", refund.Status},
				{"Amount", formatAmount(refund.Amount)},
				{"Payment", refund.PaymentID},
			})
		},
	}

	cmd.Flags().StringVar(&paymentID, "payment", "", "payment id (tr_...)")
	cmd.Flags().StringVar(&amount, "amount", "", "decimal amount to refund, e.g. 5.00")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&description, "description", "", "refund description")

	return cmd
}

func newRefundsCancelCommand() *cobra.Command {
	var paymentID string

	cmd := &cobra.Command{
		Use:   "cancel <refund-id>",
		Short: "Cancel a pending refund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if paymentID == "" {
				return ErrPaymentIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Refunds().Cancel(context.Background(), args[0], &payapi.Options{ParentID: paymentID})
			if err != nil {
				return fmt.Errorf("canceling refund: %w", err)
			}

			fmt.Printf("Refund %s canceled\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&paymentID, "payment", "", "payment id (tr_...)")

	return cmd
}
