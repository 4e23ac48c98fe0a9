package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paygate-io/payapi/pkg/payapi"
)

// NewOrdersCommand creates the orders command group
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
		Long:    "List, inspect and cancel orders and their lines",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersCancelCommand())
	cmd.AddCommand(newOrderLinesCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		limit int
		from  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			page, err := client.Orders().List(context.Background(), payapi.NewListOptions().WithLimit(limit).WithFrom(from))
			if err != nil {
				return fmt.Errorf("listing orders: %w", err)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, order := range page.Items {
				rows = append(rows, []string{
					order.ID,
					formatString(order.OrderNumber),
					order.Status,
					formatAmount(order.Amount),
					formatTime(order.CreatedAt),
				})
			}

			return renderList(page.Items, []string{"ID", "Number", "Status", "Amount", "Created"}, rows)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of orders per page")
	cmd.Flags().StringVar(&from, "from", "", "order id to start listing from")

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	var embed []string

	cmd := &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show an order and its lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(context.Background(), args[0], &payapi.Options{Embed: embed})
			if err != nil {
				return fmt.Errorf("getting order: %w", err)
			}

			rows := [][]string{
				{"ID", order.ID},
				{"Number", formatString(order.OrderNumber)},
				{"Status", order.Status},
				{"Amount", formatAmount(order.Amount)},
				{"Created", formatTime(order.CreatedAt)},
			}

			for _, line := range order.Lines {
				rows = append(rows, []string{
					"Line " + line.ID,
					fmt.Sprintf("%dx %s (%s)", line.Quantity, line.Name, formatAmount(line.TotalAmount)),
				})
			}

			return renderEntity(order, rows)
		},
	}

	cmd.Flags().StringSliceVar(&embed, "embed", nil, "embed related resources (payments, refunds, shipments)")

	return cmd
}

func newOrdersCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Orders().Cancel(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("canceling order: %w", err)
			}

			fmt.Printf("Order %s canceled\n", args[0])

			return nil
		},
	}
}

// newOrderLinesCommand creates the lines subgroup. Order lines are addressed
// through their order; the line operations always target the lines collection.
func newOrderLinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Manage the lines of an order",
	}

	cmd.AddCommand(newOrderLinesUpdateCommand())
	cmd.AddCommand(newOrderLinesCancelCommand())

	return cmd
}

func newOrderLinesUpdateCommand() *cobra.Command {
	var (
		lineID   string
		quantity int
		name     string
	)

	cmd := &cobra.Command{
		Use:   "update <order-id>",
		Short: "Update a line of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			line := payapi.OrderLine{
				Resource: payapi.Resource{ID: lineID},
				Quantity: quantity,
				Name:     name,
			}

			order, err := client.OrderLines().Update(context.Background(), args[0], &payapi.OrderLinesUpdateRequest{
				Lines: []payapi.OrderLine{line},
			})
			if err != nil {
				return fmt.Errorf("updating order lines: %w", err)
			}

			return renderEntity(order, [][]string{
				{"ID", order.ID},
				{"Status", order.Status},
				{"Amount", formatAmount(order.Amount)},
			})
		},
	}

	cmd.Flags().StringVar(&lineID, "line", "", "order line id (odl_...)")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "new quantity")
	cmd.Flags().StringVar(&name, "name", "", "new line description")
	_ = cmd.MarkFlagRequired("line")

	return cmd
}

func newOrderLinesCancelCommand() *cobra.Command {
	var (
		lineID   string
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel a line of an order, optionally partially",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.OrderLines().Cancel(context.Background(), args[0], &payapi.OrderLinesCancelRequest{
				Lines: []payapi.OrderLineReference{{ID: lineID, Quantity: quantity}},
			})
			if err != nil {
				return fmt.Errorf("canceling order lines: %w", err)
			}

			fmt.Printf("Canceled line %s of order %s\n", lineID, args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&lineID, "line", "", "order line id (odl_...)")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "quantity to cancel (0 cancels the full line)")
	_ = cmd.MarkFlagRequired("line")

	return cmd
}
