package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	helpdesksdk "rocket_help/sdk/go"
)

func ordersCmd() *cobra.Command {
	orders := &cobra.Command{Use: "orders", Short: "Manage support requests"}
	orders.AddCommand(ordersListCmd())
	orders.AddCommand(ordersShowCmd())
	orders.AddCommand(ordersCloseCmd())
	orders.AddCommand(ordersNewCmd())
	return orders
}

func ordersListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your requests (open by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.restore(cmd.Context()); err != nil {
				return err
			}

			list := helpdesksdk.NewOrderList(a.client, a.nav, a.opts...)
			if err := list.SelectFilter(helpdesksdk.Status(status)); err != nil {
				return err
			}
			if err := list.Load(cmd.Context()); err != nil {
				return err
			}

			items := list.Visible()
			if viper.GetBool("json") {
				return printJSON(items)
			}
			if msg := list.EmptyMessage(); msg != "" {
				fmt.Println(msg)
				return nil
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Patrimony", "When", "Status"})
			for _, it := range items {
				tw.AppendRow(table.Row{it.ID, it.Patrimony, it.When, it.Status})
			}
			tw.AppendFooter(table.Row{"", "", "Total", list.Count()})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", string(helpdesksdk.StatusOpen), "open or closed")
	return cmd
}

func ordersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.restore(cmd.Context()); err != nil {
				return err
			}

			detail := helpdesksdk.NewOrderDetail(args[0], a.client, a.nav, a.opts...)
			if err := detail.Load(cmd.Context()); err != nil {
				return err
			}
			order, _ := detail.Order()
			return printJSONOrText(order, func() { renderDetail(detail, order) })
		},
	}
}

func ordersCloseCmd() *cobra.Command {
	var solution string
	cmd := &cobra.Command{
		Use:   "close <id>",
		Short: "Close a request with its solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.restore(cmd.Context()); err != nil {
				return err
			}

			detail := helpdesksdk.NewOrderDetail(args[0], a.client, a.nav, a.opts...)
			if err := detail.Load(cmd.Context()); err != nil {
				return err
			}
			if err := detail.SetSolution(solution); err != nil {
				return err
			}
			if err := detail.CloseOrder(cmd.Context()); err != nil {
				return err
			}
			order, _ := detail.Order()
			return printJSONOrText(order, func() { renderDetail(detail, order) })
		},
	}
	cmd.Flags().StringVar(&solution, "solution", "", "what was done to solve the request")
	return cmd
}

func ordersNewCmd() *cobra.Command {
	var patrimony, description string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Register a new request",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.restore(cmd.Context()); err != nil {
				return err
			}

			form := helpdesksdk.NewNewOrderForm(a.client, a.nav, a.opts...)
			order, err := form.Submit(cmd.Context(), patrimony, description)
			if err != nil {
				return err
			}
			return printJSONOrText(order, func() { fmt.Println(order.ID) })
		},
	}
	cmd.Flags().StringVar(&patrimony, "patrimony", "", "equipment asset tag")
	cmd.Flags().StringVar(&description, "description", "", "problem description")
	return cmd
}

func renderDetail(detail *helpdesksdk.OrderDetail, order helpdesksdk.Order) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendRow(table.Row{"ID", order.ID})
	tw.AppendRow(table.Row{"Patrimony", order.Patrimony})
	tw.AppendRow(table.Row{"Description", order.Description})
	tw.AppendRow(table.Row{"Status", order.Status})
	tw.AppendRow(table.Row{"Registered", detail.When()})
	if order.Status == helpdesksdk.StatusClosed {
		tw.AppendRow(table.Row{"Solution", detail.Solution()})
		tw.AppendRow(table.Row{"Closed", detail.ClosedWhen()})
	}
	tw.Render()
}
