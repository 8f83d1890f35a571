package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cabquote/internal/cli/formatter"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/spf13/cobra"
)

func newProductCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the hardware product catalog",
	}

	cmd.AddCommand(
		newProductAddCmd(app),
		newProductListCmd(app),
		newProductUpdateCmd(app),
		newProductRemoveCmd(app),
	)

	return cmd
}

func newProductAddCmd(app *App) *cobra.Command {
	var name string
	var price float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a hardware product",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Product{Name: name, UnitPrice: price}
			if err := app.Catalog.CreateProduct(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created product %s [%s]\n", p.Name, formatter.ShortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newProductListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hardware products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Catalog.ListProducts(context.Background())
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProductList(products))
			return nil
		},
	}
}

func newProductUpdateCmd(app *App) *cobra.Command {
	var name string
	var price float64

	cmd := &cobra.Command{
		Use:   "update <product>",
		Short: "Update a hardware product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProductID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Catalog.GetProduct(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("price") {
				p.UnitPrice = price
			}
			if err := app.Catalog.UpdateProduct(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated product %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().Float64Var(&price, "price", 0, "New unit price")

	return cmd
}

func newProductRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product>",
		Short: "Remove a hardware product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProductID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.DeleteProduct(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed product %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
