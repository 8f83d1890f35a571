package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cabquote/internal/cli/formatter"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/spf13/cobra"
)

func newMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Manage the sheet material catalog",
	}

	cmd.AddCommand(
		newMaterialAddCmd(app),
		newMaterialListCmd(app),
		newMaterialUpdateCmd(app),
		newMaterialRemoveCmd(app),
	)

	return cmd
}

func newMaterialAddCmd(app *App) *cobra.Command {
	var name, category string
	var cost, waste float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a material to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.Material{
				Name:       name,
				Category:   category,
				CostPerSqm: cost,
			}
			if cmd.Flags().Changed("waste") {
				m.WasteFactor = &waste
			}
			if err := app.Catalog.CreateMaterial(context.Background(), m); err != nil {
				return err
			}
			fmt.Printf("Created material %s [%s]\n", m.Name, formatter.ShortID(m.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Material name")
	cmd.Flags().StringVar(&category, "category", "", "Category (melamine, veneer, plywood, ...)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost per square meter")
	cmd.Flags().Float64Var(&waste, "waste", 0, "Waste factor override (e.g. 1.15)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}

func newMaterialListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			materials, err := app.Catalog.ListMaterials(context.Background())
			if err != nil {
				return err
			}
			if len(materials) == 0 {
				fmt.Println("No materials found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatMaterialList(materials))
			return nil
		},
	}
}

func newMaterialUpdateCmd(app *App) *cobra.Command {
	var name, category string
	var cost, waste float64

	cmd := &cobra.Command{
		Use:   "update <material>",
		Short: "Update a catalog material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMaterialID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Catalog.GetMaterial(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				m.Name = name
			}
			if cmd.Flags().Changed("category") {
				m.Category = category
			}
			if cmd.Flags().Changed("cost") {
				m.CostPerSqm = cost
			}
			if cmd.Flags().Changed("waste") {
				m.WasteFactor = &waste
			}
			if err := app.Catalog.UpdateMaterial(ctx, m); err != nil {
				return err
			}
			fmt.Printf("Updated material %s\n", m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().Float64Var(&cost, "cost", 0, "New cost per square meter")
	cmd.Flags().Float64Var(&waste, "waste", 0, "New waste factor override")

	return cmd
}

func newMaterialRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <material>",
		Short: "Remove a material from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMaterialID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.DeleteMaterial(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed material %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
