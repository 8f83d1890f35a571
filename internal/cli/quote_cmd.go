package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cabquote/internal/cli/formatter"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/spf13/cobra"
)

func newQuoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price configurations and manage quotes",
	}

	cmd.AddCommand(
		newQuotePreviewCmd(app),
		newQuoteGenerateCmd(app),
		newQuoteListCmd(app),
		newQuoteShowCmd(app),
		newQuoteFinalizeCmd(app),
		newQuoteRemoveCmd(app),
	)

	return cmd
}

func newQuotePreviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <config>",
		Short: "Price a configuration without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveConfigurationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Quotes.Preview(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatBreakdown(result.Quote.Breakdown))
			if w := formatter.FormatWarnings(result.Warnings); w != "" {
				fmt.Printf("%s", w)
			}
			return nil
		},
	}
}

func newQuoteGenerateCmd(app *App) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "generate <config>",
		Short: "Price a configuration and save the quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveConfigurationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Quotes.Generate(ctx, id, label)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatBreakdown(result.Quote.Breakdown))
			if w := formatter.FormatWarnings(result.Warnings); w != "" {
				fmt.Printf("%s", w)
			}
			fmt.Printf("Saved quote %s\n", formatter.ShortID(result.Quote.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Quote label (e.g. customer name)")

	return cmd
}

func newQuoteListCmd(app *App) *cobra.Command {
	var configRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var quotes []*domain.Quote
			var err error
			if configRef != "" {
				var id string
				id, err = resolveConfigurationID(ctx, app, configRef)
				if err != nil {
					return err
				}
				quotes, err = app.Quotes.ListByConfiguration(ctx, id)
			} else {
				quotes, err = app.Quotes.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(quotes) == 0 {
				fmt.Println("No quotes found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatQuoteList(quotes))
			return nil
		},
	}

	cmd.Flags().StringVar(&configRef, "config", "", "Only quotes for this configuration")

	return cmd
}

func newQuoteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <quote>",
		Short: "Show a stored quote's full breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveQuoteID(ctx, app, args[0])
			if err != nil {
				return err
			}
			quote, err := app.Quotes.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n\n", formatter.StatusIndicator(quote.Status), formatter.Dim(quote.ID))
			fmt.Printf("%s\n", formatter.FormatBreakdown(quote.Breakdown))
			return nil
		},
	}
}

func newQuoteFinalizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finalize <quote>",
		Short: "Mark a draft quote as finalized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveQuoteID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Quotes.Finalize(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Finalized quote %s\n", formatter.ShortID(id))
			return nil
		},
	}
}

func newQuoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <quote>",
		Short: "Remove a stored quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveQuoteID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Quotes.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed quote %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
