package cli

import (
	"github.com/alexanderramin/cabquote/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog        service.CatalogService
	Models         service.ModelService
	Configurations service.ConfigurationService
	Quotes         service.QuoteService

	// Interactive reports whether stdin/stdout are attached to a terminal.
	// Wizard and browser commands refuse to start without one.
	Interactive bool
}

// NewRootCmd creates the top-level "cabquote" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cabquote",
		Short: "Parametric cabinet cost calculator",
	}

	root.AddCommand(
		newMaterialCmd(app),
		newProductCmd(app),
		newModelCmd(app),
		newConfigCmd(app),
		newQuoteCmd(app),
		newBrowseCmd(app),
	)

	return root
}
