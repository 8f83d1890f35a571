package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/cabquote/internal/cli"
	"github.com/alexanderramin/cabquote/internal/costing"
	"github.com/alexanderramin/cabquote/internal/db"
	"github.com/alexanderramin/cabquote/internal/repository"
	"github.com/alexanderramin/cabquote/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.cabquote/cabquote.db
	dbPath := os.Getenv("CABQUOTE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".cabquote", "cabquote.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	materialRepo := repository.NewSQLiteMaterialRepo(database)
	productRepo := repository.NewSQLiteProductRepo(database)
	modelRepo := repository.NewSQLiteModelRepo(database)
	configurationRepo := repository.NewSQLiteConfigurationRepo(database)
	quoteRepo := repository.NewSQLiteQuoteRepo(database)

	app := &cli.App{
		Catalog:        service.NewCatalogService(materialRepo, productRepo),
		Models:         service.NewModelService(modelRepo),
		Configurations: service.NewConfigurationService(configurationRepo, modelRepo),
		Quotes: service.NewQuoteService(
			quoteRepo, configurationRepo, modelRepo, materialRepo, productRepo,
			costing.StandardDefaults()),
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
