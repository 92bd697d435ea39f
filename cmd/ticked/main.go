package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mariechen/ticked/internal/auth"
	"github.com/mariechen/ticked/internal/cli"
	"github.com/mariechen/ticked/internal/config"
	"github.com/mariechen/ticked/internal/db"
	"github.com/mariechen/ticked/internal/quote"
	"github.com/mariechen/ticked/internal/repository"
	"github.com/mariechen/ticked/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	cfg, err := config.LoadOrCreate(filepath.Join(configDir, config.DefaultConfigFileName))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dbPath := os.Getenv("TICKED_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itemRepo := repository.NewSQLiteItemRepo(database)
	subtaskRepo := repository.NewSQLiteSubtaskRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	favRepo := repository.NewSQLiteFavoriteQuoteRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the quote provider, logging fetches when asked to
	var quoteObserver quote.Observer = quote.NoopObserver{}
	if os.Getenv("TICKED_LOG_QUOTES") != "" {
		quoteObserver = quote.NewLogObserver(os.Stderr)
	}
	provider := quote.NewProvider(quote.Config{
		Endpoint:  cfg.Quote.Endpoint,
		TimeoutMs: cfg.Quote.TimeoutMs,
	}, quoteObserver)

	// Wire services
	itemSvc := service.NewItemService(itemRepo, uow)
	if os.Getenv("TICKED_LOG_USECASES") != "" {
		itemSvc = service.WithItemObservability(itemSvc, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Items:     itemSvc,
		Subtasks:  service.NewSubtaskService(subtaskRepo, itemRepo),
		Analytics: service.NewAnalyticsService(itemRepo),
		Quotes:    service.NewQuoteService(provider, favRepo, itemRepo, uow),
		Auth:      service.NewAuthService(userRepo, auth.NewTokenManager(cfg.Auth.Secret)),
		Sessions:  auth.NewSessionStore(cfg.SessionPath),
	}

	// Detect interactive terminal for prompt-based signup/login.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
