package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"coinbot/bot"
	"coinbot/config"
	"coinbot/events"
	"coinbot/metrics"
	"coinbot/models"
	"coinbot/repository"
	"coinbot/service"
	"coinbot/web"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting coinbot...")

	// Load configuration
	cfg := config.Get()

	// Initialize the account store
	store, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open account store: %w", err)
	}
	log.Infof("Account store initialized (%s backend)", cfg.StoreBackend)

	// Initialize the catalog
	catalog, err := newCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Infof("Catalog loaded with %d items", len(catalog.Items()))

	// Initialize event bus and metrics observers
	eventBus := events.NewBus()
	metrics.Observe(eventBus)

	// Initialize services
	ledger := service.NewLedgerService(store, catalog, eventBus, service.LedgerConfig{
		StartingBalance: cfg.StartingBalance,
		Rewards: map[models.RewardKind]service.RewardConfig{
			models.RewardDaily: {Cooldown: cfg.DailyCooldown, Min: cfg.DailyMin, Max: cfg.DailyMax},
			models.RewardWork:  {Cooldown: cfg.WorkCooldown, Min: cfg.WorkMin, Max: cfg.WorkMax},
		},
	})
	auth := service.NewSingleAdminAuthorizer(cfg.AdminDiscordID)
	log.Info("Services initialized successfully")

	// Start the web server
	webServer := web.NewServer(cfg.HTTPPort)
	webServer.Start()

	// Initialize Discord bot
	log.Info("Connecting to Discord...")
	discordBot, err := bot.New(bot.Config{
		Token:            cfg.DiscordToken,
		GuildID:          cfg.DiscordGuildID,
		CommandPrefix:    cfg.CommandPrefix,
		PresenceInterval: cfg.PresenceInterval,
	}, catalog, ledger, auth)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources: stop taking HTTP traffic, close the gateway
	// connection, then the store. Best effort with a bounded timeout.
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := webServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down web server: %v", err)
	}
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Errorf("Error closing account store: %v", err)
	}

	log.Info("Shutdown completed")
	return nil
}

func newStore(cfg *config.Config) (repository.AccountStore, error) {
	switch cfg.StoreBackend {
	case "file":
		return repository.NewFileStore(cfg.StorePath)
	case "bolt":
		return repository.NewBoltStore(cfg.StorePath)
	default:
		return repository.NewMemoryStore(), nil
	}
}

func newCatalog(cfg *config.Config) (*service.Catalog, error) {
	if cfg.CatalogPath != "" {
		return service.LoadCatalogFile(cfg.CatalogPath)
	}
	return service.DefaultCatalog(), nil
}
