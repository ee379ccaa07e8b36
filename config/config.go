package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Admin configuration
	AdminDiscordID string

	// Economy configuration
	StartingBalance int64
	DailyCooldown   time.Duration
	DailyMin        int64
	DailyMax        int64
	WorkCooldown    time.Duration
	WorkMin         int64
	WorkMax         int64

	// Command configuration
	CommandPrefix string

	// Presence configuration
	PresenceInterval time.Duration

	// Storage configuration: "memory" (default), "file" or "bolt"
	StoreBackend string
	StorePath    string

	// Catalog configuration (optional TOML file overriding the built-in set)
	CatalogPath string

	// Web server configuration
	HTTPPort int

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),
		AdminDiscordID: os.Getenv("ADMIN_DISCORD_ID"),

		// Economy defaults
		StartingBalance: 100,
		DailyCooldown:   24 * time.Hour,
		DailyMin:        50,
		DailyMax:        200,
		WorkCooldown:    1 * time.Hour,
		WorkMin:         10,
		WorkMax:         100,

		// Command defaults
		CommandPrefix: "!",

		// Presence defaults
		PresenceInterval: 15 * time.Second,

		// Storage defaults
		StoreBackend: "memory",
		StorePath:    "data/accounts.json",

		CatalogPath: os.Getenv("CATALOG_FILE"),

		// Web server defaults
		HTTPPort: 3000,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsed, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsed
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil {
			config.HTTPPort = parsed
		}
	}
	if prefix := os.Getenv("COMMAND_PREFIX"); prefix != "" {
		config.CommandPrefix = prefix
	}
	if backend := os.Getenv("STORE_BACKEND"); backend != "" {
		config.StoreBackend = backend
	}
	if path := os.Getenv("STORE_PATH"); path != "" {
		config.StorePath = path
	}
	if interval := os.Getenv("PRESENCE_INTERVAL"); interval != "" {
		if parsed, err := time.ParseDuration(interval); err == nil {
			config.PresenceInterval = parsed
		}
	}
	if cooldown := os.Getenv("DAILY_COOLDOWN"); cooldown != "" {
		if parsed, err := time.ParseDuration(cooldown); err == nil {
			config.DailyCooldown = parsed
		}
	}
	if cooldown := os.Getenv("WORK_COOLDOWN"); cooldown != "" {
		if parsed, err := time.ParseDuration(cooldown); err == nil {
			config.WorkCooldown = parsed
		}
	}
	if v := os.Getenv("DAILY_MIN"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.DailyMin = parsed
		}
	}
	if v := os.Getenv("DAILY_MAX"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.DailyMax = parsed
		}
	}
	if v := os.Getenv("WORK_MIN"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.WorkMin = parsed
		}
	}
	if v := os.Getenv("WORK_MAX"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.WorkMax = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}

	switch config.StoreBackend {
	case "memory", "file", "bolt":
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (expected memory, file or bolt)", config.StoreBackend)
	}

	return config, nil
}
