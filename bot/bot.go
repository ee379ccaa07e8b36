package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/features/admin"
	"coinbot/bot/features/balance"
	"coinbot/bot/features/leaderboard"
	"coinbot/bot/features/rewards"
	"coinbot/bot/features/shop"
	"coinbot/bot/features/transfer"
	"coinbot/bot/features/withdraw"
	"coinbot/service"
)

// Config holds bot configuration
type Config struct {
	Token            string
	GuildID          string
	CommandPrefix    string
	PresenceInterval time.Duration
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config  Config
	session *discordgo.Session
	catalog *service.Catalog

	// Feature modules
	balance     *balance.Feature
	rewards     *rewards.Feature
	shop        *shop.Feature
	transfer    *transfer.Feature
	withdraw    *withdraw.Feature
	leaderboard *leaderboard.Feature
	admin       *admin.Feature

	// Command dispatch tables, built once at startup.
	textCommands  map[string]textHandler
	slashCommands map[string]slashHandler

	presence *presenceRotator
}

// New creates a new bot instance, opens the gateway connection and registers
// the slash commands. A failed connect is fatal to the caller: there is no
// retry policy at this scale.
func New(config Config, catalog *service.Catalog, ledger service.LedgerService, auth service.Authorizer) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		config:   config,
		session:  dg,
		catalog:  catalog,
		presence: newPresenceRotator(config.PresenceInterval),
	}

	// Create feature modules
	bot.balance = balance.New(ledger)
	bot.rewards = rewards.New(ledger)
	bot.shop = shop.New(ledger, catalog)
	bot.transfer = transfer.New(ledger)
	bot.withdraw = withdraw.New(ledger)
	bot.leaderboard = leaderboard.New(ledger)
	bot.admin = admin.New(ledger, auth)

	bot.textCommands = bot.buildTextRouter()
	bot.slashCommands = bot.buildSlashRouter()

	// Register handlers
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleMessageCreate)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Infof("Logged in as %s", r.User.Username)
	})

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Start rotating the presence message
	go bot.presence.run(dg)

	return bot, nil
}

// Close stops the presence rotator and closes the gateway connection
func (b *Bot) Close() error {
	b.presence.Stop()
	return b.session.Close()
}
