package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinbot/bot/features/admin"
	"coinbot/bot/features/balance"
	"coinbot/bot/features/leaderboard"
	"coinbot/bot/features/rewards"
	"coinbot/bot/features/shop"
	"coinbot/bot/features/transfer"
	"coinbot/bot/features/withdraw"
	"coinbot/events"
	"coinbot/models"
	"coinbot/repository"
	"coinbot/service"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()

	catalog := service.DefaultCatalog()
	ledger := service.NewLedgerService(repository.NewMemoryStore(), catalog, events.NewBus(), service.LedgerConfig{
		StartingBalance: 100,
		Rewards: map[models.RewardKind]service.RewardConfig{
			models.RewardDaily: {Cooldown: 24 * time.Hour, Min: 50, Max: 200},
			models.RewardWork:  {Cooldown: time.Hour, Min: 10, Max: 100},
		},
	})
	auth := service.NewSingleAdminAuthorizer("admin-id")

	b := &Bot{
		config:  Config{CommandPrefix: "!"},
		catalog: catalog,
	}
	b.balance = balance.New(ledger)
	b.rewards = rewards.New(ledger)
	b.shop = shop.New(ledger, catalog)
	b.transfer = transfer.New(ledger)
	b.withdraw = withdraw.New(ledger)
	b.leaderboard = leaderboard.New(ledger)
	b.admin = admin.New(ledger, auth)
	b.textCommands = b.buildTextRouter()
	b.slashCommands = b.buildSlashRouter()
	return b
}

func TestBuildTextRouter_RegistersAllCommands(t *testing.T) {
	b := newTestBot(t)

	expected := []string{
		"balance", "bal",
		"daily", "work",
		"shop", "buy", "inventory", "inv",
		"leaderboard", "top",
		"pay", "donate",
		"withdraw",
		"give",
	}
	for _, name := range expected {
		assert.Contains(t, b.textCommands, name, "command %q not registered", name)
	}

	// Aliases resolve to the same handler as the canonical name
	require.NotNil(t, b.textCommands["bal"])
	require.NotNil(t, b.textCommands["balance"])

	// All keys are lowercase so case-insensitive dispatch works
	for name := range b.textCommands {
		assert.Equal(t, strings.ToLower(name), name)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		content string
		cmd     string
		args    []string
		ok      bool
	}{
		{"plain command", "!balance", "balance", []string{}, true},
		{"uppercase token", "!BALANCE", "balance", []string{}, true},
		{"mixed case with args", "!Pay <@123> 50", "pay", []string{"<@123>", "50"}, true},
		{"extra whitespace", "!buy   2", "buy", []string{"2"}, true},
		{"no prefix", "balance", "", nil, false},
		{"prefix only", "!", "", nil, false},
		{"prefix and spaces", "!   ", "", nil, false},
		{"regular chatter", "hello there", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, ok := parseCommand("!", tt.content)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cmd, cmd)
			if tt.ok {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestParseCommand_CustomPrefix(t *testing.T) {
	cmd, args, ok := parseCommand("?", "?give <@9> 10")
	require.True(t, ok)
	assert.Equal(t, "give", cmd)
	assert.Equal(t, []string{"<@9>", "10"}, args)

	_, _, ok = parseCommand("?", "!give <@9> 10")
	assert.False(t, ok)
}

func TestUnknownCommandIsSilentlyIgnored(t *testing.T) {
	b := newTestBot(t)

	cmd, _, ok := parseCommand(b.config.CommandPrefix, "!frobnicate")
	require.True(t, ok)
	_, registered := b.textCommands[cmd]
	assert.False(t, registered)
}
