package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
	"coinbot/metrics"
)

// registerCommands declaratively syncs the slash command set with Discord.
// Registration is idempotent: re-creating an existing command updates it.
func (b *Bot) registerCommands() error {
	// Buy choices come straight from the catalog so the picker always
	// matches what the shop sells.
	var itemChoices []*discordgo.ApplicationCommandOptionChoice
	for _, item := range b.catalog.Items() {
		itemChoices = append(itemChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%d coins)", item.Name, item.Price),
			Value: item.ID,
		})
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "daily",
			Description: "Claim your daily coin reward",
		},
		{
			Name:        "work",
			Description: "Work for some extra coins",
		},
		{
			Name:        "shop",
			Description: "Browse the item shop",
		},
		{
			Name:        "buy",
			Description: "Buy an item from the shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "item",
					Description: "Item to buy",
					Required:    true,
					Choices:     itemChoices,
				},
			},
		},
		{
			Name:        "inventory",
			Description: "See the items you own",
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players",
		},
		{
			Name:        "withdraw",
			Description: "Withdraw coins from your balance",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of coins",
					Required:    true,
				},
			},
		},
		{
			Name:        "pay",
			Description: "Pay coins to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to pay",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of coins",
					Required:    true,
				},
			},
		},
		{
			Name:        "give",
			Description: "Grant coins to a player (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to grant coins to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of coins",
					Required:    true,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

// slashHandler handles one slash command interaction.
type slashHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

// buildSlashRouter builds the slash command dispatch table once at startup.
// Same handler bodies as the text router; only argument extraction differs.
func (b *Bot) buildSlashRouter() map[string]slashHandler {
	return map[string]slashHandler{
		"balance":     b.balance.HandleCommand,
		"daily":       b.rewards.HandleDaily,
		"work":        b.rewards.HandleWork,
		"shop":        b.shop.HandleShop,
		"buy":         b.shop.HandleBuy,
		"inventory":   b.shop.HandleInventory,
		"leaderboard": b.leaderboard.HandleCommand,
		"pay":         b.transfer.HandleCommand,
		"withdraw":    b.withdraw.HandleCommand,
		"give":        b.admin.HandleCommand,
	}
}

// handleCommands routes slash commands to the feature handlers.
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	handler, ok := b.slashCommands[name]
	if !ok {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			metrics.HandlerPanics.Inc()
			log.WithFields(log.Fields{
				"command": name,
				"panic":   r,
			}).Error("Command handler panicked")
			// The interaction would otherwise time out with no reply at all.
			common.RespondWithError(s, i, "Something went wrong. Please try again later.")
		}
	}()

	metrics.CommandsTotal.WithLabelValues(name, "slash").Inc()
	handler(s, i)
}
