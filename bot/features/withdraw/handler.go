package withdraw

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
)

// HandleCommand responds to the /withdraw slash command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, username := common.InvokerID(i)
	if userID == "" {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) != 1 {
		common.RespondWithError(s, i, "Please provide the amount to withdraw.")
		return
	}
	amount := options[0].IntValue()

	message, err := f.withdrawMessage(context.Background(), userID, username, amount)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error withdrawing %d for %s: %v", amount, userID, err)
		}
		common.RespondWithError(s, i, reply)
		return
	}
	common.Respond(s, i, message)
}

// HandleText responds to the !withdraw text command
func (f *Feature) HandleText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 1 {
		common.ReplyToMessage(s, m, "❌ Usage: withdraw <amount>")
		return
	}
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		common.ReplyToMessage(s, m, "❌ Amount must be a number.")
		return
	}

	message, err := f.withdrawMessage(context.Background(), m.Author.ID, m.Author.Username, amount)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error withdrawing %d for %s: %v", amount, m.Author.ID, err)
		}
		common.ReplyToMessage(s, m, "❌ "+reply)
		return
	}
	common.ReplyToMessage(s, m, message)
}

func (f *Feature) withdrawMessage(ctx context.Context, userID, username string, amount int64) (string, error) {
	// Ensure the account exists so a first-time user gets the proper
	// insufficient-balance reply rather than a lookup failure.
	if _, err := f.ledger.GetOrCreateAccount(ctx, userID, username); err != nil {
		return "", err
	}

	newBalance, err := f.ledger.Debit(ctx, userID, amount, "withdrawal")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("💸 You withdrew **%s coins**. New balance: **%s coins**",
		common.FormatBalance(amount), common.FormatBalance(newBalance)), nil
}
