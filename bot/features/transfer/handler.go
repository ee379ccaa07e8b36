package transfer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
)

// HandleCommand responds to the /pay slash command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, username := common.InvokerID(i)
	if userID == "" {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) != 2 {
		common.RespondWithError(s, i, "Please provide both a recipient and an amount.")
		return
	}

	var amount int64
	var recipient *discordgo.User
	for _, opt := range options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}
	if recipient == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}

	message, err := f.payMessage(context.Background(), userID, username, recipient.ID, recipient.Username, amount)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error transferring %d from %s to %s: %v", amount, userID, recipient.ID, err)
		}
		common.RespondWithError(s, i, reply)
		return
	}
	common.Respond(s, i, message)
}

// HandleText responds to the !pay text command
func (f *Feature) HandleText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		common.ReplyToMessage(s, m, "❌ Usage: pay <@user> <amount>")
		return
	}

	toID, ok := common.ParseUserMention(args[0])
	if !ok {
		common.ReplyToMessage(s, m, "❌ Please mention the user you want to pay.")
		return
	}
	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		common.ReplyToMessage(s, m, "❌ Amount must be a number.")
		return
	}

	toUsername := ""
	if len(m.Mentions) > 0 {
		toUsername = m.Mentions[0].Username
	}

	message, err := f.payMessage(context.Background(), m.Author.ID, m.Author.Username, toID, toUsername, amount)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error transferring %d from %s to %s: %v", amount, m.Author.ID, toID, err)
		}
		common.ReplyToMessage(s, m, "❌ "+reply)
		return
	}
	common.ReplyToMessage(s, m, message)
}

func (f *Feature) payMessage(ctx context.Context, fromID, fromUsername, toID, toUsername string, amount int64) (string, error) {
	// Ensure both accounts exist before moving anything.
	if _, err := f.ledger.GetOrCreateAccount(ctx, fromID, fromUsername); err != nil {
		return "", err
	}
	if _, err := f.ledger.GetOrCreateAccount(ctx, toID, toUsername); err != nil {
		return "", err
	}

	result, err := f.ledger.Transfer(ctx, fromID, toID, amount)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ %s paid **%s coins** to %s. Your new balance: **%s coins**",
		common.Mention(fromID), common.FormatBalance(result.Amount),
		common.Mention(toID), common.FormatBalance(result.NewBalance)), nil
}
