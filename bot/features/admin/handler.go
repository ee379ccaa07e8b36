package admin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
	"coinbot/service"
)

// HandleCommand responds to the /give slash command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, _ := common.InvokerID(i)
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

	message, err := f.giveMessage(context.Background(), userID, recipient.ID, recipient.Username, amount)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error granting %d to %s: %v", amount, recipient.ID, err)
		}
		common.RespondWithError(s, i, reply)
		return
	}
	common.Respond(s, i, message)
}

// HandleText responds to the !give text command
func (f *Feature) HandleText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		common.ReplyToMessage(s, m, "❌ Usage: give <@user> <amount>")
		return
	}

	toID, ok := common.ParseUserMention(args[0])
	if !ok {
		common.ReplyToMessage(s, m, "❌ Please mention the user to give coins to.")
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

	message, err := f.giveMessage(context.Background(), m.Author.ID, toID, toUsername, amount)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error granting %d to %s: %v", amount, toID, err)
		}
		common.ReplyToMessage(s, m, "❌ "+reply)
		return
	}
	common.ReplyToMessage(s, m, message)
}

// giveMessage grants coins out of thin air to a user. The authorization
// check runs before any account is touched.
func (f *Feature) giveMessage(ctx context.Context, invokerID, toID, toUsername string, amount int64) (string, error) {
	if !f.auth.IsAdmin(invokerID) {
		return "", service.ErrPermissionDenied
	}

	if _, err := f.ledger.GetOrCreateAccount(ctx, toID, toUsername); err != nil {
		return "", err
	}

	newBalance, err := f.ledger.Credit(ctx, toID, amount, "admin grant")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ Granted **%s coins** to %s. Their new balance: **%s coins**",
		common.FormatBalance(amount), common.Mention(toID), common.FormatBalance(newBalance)), nil
}
