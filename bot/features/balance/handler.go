package balance

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
)

// HandleCommand responds to the /balance slash command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, username := common.InvokerID(i)
	if userID == "" {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	message, err := f.balanceMessage(context.Background(), userID, username)
	if err != nil {
		log.Errorf("Error handling balance for %s: %v", userID, err)
		reply, _ := common.UserMessage(err)
		common.RespondWithError(s, i, reply)
		return
	}
	common.Respond(s, i, message)
}

// HandleText responds to the !balance text command
func (f *Feature) HandleText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	message, err := f.balanceMessage(context.Background(), m.Author.ID, m.Author.Username)
	if err != nil {
		log.Errorf("Error handling balance for %s: %v", m.Author.ID, err)
		reply, _ := common.UserMessage(err)
		common.ReplyToMessage(s, m, "❌ "+reply)
		return
	}
	common.ReplyToMessage(s, m, message)
}

func (f *Feature) balanceMessage(ctx context.Context, userID, username string) (string, error) {
	account, err := f.ledger.GetOrCreateAccount(ctx, userID, username)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, your current balance: **%s coins**",
		common.Mention(userID), common.FormatBalance(account.Balance)), nil
}
