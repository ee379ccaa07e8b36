package rewards

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
	"coinbot/models"
)

// HandleDaily responds to the /daily slash command
func (f *Feature) HandleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleSlashClaim(s, i, models.RewardDaily)
}

// HandleWork responds to the /work slash command
func (f *Feature) HandleWork(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleSlashClaim(s, i, models.RewardWork)
}

// HandleDailyText responds to the !daily text command
func (f *Feature) HandleDailyText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	f.handleTextClaim(s, m, models.RewardDaily)
}

// HandleWorkText responds to the !work text command
func (f *Feature) HandleWorkText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	f.handleTextClaim(s, m, models.RewardWork)
}

func (f *Feature) handleSlashClaim(s *discordgo.Session, i *discordgo.InteractionCreate, kind models.RewardKind) {
	userID, username := common.InvokerID(i)
	if userID == "" {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	message, err := f.claimMessage(context.Background(), userID, username, kind)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error claiming %s reward for %s: %v", kind, userID, err)
		}
		common.RespondWithError(s, i, reply)
		return
	}
	common.Respond(s, i, message)
}

func (f *Feature) handleTextClaim(s *discordgo.Session, m *discordgo.MessageCreate, kind models.RewardKind) {
	message, err := f.claimMessage(context.Background(), m.Author.ID, m.Author.Username, kind)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error claiming %s reward for %s: %v", kind, m.Author.ID, err)
		}
		common.ReplyToMessage(s, m, "❌ "+reply)
		return
	}
	common.ReplyToMessage(s, m, message)
}

func (f *Feature) claimMessage(ctx context.Context, userID, username string, kind models.RewardKind) (string, error) {
	result, err := f.ledger.Claim(ctx, userID, username, kind)
	if err != nil {
		return "", err
	}

	switch kind {
	case models.RewardWork:
		return fmt.Sprintf("💼 You worked hard and earned **%s coins**! New balance: **%s coins**",
			common.FormatBalance(result.Amount), common.FormatBalance(result.NewBalance)), nil
	default:
		return fmt.Sprintf("🎁 You claimed your daily reward of **%s coins**! New balance: **%s coins**",
			common.FormatBalance(result.Amount), common.FormatBalance(result.NewBalance)), nil
	}
}
