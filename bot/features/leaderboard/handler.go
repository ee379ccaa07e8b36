package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
)

// HandleCommand responds to the /leaderboard slash command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	message, err := f.leaderboardMessage(context.Background())
	if err != nil {
		log.Errorf("Error building leaderboard: %v", err)
		reply, _ := common.UserMessage(err)
		common.RespondWithError(s, i, reply)
		return
	}
	common.Respond(s, i, message)
}

// HandleText responds to the !leaderboard text command
func (f *Feature) HandleText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	message, err := f.leaderboardMessage(context.Background())
	if err != nil {
		log.Errorf("Error building leaderboard: %v", err)
		reply, _ := common.UserMessage(err)
		common.ReplyToMessage(s, m, "❌ "+reply)
		return
	}
	common.ReplyToMessage(s, m, message)
}

func (f *Feature) leaderboardMessage(ctx context.Context) (string, error) {
	entries, err := f.ledger.Leaderboard(ctx, defaultLimit)
	if err != nil {
		return "", err
	}

	if len(entries) == 0 {
		return "🏆 The leaderboard is empty. Be the first to earn some coins!", nil
	}

	medals := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	sb.WriteString("🏆 **Richest players**\n")
	for _, entry := range entries {
		rank := fmt.Sprintf("`#%d`", entry.Rank)
		if entry.Rank <= len(medals) {
			rank = medals[entry.Rank-1]
		}
		name := entry.Username
		if name == "" {
			name = common.Mention(entry.UserID)
		}
		sb.WriteString(fmt.Sprintf("%s **%s** — %s coins\n",
			rank, name, common.FormatBalance(entry.Balance)))
	}
	return sb.String(), nil
}
