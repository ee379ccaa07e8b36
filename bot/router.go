package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/metrics"
)

// textHandler handles one prefixed text command. args excludes the command
// token itself.
type textHandler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

// buildTextRouter builds the text command dispatch table once at startup.
// Keys are lowercase; dispatch is case-insensitive on the command token.
func (b *Bot) buildTextRouter() map[string]textHandler {
	table := make(map[string]textHandler)
	register := func(handler textHandler, names ...string) {
		for _, name := range names {
			table[name] = handler
		}
	}

	register(b.balance.HandleText, "balance", "bal")
	register(b.rewards.HandleDailyText, "daily")
	register(b.rewards.HandleWorkText, "work")
	register(b.shop.HandleShopText, "shop")
	register(b.shop.HandleBuyText, "buy")
	register(b.shop.HandleInventoryText, "inventory", "inv")
	register(b.leaderboard.HandleText, "leaderboard", "top")
	register(b.transfer.HandleText, "pay", "donate")
	register(b.withdraw.HandleText, "withdraw")
	register(b.admin.HandleText, "give")

	return table
}

// parseCommand splits a prefixed message into a lowercase command token and
// its arguments. ok is false when the message is not a command at all.
func parseCommand(prefix, content string) (name string, args []string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// handleMessageCreate dispatches prefixed text commands. Unrecognized
// commands are silently ignored; everything else produces exactly one reply.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	name, args, ok := parseCommand(b.config.CommandPrefix, m.Content)
	if !ok {
		return
	}

	handler, ok := b.textCommands[name]
	if !ok {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			metrics.HandlerPanics.Inc()
			log.WithFields(log.Fields{
				"command": name,
				"userID":  m.Author.ID,
				"panic":   r,
			}).Error("Command handler panicked")
			if _, err := s.ChannelMessageSendReply(m.ChannelID,
				"❌ Something went wrong. Please try again later.", m.Reference()); err != nil {
				log.Errorf("Error sending panic reply: %v", err)
			}
		}
	}()

	metrics.CommandsTotal.WithLabelValues(name, "text").Inc()
	handler(s, m, args)
}
