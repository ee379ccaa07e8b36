package shop

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"coinbot/bot/common"
)

// HandleShop responds to the /shop slash command
func (f *Feature) HandleShop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	common.Respond(s, i, f.shopMessage())
}

// HandleShopText responds to the !shop text command
func (f *Feature) HandleShopText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	common.ReplyToMessage(s, m, f.shopMessage())
}

// HandleBuy responds to the /buy slash command
func (f *Feature) HandleBuy(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, username := common.InvokerID(i)
	if userID == "" {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) != 1 {
		common.RespondWithError(s, i, "Please provide the item to buy.")
		return
	}
	itemID := int(options[0].IntValue())

	message, err := f.buyMessage(context.Background(), userID, username, itemID)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error buying item %d for %s: %v", itemID, userID, err)
		}
		common.RespondWithError(s, i, reply)
		return
	}
	common.Respond(s, i, message)
}

// HandleBuyText responds to the !buy text command
func (f *Feature) HandleBuyText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 1 {
		common.ReplyToMessage(s, m, "❌ Usage: buy <item id>. Use the shop command to see item ids.")
		return
	}
	itemID, err := strconv.Atoi(args[0])
	if err != nil {
		common.ReplyToMessage(s, m, "❌ Item id must be a number. Use the shop command to see item ids.")
		return
	}

	message, err := f.buyMessage(context.Background(), m.Author.ID, m.Author.Username, itemID)
	if err != nil {
		reply, domain := common.UserMessage(err)
		if !domain {
			log.Errorf("Error buying item %d for %s: %v", itemID, m.Author.ID, err)
		}
		common.ReplyToMessage(s, m, "❌ "+reply)
		return
	}
	common.ReplyToMessage(s, m, message)
}

// HandleInventory responds to the /inventory slash command
func (f *Feature) HandleInventory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, username := common.InvokerID(i)
	if userID == "" {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	message, err := f.inventoryMessage(context.Background(), userID, username)
	if err != nil {
		log.Errorf("Error listing inventory for %s: %v", userID, err)
		reply, _ := common.UserMessage(err)
		common.RespondWithError(s, i, reply)
		return
	}
	common.Respond(s, i, message)
}

// HandleInventoryText responds to the !inventory text command
func (f *Feature) HandleInventoryText(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	message, err := f.inventoryMessage(context.Background(), m.Author.ID, m.Author.Username)
	if err != nil {
		log.Errorf("Error listing inventory for %s: %v", m.Author.ID, err)
		reply, _ := common.UserMessage(err)
		common.ReplyToMessage(s, m, "❌ "+reply)
		return
	}
	common.ReplyToMessage(s, m, message)
}

func (f *Feature) shopMessage() string {
	var sb strings.Builder
	sb.WriteString("🛒 **Item Shop**\n")
	for _, item := range f.catalog.Items() {
		sb.WriteString(fmt.Sprintf("`%d` **%s** — %s coins\n      %s\n",
			item.ID, item.Name, common.FormatBalance(item.Price), item.Description))
	}
	sb.WriteString("\nBuy with the buy command and an item id.")
	return sb.String()
}

func (f *Feature) buyMessage(ctx context.Context, userID, username string, itemID int) (string, error) {
	// Make sure the account exists so the purchase reply can show a balance
	// even for first-time users.
	if _, err := f.ledger.GetOrCreateAccount(ctx, userID, username); err != nil {
		return "", err
	}

	result, err := f.ledger.Purchase(ctx, userID, itemID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🛍️ You bought **%s** for **%s coins**. New balance: **%s coins**",
		result.Item.Name, common.FormatBalance(result.Item.Price), common.FormatBalance(result.NewBalance)), nil
}

func (f *Feature) inventoryMessage(ctx context.Context, userID, username string) (string, error) {
	account, err := f.ledger.GetOrCreateAccount(ctx, userID, username)
	if err != nil {
		return "", err
	}

	if len(account.Inventory) == 0 {
		return "🎒 Your inventory is empty. Visit the shop!", nil
	}

	// Collapse duplicates into counts for display; the underlying inventory
	// keeps every entry.
	counts := make(map[string]int)
	var order []string
	for _, owned := range account.Inventory {
		if _, seen := counts[owned.Name]; !seen {
			order = append(order, owned.Name)
		}
		counts[owned.Name]++
	}

	var sb strings.Builder
	sb.WriteString("🎒 **Your inventory**\n")
	for _, name := range order {
		if counts[name] > 1 {
			sb.WriteString(fmt.Sprintf("• %s ×%d\n", name, counts[name]))
		} else {
			sb.WriteString(fmt.Sprintf("• %s\n", name))
		}
	}
	return sb.String(), nil
}
