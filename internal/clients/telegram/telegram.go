package telegram

import (
	"context"
	"fmt"
	"net/http"

	"github.com/filedrop/file-delivery-bot/internal/config"
	"github.com/filedrop/file-delivery-bot/internal/delivery"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Client for the Telegram Bot API.
type Client struct {
	bot              *bot.Bot
	gateChannelID    int64
	storageChannelID int64
}

// New creates a new Client from the settings. Extra options are applied after the
// defaults, which lets tests point the bot at a fake server.
func New(settings *config.Settings, opts ...bot.Option) (*Client, error) {
	httpClient := &http.Client{Timeout: settings.TelegramTimeout}
	options := append([]bot.Option{
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(settings.TelegramTimeout, httpClient),
	}, opts...)

	b, err := bot.New(settings.BotToken, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Client{
		bot:              b,
		gateChannelID:    settings.GateChannelID,
		storageChannelID: settings.StorageChannelID,
	}, nil
}

// IsMember checks if the user is a member, admin or owner of the gate channel.
// Restricted, left and banned users are not members.
func (c *Client) IsMember(ctx context.Context, userID int64) (bool, error) {
	member, err := c.bot.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: c.gateChannelID,
		UserID: userID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to get chat member: %w", err)
	}
	switch member.Type {
	case models.ChatMemberTypeMember, models.ChatMemberTypeAdministrator, models.ChatMemberTypeOwner:
		return true, nil
	default:
		return false, nil
	}
}

// CopyContent shows an upload indicator in the chat and copies the stored message into it.
func (c *Client) CopyContent(ctx context.Context, chatID, messageID int64) error {
	if _, err := c.bot.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionUploadDocument,
	}); err != nil {
		return fmt.Errorf("failed to send chat action: %w", err)
	}

	if _, err := c.bot.CopyMessage(ctx, &bot.CopyMessageParams{
		ChatID:     chatID,
		FromChatID: c.storageChannelID,
		MessageID:  int(messageID),
	}); err != nil {
		return fmt.Errorf("failed to copy message %d: %w", messageID, err)
	}
	return nil
}

// Reply sends a text message, rendering buttons as a one-button-per-row inline keyboard.
func (c *Client) Reply(ctx context.Context, chatID int64, reply delivery.Reply) error {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   reply.Text,
	}
	if len(reply.Buttons) > 0 {
		rows := make([][]models.InlineKeyboardButton, 0, len(reply.Buttons))
		for _, b := range reply.Buttons {
			rows = append(rows, []models.InlineKeyboardButton{{Text: b.Text, URL: b.URL}})
		}
		params.ReplyMarkup = &models.InlineKeyboardMarkup{InlineKeyboard: rows}
	}
	if reply.DisablePreview {
		params.LinkPreviewOptions = &models.LinkPreviewOptions{IsDisabled: bot.True()}
	}

	if _, err := c.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
