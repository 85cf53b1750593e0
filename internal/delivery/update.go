package delivery

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

const (
	startCommand    = "/start"
	unknownUsername = "Unknown"
)

// RequestFromUpdate extracts a /start request from an update. It returns false for
// anything else: non-message updates, other commands, or commands addressed to another bot.
func RequestFromUpdate(upd *models.Update, botUsername string) (Request, bool) {
	if upd == nil || upd.Message == nil || upd.Message.From == nil {
		return Request{}, false
	}
	msg := upd.Message

	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return Request{}, false
	}
	cmd := fields[0]
	if name, target, ok := strings.Cut(cmd, "@"); ok {
		if !strings.EqualFold(target, botUsername) {
			return Request{}, false
		}
		cmd = name
	}
	if cmd != startCommand {
		return Request{}, false
	}

	username := msg.From.Username
	if username == "" {
		username = unknownUsername
	}
	return Request{
		UserID:   msg.From.ID,
		Username: username,
		ChatID:   msg.Chat.ID,
		Args:     fields[1:],
	}, true
}
