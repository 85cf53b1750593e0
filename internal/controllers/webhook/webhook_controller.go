//go:generate go tool mockgen -source=webhook_controller.go -destination=webhook_controller_mock_test.go -package=webhook
package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/filedrop/file-delivery-bot/internal/delivery"
	"github.com/go-telegram/bot/models"
	"github.com/gofiber/fiber/v2"
)

// SecretTokenHeader carries the secret_token configured with setWebhook.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type UpdateProcessor interface {
	ProcessUpdate(ctx context.Context, upd *models.Update) delivery.Outcome
}

// WebhookController receives Telegram updates over HTTP.
type WebhookController struct {
	processor UpdateProcessor
	secret    string
}

// NewWebhookController creates a new WebhookController. An empty secret disables the
// secret token check.
func NewWebhookController(processor UpdateProcessor, secret string) *WebhookController {
	return &WebhookController{
		processor: processor,
		secret:    secret,
	}
}

// ReceiveUpdate parses a Telegram update and runs it through the processor. Everything the
// processor does is reported to the user in chat, so any parsed update is answered with ok.
func (w *WebhookController) ReceiveUpdate(c *fiber.Ctx) error {
	if !SecretMatches(w.secret, c.Get(SecretTokenHeader)) {
		return richerrors.Error{
			ExternalMsg: "unauthorized",
			Err:         errors.New("webhook secret token mismatch"),
			Code:        fiber.StatusUnauthorized,
		}
	}

	var upd models.Update
	if err := c.App().Config().JSONDecoder(c.Body(), &upd); err != nil {
		return richerrors.Error{
			ExternalMsg: err.Error(),
			Err:         fmt.Errorf("failed to parse update: %w", err),
			Code:        fiber.StatusInternalServerError,
		}
	}

	w.processor.ProcessUpdate(c.UserContext(), &upd)
	return c.JSON(StatusResponse{Status: StatusOK})
}

// Health reports that the bot is up.
func (w *WebhookController) Health(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{Status: StatusRunning})
}

// SecretMatches reports whether got satisfies the configured secret.
func SecretMatches(secret, got string) bool {
	if secret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(got)) == 1
}
