//go:generate go tool mockgen -source=delivery.go -destination=delivery_mock_test.go -package=delivery
package delivery

import (
	"context"
	"errors"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// MembershipChecker reports whether a user has joined the gate channel.
type MembershipChecker interface {
	IsMember(ctx context.Context, userID int64) (bool, error)
}

// MappingFinder resolves a mapping key to the stored message it points at.
type MappingFinder interface {
	FindMapping(ctx context.Context, mapping string) (*Record, error)
}

// ContentCopier copies a message out of the storage channel into a chat.
type ContentCopier interface {
	CopyContent(ctx context.Context, chatID, messageID int64) error
}

// Replier sends a text reply to a chat.
type Replier interface {
	Reply(ctx context.Context, chatID int64, reply Reply) error
}

// Record is a single mapping document.
type Record struct {
	Mapping   string
	MessageID int64
}

// Request is a /start command normalised from an inbound update.
type Request struct {
	UserID   int64
	Username string
	ChatID   int64
	Args     []string
}

// Mapping returns the first command argument, or "" when there is none.
func (r Request) Mapping() string {
	if len(r.Args) == 0 {
		return ""
	}
	return r.Args[0]
}

// Options holds the static values the handler renders into replies.
type Options struct {
	BotUsername     string
	GateChannelLink string
}

// Handler runs the membership-gated file delivery for a single request.
type Handler struct {
	members  MembershipChecker
	mappings MappingFinder
	content  ContentCopier
	replier  Replier
	opts     Options
}

// NewHandler creates a new Handler.
func NewHandler(members MembershipChecker, mappings MappingFinder, content ContentCopier, replier Replier, opts Options) *Handler {
	return &Handler{
		members:  members,
		mappings: mappings,
		content:  content,
		replier:  replier,
		opts:     opts,
	}
}

// ProcessUpdate handles a raw update. Anything that is not a /start command is ignored.
func (h *Handler) ProcessUpdate(ctx context.Context, upd *models.Update) Outcome {
	req, ok := RequestFromUpdate(upd, h.opts.BotUsername)
	if !ok {
		return h.finish(OutcomeIgnored)
	}
	return h.Handle(ctx, req)
}

// Handle runs a request to one of its terminal outcomes. All failures are turned into
// a reply to the requester; nothing is returned to the caller except the outcome.
func (h *Handler) Handle(ctx context.Context, req Request) Outcome {
	logger := zerolog.Ctx(ctx).With().
		Int64("userId", req.UserID).
		Str("username", req.Username).
		Logger()

	mapping := req.Mapping()
	if mapping == "" {
		logger.Warn().Msg("Invalid access, no mapping supplied")
		h.reply(ctx, &logger, req.ChatID, invalidAccessReply())
		return h.finish(OutcomeRejectedNoArg)
	}
	logger = logger.With().Str("mapping", mapping).Logger()

	joined, err := h.members.IsMember(ctx, req.UserID)
	if err != nil {
		logger.Warn().Err(err).Msg("Membership check failed, treating user as not joined")
		joined = false
	}
	if !joined {
		logger.Info().Msg("User has not joined the gate channel")
		h.reply(ctx, &logger, req.ChatID, notJoinedReply(h.opts, mapping))
		return h.finish(OutcomeRejectedNotMember)
	}

	record, err := h.mappings.FindMapping(ctx, mapping)
	if err != nil {
		if IsMappingNotFound(err) {
			logger.Warn().Msg("File not found")
			h.reply(ctx, &logger, req.ChatID, notFoundReply())
			return h.finish(OutcomeRejectedNotFound)
		}
		logger.Error().Err(err).Msg("Mapping lookup failed")
		h.reply(ctx, &logger, req.ChatID, storeErrorReply())
		return h.finish(OutcomeStoreUnavailable)
	}

	if err := h.content.CopyContent(ctx, req.ChatID, record.MessageID); err != nil {
		logger.Error().Err(err).Int64("messageId", record.MessageID).Msg("Copy failed")
		h.reply(ctx, &logger, req.ChatID, notFoundReply())
		return h.finish(OutcomeDeliveryFailed)
	}

	logger.Info().Int64("messageId", record.MessageID).Msg("File sent")
	return h.finish(OutcomeDelivered)
}

func (h *Handler) reply(ctx context.Context, logger *zerolog.Logger, chatID int64, r Reply) {
	if err := h.replier.Reply(ctx, chatID, r); err != nil {
		logger.Error().Err(err).Msg("Failed to send reply")
	}
}

func (h *Handler) finish(o Outcome) Outcome {
	outcomesTotal.WithLabelValues(string(o)).Inc()
	return o
}

// ErrMappingNotFound is returned by a MappingFinder when no usable record exists for a key.
const ErrMappingNotFound = constError("mapping not found")

// IsMappingNotFound checks if the error is a mapping not found error.
func IsMappingNotFound(err error) bool {
	return errors.Is(err, ErrMappingNotFound)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
