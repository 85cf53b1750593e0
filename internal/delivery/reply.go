package delivery

import (
	"fmt"
	"net/url"
)

const (
	InvalidAccessText = "❌ Invalid access.\nUse a valid file link."
	NotJoinedText     = "⚠️ You have not joined the main channel yet.\nTo access this file, please join the main channel first 👇"
	StoreErrorText    = "❌ Database error. Try again later."
	// NotFoundText is shared by lookup misses and failed copies so the two can't be told apart.
	NotFoundText = "❌ File not found or access denied."

	JoinButtonText  = "Join Now ✅"
	RetryButtonText = "Join & Get File ♻️"
)

// Reply is a text message with optional URL buttons, one button per row.
type Reply struct {
	Text           string
	Buttons        []Button
	DisablePreview bool
}

// Button is an inline keyboard button that opens a URL.
type Button struct {
	Text string
	URL  string
}

// DeepLink builds the t.me link that re-sends /start with the given mapping.
func DeepLink(botUsername, mapping string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, url.QueryEscape(mapping))
}

func invalidAccessReply() Reply {
	return Reply{Text: InvalidAccessText}
}

func notJoinedReply(opts Options, mapping string) Reply {
	return Reply{
		Text: NotJoinedText,
		Buttons: []Button{
			{Text: JoinButtonText, URL: opts.GateChannelLink},
			{Text: RetryButtonText, URL: DeepLink(opts.BotUsername, mapping)},
		},
		DisablePreview: true,
	}
}

func storeErrorReply() Reply {
	return Reply{Text: StoreErrorText}
}

func notFoundReply() Reply {
	return Reply{Text: NotFoundText}
}
