// Package yatgapi is the Telegram Bot API transport. It exposes a small
// Client interface the notification service sends through, implemented on
// top of telebot, and maps transport failures into the yatgerrors taxonomy.
//
// Example usage:
//
//	client, err := yatgapi.NewBotClient(cfg, log)
//	if err != nil {
//	    return err.Wrap("failed to create client")
//	}
//
//	id, serr := client.SendMessage(ctx, "<b>deployed</b>", yamarkup.DialectHTML)
package yatgapi

import (
	"context"

	tele "gopkg.in/telebot.v4"

	"github.com/YaCodeDev/GoYaTgNotify/yamarkup"
)

// MessageID identifies a message delivered to a chat.
type MessageID int

// Client sends formatted content to one destination chat. Implementations
// return errors whose chain contains a *yatgerrors.APIError, so callers can
// classify failures without knowing the transport.
type Client interface {
	// SendMessage sends a text message and returns its ID.
	SendMessage(ctx context.Context, text string, dialect yamarkup.Dialect) (MessageID, error)

	// SendPhoto sends a photo with an optional caption. The caption must
	// already fit Telegram's caption limit; use yacaption upstream.
	SendPhoto(ctx context.Context, source PhotoSource, caption string, dialect yamarkup.Dialect) (MessageID, error)

	// SendDocument sends a document with an optional caption.
	SendDocument(ctx context.Context, source DocumentSource, caption string, dialect yamarkup.Dialect) (MessageID, error)
}

// parseMode maps a markup dialect to the telebot parse mode constant.
func parseMode(d yamarkup.Dialect) tele.ParseMode {
	switch d {
	case yamarkup.DialectHTML:
		return tele.ModeHTML
	case yamarkup.DialectMarkdown:
		return tele.ModeMarkdown
	case yamarkup.DialectMarkdownV2:
		return tele.ModeMarkdownV2
	default:
		return tele.ModeDefault
	}
}
