package yatgapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/YaCodeDev/GoYaTgNotify/yabotconfig"
	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
	"github.com/YaCodeDev/GoYaTgNotify/yalogger"
	"github.com/YaCodeDev/GoYaTgNotify/yamarkup"
	"github.com/YaCodeDev/GoYaTgNotify/yatgerrors"
)

const httpTimeout = 30 * time.Second

// BotClient is the telebot-backed Client bound to one bot and one chat.
type BotClient struct {
	bot    *tele.Bot
	chatID int64
	log    yalogger.Logger
}

// ClientFactory builds a Client for a bot config. The notification service
// takes one so tests can substitute a fake transport.
type ClientFactory func(cfg yabotconfig.BotConfig, log yalogger.Logger) (Client, yaerrors.Error)

// NewBotClient validates the config and connects the bot. The constructor
// performs a getMe call, so an invalid token fails here rather than on the
// first send.
//
// Example usage:
//
//	client, err := yatgapi.NewBotClient(cfg, log)
func NewBotClient(cfg yabotconfig.BotConfig, log yalogger.Logger) (Client, yaerrors.Error) {
	if err := cfg.Validate(); err != nil {
		return nil, err.Wrap("failed to create bot client")
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Client: &http.Client{Timeout: httpTimeout},
	})
	if err != nil {
		return nil, yaerrors.FromError(
			http.StatusBadGateway,
			classify(err),
			"failed to connect telegram bot",
		)
	}

	return &BotClient{
		bot:    bot,
		chatID: cfg.ChatID,
		log:    log.WithBotName(cfg.Name).WithChatID(cfg.ChatID),
	}, nil
}

// NewBotClientFromBot wraps an already constructed telebot instance.
// Useful for tests and for bots that also poll for updates.
func NewBotClientFromBot(bot *tele.Bot, chatID int64, log yalogger.Logger) *BotClient {
	return &BotClient{bot: bot, chatID: chatID, log: log.WithChatID(chatID)}
}

// SendMessage sends a text message. telebot performs requests without
// context support, so cancellation is honoured between sends, not mid-flight.
func (c *BotClient) SendMessage(
	ctx context.Context,
	text string,
	dialect yamarkup.Dialect,
) (MessageID, error) {
	if err := ctx.Err(); err != nil {
		return 0, yatgerrors.NewNetwork("send cancelled", err)
	}

	msg, err := c.bot.Send(tele.ChatID(c.chatID), text, &tele.SendOptions{
		ParseMode: parseMode(dialect),
	})
	if err != nil {
		return 0, classify(err)
	}

	c.log.Debugf("sent message %d (%d bytes)", msg.ID, len(text))

	return MessageID(msg.ID), nil
}

// SendPhoto sends a photo with an optional caption.
func (c *BotClient) SendPhoto(
	ctx context.Context,
	source PhotoSource,
	caption string,
	dialect yamarkup.Dialect,
) (MessageID, error) {
	if err := ctx.Err(); err != nil {
		return 0, yatgerrors.NewNetwork("send cancelled", err)
	}

	if err := source.validate(); err != nil {
		return 0, err.Wrap("failed to send photo")
	}

	photo := &tele.Photo{File: photoFile(source), Caption: caption}

	msg, err := c.bot.Send(tele.ChatID(c.chatID), photo, &tele.SendOptions{
		ParseMode: parseMode(dialect),
	})
	if err != nil {
		return 0, classify(err)
	}

	c.log.Debugf("sent photo %d", msg.ID)

	return MessageID(msg.ID), nil
}

// SendDocument sends a document with an optional caption.
func (c *BotClient) SendDocument(
	ctx context.Context,
	source DocumentSource,
	caption string,
	dialect yamarkup.Dialect,
) (MessageID, error) {
	if err := ctx.Err(); err != nil {
		return 0, yatgerrors.NewNetwork("send cancelled", err)
	}

	if err := source.validate(); err != nil {
		return 0, err.Wrap("failed to send document")
	}

	doc := documentMedia(source)
	doc.Caption = caption

	msg, err := c.bot.Send(tele.ChatID(c.chatID), doc, &tele.SendOptions{
		ParseMode: parseMode(dialect),
	})
	if err != nil {
		return 0, classify(err)
	}

	c.log.Debugf("sent document %d", msg.ID)

	return MessageID(msg.ID), nil
}

func photoFile(source PhotoSource) tele.File {
	switch s := source.(type) {
	case PhotoByFileID:
		return tele.File{FileID: s.FileID}
	case PhotoByURL:
		return tele.FromURL(s.URL)
	case PhotoByUpload:
		return tele.FromReader(s.File.Reader)
	default:
		return tele.File{}
	}
}

func documentMedia(source DocumentSource) *tele.Document {
	switch s := source.(type) {
	case DocumentByFileID:
		return &tele.Document{File: tele.File{FileID: s.FileID}}
	case DocumentByURL:
		return &tele.Document{File: tele.FromURL(s.URL)}
	case DocumentByUpload:
		return &tele.Document{File: tele.FromReader(s.File.Reader), FileName: s.File.Name}
	default:
		return &tele.Document{}
	}
}

// classify maps a telebot error into the yatgerrors taxonomy.
func classify(err error) *yatgerrors.APIError {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return yatgerrors.NewRateLimit(http.StatusTooManyRequests, err.Error(), flood.RetryAfter)
	}

	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return yatgerrors.NewAuth(apiErr.Code, apiErr.Description)
		case http.StatusTooManyRequests:
			return yatgerrors.NewRateLimit(apiErr.Code, apiErr.Description, 0)
		default:
			return yatgerrors.NewHTTP(apiErr.Code, apiErr.Description)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return yatgerrors.NewNetwork("network failure", err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return yatgerrors.NewNetwork("request failure", err)
	}

	return yatgerrors.NewGeneric(err.Error(), err)
}
