package channel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/insighteer/relaybot/internal/bus"
)

// Telegram connects to the Bot API via long polling, converts updates
// into bus events, and implements the Sender primitives.
type Telegram struct {
	api         *tgbotapi.BotAPI
	queue       *bus.Queue
	pollTimeout int

	cancel context.CancelFunc
}

// NewTelegram authenticates against the Bot API. pollTimeout is the long
// poll timeout in seconds.
func NewTelegram(token string, queue *bus.Queue, pollTimeout int) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	if pollTimeout <= 0 {
		pollTimeout = 30
	}
	return &Telegram{
		api:         api,
		queue:       queue,
		pollTimeout: pollTimeout,
	}, nil
}

func (t *Telegram) Name() string { return "telegram" }

// Username returns the bot account's username.
func (t *Telegram) Username() string { return t.api.Self.UserName }

// Start runs the long poll loop, publishing events until ctx is cancelled.
func (t *Telegram) Start(ctx context.Context) error {
	ctx, t.cancel = context.WithCancel(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = t.pollTimeout
	updates := t.api.GetUpdatesChan(u)

	slog.Info("Telegram channel started", "bot", t.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if ev := ToEvent(update); ev != nil {
				if !t.queue.Publish(ctx, ev) {
					return ctx.Err()
				}
			}
		}
	}
}

// Stop halts the update loop.
func (t *Telegram) Stop() error {
	if t.cancel != nil {
		t.cancel()
	}
	t.api.StopReceivingUpdates()
	return nil
}

// ToEvent normalizes a raw update into a bus event. Returns nil for
// updates the relay does not handle (bot authors, edits, empty updates).
func ToEvent(update tgbotapi.Update) *bus.Event {
	if cb := update.CallbackQuery; cb != nil {
		ev := bus.NewEvent(bus.KindButtonPress)
		ev.AuthorID = cb.From.ID
		if cb.Message != nil {
			ev.ChatID = cb.Message.Chat.ID
		}
		ev.DisplayName = displayName(cb.From)
		ev.Username = cb.From.UserName
		ev.ButtonPayload = cb.Data
		ev.CallbackID = cb.ID
		return ev
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return nil
	}

	kind := bus.KindMessage
	if msg.IsCommand() && msg.Command() == "start" {
		kind = bus.KindStart
	}

	ev := bus.NewEvent(kind)
	ev.AuthorID = msg.From.ID
	ev.ChatID = msg.Chat.ID
	ev.DisplayName = displayName(msg.From)
	ev.Username = msg.From.UserName
	ev.Text = msg.Text
	ev.Caption = msg.Caption

	for _, p := range msg.Photo {
		ev.Photos = append(ev.Photos, bus.PhotoVariant{
			FileID: p.FileID,
			Width:  p.Width,
			Height: p.Height,
		})
	}
	if msg.Video != nil {
		ev.VideoFileID = msg.Video.FileID
	}
	if msg.Document != nil {
		ev.DocumentFileID = msg.Document.FileID
	}
	if msg.ReplyToMessage != nil {
		ev.RepliedTo = msg.ReplyToMessage.MessageID
	}
	return ev
}

func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	return name
}

// --- Sender ---

func (t *Telegram) SendText(_ context.Context, chatID int64, text string, opts *SendOptions) (int, error) {
	m := tgbotapi.NewMessage(chatID, text)
	applyMessageOptions(&m, opts)
	sent, err := t.api.Send(m)
	if err != nil {
		return 0, fmt.Errorf("send text: %w", err)
	}
	return sent.MessageID, nil
}

func (t *Telegram) SendPhoto(_ context.Context, chatID int64, fileID, caption string, opts *SendOptions) (int, error) {
	m := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	m.Caption = caption
	applyMediaOptions(&m.BaseChat, &m.ParseMode, opts)
	sent, err := t.api.Send(m)
	if err != nil {
		return 0, fmt.Errorf("send photo: %w", err)
	}
	return sent.MessageID, nil
}

func (t *Telegram) SendVideo(_ context.Context, chatID int64, fileID, caption string, opts *SendOptions) (int, error) {
	m := tgbotapi.NewVideo(chatID, tgbotapi.FileID(fileID))
	m.Caption = caption
	applyMediaOptions(&m.BaseChat, &m.ParseMode, opts)
	sent, err := t.api.Send(m)
	if err != nil {
		return 0, fmt.Errorf("send video: %w", err)
	}
	return sent.MessageID, nil
}

func (t *Telegram) SendDocument(_ context.Context, chatID int64, fileID, caption string, opts *SendOptions) (int, error) {
	m := tgbotapi.NewDocument(chatID, tgbotapi.FileID(fileID))
	m.Caption = caption
	applyMediaOptions(&m.BaseChat, &m.ParseMode, opts)
	sent, err := t.api.Send(m)
	if err != nil {
		return 0, fmt.Errorf("send document: %w", err)
	}
	return sent.MessageID, nil
}

func (t *Telegram) AckCallback(_ context.Context, callbackID, text string, alert bool) error {
	cb := tgbotapi.NewCallback(callbackID, text)
	if alert {
		cb = tgbotapi.NewCallbackWithAlert(callbackID, text)
	}
	if _, err := t.api.Request(cb); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

func applyMessageOptions(m *tgbotapi.MessageConfig, opts *SendOptions) {
	if opts == nil {
		return
	}
	if opts.ParseHTML {
		m.ParseMode = tgbotapi.ModeHTML
	}
	if opts.ReplyButton != nil {
		m.ReplyMarkup = buttonMarkup(opts.ReplyButton)
	}
}

func applyMediaOptions(base *tgbotapi.BaseChat, parseMode *string, opts *SendOptions) {
	if opts == nil {
		return
	}
	if opts.ParseHTML {
		*parseMode = tgbotapi.ModeHTML
	}
	if opts.ReplyButton != nil {
		base.ReplyMarkup = buttonMarkup(opts.ReplyButton)
	}
}

func buttonMarkup(b *ReplyButton) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Payload),
		),
	)
}
