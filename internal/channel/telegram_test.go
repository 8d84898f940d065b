package channel

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/insighteer/relaybot/internal/bus"
)

func userMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 10,
		From:      &tgbotapi.User{ID: 42, FirstName: "Alice", UserName: "alice99"},
		Chat:      &tgbotapi.Chat{ID: 42},
		Text:      text,
	}
}

func TestToEventStartCommand(t *testing.T) {
	msg := userMessage("/start")
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}

	ev := ToEvent(tgbotapi.Update{Message: msg})
	if ev == nil {
		t.Fatal("expected event")
	}
	if ev.Kind != bus.KindStart {
		t.Errorf("kind = %q, want start", ev.Kind)
	}
	if ev.AuthorID != 42 || ev.Username != "alice99" || ev.DisplayName != "Alice" {
		t.Errorf("author fields wrong: %+v", ev)
	}
}

func TestToEventPlainMessage(t *testing.T) {
	ev := ToEvent(tgbotapi.Update{Message: userMessage("Hello")})
	if ev == nil {
		t.Fatal("expected event")
	}
	if ev.Kind != bus.KindMessage {
		t.Errorf("kind = %q, want message", ev.Kind)
	}
	if ev.Text != "Hello" {
		t.Errorf("text = %q", ev.Text)
	}
	if ev.ID == "" {
		t.Error("event id must be set")
	}
}

func TestToEventMediaAndReply(t *testing.T) {
	msg := userMessage("")
	msg.Caption = "look"
	msg.Photo = []tgbotapi.PhotoSize{
		{FileID: "p1", Width: 90, Height: 90},
		{FileID: "p2", Width: 800, Height: 600},
	}
	msg.ReplyToMessage = &tgbotapi.Message{MessageID: 77}

	ev := ToEvent(tgbotapi.Update{Message: msg})
	if len(ev.Photos) != 2 {
		t.Fatalf("photos = %d, want 2", len(ev.Photos))
	}
	best, _ := ev.LargestPhoto()
	if best.FileID != "p2" {
		t.Errorf("largest photo = %q, want p2", best.FileID)
	}
	if ev.RepliedTo != 77 {
		t.Errorf("repliedTo = %d, want 77", ev.RepliedTo)
	}
	if ev.BodyText() != "look" {
		t.Errorf("body = %q, want caption", ev.BodyText())
	}
}

func TestToEventCallbackQuery(t *testing.T) {
	update := tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb-1",
			From:    &tgbotapi.User{ID: 7, FirstName: "Op"},
			Data:    "reply_42",
			Message: &tgbotapi.Message{MessageID: 5, Chat: &tgbotapi.Chat{ID: -100}},
		},
	}
	ev := ToEvent(update)
	if ev == nil || ev.Kind != bus.KindButtonPress {
		t.Fatalf("expected buttonPress event, got %+v", ev)
	}
	if ev.ButtonPayload != "reply_42" || ev.CallbackID != "cb-1" {
		t.Errorf("callback fields wrong: %+v", ev)
	}
	if ev.ChatID != -100 {
		t.Errorf("chatID = %d, want -100", ev.ChatID)
	}
}

func TestToEventIgnoresBotsAndEmpty(t *testing.T) {
	if ev := ToEvent(tgbotapi.Update{}); ev != nil {
		t.Error("empty update should yield nil")
	}

	msg := userMessage("hi")
	msg.From.IsBot = true
	if ev := ToEvent(tgbotapi.Update{Message: msg}); ev != nil {
		t.Error("bot-authored message should yield nil")
	}
}
