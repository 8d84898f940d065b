package relay

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDailyMotivationSinglePhrase(t *testing.T) {
	sender := newFakeSender()
	job := DailyMotivation(sender, adminChat, []string{"only phrase"})

	for i := 0; i < 5; i++ {
		if err := job(context.Background()); err != nil {
			t.Fatal(err)
		}
	}

	msgs := sender.toChat(adminChat)
	if len(msgs) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(msgs))
	}
	for _, m := range msgs {
		if !strings.Contains(m.text, "only phrase") {
			t.Errorf("post missing the single phrase: %q", m.text)
		}
		if !strings.Contains(m.text, motivationHeader) {
			t.Errorf("post missing header: %q", m.text)
		}
		if m.opts == nil || !m.opts.ParseHTML {
			t.Error("post must use HTML mode")
		}
	}
}

func TestDailyMotivationPicksFromPool(t *testing.T) {
	sender := newFakeSender()
	job := DailyMotivation(sender, adminChat, MotivationalPhrases)

	if err := job(context.Background()); err != nil {
		t.Fatal(err)
	}

	posted := sender.toChat(adminChat)[0].text
	found := false
	for _, p := range MotivationalPhrases {
		if strings.Contains(posted, p) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("posted text matches no configured phrase: %q", posted)
	}
}

func TestDailyMotivationSendFailure(t *testing.T) {
	sender := newFakeSender()
	sender.failChats[adminChat] = errors.New("down")
	job := DailyMotivation(sender, adminChat, []string{"x"})

	if err := job(context.Background()); err == nil {
		t.Error("expected error when the post fails")
	}

	// A later firing succeeds once the transport recovers.
	delete(sender.failChats, adminChat)
	if err := job(context.Background()); err != nil {
		t.Errorf("recovered firing failed: %v", err)
	}
}

func TestDailyMotivationEmptyPool(t *testing.T) {
	sender := newFakeSender()
	job := DailyMotivation(sender, adminChat, nil)
	if err := job(context.Background()); err == nil {
		t.Error("expected error for empty phrase list")
	}
}
