package bus

import (
	"context"
	"testing"
	"time"
)

func TestQueueDeliversInOrder(t *testing.T) {
	q := NewQueue()

	ctx := context.Background()
	first := NewEvent(KindStart)
	second := NewEvent(KindMessage)
	if !q.Publish(ctx, first) || !q.Publish(ctx, second) {
		t.Fatal("publish on a live context must succeed")
	}

	if got := q.Next(ctx); got != first {
		t.Error("expected first event")
	}
	if got := q.Next(ctx); got != second {
		t.Error("expected second event")
	}
	if q.Len() != 0 {
		t.Errorf("len = %d, want 0", q.Len())
	}
}

func TestQueueNextStopsOnCancel(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan *Event, 1)
	go func() { done <- q.Next(ctx) }()
	cancel()

	select {
	case ev := <-done:
		if ev != nil {
			t.Errorf("expected nil on cancel, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("Next did not return after cancel")
	}
}

func TestQueuePublishStopsOnCancel(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())

	// Fill the buffer so the next Publish has to block.
	for q.Len() < cap(q.inbound) {
		q.Publish(ctx, NewEvent(KindMessage))
	}

	done := make(chan bool, 1)
	go func() { done <- q.Publish(ctx, NewEvent(KindMessage)) }()
	cancel()

	select {
	case ok := <-done:
		if ok {
			t.Error("publish after cancel should report false")
		}
	case <-time.After(time.Second):
		t.Fatal("Publish did not return after cancel")
	}
}

func TestLargestPhoto(t *testing.T) {
	ev := NewEvent(KindMessage)
	if _, ok := ev.LargestPhoto(); ok {
		t.Fatal("no photos should report false")
	}

	ev.Photos = []PhotoVariant{
		{FileID: "small", Width: 90, Height: 90},
		{FileID: "big", Width: 1280, Height: 720},
		{FileID: "mid", Width: 320, Height: 320},
	}
	best, ok := ev.LargestPhoto()
	if !ok || best.FileID != "big" {
		t.Errorf("got %q, want big", best.FileID)
	}
}

func TestBodyTextPrefersText(t *testing.T) {
	ev := NewEvent(KindMessage)
	ev.Text = "text"
	ev.Caption = "caption"
	if ev.BodyText() != "text" {
		t.Error("text should win over caption")
	}

	ev.Text = ""
	if ev.BodyText() != "caption" {
		t.Error("caption should be used when text is empty")
	}
}
