// Package relay implements the core engine: classifying inbound events
// and routing messages between users and the admin chat.
package relay

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/insighteer/relaybot/internal/bus"
	"github.com/insighteer/relaybot/internal/channel"
	"github.com/insighteer/relaybot/internal/store"
	"github.com/insighteer/relaybot/internal/telemetry"
)

// replyPayloadPrefix tags button payloads carrying a target user id.
const replyPayloadPrefix = "reply_"

// Router classifies inbound events and invokes exactly one handler per
// event. It is driven by a single goroutine, so one event is fully
// processed before the next is dequeued.
type Router struct {
	store       *store.Store
	sender      channel.Sender
	adminChatID int64
}

// NewRouter creates a router. adminChatID is the chat all user traffic
// is aggregated into.
func NewRouter(st *store.Store, sender channel.Sender, adminChatID int64) *Router {
	return &Router{
		store:       st,
		sender:      sender,
		adminChatID: adminChatID,
	}
}

// Run drains the queue until ctx is cancelled.
func (r *Router) Run(ctx context.Context, q *bus.Queue) {
	slog.Info("Relay router started", "admin_chat", r.adminChatID)
	for {
		ev := q.Next(ctx)
		if ev == nil {
			slog.Info("Relay router stopping")
			return
		}
		r.Dispatch(ctx, ev)
	}
}

// Dispatch routes one event. Priority chain, first match wins:
// start command, reply-button press, admin reply-in-thread, user
// message. Admin messages that are not replies, and button presses with
// foreign payloads, fall through unhandled.
func (r *Router) Dispatch(ctx context.Context, ev *bus.Event) {
	switch {
	case ev.Kind == bus.KindStart:
		r.handleStart(ctx, ev)
	case ev.Kind == bus.KindButtonPress:
		if !strings.HasPrefix(ev.ButtonPayload, replyPayloadPrefix) {
			slog.Debug("unrecognized button payload", "event", ev.ID, "payload", ev.ButtonPayload)
			telemetry.CountUnrouted()
			return
		}
		r.handleReplyButton(ctx, ev)
	case ev.Kind == bus.KindMessage && ev.ChatID == r.adminChatID:
		if ev.RepliedTo == 0 {
			// Admin chatter that is not a reply never triggers a relay.
			telemetry.CountUnrouted()
			return
		}
		r.handleAdminReply(ctx, ev)
	case ev.Kind == bus.KindMessage:
		r.handleUserMessage(ctx, ev)
	default:
		telemetry.CountUnrouted()
	}
}

// parseReplyPayload extracts the user id from a reply-button payload of
// the form "reply_<decimal id>".
func parseReplyPayload(payload string) (int64, error) {
	rest, ok := strings.CutPrefix(payload, replyPayloadPrefix)
	if !ok {
		return 0, fmt.Errorf("payload %q: missing prefix", payload)
	}
	userID, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("payload %q: %w", payload, err)
	}
	return userID, nil
}

func replyButton(userID int64) *channel.ReplyButton {
	return &channel.ReplyButton{
		Label:   replyButtonLabel,
		Payload: fmt.Sprintf("%s%d", replyPayloadPrefix, userID),
	}
}

// sendContent delivers the event's content with the platform priority:
// photo (largest variant) over video over document over plain text.
// text serves as caption for media sends.
func (r *Router) sendContent(ctx context.Context, chatID int64, ev *bus.Event, text string, opts *channel.SendOptions) (int, error) {
	if photo, ok := ev.LargestPhoto(); ok {
		return r.sender.SendPhoto(ctx, chatID, photo.FileID, text, opts)
	}
	if ev.VideoFileID != "" {
		return r.sender.SendVideo(ctx, chatID, ev.VideoFileID, text, opts)
	}
	if ev.DocumentFileID != "" {
		return r.sender.SendDocument(ctx, chatID, ev.DocumentFileID, text, opts)
	}
	return r.sender.SendText(ctx, chatID, text, opts)
}
