package relay

import (
	"context"
	"log/slog"

	"github.com/insighteer/relaybot/internal/bus"
	"github.com/insighteer/relaybot/internal/channel"
	"github.com/insighteer/relaybot/internal/telemetry"
)

// handleStart welcomes a new user and notifies the admin chat.
// The welcome is sent first and unconditionally; a failed admin
// notification is logged and swallowed, the user never sees it.
func (r *Router) handleStart(ctx context.Context, ev *bus.Event) {
	if _, err := r.sender.SendText(ctx, ev.ChatID, welcomeText, nil); err != nil {
		slog.Error("welcome send failed", "event", ev.ID, "user", ev.AuthorID, "err", err)
		telemetry.CountSendFailure()
	}

	opts := &channel.SendOptions{
		ParseHTML:   true,
		ReplyButton: replyButton(ev.AuthorID),
	}
	msgID, err := r.sender.SendText(ctx, r.adminChatID, startNotice(ev), opts)
	if err != nil {
		slog.Error("start notice failed", "event", ev.ID, "user", ev.AuthorID, "err", err)
		telemetry.CountSendFailure()
		return
	}

	r.store.Forwarded.Put(msgID, ev.AuthorID)
	telemetry.CountForward()
	telemetry.SetCorrelationEntries(r.store.Size())
	slog.Info("user registered", "event", ev.ID, "user", ev.AuthorID)
}

// handleReplyButton posts a reply-prompt message into the admin chat and
// binds it to the target user, so the admin's in-thread reply can be
// routed. The press is acknowledged with a transient notification.
func (r *Router) handleReplyButton(ctx context.Context, ev *bus.Event) {
	userID, err := parseReplyPayload(ev.ButtonPayload)
	if err != nil {
		slog.Error("malformed reply payload", "event", ev.ID, "err", err)
		r.ackFailure(ctx, ev)
		return
	}

	promptID, err := r.sender.SendText(ctx, r.adminChatID, replyPromptText, &channel.SendOptions{ParseHTML: true})
	if err != nil {
		slog.Error("reply prompt failed", "event", ev.ID, "user", userID, "err", err)
		telemetry.CountSendFailure()
		r.ackFailure(ctx, ev)
		return
	}

	r.store.ReplyPrompt.Put(promptID, userID)
	telemetry.SetCorrelationEntries(r.store.Size())

	if err := r.sender.AckCallback(ctx, ev.CallbackID, replyPromptAck, false); err != nil {
		slog.Warn("callback ack failed", "event", ev.ID, "err", err)
	}
}

func (r *Router) ackFailure(ctx context.Context, ev *bus.Event) {
	if err := r.sender.AckCallback(ctx, ev.CallbackID, replyErrorAck, true); err != nil {
		slog.Warn("failure ack failed", "event", ev.ID, "err", err)
	}
}

// handleAdminReply routes an admin reply-in-thread back to the user
// bound to the replied-to prompt message. Untracked threads are ignored.
func (r *Router) handleAdminReply(ctx context.Context, ev *bus.Event) {
	userID, ok := r.store.ReplyPrompt.Get(ev.RepliedTo)
	if !ok {
		// Reply to something we never tracked, e.g. an old thread.
		slog.Debug("untracked admin reply", "event", ev.ID, "replied_to", ev.RepliedTo)
		return
	}

	body := ev.BodyText()
	if body == "" {
		body = mediaPlaceholder
	}

	if _, err := r.sendContent(ctx, userID, ev, body, nil); err != nil {
		slog.Error("reply delivery failed", "event", ev.ID, "user", userID, "err", err)
		telemetry.CountSendFailure()
		if _, err := r.sender.SendText(ctx, r.adminChatID, replyFailedText, nil); err != nil {
			slog.Warn("failure notice failed", "event", ev.ID, "err", err)
		}
		return
	}

	telemetry.CountReply()
	slog.Info("reply delivered", "event", ev.ID, "user", userID)
	if _, err := r.sender.SendText(ctx, r.adminChatID, replySentText, nil); err != nil {
		slog.Warn("confirmation failed", "event", ev.ID, "err", err)
	}
}

// handleUserMessage forwards a user message into the admin chat and
// acknowledges receipt to the user. The two sends are independent: a
// failed forward produces a retry-later notice instead of the receipt,
// and a failed receipt never undoes the forward.
func (r *Router) handleUserMessage(ctx context.Context, ev *bus.Event) {
	body := ev.BodyText()
	if body == "" {
		body = mediaPlaceholder
	}

	opts := &channel.SendOptions{
		ParseHTML:   true,
		ReplyButton: replyButton(ev.AuthorID),
	}
	msgID, err := r.sendContent(ctx, r.adminChatID, ev, forwardNotice(ev, body), opts)
	if err != nil {
		slog.Error("forward failed", "event", ev.ID, "user", ev.AuthorID, "err", err)
		telemetry.CountSendFailure()
		if _, err := r.sender.SendText(ctx, ev.ChatID, userErrorText, nil); err != nil {
			slog.Warn("user error notice failed", "event", ev.ID, "err", err)
		}
		return
	}

	r.store.Forwarded.Put(msgID, ev.AuthorID)
	telemetry.CountForward()
	telemetry.SetCorrelationEntries(r.store.Size())

	if _, err := r.sender.SendText(ctx, ev.ChatID, receiptText, nil); err != nil {
		slog.Warn("receipt failed", "event", ev.ID, "user", ev.AuthorID, "err", err)
		telemetry.CountSendFailure()
	}
}
