package channel

import "context"

// ReplyButton describes an inline button attached to an outbound message.
// The payload comes back verbatim in the button-press event.
type ReplyButton struct {
	Label   string
	Payload string
}

// SendOptions carries optional outbound parameters shared by all send
// primitives.
type SendOptions struct {
	// ParseHTML enables HTML parse mode for text and captions.
	ParseHTML bool
	// ReplyButton, when set, attaches a one-button inline keyboard.
	ReplyButton *ReplyButton
}

// Sender is the outbound half of the chat platform. Each send returns the
// platform-assigned message id, which the relay records for reply routing.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string, opts *SendOptions) (int, error)
	SendPhoto(ctx context.Context, chatID int64, fileID, caption string, opts *SendOptions) (int, error)
	SendVideo(ctx context.Context, chatID int64, fileID, caption string, opts *SendOptions) (int, error)
	SendDocument(ctx context.Context, chatID int64, fileID, caption string, opts *SendOptions) (int, error)

	// AckCallback answers a button press with a transient notification.
	// It is not a chat message and leaves no trace in the chat history.
	AckCallback(ctx context.Context, callbackID, text string, alert bool) error
}

// Channel is the lifecycle interface for a chat platform integration.
type Channel interface {
	Name() string
	Start(ctx context.Context) error
	Stop() error
}
