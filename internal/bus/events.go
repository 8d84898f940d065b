package bus

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies an inbound event.
type Kind string

const (
	// KindStart is the /start command (session-start).
	KindStart Kind = "start"
	// KindMessage is any other inbound message.
	KindMessage Kind = "message"
	// KindButtonPress is an inline keyboard button press.
	KindButtonPress Kind = "buttonPress"
)

// PhotoVariant is one resolution of a photo attachment. Telegram offers
// several sizes per photo; the relay picks the largest when re-sending.
type PhotoVariant struct {
	FileID string
	Width  int
	Height int
}

// Event is a single inbound update from the chat platform, normalized
// for the router.
type Event struct {
	ID   string // correlation id for logs
	Kind Kind

	AuthorID    int64
	ChatID      int64
	DisplayName string
	Username    string

	Text    string
	Caption string

	Photos         []PhotoVariant
	VideoFileID    string
	DocumentFileID string

	// RepliedTo is the message id this event replies to, 0 if none.
	RepliedTo int

	// Button press fields.
	ButtonPayload string
	CallbackID    string

	Timestamp time.Time
}

// NewEvent creates an event of the given kind with a fresh correlation id.
func NewEvent(kind Kind) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: time.Now(),
	}
}

// BodyText returns the user-visible text of the event: text first, then
// caption. Empty when the event carries only media.
func (e *Event) BodyText() string {
	if e.Text != "" {
		return e.Text
	}
	return e.Caption
}

// HasMedia reports whether the event carries a photo, video or document.
func (e *Event) HasMedia() bool {
	return len(e.Photos) > 0 || e.VideoFileID != "" || e.DocumentFileID != ""
}

// LargestPhoto returns the highest-resolution photo variant, or a zero
// variant and false when the event has no photo.
func (e *Event) LargestPhoto() (PhotoVariant, bool) {
	if len(e.Photos) == 0 {
		return PhotoVariant{}, false
	}
	best := e.Photos[0]
	for _, v := range e.Photos[1:] {
		if v.Width*v.Height > best.Width*best.Height {
			best = v
		}
	}
	return best, true
}
