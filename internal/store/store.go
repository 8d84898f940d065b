// Package store holds the in-memory correlation state between messages
// posted into the admin chat and the users they concern. Nothing here is
// persisted: the maps live and die with the process.
package store

import "sync"

// Table maps an outbound message id (assigned by Telegram when the bot
// posts into the admin chat) to the id of the user the message concerns.
// Entries are write-once and never evicted.
type Table struct {
	mu      sync.Mutex
	entries map[int]int64
}

// NewTable creates an empty correlation table.
func NewTable() *Table {
	return &Table{entries: make(map[int]int64)}
}

// Put records a message id → user id binding. Telegram message ids are
// unique per chat, so an id is only ever inserted once.
func (t *Table) Put(msgID int, userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[msgID] = userID
}

// Get looks up the user bound to a message id. A miss means "no route
// known" and is not an error.
func (t *Table) Get(msgID int) (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	userID, ok := t.entries[msgID]
	return userID, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Store owns the two correlation tables. They are keyed independently:
// a message id recorded in one table is unrelated to ids in the other,
// so the tables must never be merged.
type Store struct {
	// Forwarded tracks messages relayed into the admin chat (user
	// messages and /start notices).
	Forwarded *Table

	// ReplyPrompt tracks the "reply to this" prompt messages created
	// when the admin presses a reply button. Admin replies are routed
	// through this table only.
	ReplyPrompt *Table
}

// New creates a Store with two empty tables.
func New() *Store {
	return &Store{
		Forwarded:   NewTable(),
		ReplyPrompt: NewTable(),
	}
}

// Size returns the combined entry count across both tables.
func (s *Store) Size() int {
	return s.Forwarded.Len() + s.ReplyPrompt.Len()
}
