// Package notes keeps a newest-first list of short text notes persisted as
// a single JSON document under a fixed key.
package notes

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultKey is the storage key used when none is configured.
const DefaultKey = "gameNotes"

// isoMillis matches the browser's Date.toISOString output.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// displayLayout renders timestamps as e.g. "Jan 2, 2006, 03:04 PM".
const displayLayout = "Jan 2, 2006, 03:04 PM"

// Note is a single saved note.
type Note struct {
	Text      string
	Timestamp time.Time
}

type noteJSON struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// MarshalJSON encodes the timestamp as UTC ISO 8601 with milliseconds.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteJSON{
		Text:      n.Text,
		Timestamp: n.Timestamp.UTC().Format(isoMillis),
	})
}

// UnmarshalJSON accepts any RFC 3339 timestamp.
func (n *Note) UnmarshalJSON(data []byte) error {
	var raw noteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ts, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		return fmt.Errorf("bad timestamp %q: %w", raw.Timestamp, err)
	}
	n.Text = raw.Text
	n.Timestamp = ts
	return nil
}

// KV is the document store a Book persists to. UpdateValue must run fn and
// store its result atomically with respect to other writers of key.
type KV interface {
	GetValue(key string) ([]byte, bool, error)
	UpdateValue(key string, fn func(old []byte, ok bool) ([]byte, error)) error
	DeleteValue(key string) error
}

// Book is the in-memory notes list backed by a KV store. Several books may
// share one key; each Add starts from the stored list, not the cached one.
// A Book is not safe for concurrent use.
type Book struct {
	store  KV
	key    string
	notes  []Note
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Book.
type Option func(*Book)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

// WithLogger sets the logger for persistence events.
func WithLogger(l *log.Logger) Option {
	return func(b *Book) { b.logger = l }
}

// Open loads the notes stored under key. A missing key yields an empty
// book; an undecodable document is an error.
func Open(store KV, key string, opts ...Option) (*Book, error) {
	if key == "" {
		key = DefaultKey
	}
	b := &Book{
		store:  store,
		key:    key,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}

	raw, ok, err := store.GetValue(key)
	if err != nil {
		return nil, fmt.Errorf("notes: load %q: %w", key, err)
	}
	if b.notes, err = decode(key, raw, ok); err != nil {
		return nil, err
	}

	b.logger.Debug("notes loaded", "key", key, "count", len(b.notes))
	return b, nil
}

// Add trims text and, if anything is left, prepends it with the current
// time to the stored list and persists the whole list. The book's list is
// refreshed to what was written. Blank input is ignored: added is false and
// nothing is written.
func (b *Book) Add(text string) (note Note, added bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, false, nil
	}

	note = Note{Text: text, Timestamp: b.now()}
	var next []Note
	err = b.store.UpdateValue(b.key, func(old []byte, ok bool) ([]byte, error) {
		stored, err := decode(b.key, old, ok)
		if err != nil {
			return nil, err
		}
		next = make([]Note, 0, len(stored)+1)
		next = append(next, note)
		next = append(next, stored...)

		raw, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("notes: encode: %w", err)
		}
		return raw, nil
	})
	if err != nil {
		return Note{}, false, fmt.Errorf("notes: save %q: %w", b.key, err)
	}
	b.notes = next

	b.logger.Debug("note added", "key", b.key, "count", len(b.notes))
	return note, true, nil
}

// List returns the notes newest first.
func (b *Book) List() []Note {
	out := make([]Note, len(b.notes))
	copy(out, b.notes)
	return out
}

// Len returns the number of notes.
func (b *Book) Len() int {
	return len(b.notes)
}

// Clear deletes every note.
func (b *Book) Clear() error {
	if err := b.store.DeleteValue(b.key); err != nil {
		return fmt.Errorf("notes: clear %q: %w", b.key, err)
	}
	b.notes = nil
	b.logger.Debug("notes cleared", "key", b.key)
	return nil
}

func decode(key string, raw []byte, ok bool) ([]Note, error) {
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var list []Note
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("notes: decode %q: %w", key, err)
	}
	return list, nil
}

// FormatTimestamp renders t in the local zone for display.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(displayLayout)
}
