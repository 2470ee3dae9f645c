package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreaker/internal/notes"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

func newTestNotesModel(t *testing.T) (NotesModel, *notes.Book) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	book, err := notes.Open(store, notes.DefaultKey)
	require.NoError(t, err)

	m := NewNotesModel(book, 0, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(NotesModel), book
}

func typeText(t *testing.T, m NotesModel, text string) NotesModel {
	t.Helper()
	for _, r := range text {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(NotesModel)
	}
	return m
}

func pressEnter(m NotesModel) NotesModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(NotesModel)
}

func TestNotesModelAddsNewestFirst(t *testing.T) {
	m, book := newTestNotesModel(t)

	m = pressEnter(typeText(t, m, "first note"))
	m = pressEnter(typeText(t, m, "second note"))

	require.Equal(t, 2, book.Len())
	assert.Equal(t, "", m.input.Value(), "input clears after saving")

	view := m.View()
	first := strings.Index(view, "first note")
	second := strings.Index(view, "second note")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, second, first, "newest note is listed first")
}

func TestNotesModelWhitespaceIsNoop(t *testing.T) {
	m, book := newTestNotesModel(t)
	m = pressEnter(typeText(t, m, "keep"))

	m = typeText(t, m, "   ")
	before := m.View()

	m = pressEnter(m)

	assert.Equal(t, before, m.View())
	assert.Equal(t, 1, book.Len())
}

func TestNotesModelEmptyList(t *testing.T) {
	m, _ := newTestNotesModel(t)
	assert.Contains(t, m.View(), "No notes yet.")
}

func TestNotesModelLimit(t *testing.T) {
	m, book := newTestNotesModel(t)
	for _, s := range []string{"one", "two", "three"} {
		_, _, err := book.Add(s)
		require.NoError(t, err)
	}
	m.limit = 2

	view := m.View()
	assert.Contains(t, view, "three")
	assert.Contains(t, view, "two")
	assert.NotContains(t, view, "one")
}

func TestNotesModelBack(t *testing.T) {
	m, _ := newTestNotesModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(NotesModel)
	assert.True(t, m.IsGoingBack())
	assert.Empty(t, m.View())
}
