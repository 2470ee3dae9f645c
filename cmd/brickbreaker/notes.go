package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Add or list game notes",
	Long: `Keep short notes about your games. Notes are stored in the database
under a single key and listed newest first.

Examples:
  brickbreaker notes add "the left column falls fastest"
  brickbreaker notes list
  brickbreaker notes clear`,
}

var notesAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Save a note",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotesAdd,
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show saved notes, newest first",
	Args:  cobra.NoArgs,
	RunE:  runNotesList,
}

var notesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every note",
	Args:  cobra.NoArgs,
	RunE:  runNotesClear,
}

func init() {
	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesClearCmd)
}

// openBook opens the note book and its store. The returned func closes
// both and must be called even when a later step fails.
func openBook() (*notes.Book, func(), error) {
	logger, closeLog, err := newLogger("brickbreaker", false)
	if err != nil {
		return nil, nil, err
	}
	cfg := loadNotesConfig(logger)

	store, err := openStore()
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	done := func() {
		store.Close()
		closeLog()
	}

	book, err := notes.Open(store, cfg.StorageKey, notes.WithLogger(logger))
	if err != nil {
		done()
		return nil, nil, err
	}
	return book, done, nil
}

func runNotesAdd(_ *cobra.Command, args []string) error {
	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	note, added, err := book.Add(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if !added {
		fmt.Println("Nothing to save.")
		return nil
	}
	fmt.Printf("Saved note (%s).\n", notes.FormatTimestamp(note.Timestamp))
	return nil
}

func runNotesList(_ *cobra.Command, _ []string) error {
	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	list := book.List()
	if len(list) == 0 {
		fmt.Println("No notes yet.")
		fmt.Println()
		fmt.Println("Add one with 'brickbreaker notes add <text>'.")
		return nil
	}

	for _, n := range list {
		fmt.Println(notes.FormatTimestamp(n.Timestamp))
		for _, line := range strings.Split(n.Text, "\n") {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}
	return nil
}

func runNotesClear(_ *cobra.Command, _ []string) error {
	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	n := book.Len()
	if err := book.Clear(); err != nil {
		return err
	}
	fmt.Printf("Deleted %d notes.\n", n)
	return nil
}
