// Package board is the setup-mode editor for the roster: per-slot renames
// and portrait swaps, batch naming from a comma-separated list, and the
// fixed-size board variant.
package board

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/roster"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/storage"
)

// Editor edits roster slots while the session is in setup. Every operation is
// refused with roster.ErrLocked once a match has started.
type Editor struct {
	store  *roster.Store
	kv     storage.KV
	log    *logrus.Logger
	cursor int
}

// NewEditor creates an editor over the store, restoring the batch-naming
// cursor from the persistence service.
func NewEditor(store *roster.Store, kv storage.KV, log *logrus.Logger) *Editor {
	if log == nil {
		log = logrus.New()
	}
	e := &Editor{store: store, kv: kv, log: log}
	if kv != nil {
		if raw, ok, err := kv.Get(storage.KeyNameCursor); err == nil && ok {
			if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
				e.cursor = n
			}
		}
	}
	return e
}

// Cursor returns the index the next batch name will be assigned to.
func (e *Editor) Cursor() int { return e.cursor }

// Rename changes one slot's name in place, preserving its id.
func (e *Editor) Rename(index int, name string) error {
	return e.store.Rename(index, name)
}

// ReplaceImage swaps one slot's portrait in place, preserving its id.
func (e *Editor) ReplaceImage(index int, image string) error {
	return e.store.ReplaceImage(index, image)
}

// ApplyNames assigns comma-separated names in order starting at the persisted
// cursor, so repeated batches append rather than overwrite. It returns how
// many names were assigned; names beyond the last slot are dropped.
func (e *Editor) ApplyNames(csv string) (int, error) {
	if e.store.Frozen() {
		return 0, roster.ErrLocked
	}
	assigned := 0
	for _, name := range strings.Split(csv, ",") {
		if e.cursor >= e.store.Len() {
			break
		}
		if err := e.store.Rename(e.cursor, strings.TrimSpace(name)); err != nil {
			return assigned, err
		}
		e.cursor++
		assigned++
	}
	e.persistCursor()
	return assigned, nil
}

// ResetNames returns every slot to its default name and rewinds the batch
// cursor to the start. Portraits are untouched.
func (e *Editor) ResetNames() error {
	if e.store.Frozen() {
		return roster.ErrLocked
	}
	for i := 0; i < e.store.Len(); i++ {
		if err := e.store.Rename(i, character.DefaultName(i+1)); err != nil {
			return err
		}
	}
	e.cursor = 0
	e.persistCursor()
	return nil
}

// ResetImages returns every slot to the placeholder portrait. Names and the
// naming cursor are untouched.
func (e *Editor) ResetImages() error {
	if e.store.Frozen() {
		return roster.ErrLocked
	}
	for i := 0; i < e.store.Len(); i++ {
		if err := e.store.ReplaceImage(i, character.PlaceholderImage); err != nil {
			return err
		}
	}
	return nil
}

// ImportPack atomically replaces the roster with an imported collection and
// pins the naming cursor to the end: imported packs arrive fully named, so
// subsequent batch naming appends nothing until an explicit name reset.
func (e *Editor) ImportPack(entries []character.Entry) error {
	if err := e.store.ReplaceAll(entries); err != nil {
		return err
	}
	e.cursor = e.store.Len()
	e.persistCursor()
	return nil
}

// InitFixedBoard replaces the roster with the fixed-size placeholder grid.
func (e *Editor) InitFixedBoard(size int) error {
	entries := make([]character.Entry, 0, size)
	for i := 1; i <= size; i++ {
		entries = append(entries, character.Placeholder(i))
	}
	if err := e.store.ReplaceAll(entries); err != nil {
		return err
	}
	e.cursor = 0
	e.persistCursor()
	return nil
}

// persistCursor saves the cursor best-effort; a failed write only means the
// next run starts with a stale cursor.
func (e *Editor) persistCursor() {
	if e.kv == nil {
		return
	}
	if err := e.kv.Set(storage.KeyNameCursor, strconv.Itoa(e.cursor)); err != nil {
		e.log.Warnf("naming cursor not saved: %v", err)
	}
}
