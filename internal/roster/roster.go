// Package roster holds the ordered collection of characters a match is
// played with. Insertion order is canonical: both the game key codec and the
// shuffle engine operate over it unchanged.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/storage"
)

// ErrLocked is returned by mutating operations while a match is in progress.
// The mutation is a clean no-op; the roster is never partially applied.
var ErrLocked = errors.New("roster: locked while a match is in progress")

// Store is the roster store. It is driven from a single goroutine; only the
// fire-and-forget persistence writes run concurrently.
type Store struct {
	entries    []character.Entry
	generation uint64
	frozen     bool

	kv  storage.KV
	log *logrus.Logger

	mu        sync.Mutex // guards warnings, written from persist goroutines
	wg        sync.WaitGroup
	warnings  []string
	persistMu sync.Mutex    // serializes writes to the persistence service
	queued    atomic.Uint64 // sequence of the newest queued snapshot
}

// New creates an empty store persisting through kv. A nil kv disables
// persistence entirely.
func New(kv storage.KV, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	return &Store{kv: kv, log: log}
}

// Entries returns a copy of the roster in canonical order.
func (s *Store) Entries() []character.Entry {
	out := make([]character.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// EntryByID looks an entry up by its stable id.
func (s *Store) EntryByID(id string) (character.Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return character.Entry{}, false
}

// Generation identifies the current roster epoch. It advances whenever the
// roster is frozen or wholesale replaced, so asynchronous completions started
// against an older epoch can be detected and dropped.
func (s *Store) Generation() uint64 { return s.generation }

// Frozen reports whether edits are currently refused.
func (s *Store) Frozen() bool { return s.frozen }

// Freeze locks the roster against mutation and starts a new epoch. Called by
// the session on launch.
func (s *Store) Freeze() {
	s.frozen = true
	s.generation++
}

// Unfreeze re-enables edits. Called by the session on reset.
func (s *Store) Unfreeze() { s.frozen = false }

// Add appends a new entry with a fresh id and persists best-effort.
func (s *Store) Add(name, image string) (character.Entry, error) {
	if s.frozen {
		return character.Entry{}, ErrLocked
	}
	e := character.New(name, image)
	s.entries = append(s.entries, e)
	s.persist()
	return e, nil
}

// RemoveAll clears the roster. Removed ids are forgotten and never reused
// within the session.
func (s *Store) RemoveAll() error {
	if s.frozen {
		return ErrLocked
	}
	s.entries = nil
	s.generation++
	s.persist()
	return nil
}

// ReplaceAll atomically swaps the whole roster, used by key and pack import.
// Entries without ids are assigned fresh ones.
func (s *Store) ReplaceAll(entries []character.Entry) error {
	if s.frozen {
		return ErrLocked
	}
	next := make([]character.Entry, len(entries))
	copy(next, entries)
	for i := range next {
		if next[i].ID == "" {
			next[i] = character.New(next[i].Name, next[i].Image)
		}
	}
	s.entries = next
	s.generation++
	s.persist()
	return nil
}

// Rename changes the name of the slot at index, preserving its id.
func (s *Store) Rename(index int, name string) error {
	if s.frozen {
		return ErrLocked
	}
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("roster: slot %d out of range", index)
	}
	s.entries[index].Name = name
	s.persist()
	return nil
}

// ReplaceImage swaps the portrait of the slot at index, preserving its id.
func (s *Store) ReplaceImage(index int, image string) error {
	if s.frozen {
		return ErrLocked
	}
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("roster: slot %d out of range", index)
	}
	s.entries[index].Image = image
	s.persist()
	return nil
}

// ReplaceImageByID swaps the portrait of the entry with the given id. Used by
// asynchronous transcode completions, after the session's staleness checks.
func (s *Store) ReplaceImageByID(id, image string) error {
	if s.frozen {
		return ErrLocked
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Image = image
			s.persist()
			return nil
		}
	}
	return fmt.Errorf("roster: no entry with id %s", id)
}

// Load restores names and images from the persistence service, assigning
// fresh ids (ids are session-scoped). Absent keys leave the roster empty.
func (s *Store) Load() error {
	if s.kv == nil {
		return nil
	}
	rawNames, okNames, err := s.kv.Get(storage.KeyRosterNames)
	if err != nil {
		return fmt.Errorf("load roster names: %w", err)
	}
	rawImages, okImages, err := s.kv.Get(storage.KeyRosterImages)
	if err != nil {
		return fmt.Errorf("load roster images: %w", err)
	}
	if !okNames || !okImages {
		return nil
	}
	var names, images []string
	if err := json.Unmarshal([]byte(rawNames), &names); err != nil {
		return fmt.Errorf("load roster names: %w", err)
	}
	if err := json.Unmarshal([]byte(rawImages), &images); err != nil {
		return fmt.Errorf("load roster images: %w", err)
	}
	if len(names) != len(images) {
		return fmt.Errorf("load roster: %d names but %d images", len(names), len(images))
	}
	entries := make([]character.Entry, 0, len(names))
	for i := range names {
		entries = append(entries, character.New(names[i], images[i]))
	}
	s.entries = entries
	s.generation++
	return nil
}

// persist writes the roster to the persistence service, fire-and-forget.
// Failures are warnings: the in-memory roster stays authoritative and no
// error reaches the mutating caller.
//
// Each call snapshots the roster and tags it with a sequence number. Writers
// take persistMu in turn and skip any snapshot that is no longer the newest
// queued one, so an older snapshot can never land after a newer one and both
// keys always come from the same snapshot.
func (s *Store) persist() {
	if s.kv == nil {
		return
	}
	names := make([]string, len(s.entries))
	images := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
		images[i] = e.Image
	}
	rawNames, err := json.Marshal(names)
	if err != nil {
		s.warn(fmt.Sprintf("marshal roster names: %v", err))
		return
	}
	rawImages, err := json.Marshal(images)
	if err != nil {
		s.warn(fmt.Sprintf("marshal roster images: %v", err))
		return
	}

	seq := s.queued.Add(1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.persistMu.Lock()
		defer s.persistMu.Unlock()
		if seq != s.queued.Load() {
			// Superseded by a newer snapshot; let that one win.
			return
		}
		if err := s.kv.Set(storage.KeyRosterNames, string(rawNames)); err != nil {
			s.warnPersist(err)
		}
		if err := s.kv.Set(storage.KeyRosterImages, string(rawImages)); err != nil {
			s.warnPersist(err)
		}
	}()
}

func (s *Store) warnPersist(err error) {
	var quota *storage.QuotaExceededError
	if errors.As(err, &quota) {
		s.warn(fmt.Sprintf("roster not saved, storage is full (%s); keeping it in memory", quota.Key))
		return
	}
	s.warn(fmt.Sprintf("roster not saved: %v", err))
}

func (s *Store) warn(msg string) {
	s.log.Warn(msg)
	s.mu.Lock()
	s.warnings = append(s.warnings, msg)
	s.mu.Unlock()
}

// Flush waits for in-flight persistence writes. The CLI calls this before
// exiting; tests call it before asserting on warnings.
func (s *Store) Flush() { s.wg.Wait() }

// Warnings drains and returns persistence warnings accumulated so far.
func (s *Store) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.warnings
	s.warnings = nil
	return out
}
