package roster

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/storage"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestAddAndPersist(t *testing.T) {
	kv := storage.NewMemStore()
	s := New(kv, quietLogger())

	a, err := s.Add("Ada", character.PlaceholderImage)
	assert.NoError(t, err)
	b, err := s.Add("Blaise", character.PlaceholderImage)
	assert.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.NotEqual(t, a.ID, b.ID)

	s.Flush()
	raw, ok, err := kv.Get(storage.KeyRosterNames)
	assert.NoError(t, err)
	assert.True(t, ok)

	var names []string
	assert.NoError(t, json.Unmarshal([]byte(raw), &names))
	assert.Equal(t, []string{"Ada", "Blaise"}, names)
}

func TestPersistKeepsLatestSnapshot(t *testing.T) {
	t.Run("rapid mutations persist the final state", func(t *testing.T) {
		kv := storage.NewMemStore()
		s := New(kv, quietLogger())

		want := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			name := string(rune('A' + i))
			_, err := s.Add(name, character.PlaceholderImage)
			assert.NoError(t, err)
			want = append(want, name)
		}
		assert.NoError(t, s.Rename(0, "Ada"))
		want[0] = "Ada"
		s.Flush()

		raw, ok, err := kv.Get(storage.KeyRosterNames)
		assert.NoError(t, err)
		assert.True(t, ok)
		var names []string
		assert.NoError(t, json.Unmarshal([]byte(raw), &names))
		assert.Equal(t, want, names, "an older snapshot must never land after a newer one")
	})

	t.Run("names and images never tear across snapshots", func(t *testing.T) {
		kv := storage.NewMemStore()
		s := New(kv, quietLogger())
		for i := 0; i < 10; i++ {
			_, err := s.Add(character.DefaultName(i+1), character.PlaceholderImage)
			assert.NoError(t, err)
		}
		s.Flush()

		// Load validates that both persisted lists have the same length; a
		// torn write (names from one snapshot, images from another) fails it.
		restored := New(kv, quietLogger())
		assert.NoError(t, restored.Load())
		assert.Equal(t, 10, restored.Len())
	})
}

func TestQuotaExceededKeepsMemory(t *testing.T) {
	kv := storage.NewMemStore()
	kv.Quota = 1 // every write fails
	s := New(kv, quietLogger())

	entry, err := s.Add("Ada", character.PlaceholderImage)
	assert.NoError(t, err, "a persist failure must not surface as an add failure")
	s.Flush()

	// The in-memory roster is authoritative and the entry readable.
	got, ok := s.EntryByID(entry.ID)
	assert.True(t, ok)
	assert.Equal(t, "Ada", got.Name)

	// The failure was reported as a warning.
	warnings := s.Warnings()
	assert.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "storage is full")

	// Warnings drain on read.
	assert.Empty(t, s.Warnings())
}

func TestFrozenMutationsAreNoOps(t *testing.T) {
	s := New(storage.NewMemStore(), quietLogger())
	_, err := s.Add("Ada", character.PlaceholderImage)
	assert.NoError(t, err)
	_, err = s.Add("Blaise", character.PlaceholderImage)
	assert.NoError(t, err)

	s.Freeze()

	t.Run("add", func(t *testing.T) {
		_, err := s.Add("Kurt", character.PlaceholderImage)
		assert.ErrorIs(t, err, ErrLocked)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("remove all", func(t *testing.T) {
		assert.ErrorIs(t, s.RemoveAll(), ErrLocked)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("replace all", func(t *testing.T) {
		err := s.ReplaceAll([]character.Entry{character.New("Solo", character.PlaceholderImage)})
		assert.ErrorIs(t, err, ErrLocked)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("rename", func(t *testing.T) {
		assert.ErrorIs(t, s.Rename(0, "Renamed"), ErrLocked)
		assert.Equal(t, "Ada", s.Entries()[0].Name)
	})

	t.Run("unfreeze restores editing", func(t *testing.T) {
		s.Unfreeze()
		assert.NoError(t, s.Rename(0, "Renamed"))
		assert.Equal(t, "Renamed", s.Entries()[0].Name)
	})
}

func TestReplaceAll(t *testing.T) {
	s := New(storage.NewMemStore(), quietLogger())
	_, err := s.Add("Old", character.PlaceholderImage)
	assert.NoError(t, err)
	genBefore := s.Generation()

	incoming := []character.Entry{
		{Name: "Ada", Image: character.PlaceholderImage},
		character.New("Blaise", character.PlaceholderImage),
	}
	assert.NoError(t, s.ReplaceAll(incoming))

	entries := s.Entries()
	assert.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID, "entries without ids get fresh ones")
	assert.Equal(t, incoming[1].ID, entries[1].ID, "existing ids are kept")
	assert.Greater(t, s.Generation(), genBefore, "replace starts a new epoch")
}

func TestRenameAndReplaceImage(t *testing.T) {
	s := New(storage.NewMemStore(), quietLogger())
	e, err := s.Add("Ada", character.PlaceholderImage)
	assert.NoError(t, err)

	assert.NoError(t, s.Rename(0, "Countess"))
	assert.NoError(t, s.ReplaceImage(0, "data:image/jpeg;base64,AAAA"))

	got := s.Entries()[0]
	assert.Equal(t, e.ID, got.ID, "edits preserve the id")
	assert.Equal(t, "Countess", got.Name)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", got.Image)

	assert.Error(t, s.Rename(5, "nope"))
	assert.Error(t, s.ReplaceImage(-1, "nope"))
	assert.Error(t, s.ReplaceImageByID("no-such-id", "nope"))
}

func TestLoad(t *testing.T) {
	t.Run("restores names and images in order", func(t *testing.T) {
		kv := storage.NewMemStore()
		saved := New(kv, quietLogger())
		_, err := saved.Add("Ada", "data:image/jpeg;base64,AAAA")
		assert.NoError(t, err)
		_, err = saved.Add("Blaise", "data:image/jpeg;base64,BBBB")
		assert.NoError(t, err)
		saved.Flush()

		restored := New(kv, quietLogger())
		assert.NoError(t, restored.Load())

		entries := restored.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "Ada", entries[0].Name)
		assert.Equal(t, "data:image/jpeg;base64,BBBB", entries[1].Image)
		assert.NotEmpty(t, entries[0].ID)
	})

	t.Run("absent keys leave the roster empty", func(t *testing.T) {
		s := New(storage.NewMemStore(), quietLogger())
		assert.NoError(t, s.Load())
		assert.Zero(t, s.Len())
	})

	t.Run("mismatched lists are rejected", func(t *testing.T) {
		kv := storage.NewMemStore()
		assert.NoError(t, kv.Set(storage.KeyRosterNames, `["Ada","Blaise"]`))
		assert.NoError(t, kv.Set(storage.KeyRosterImages, `["only-one"]`))

		s := New(kv, quietLogger())
		assert.Error(t, s.Load())
		assert.Zero(t, s.Len())
	})
}
