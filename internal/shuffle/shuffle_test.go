package shuffle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
)

func testRoster(n int) []character.Entry {
	entries := make([]character.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, character.New(fmt.Sprintf("entry-%d", i), character.PlaceholderImage))
	}
	return entries
}

func names(entries []character.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestHashSeed(t *testing.T) {
	t.Run("fixed value never changes", func(t *testing.T) {
		// Pinned: both players' builds must agree forever.
		assert.Equal(t, uint32(99162322), HashSeed("hello"))
	})

	t.Run("whitespace is significant", func(t *testing.T) {
		assert.NotEqual(t, HashSeed("hello"), HashSeed("hello "))
		assert.NotEqual(t, HashSeed("hello"), HashSeed(" hello"))
	})

	t.Run("unicode seeds hash", func(t *testing.T) {
		assert.NotEqual(t, HashSeed("café"), HashSeed("cafe"))
	})
}

func TestShuffle(t *testing.T) {
	t.Run("same seed yields identical order", func(t *testing.T) {
		roster := testRoster(12)

		first, err := Shuffle(roster, "shared seed")
		assert.NoError(t, err)
		second, err := Shuffle(roster, "shared seed")
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("output is a permutation of the input", func(t *testing.T) {
		roster := testRoster(10)

		out, err := Shuffle(roster, "hello")
		assert.NoError(t, err)

		assert.Len(t, out, len(roster))
		assert.ElementsMatch(t, roster, out)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		roster := testRoster(8)
		before := names(roster)

		_, err := Shuffle(roster, "hello")
		assert.NoError(t, err)

		assert.Equal(t, before, names(roster))
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		roster := testRoster(16)

		// Statistical, not a strict guarantee: with 16! orderings a
		// collision across ten seed pairs would be astonishing.
		diverged := 0
		for i := 0; i < 10; i++ {
			a, err := Shuffle(roster, fmt.Sprintf("seed-a-%d", i))
			assert.NoError(t, err)
			b, err := Shuffle(roster, fmt.Sprintf("seed-b-%d", i))
			assert.NoError(t, err)
			if !assert.ObjectsAreEqual(names(a), names(b)) {
				diverged++
			}
		}
		assert.Greater(t, diverged, 8)
	})

	t.Run("short sequences pass through", func(t *testing.T) {
		empty, err := Shuffle(nil, "hello")
		assert.NoError(t, err)
		assert.Empty(t, empty)

		one := testRoster(1)
		out, err := Shuffle(one, "hello")
		assert.NoError(t, err)
		assert.Equal(t, one, out)
	})

	t.Run("empty seed is a precondition violation", func(t *testing.T) {
		_, err := Shuffle(testRoster(3), "")
		assert.ErrorIs(t, err, ErrEmptySeed)
	})

	t.Run("zero hash seed still shuffles", func(t *testing.T) {
		// The empty-string hash would be zero, but an empty seed is already
		// rejected; craft a non-empty seed and make sure a zero state never
		// freezes the stream regardless.
		roster := testRoster(6)
		out, err := Shuffle(roster, "\x00")
		assert.NoError(t, err)
		assert.ElementsMatch(t, roster, out)
	})
}
