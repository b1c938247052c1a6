package keycodec

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := map[string][]character.Entry{
		"single entry": {
			character.New("Ada", character.PlaceholderImage),
		},
		"empty name": {
			character.New("", character.PlaceholderImage),
		},
		"names with separators and unicode": {
			character.New("Smith, John", "data:image/jpeg;base64,AAAA"),
			character.New("\u00e9lodie \"la renarde\"", "data:image/jpeg;base64,BBBB"),
			character.New("\u7adc\u5d0e\u3055\u3093|;,=\n", "data:image/jpeg;base64,CCCC"),
		},
	}

	for name, roster := range cases {
		t.Run(name, func(t *testing.T) {
			key, err := Encode(roster)
			assert.NoError(t, err)

			decoded, err := Decode(key)
			assert.NoError(t, err)
			assert.Equal(t, roster, decoded)
		})
	}

	t.Run("large roster with binary-as-text portraits", func(t *testing.T) {
		roster := make([]character.Entry, 0, 24)
		for i := 0; i < 24; i++ {
			blob := strings.Repeat(fmt.Sprintf("%02x", i), 4096)
			uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte(blob))
			roster = append(roster, character.New(fmt.Sprintf("Character %d", i+1), uri))
		}

		key, err := Encode(roster)
		assert.NoError(t, err)

		decoded, err := Decode(key)
		assert.NoError(t, err)
		assert.Equal(t, roster, decoded)
	})
}

func TestEncodeAlphabet(t *testing.T) {
	roster := []character.Entry{
		character.New("\u00e9lodie,;|", "data:image/jpeg;base64,AAAA"),
	}
	key, err := Encode(roster)
	assert.NoError(t, err)

	for _, r := range key {
		assert.True(t, r > ' ' && r < 127, "key contains non-printable rune %q", r)
	}
}

func TestDecodeCorruptKeys(t *testing.T) {
	valid, err := Encode([]character.Entry{character.New("Ada", character.PlaceholderImage)})
	assert.NoError(t, err)

	cases := map[string]string{
		"empty":               "",
		"wrong alphabet":      "this is not ~~~ base64!",
		"truncated":           valid[:len(valid)-5],
		"base64 but not json": base64.StdEncoding.EncodeToString([]byte("hello there")),
		"json but not roster": base64.StdEncoding.EncodeToString([]byte(`{"oops": true}`)),
	}

	for name, key := range cases {
		t.Run(name, func(t *testing.T) {
			entries, err := Decode(key)
			assert.Nil(t, entries)

			var corrupt *CorruptKeyError
			assert.ErrorAs(t, err, &corrupt)
		})
	}
}
