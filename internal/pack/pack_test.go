package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
)

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "friends.toml")
	entries := []character.Entry{
		character.New("Ada", "data:image/jpeg;base64,AAAA"),
		character.New("Smith, John", "data:image/jpeg;base64,BBBB"),
		character.New("", character.PlaceholderImage),
	}

	assert.NoError(t, Export(path, "Friends", entries))

	imported, err := Import(path)
	assert.NoError(t, err)
	assert.Len(t, imported, 3)
	for i := range entries {
		assert.Equal(t, entries[i].Name, imported[i].Name)
		assert.Equal(t, entries[i].Image, imported[i].Image)
		assert.NotEmpty(t, imported[i].ID)
		assert.NotEqual(t, entries[i].ID, imported[i].ID, "imports get fresh ids")
	}
}

func TestImportValidation(t *testing.T) {
	write := func(t *testing.T, doc string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "pack.toml")
		assert.NoError(t, os.WriteFile(path, []byte(doc), 0644))
		return path
	}

	cases := map[string]string{
		"missing images": `
[pack]
names = ["Ada", "Blaise"]
`,
		"missing names": `
[pack]
images = ["a", "b"]
`,
		"count mismatch": `
[pack]
names = ["Ada", "Blaise"]
images = ["a"]
`,
		"empty lists": `
[pack]
names = []
images = []
`,
		"not toml": `{"names": ["Ada"]}`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			entries, err := Import(write(t, doc))
			assert.Nil(t, entries, "a rejected pack must not return entries")

			var v *ValidationError
			assert.ErrorAs(t, err, &v)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Import(filepath.Join(t.TempDir(), "nope.toml"))
		var v *ValidationError
		assert.ErrorAs(t, err, &v)
	})
}
