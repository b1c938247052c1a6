// Package pack reads and writes Character Pack files: a TOML document
// carrying the full ordered name list and image list of a roster, for
// file-based sharing alongside the copy-paste game key.
package pack

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
)

// File is the on-disk pack document.
type File struct {
	Pack Meta `toml:"pack"`
}

// Meta holds the pack payload. Names and Images are parallel lists in
// canonical roster order.
type Meta struct {
	Name   string   `toml:"name,omitempty"`
	Names  []string `toml:"names"`
	Images []string `toml:"images"`
}

// ValidationError reports a structurally invalid pack. The live roster is
// never mutated when import validation fails.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid character pack: %s", strings.Join(e.Problems, "; "))
}

// Export writes the roster to a pack file at path.
func Export(path, name string, entries []character.Entry) error {
	doc := File{Pack: Meta{
		Name:   name,
		Names:  make([]string, 0, len(entries)),
		Images: make([]string, 0, len(entries)),
	}}
	for _, e := range entries {
		doc.Pack.Names = append(doc.Pack.Names, e.Name)
		doc.Pack.Images = append(doc.Pack.Images, e.Image)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pack file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		return fmt.Errorf("encode pack file: %w", err)
	}
	return nil
}

// Import reads and validates a pack file, returning the entries it carries
// with fresh ids. Both lists must be present and of equal, nonzero length;
// anything else is a *ValidationError and no entries are returned.
func Import(path string) ([]character.Entry, error) {
	var doc File
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("not a readable pack file: %v", err)}}
	}
	if err := validate(doc.Pack); err != nil {
		return nil, err
	}
	entries := make([]character.Entry, 0, len(doc.Pack.Names))
	for i := range doc.Pack.Names {
		entries = append(entries, character.New(doc.Pack.Names[i], doc.Pack.Images[i]))
	}
	return entries, nil
}

func validate(m Meta) error {
	var problems []string
	if m.Names == nil {
		problems = append(problems, "missing names list")
	}
	if m.Images == nil {
		problems = append(problems, "missing images list")
	}
	if m.Names != nil && m.Images != nil {
		if len(m.Names) != len(m.Images) {
			problems = append(problems, fmt.Sprintf("%d names but %d images", len(m.Names), len(m.Images)))
		}
		if len(m.Names) == 0 {
			problems = append(problems, "pack is empty")
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
