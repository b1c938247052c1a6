package character

import (
	"fmt"

	"github.com/google/uuid"
)

// PlaceholderImage is the data URI assigned to a board slot that has no
// uploaded portrait yet (a 1x1 transparent PNG).
const PlaceholderImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// Entry represents a single character on the board.
type Entry struct {
	ID    string `json:"id"`   // Stable within a session, never reused after removal
	Name  string `json:"name"` // Display name, may be empty or contain any unicode
	Image string `json:"img"`  // Transcoded portrait as a data URI
}

// New creates an entry with a fresh id. The image should already be the
// size-bounded transcoded form, never a raw upload.
func New(name, image string) Entry {
	return Entry{
		ID:    uuid.NewString(),
		Name:  name,
		Image: image,
	}
}

// Placeholder creates an unnamed slot for the fixed-size board variant.
// Slot numbering is 1-based to match the on-screen grid.
func Placeholder(slot int) Entry {
	return New(DefaultName(slot), PlaceholderImage)
}

// DefaultName returns the fallback display name for a board slot.
func DefaultName(slot int) string {
	return fmt.Sprintf("Character %d", slot)
}

// IsPlaceholderImage reports whether an image reference is the empty slot
// marker rather than an uploaded portrait.
func IsPlaceholderImage(image string) bool {
	return image == "" || image == PlaceholderImage
}
