// Package storage is the external key-value persistence service the roster
// and board editor save through. Persistence is best-effort: a failed write
// (quota) is surfaced as a warning and the in-memory state stays
// authoritative.
package storage

import "fmt"

// Keys the game persists under.
const (
	KeyRosterNames  = "roster.names"
	KeyRosterImages = "roster.images"
	KeyNameCursor   = "board.name_cursor"
)

// KV is the persistence contract. Get reports absence via ok=false rather
// than an error. Set may fail with *QuotaExceededError when the backing
// medium is full; callers must keep their in-memory state regardless.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// QuotaExceededError reports a write the backing store refused for lack of
// space. The write is not retried; the persisted copy is simply stale.
type QuotaExceededError struct {
	Key string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("storage quota exceeded writing %q", e.Key)
}
