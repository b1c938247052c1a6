// Package keycodec converts a roster to and from a Game Key: a single
// printable string a player can paste into any plain text channel.
//
// The wire format is standard base64 over a JSON array of entries. Base64
// keeps arbitrary binary-as-text image payloads inside a portable printable
// alphabet, so no image byte sequence can collide with a structural
// delimiter.
package keycodec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
)

// CorruptKeyError reports a Game Key that could not be decoded. The in-memory
// roster is never touched when decoding fails.
type CorruptKeyError struct {
	Reason string
	Err    error
}

func (e *CorruptKeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt game key: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("corrupt game key: %s", e.Reason)
}

func (e *CorruptKeyError) Unwrap() error { return e.Err }

// Encode serializes the roster into a Game Key. Order and every field are
// preserved exactly; Decode(Encode(r)) == r for any valid roster.
func Encode(entries []character.Entry) (string, error) {
	if entries == nil {
		entries = []character.Entry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encode game key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decode is the exact inverse of Encode. Malformed input of any kind (wrong
// alphabet, truncated, structurally invalid JSON) yields a *CorruptKeyError;
// a partial roster is never returned.
func Decode(key string) ([]character.Entry, error) {
	if key == "" {
		return nil, &CorruptKeyError{Reason: "empty key"}
	}
	payload, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, &CorruptKeyError{Reason: "not valid base64", Err: err}
	}
	var entries []character.Entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, &CorruptKeyError{Reason: "payload is not a roster", Err: err}
	}
	return entries, nil
}
