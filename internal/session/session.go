// Package session owns the match lifecycle: when the roster may be edited,
// how a board is launched from a seed, which cards this player has
// eliminated, and which card is their secret target.
package session

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/character"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/imaging"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/roster"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/shuffle"
)

// BoardSize is the slot count of the fixed-size board variant.
const BoardSize = 24

// Mode is the top-level session state.
type Mode int

const (
	Setup Mode = iota
	InGame
)

func (m Mode) String() string {
	if m == InGame {
		return "in-game"
	}
	return "setup"
}

// PickState is the secret-pick sub-state consumed by card clicks.
type PickState int

const (
	PickNormal PickState = iota
	PickAwaitingSecret
)

// ClickResult reports what a card click did.
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickPickedTarget
	ClickEliminated
	ClickRestored
)

// ValidationError reports a launch or transition precondition that was not
// met. The session stays in its previous state.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// StaleResultError reports an asynchronous completion that arrived after the
// slot or session state it targeted had moved on. The completion is dropped.
type StaleResultError struct {
	EntryID string
	Reason  string
}

func (e *StaleResultError) Error() string {
	return fmt.Sprintf("stale async result for entry %s: %s", e.EntryID, e.Reason)
}

// Outcome is a self-reported match result. The protocol has no way to verify
// it against the opponent's actual target; this is an honor-system boundary,
// not a bug.
type Outcome struct {
	ClaimedWin        bool
	OpponentCharacter string
}

// Session is the state machine. It is driven from a single goroutine.
type Session struct {
	roster *roster.Store
	log    *logrus.Logger

	mode       Mode
	pick       PickState
	seed       string
	board      []character.Entry
	eliminated map[string]struct{}
	target     *character.Entry
	outcome    *Outcome
}

// New creates a session in setup mode over the given roster store.
func New(r *roster.Store, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{
		roster:     r,
		log:        log,
		eliminated: make(map[string]struct{}),
	}
}

func (s *Session) Mode() Mode          { return s.mode }
func (s *Session) Seed() string        { return s.seed }
func (s *Session) PickingSecret() bool { return s.pick == PickAwaitingSecret }

// Roster returns the underlying store.
func (s *Session) Roster() *roster.Store { return s.roster }

// Board returns the shuffled board order of the current match, or nil in
// setup mode.
func (s *Session) Board() []character.Entry {
	out := make([]character.Entry, len(s.board))
	copy(out, s.board)
	return out
}

// Target returns this player's secret card, if one has been picked.
func (s *Session) Target() (character.Entry, bool) {
	if s.target == nil {
		return character.Entry{}, false
	}
	return *s.target, true
}

// IsEliminated reports whether the card is currently flipped down.
func (s *Session) IsEliminated(id string) bool {
	_, ok := s.eliminated[id]
	return ok
}

// EliminatedCount returns how many cards are flipped down.
func (s *Session) EliminatedCount() int { return len(s.eliminated) }

// Launch starts a seeded match: the board order is the roster shuffled by the
// seed, identical for both players. The roster is frozen until Reset.
func (s *Session) Launch(seed string) error {
	if s.mode != Setup {
		return &ValidationError{Reason: "a match is already in progress"}
	}
	if seed == "" {
		return &ValidationError{Reason: "a seed is required to start a match"}
	}
	if s.roster.Len() < 2 {
		return &ValidationError{Reason: "at least 2 characters are required to start a match"}
	}
	board, err := shuffle.Shuffle(s.roster.Entries(), seed)
	if err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	s.start(seed, board)
	return nil
}

// LaunchFixed starts a fixed-board match: exactly BoardSize populated slots,
// board order identical to roster order.
func (s *Session) LaunchFixed() error {
	if s.mode != Setup {
		return &ValidationError{Reason: "a match is already in progress"}
	}
	if s.roster.Len() != BoardSize {
		return &ValidationError{Reason: fmt.Sprintf("the fixed board needs exactly %d slots, have %d", BoardSize, s.roster.Len())}
	}
	s.start("", s.roster.Entries())
	return nil
}

func (s *Session) start(seed string, board []character.Entry) {
	s.seed = seed
	s.board = board
	s.eliminated = make(map[string]struct{})
	s.outcome = nil
	s.mode = InGame
	s.roster.Freeze()
}

// Reset returns to setup mode: eliminations and the pick sub-state are
// cleared, editing unfreezes. The roster itself is kept.
func (s *Session) Reset() {
	s.mode = Setup
	s.pick = PickNormal
	s.seed = ""
	s.board = nil
	s.eliminated = make(map[string]struct{})
	s.outcome = nil
	s.roster.Unfreeze()
}

// ToggleEliminated flips a card's eliminated state. Local bookkeeping only;
// nothing is communicated to the opponent.
func (s *Session) ToggleEliminated(id string) (ClickResult, error) {
	if s.mode != InGame {
		return ClickIgnored, &ValidationError{Reason: "no match in progress"}
	}
	if _, ok := s.eliminated[id]; ok {
		delete(s.eliminated, id)
		return ClickRestored, nil
	}
	s.eliminated[id] = struct{}{}
	return ClickEliminated, nil
}

// BeginSecretPick arms the secret-pick sub-state: the next card click picks
// this player's secret target instead of its normal meaning. Setup only.
func (s *Session) BeginSecretPick() error {
	if s.mode != Setup {
		return &ValidationError{Reason: "the secret card must be picked before the match starts"}
	}
	s.pick = PickAwaitingSecret
	return nil
}

// HandleCardClick dispatches a card click according to the pick sub-state and
// mode. While a secret pick is pending, exactly one click is consumed to set
// the target; any roster-mutating meaning of that click is suppressed.
func (s *Session) HandleCardClick(id string) (ClickResult, error) {
	if s.pick == PickAwaitingSecret {
		e, ok := s.roster.EntryByID(id)
		if !ok {
			return ClickIgnored, &ValidationError{Reason: "unknown card"}
		}
		s.target = &e
		s.pick = PickNormal
		return ClickPickedTarget, nil
	}
	if s.mode == InGame {
		return s.ToggleEliminated(id)
	}
	return ClickIgnored, nil
}

// PickRandomTarget picks this player's secret card at random, locally. It is
// intentionally unrelated to the seeded shuffle stream, so the two players'
// targets stay independent.
func (s *Session) PickRandomTarget() (character.Entry, error) {
	entries := s.roster.Entries()
	if len(entries) == 0 {
		return character.Entry{}, &ValidationError{Reason: "the roster is empty"}
	}
	e := entries[rand.Intn(len(entries))]
	s.target = &e
	return e, nil
}

// DeclareResult records the self-reported outcome of the match. No
// verification against the opponent's actual target is possible or attempted.
func (s *Session) DeclareResult(claimedWin bool, opponentCharacter string) Outcome {
	o := Outcome{ClaimedWin: claimedWin, OpponentCharacter: opponentCharacter}
	s.outcome = &o
	return o
}

// LastOutcome returns the declared result of the current match, if any.
func (s *Session) LastOutcome() (Outcome, bool) {
	if s.outcome == nil {
		return Outcome{}, false
	}
	return *s.outcome, true
}

// ApplyImageResult applies a transcode completion to the roster, unless it is
// stale: completions that arrive after launch froze the session, after the
// roster epoch moved on, or for a slot that no longer exists are dropped with
// a warning, never applied.
func (s *Session) ApplyImageResult(res imaging.Result) error {
	if res.Err != nil {
		return fmt.Errorf("image transcode failed for entry %s: %w", res.EntryID, res.Err)
	}
	if s.mode != Setup {
		return s.drop(res, "match already started")
	}
	if res.Generation != s.roster.Generation() {
		return s.drop(res, "roster changed since the load began")
	}
	if _, ok := s.roster.EntryByID(res.EntryID); !ok {
		return s.drop(res, "slot no longer exists")
	}
	return s.roster.ReplaceImageByID(res.EntryID, res.DataURI)
}

func (s *Session) drop(res imaging.Result, reason string) error {
	err := &StaleResultError{EntryID: res.EntryID, Reason: reason}
	s.log.Warnf("dropping image load: %v", err)
	return err
}
