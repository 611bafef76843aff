package blackjack

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyDeck is returned when a deal is requested from an exhausted
// deck. A round deals at most 52 cards, so seeing this indicates a
// caller bug rather than normal play.
var ErrEmptyDeck = errors.New("no cards left in the deck")

// InsufficientFundsError is returned when a bet exceeds the player's
// balance. The balance is left untouched.
type InsufficientFundsError struct {
	Name   string
	Amount int
	Money  int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s can't bet %d with a balance of %d", e.Name, e.Amount, e.Money)
}

// DuplicateNameError is returned when a roster contains the same name
// twice.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("the name %q is already taken", e.Name)
}

// NotCurrentPlayerError is returned when a player acts out of turn.
type NotCurrentPlayerError struct {
	Name    string
	Current string
}

func (e *NotCurrentPlayerError) Error() string {
	return fmt.Sprintf("it's %s's turn, not %s's", e.Current, e.Name)
}

// PhaseError is returned when an operation is attempted in the wrong
// round phase, e.g. hitting before any cards have been dealt. It
// indicates a bug in the calling front end.
type PhaseError struct {
	Op    string
	State State
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("can't %s while the round is %s", e.Op, e.State)
}

// BetErrors collects per-player bet failures from StartRound. Players
// absent from the map had their bets placed; the caller only needs to
// retry the ones listed here.
type BetErrors map[string]error

func (e BetErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e[name]))
	}
	return "some bets were rejected: " + strings.Join(parts, "; ")
}
