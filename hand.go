package blackjack

import (
	"fmt"
	"strings"
)

type Hand struct {
	cards []Card
}

func NewHand() *Hand {
	return &Hand{}
}

func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the hand in dealt order.
func (h *Hand) Cards() []Card {
	cards := make([]Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Value is the hand's total. Aces count 11 until the total exceeds 21,
// then they are downgraded to 1 one at a time. A total over 21 with
// every ace downgraded is reported as-is; see IsBusted.
func (h *Hand) Value() int {
	var total, aces int
	for _, c := range h.cards {
		total += c.Value()
		if c.rank == RankAce {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func (h *Hand) IsBusted() bool {
	return h.Value() > 21
}

// Start deals the opening two cards from deck into an empty hand.
func (h *Hand) Start(deck *Deck) error {
	if len(h.cards) != 0 {
		return fmt.Errorf("hand already has %d cards", len(h.cards))
	}
	if deck.Size() < 2 {
		return ErrEmptyDeck
	}
	for i := 0; i < 2; i++ {
		c, err := deck.Deal()
		if err != nil {
			return err
		}
		h.AddCard(c)
	}
	return nil
}

func (h *Hand) String() string {
	names := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		names = append(names, c.String())
	}
	return fmt.Sprintf("%s (value: %d)", strings.Join(names, ", "), h.Value())
}
