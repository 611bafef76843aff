package blackjack

import "math/rand"

type Deck struct {
	cards []Card
}

// NewDeck returns a full 52-card deck, already shuffled.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for _, s := range AllSuits() {
		for _, r := range AllRanks() {
			cards = append(cards, NewCard(s, r))
		}
	}
	d := &Deck{cards}
	d.Shuffle()
	return d
}

func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. It returns ErrEmptyDeck when
// the deck has been exhausted.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

func (d *Deck) Size() int {
	return len(d.cards)
}
