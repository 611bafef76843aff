package blackjack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandValue(t *testing.T) {
	testCases := []struct {
		name   string
		cards  []Card
		value  int
		busted bool
	}{
		{
			name: "empty hand",
		},
		{
			name:  "hard seventeen",
			cards: []Card{NewCard(SuitHearts, RankTen), NewCard(SuitSpades, RankSeven)},
			value: 17,
		},
		{
			name:  "soft seventeen",
			cards: []Card{NewCard(SuitHearts, RankAce), NewCard(SuitSpades, RankSix)},
			value: 17,
		},
		{
			name:  "blackjack",
			cards: []Card{NewCard(SuitHearts, RankAce), NewCard(SuitClubs, RankKing)},
			value: 21,
		},
		{
			name: "two aces one downgraded",
			cards: []Card{
				NewCard(SuitHearts, RankAce),
				NewCard(SuitSpades, RankAce),
				NewCard(SuitClubs, RankNine),
			},
			value: 21,
		},
		{
			name: "two aces both downgraded",
			cards: []Card{
				NewCard(SuitHearts, RankAce),
				NewCard(SuitSpades, RankAce),
				NewCard(SuitClubs, RankNine),
				NewCard(SuitDiamonds, RankFive),
			},
			value: 16,
		},
		{
			name: "four aces",
			cards: []Card{
				NewCard(SuitHearts, RankAce),
				NewCard(SuitSpades, RankAce),
				NewCard(SuitClubs, RankAce),
				NewCard(SuitDiamonds, RankAce),
			},
			value: 14,
		},
		{
			name: "busted without aces",
			cards: []Card{
				NewCard(SuitHearts, RankTen),
				NewCard(SuitSpades, RankFive),
				NewCard(SuitClubs, RankEight),
			},
			value:  23,
			busted: true,
		},
		{
			name: "busted with every ace downgraded",
			cards: []Card{
				NewCard(SuitHearts, RankAce),
				NewCard(SuitSpades, RankKing),
				NewCard(SuitClubs, RankQueen),
				NewCard(SuitDiamonds, RankFive),
			},
			value:  26,
			busted: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			h := NewHand()
			for _, c := range testCase.cards {
				h.AddCard(c)
			}
			assert.Equal(t, testCase.value, h.Value())
			assert.Equal(t, testCase.busted, h.IsBusted())
		})
	}
}

func TestHandValueBounds(t *testing.T) {
	// The total never exceeds 11 per card, and never drops below the
	// hard total with every ace counted as 1.
	hands := [][]Card{
		{NewCard(SuitHearts, RankAce)},
		{NewCard(SuitHearts, RankAce), NewCard(SuitSpades, RankAce)},
		{NewCard(SuitHearts, RankAce), NewCard(SuitSpades, RankKing), NewCard(SuitClubs, RankNine)},
		{NewCard(SuitHearts, RankTwo), NewCard(SuitSpades, RankThree), NewCard(SuitClubs, RankFour)},
	}
	for _, cards := range hands {
		h := NewHand()
		var hard int
		for _, c := range cards {
			h.AddCard(c)
			if c.rank == RankAce {
				hard++
			} else {
				hard += c.Value()
			}
		}
		assert.LessOrEqual(t, h.Value(), 11*len(cards))
		assert.GreaterOrEqual(t, h.Value(), hard)
	}
}

func TestHandStart(t *testing.T) {
	d := riggedDeck(
		NewCard(SuitHearts, RankTen),
		NewCard(SuitSpades, RankSeven),
	)

	h := NewHand()
	assert.NoError(t, h.Start(d))
	assert.Equal(t, []Card{
		NewCard(SuitHearts, RankTen),
		NewCard(SuitSpades, RankSeven),
	}, h.Cards())
	assert.Equal(t, 0, d.Size())

	assert.Error(t, h.Start(d))
}

func TestHandStartShortDeck(t *testing.T) {
	d := riggedDeck(NewCard(SuitHearts, RankTen))

	h := NewHand()
	err := h.Start(d)
	assert.True(t, errors.Is(err, ErrEmptyDeck))
	assert.Empty(t, h.Cards())
	assert.Equal(t, 1, d.Size())
}

func TestHandString(t *testing.T) {
	h := NewHand()
	h.AddCard(NewCard(SuitHearts, RankTen))
	h.AddCard(NewCard(SuitSpades, RankSeven))
	assert.Equal(t, "10 of Hearts, 7 of Spades (value: 17)", h.String())
}
