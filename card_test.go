package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardValue(t *testing.T) {
	testCases := []struct {
		card  Card
		value int
	}{
		{NewCard(SuitHearts, RankTwo), 2},
		{NewCard(SuitClubs, RankFive), 5},
		{NewCard(SuitDiamonds, RankNine), 9},
		{NewCard(SuitSpades, RankTen), 10},
		{NewCard(SuitHearts, RankJack), 10},
		{NewCard(SuitDiamonds, RankQueen), 10},
		{NewCard(SuitClubs, RankKing), 10},
		{NewCard(SuitSpades, RankAce), 11},
	}

	for _, testCase := range testCases {
		t.Run(testCase.card.String(), func(t *testing.T) {
			assert.Equal(t, testCase.value, testCase.card.Value())
		})
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A of Hearts", NewCard(SuitHearts, RankAce).String())
	assert.Equal(t, "10 of Spades", NewCard(SuitSpades, RankTen).String())
	assert.Equal(t, "J of Clubs", NewCard(SuitClubs, RankJack).String())
	assert.Equal(t, "2 of Diamonds", NewCard(SuitDiamonds, RankTwo).String())
}
