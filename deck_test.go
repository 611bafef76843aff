package blackjack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	assert.Equal(t, 52, d.Size())

	seen := make(map[Card]bool)
	for d.Size() > 0 {
		c, err := d.Deal()
		assert.NoError(t, err)
		assert.False(t, seen[c], "dealt %s twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestDealExhaustsDeck(t *testing.T) {
	d := NewDeck()
	for i := 0; i < 52; i++ {
		_, err := d.Deal()
		assert.NoError(t, err)
		assert.Equal(t, 51-i, d.Size())
	}

	_, err := d.Deal()
	assert.True(t, errors.Is(err, ErrEmptyDeck))
	assert.Equal(t, 0, d.Size())
}

func TestShuffleKeepsCards(t *testing.T) {
	d := NewDeck()
	d.Shuffle()
	assert.Equal(t, 52, d.Size())

	seen := make(map[Card]bool)
	for d.Size() > 0 {
		c, _ := d.Deal()
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}
