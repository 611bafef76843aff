package blackjack

import (
	"encoding/json"
	"fmt"
)

type Suit int

const (
	SuitUnknown  Suit = 0
	SuitClubs    Suit = 1
	SuitDiamonds Suit = 2
	SuitHearts   Suit = 3
	SuitSpades   Suit = 4
)

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "Clubs"
	case SuitDiamonds:
		return "Diamonds"
	case SuitHearts:
		return "Hearts"
	case SuitSpades:
		return "Spades"
	}
	return "Unknown"
}

func AllSuits() []Suit {
	return []Suit{
		SuitHearts,
		SuitDiamonds,
		SuitClubs,
		SuitSpades,
	}
}

type Rank int

const (
	RankUnknown Rank = 0
	RankTwo     Rank = 2
	RankThree   Rank = 3
	RankFour    Rank = 4
	RankFive    Rank = 5
	RankSix     Rank = 6
	RankSeven   Rank = 7
	RankEight   Rank = 8
	RankNine    Rank = 9
	RankTen     Rank = 10
	RankJack    Rank = 11
	RankQueen   Rank = 12
	RankKing    Rank = 13
	RankAce     Rank = 14
)

func (r Rank) String() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	case RankUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("%d", int(r))
}

func AllRanks() []Rank {
	return []Rank{
		RankTwo,
		RankThree,
		RankFour,
		RankFive,
		RankSix,
		RankSeven,
		RankEight,
		RankNine,
		RankTen,
		RankJack,
		RankQueen,
		RankKing,
		RankAce,
	}
}

type Card struct {
	suit Suit
	rank Rank
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{suit, rank}
}

// Value returns the card's points. Picture cards count 10 and aces
// count 11 here; the hand total downgrades aces to 1 as needed.
func (c Card) Value() int {
	switch {
	case c.rank == RankAce:
		return 11
	case c.rank >= RankJack:
		return 10
	}
	return int(c.rank)
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Suit int    `json:"suit"`
		Rank int    `json:"rank"`
		Name string `json:"name"`
	}{int(c.suit), int(c.rank), c.String()})
}
