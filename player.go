package blackjack

import (
	"errors"
	"strings"
)

// BankName is reserved for the house and can't be used by a player.
const BankName = "Bank"

// Player is a seated participant with a balance, a current bet and a
// hand. The stake is never moved when a bet is placed: WinBet adds the
// bet amount, LoseBet subtracts it and PushBet leaves the balance
// alone.
type Player struct {
	name  string
	money int
	bet   int
	hand  *Hand
}

func NewPlayer(name string, money int) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("please enter your name")
	}

	if len(name) > 20 {
		return nil, errors.New("your name can't be more than 20 characters")
	}

	if name == BankName {
		return nil, errors.New("that name is reserved for the house")
	}

	if money < 0 {
		return nil, errors.New("starting money can't be negative")
	}

	return &Player{name: name, money: money, hand: NewHand()}, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Money() int {
	return p.money
}

func (p *Player) Bet() int {
	return p.bet
}

func (p *Player) Hand() *Hand {
	return p.hand
}

// PlaceBet stakes amount for the round. The balance is only checked,
// never moved; settlement applies the win or loss.
func (p *Player) PlaceBet(amount int) error {
	if amount < 0 {
		return errors.New("bets can't be negative")
	}
	if amount > p.money {
		return &InsufficientFundsError{Name: p.name, Amount: amount, Money: p.money}
	}
	p.bet = amount
	return nil
}

func (p *Player) WinBet() {
	p.money += p.bet
}

func (p *Player) LoseBet() {
	p.money -= p.bet
}

// PushBet settles a tie. The stake was never moved, so there is
// nothing to return.
func (p *Player) PushBet() {}

func (p *Player) ResetBet() {
	p.bet = 0
}

func (p *Player) resetHand() {
	p.hand = NewHand()
}

// Bank is the house. It has unbounded funds, so the betting operations
// are intentional no-ops: nothing is staked and settlement never moves
// house money.
type Bank struct {
	hand *Hand
}

func NewBank() *Bank {
	return &Bank{hand: NewHand()}
}

func (b *Bank) Name() string {
	return BankName
}

func (b *Bank) Hand() *Hand {
	return b.hand
}

func (b *Bank) PlaceBet(int) error { return nil }

func (b *Bank) WinBet() {}

func (b *Bank) LoseBet() {}

func (b *Bank) PushBet() {}

func (b *Bank) ResetBet() {}

func (b *Bank) resetHand() {
	b.hand = NewHand()
}
