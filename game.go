package blackjack

import (
	"fmt"
)

// State is the phase of the current round.
type State int

const (
	StateNotStarted  State = 0
	StatePlayerTurns State = 1
	StateBankTurn    State = 2
	StateSettled     State = 3
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StatePlayerTurns:
		return "waiting for players"
	case StateBankTurn:
		return "bank's turn"
	case StateSettled:
		return "settled"
	}
	return "unknown"
}

type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
)

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomePush Outcome = "push"
	OutcomeBust Outcome = "bust"
)

// Seat is a roster entry for NewGame.
type Seat struct {
	Name  string `json:"name"`
	Money int    `json:"money"`
}

// Result is one player's settlement for a round.
type Result struct {
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
	Money   int     `json:"money"`
}

// Game plays rounds of blackjack for a fixed roster of players against
// the bank. Turn order follows roster order. A Game is not safe for
// concurrent use; callers drive it one operation at a time and read
// state via Snapshot between calls.
type Game struct {
	players []*Player
	bank    *Bank

	deck     *Deck
	state    State
	current  int // index of the acting player, -1 outside the player phase
	unbet    map[string]bool
	outcomes map[string]Outcome
	results  []Result

	newDeck func() *Deck
}

// NewGame seats the roster in the given order. Names must be unique;
// money carries across rounds until the Game is discarded.
func NewGame(roster []Seat) (*Game, error) {
	if len(roster) < 1 || len(roster) > 7 {
		return nil, fmt.Errorf("number of players should be between 1 and 7")
	}

	players := make([]*Player, 0, len(roster))
	seen := make(map[string]bool)
	for _, seat := range roster {
		p, err := NewPlayer(seat.Name, seat.Money)
		if err != nil {
			return nil, err
		}
		if seen[p.name] {
			return nil, &DuplicateNameError{Name: p.name}
		}
		seen[p.name] = true
		players = append(players, p)
	}

	g := &Game{
		players: players,
		bank:    NewBank(),
		current: -1,
		newDeck: NewDeck,
	}
	g.unbet = g.allNames()
	return g, nil
}

func (g *Game) allNames() map[string]bool {
	names := make(map[string]bool, len(g.players))
	for _, p := range g.players {
		names[p.name] = true
	}
	return names
}

func (g *Game) player(name string) *Player {
	for _, p := range g.players {
		if p.name == name {
			return p
		}
	}
	return nil
}

// Players returns the roster in turn order.
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Game) Bank() *Bank {
	return g.bank
}

func (g *Game) State() State {
	return g.state
}

// StartRound places each player's bet and, once every player has a bet
// down, deals two cards to every player and two to the bank. A bet
// that fails leaves that player unbet without disturbing the others;
// the returned BetErrors names exactly the players whose bets must be
// retried before the round can begin.
func (g *Game) StartRound(bets map[string]int) error {
	if g.state != StateNotStarted && g.state != StateSettled {
		return &PhaseError{Op: "start a round", State: g.state}
	}

	for name := range bets {
		if g.player(name) == nil {
			return fmt.Errorf("no player named %q", name)
		}
	}

	betErrs := make(BetErrors)
	for _, p := range g.players {
		amount, ok := bets[p.name]
		if !ok {
			if g.unbet[p.name] {
				betErrs[p.name] = fmt.Errorf("no bet placed")
			}
			continue
		}
		if err := p.PlaceBet(amount); err != nil {
			betErrs[p.name] = err
			continue
		}
		delete(g.unbet, p.name)
	}
	if len(betErrs) > 0 {
		return betErrs
	}

	return g.deal()
}

func (g *Game) deal() error {
	deck := g.newDeck()

	for _, p := range g.players {
		p.resetHand()
		if err := p.hand.Start(deck); err != nil {
			return err
		}
	}
	g.bank.resetHand()
	if err := g.bank.hand.Start(deck); err != nil {
		return err
	}

	g.deck = deck
	g.outcomes = make(map[string]Outcome)
	g.results = nil
	g.state = StatePlayerTurns
	g.current = 0
	return nil
}

// PlayerAction applies a hit or stand for the named player and returns
// their updated hand. A hit that busts forfeits the bet on the spot
// and ends the turn. Once the last player is resolved the round moves
// to the bank's turn.
func (g *Game) PlayerAction(name string, action Action) (PlayerSnapshot, error) {
	if g.state != StatePlayerTurns {
		return PlayerSnapshot{}, &PhaseError{Op: string(action), State: g.state}
	}

	cur := g.players[g.current]
	if cur.name != name {
		return PlayerSnapshot{}, &NotCurrentPlayerError{Name: name, Current: cur.name}
	}

	switch action {
	case ActionHit:
		c, err := g.deck.Deal()
		if err != nil {
			return PlayerSnapshot{}, err
		}
		cur.hand.AddCard(c)
		if cur.hand.IsBusted() {
			cur.LoseBet()
			g.outcomes[cur.name] = OutcomeBust
			g.advance()
		}
	case ActionStand:
		g.advance()
	default:
		return PlayerSnapshot{}, fmt.Errorf("unknown action %q", action)
	}

	return snapshotPlayer(cur), nil
}

func (g *Game) advance() {
	g.current++
	if g.current >= len(g.players) {
		g.current = -1
		g.state = StateBankTurn
	}
}

// AdvanceBankAndSettle draws for the bank until its hand reaches 17,
// soft or hard, then settles every player against the bank's final
// value. Calling it again after settlement returns the recorded
// results without touching any balance.
func (g *Game) AdvanceBankAndSettle() ([]Result, error) {
	if g.state == StateSettled && g.results != nil {
		results := make([]Result, len(g.results))
		copy(results, g.results)
		return results, nil
	}
	if g.state != StateBankTurn {
		return nil, &PhaseError{Op: "settle", State: g.state}
	}

	for g.bank.hand.Value() < 17 {
		c, err := g.deck.Deal()
		if err != nil {
			return nil, err
		}
		g.bank.hand.AddCard(c)
	}

	return g.settle(), nil
}

// settle resolves every player from final hand values only. Players
// who busted during their turn already forfeited their bet; they are
// reported without a second deduction.
func (g *Game) settle() []Result {
	bankValue := g.bank.hand.Value()
	bankBusted := g.bank.hand.IsBusted()

	results := make([]Result, 0, len(g.players))
	for _, p := range g.players {
		outcome, done := g.outcomes[p.name]
		if !done {
			switch {
			case p.hand.IsBusted():
				outcome = OutcomeBust
				p.LoseBet()
			case bankBusted || p.hand.Value() > bankValue:
				outcome = OutcomeWin
				p.WinBet()
			case p.hand.Value() < bankValue:
				outcome = OutcomeLose
				p.LoseBet()
			default:
				outcome = OutcomePush
				p.PushBet()
			}
		}
		results = append(results, Result{Name: p.name, Outcome: outcome, Money: p.money})
		p.ResetBet()
	}
	g.bank.ResetBet()

	g.results = results
	g.outcomes = nil
	g.unbet = g.allNames()
	g.state = StateSettled

	out := make([]Result, len(results))
	copy(out, results)
	return out
}

// PlayRound runs one whole round: bets, every player's turn driven by
// decide, the bank's draw and settlement.
func (g *Game) PlayRound(bets map[string]int, decide func(PlayerSnapshot) Action) ([]Result, error) {
	if err := g.StartRound(bets); err != nil {
		return nil, err
	}
	for g.state == StatePlayerTurns {
		p := g.players[g.current]
		if _, err := g.PlayerAction(p.name, decide(snapshotPlayer(p))); err != nil {
			return nil, err
		}
	}
	return g.AdvanceBankAndSettle()
}
