package blackjack

// PlayerSnapshot is a read-only view of one player.
type PlayerSnapshot struct {
	Name   string `json:"name"`
	Money  int    `json:"money"`
	Bet    int    `json:"bet"`
	Cards  []Card `json:"cards"`
	Value  int    `json:"value"`
	Busted bool   `json:"busted"`
}

// BankSnapshot is a read-only view of the bank's hand. While Concealed
// is true only the first card is shown and the value is withheld; the
// engine always knows the full hand, concealment happens here at the
// boundary.
type BankSnapshot struct {
	Cards     []Card `json:"cards"`
	Value     int    `json:"value,omitempty"`
	Busted    bool   `json:"busted"`
	Concealed bool   `json:"concealed"`
}

// Snapshot is a consistent view of the whole table between engine
// calls.
type Snapshot struct {
	State   string           `json:"state"`
	Current string           `json:"current,omitempty"`
	Players []PlayerSnapshot `json:"players"`
	Bank    BankSnapshot     `json:"bank"`
}

func snapshotPlayer(p *Player) PlayerSnapshot {
	return PlayerSnapshot{
		Name:   p.name,
		Money:  p.money,
		Bet:    p.bet,
		Cards:  p.hand.Cards(),
		Value:  p.hand.Value(),
		Busted: p.hand.IsBusted(),
	}
}

// Snapshot returns the current table state. The bank's hole card stays
// concealed until the bank's turn begins.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{State: g.state.String()}
	if g.state == StatePlayerTurns && g.current >= 0 {
		s.Current = g.players[g.current].name
	}

	s.Players = make([]PlayerSnapshot, 0, len(g.players))
	for _, p := range g.players {
		s.Players = append(s.Players, snapshotPlayer(p))
	}

	cards := g.bank.hand.Cards()
	concealed := g.state == StateNotStarted || g.state == StatePlayerTurns
	if concealed && len(cards) > 1 {
		s.Bank = BankSnapshot{Cards: cards[:1], Concealed: true}
	} else {
		s.Bank = BankSnapshot{
			Cards:     cards,
			Value:     g.bank.hand.Value(),
			Busted:    g.bank.hand.IsBusted(),
			Concealed: concealed,
		}
	}
	return s
}
