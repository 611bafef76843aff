package blackjack

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/net/websocket"
)

const maxSeats = 7

type seat struct {
	conn  *websocket.Conn
	name  string
	money int
}

// Table binds websocket connections to one Game. The lobby phase
// collects seats; once started, the table forwards bets and actions to
// the engine and broadcasts a snapshot after every change.
type Table struct {
	code string

	mu    sync.Mutex
	seats []*seat
	game  *Game
	bets  map[string]int
}

func NewTable(code string) (*Table, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return nil, errors.New("no table code provided")
	}

	return &Table{code: code, bets: make(map[string]int)}, nil
}

func (t *Table) Join(conn *websocket.Conn, name string, money int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conn == nil {
		return errors.New("invalid connection")
	}

	if t.game != nil {
		return errors.New("this game has already started")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("please enter your name")
	}

	if name == BankName {
		return errors.New("that name is reserved for the house")
	}

	if money <= 0 {
		return errors.New("please bring a positive amount of money")
	}

	for _, s := range t.seats {
		if s.conn == conn {
			return errors.New("you're already at this table")
		}
		if s.name == name {
			return errors.New("that name is already taken")
		}
	}

	if len(t.seats) == maxSeats {
		return errors.New("this table is full")
	}

	t.seats = append(t.seats, &seat{conn, name, money})
	t.sendLobby()

	return nil
}

// MaybeLeave removes conn's seat if it belongs to this table. A player
// who leaves mid-round is stood automatically when their turn comes.
func (t *Table) MaybeLeave(conn *websocket.Conn) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	var res bool
	var newSeats []*seat
	for _, s := range t.seats {
		if conn == s.conn {
			res = true
			continue
		}
		newSeats = append(newSeats, s)
	}
	if !res {
		return false
	}
	t.seats = newSeats

	if t.game == nil {
		t.sendLobby()
		return true
	}

	t.standAbsent()
	t.sendState()

	if t.game.State() == StateBankTurn {
		t.settle()
	}

	return true
}

// MaybeStart starts the game if conn is the table's host.
func (t *Table) MaybeStart(conn *websocket.Conn) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var found bool
	for i, s := range t.seats {
		if s.conn == conn {
			if i != 0 {
				return true, errors.New("only the host can start the game")
			}
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}

	if t.game != nil {
		return true, errors.New("this game has already started")
	}

	roster := make([]Seat, 0, len(t.seats))
	var playerNames []string
	for _, s := range t.seats {
		roster = append(roster, Seat{Name: s.name, Money: s.money})
		playerNames = append(playerNames, s.name)
	}

	game, err := NewGame(roster)
	if err != nil {
		return true, err
	}
	t.game = game

	for _, s := range t.seats {
		websocket.JSON.Send(s.conn, MakeMessage("game_started", GameStartedMessage{
			Name:        s.name,
			PlayerNames: playerNames,
		}))
	}
	t.requestBets()

	return true, nil
}

// MaybeBet records conn's bet. Once every seated player has a bet
// down, the round is dealt.
func (t *Table) MaybeBet(conn *websocket.Conn, amount int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.seat(conn)
	if s == nil {
		return false, nil
	}

	if t.game == nil {
		return true, errors.New("the game hasn't started yet")
	}

	if state := t.game.State(); state != StateNotStarted && state != StateSettled {
		return true, errors.New("bets can't be placed during a round")
	}

	t.bets[s.name] = amount
	if !t.allBetsIn() {
		return true, nil
	}

	if err := t.game.StartRound(t.bets); err != nil {
		var betErrs BetErrors
		if !errors.As(err, &betErrs) {
			return true, err
		}
		for name, betErr := range betErrs {
			delete(t.bets, name)
			if failed := t.seatByName(name); failed != nil {
				websocket.JSON.Send(failed.conn, MakeMessage("error", betErr.Error()))
			}
		}
		return true, nil
	}

	t.bets = make(map[string]int)
	t.standAbsent()
	t.sendState()

	if t.game.State() == StateBankTurn {
		if err := t.settle(); err != nil {
			return true, err
		}
	}

	return true, nil
}

// MaybeAct applies a hit or stand from conn. When the last player is
// resolved the bank plays, the round settles and the next round's bets
// are requested.
func (t *Table) MaybeAct(conn *websocket.Conn, action Action) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.seat(conn)
	if s == nil {
		return false, nil
	}

	if t.game == nil {
		return true, errors.New("the game hasn't started yet")
	}

	if _, err := t.game.PlayerAction(s.name, action); err != nil {
		return true, err
	}
	t.standAbsent()
	t.sendState()

	if t.game.State() == StateBankTurn {
		if err := t.settle(); err != nil {
			return true, err
		}
	}

	return true, nil
}

func (t *Table) settle() error {
	results, err := t.game.AdvanceBankAndSettle()
	if err != nil {
		return err
	}

	t.sendState()
	for _, s := range t.seats {
		websocket.JSON.Send(s.conn, MakeMessage("round_settled", RoundSettledMessage{
			Results: results,
		}))
	}
	t.requestBets()
	return nil
}

// standAbsent stands in for players whose connection has gone away so
// the round can't stall on their turn.
func (t *Table) standAbsent() {
	if t.game == nil {
		return
	}
	for t.game.State() == StatePlayerTurns {
		current := t.game.Snapshot().Current
		if t.seatByName(current) != nil {
			return
		}
		if _, err := t.game.PlayerAction(current, ActionStand); err != nil {
			return
		}
	}
}

// allBetsIn reports whether every player with a live connection has
// placed a bet. Departed players are staked at zero.
func (t *Table) allBetsIn() bool {
	for _, p := range t.game.Players() {
		if _, ok := t.bets[p.Name()]; ok {
			continue
		}
		if t.seatByName(p.Name()) == nil {
			t.bets[p.Name()] = 0
			continue
		}
		return false
	}
	return true
}

func (t *Table) requestBets() {
	for _, s := range t.seats {
		if p := t.game.player(s.name); p != nil {
			websocket.JSON.Send(s.conn, MakeMessage("bet_request", BetRequestMessage{
				Money: p.Money(),
			}))
		}
	}
}

func (t *Table) seat(conn *websocket.Conn) *seat {
	for _, s := range t.seats {
		if s.conn == conn {
			return s
		}
	}
	return nil
}

func (t *Table) seatByName(name string) *seat {
	for _, s := range t.seats {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (t *Table) sendLobby() {
	var playerNames []string
	for _, s := range t.seats {
		playerNames = append(playerNames, s.name)
	}

	for i, s := range t.seats {
		websocket.JSON.Send(s.conn, MakeMessage("table_lobby", TableLobbyMessage{
			Code:        t.code,
			Host:        i == 0,
			CanStart:    len(t.seats) >= 1,
			PlayerNames: playerNames,
		}))
	}
}

func (t *Table) sendState() {
	snapshot := t.game.Snapshot()
	for _, s := range t.seats {
		websocket.JSON.Send(s.conn, MakeMessage("table_state", TableStateMessage{
			Code:  t.code,
			Table: snapshot,
		}))
	}
}
