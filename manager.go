package blackjack

import (
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"

	"golang.org/x/net/websocket"
)

// Manager routes websocket messages to the table the connection
// belongs to.
type Manager struct {
	tablesMu sync.Mutex
	tables   map[string]*Table
}

func NewManager() *Manager {
	return &Manager{tables: make(map[string]*Table)}
}

func (m *Manager) Handle(conn *websocket.Conn, msg *Message) error {
	switch msg.Type {
	case "create_table":
		var data CreateTableMessage
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return m.CreateTable(conn, data)
	case "join_table":
		var data JoinTableMessage
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return m.JoinTable(conn, data)
	case "leave_table":
		return m.LeaveTable(conn)
	case "start_game":
		return m.StartGame(conn)
	case "place_bet":
		var data PlaceBetMessage
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return m.PlaceBet(conn, data.Amount)
	case "action":
		var data PlayerActionMessage
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return m.Act(conn, Action(data.Action))
	}
	return errors.New("unknown message type")
}

func (m *Manager) CreateTable(conn *websocket.Conn, msg CreateTableMessage) error {
	m.tablesMu.Lock()
	defer m.tablesMu.Unlock()

	log.Printf("%s: create_table (%+v)", conn.Request().RemoteAddr, msg)

	var code string
	for {
		code = makeTableCode()
		if _, ok := m.tables[code]; !ok {
			break
		}
	}

	table, err := NewTable(code)
	if err != nil {
		return err
	}
	m.tables[code] = table

	if err := table.Join(conn, msg.Name, msg.Money); err != nil {
		return err
	}

	return nil
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func makeTableCode() string {
	var code string
	for i := 0; i < 4; i++ {
		code += string(alphabet[rand.Intn(len(alphabet))])
	}
	return code
}

func (m *Manager) JoinTable(conn *websocket.Conn, msg JoinTableMessage) error {
	code := strings.TrimSpace(strings.ToUpper(msg.Code))
	if code == "" {
		return errors.New("please enter a table code")
	}

	m.tablesMu.Lock()
	table, ok := m.tables[code]
	m.tablesMu.Unlock()

	if !ok {
		return errors.New("table not found")
	}

	log.Printf("%s -> %s: %s (%+v)",
		conn.Request().RemoteAddr, table.code, "join_table", msg)

	if err := table.Join(conn, msg.Name, msg.Money); err != nil {
		return err
	}

	return nil
}

func (m *Manager) LeaveTable(conn *websocket.Conn) error {
	m.tablesMu.Lock()
	defer m.tablesMu.Unlock()

	for _, t := range m.tables {
		if t.MaybeLeave(conn) {
			log.Printf("%s -> %s: %s",
				conn.Request().RemoteAddr, t.code, "leave_table")
			break
		}
	}

	return nil
}

func (m *Manager) StartGame(conn *websocket.Conn) error {
	m.tablesMu.Lock()
	defer m.tablesMu.Unlock()

	for _, t := range m.tables {
		ok, err := t.MaybeStart(conn)
		if err != nil {
			return err
		}
		if ok {
			log.Printf("%s -> %s: %s",
				conn.Request().RemoteAddr, t.code, "start_game")
			break
		}
	}

	return nil
}

func (m *Manager) PlaceBet(conn *websocket.Conn, amount int) error {
	m.tablesMu.Lock()
	defer m.tablesMu.Unlock()

	for _, t := range m.tables {
		ok, err := t.MaybeBet(conn, amount)
		if err != nil {
			return err
		}
		if ok {
			log.Printf("%s -> %s: place_bet (%d)",
				conn.Request().RemoteAddr, t.code, amount)
			break
		}
	}

	return nil
}

func (m *Manager) Act(conn *websocket.Conn, action Action) error {
	m.tablesMu.Lock()
	defer m.tablesMu.Unlock()

	for _, t := range m.tables {
		ok, err := t.MaybeAct(conn, action)
		if err != nil {
			return err
		}
		if ok {
			log.Printf("%s -> %s: action (%s)",
				conn.Request().RemoteAddr, t.code, action)
			break
		}
	}

	return nil
}
