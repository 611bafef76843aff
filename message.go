package blackjack

import "encoding/json"

type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type CreateTableMessage struct {
	Name  string `json:"name"`
	Money int    `json:"money"`
}

type JoinTableMessage struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Money int    `json:"money"`
}

type TableLobbyMessage struct {
	Code        string   `json:"code"`
	Host        bool     `json:"host"`
	CanStart    bool     `json:"can_start"`
	PlayerNames []string `json:"player_names"`
}

type GameStartedMessage struct {
	Name        string   `json:"name"`
	PlayerNames []string `json:"player_names"`
}

// BetRequestMessage asks a player to place a bet for the next round.
type BetRequestMessage struct {
	Money int `json:"money"`
}

type PlaceBetMessage struct {
	Amount int `json:"amount"`
}

type PlayerActionMessage struct {
	Action string `json:"action"`
}

type TableStateMessage struct {
	Code  string   `json:"code"`
	Table Snapshot `json:"table"`
}

type RoundSettledMessage struct {
	Results []Result `json:"results"`
}

func MakeMessage(typ string, data interface{}) *Message {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}

	return &Message{typ, b}
}
