package vizserver

import (
	"encoding/json"
	"fmt"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
)

// Message types sent to clients.
const (
	TypeHello    = "hello"
	TypeSnapshot = "snapshot"
	TypeAck      = "ack"
	TypeError    = "error"
)

// Message types accepted from clients.
const (
	TypeCommand        = "command"
	TypeSetCount       = "set_count"
	TypeSetSensitivity = "set_sensitivity"
	TypeSetFood        = "set_food_enabled"
	TypeNudge          = "nudge"
)

// Outbound wraps every message sent to a client.
type Outbound struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Hello is sent once when a client connects.
type Hello struct {
	RunID      string   `json:"run_id"`
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Categories []string `json:"categories"`
	Nudges     []string `json:"nudges"`
}

// Inbound is a control message from a client. Which fields matter depends on Type.
type Inbound struct {
	Type     string  `json:"type"`
	Command  string  `json:"command,omitempty"`
	Category string  `json:"category,omitempty"`
	N        int     `json:"n,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Enabled  bool    `json:"enabled,omitempty"`
	ID       int     `json:"id,omitempty"`
	Kind     string  `json:"kind,omitempty"`
}

// ParseRequest decodes a client message into an arena request.
func ParseRequest(data []byte) (arena.Request, error) {
	var msg Inbound
	if err := json.Unmarshal(data, &msg); err != nil {
		return arena.Request{}, fmt.Errorf("decoding message: %w", err)
	}
	return msg.Request()
}

// Request converts the message into an arena request.
func (m Inbound) Request() (arena.Request, error) {
	switch m.Type {
	case TypeCommand:
		cmd := arena.ParseCommand(m.Command)
		if cmd == arena.CommandNone {
			return arena.Request{}, fmt.Errorf("unknown command %q", m.Command)
		}
		return arena.Request{Op: arena.OpCommand, Command: cmd}, nil
	case TypeSetCount:
		c, ok := arena.ParseCategory(m.Category)
		if !ok {
			return arena.Request{}, fmt.Errorf("unknown category %q", m.Category)
		}
		return arena.SetCount(c, m.N), nil
	case TypeSetSensitivity:
		return arena.Request{Op: arena.OpSetLightSensitivity, Value: m.Value}, nil
	case TypeSetFood:
		return arena.Request{Op: arena.OpSetFoodEnabled, Flag: m.Enabled}, nil
	case TypeNudge:
		kind, ok := arena.ParseNudge(m.Kind)
		if !ok {
			return arena.Request{}, fmt.Errorf("unknown nudge %q", m.Kind)
		}
		return arena.Request{Op: arena.OpNudge, N: m.ID, Nudge: kind}, nil
	default:
		return arena.Request{}, fmt.Errorf("unknown message type %q", m.Type)
	}
}

// NewHello builds the greeting for an arena.
func NewHello(runID string, width, height float64) Hello {
	cats := make([]string, 0, len(arena.Categories))
	for _, c := range arena.Categories {
		cats = append(cats, c.Key())
	}
	return Hello{
		RunID:      runID,
		Width:      width,
		Height:     height,
		Categories: cats,
		Nudges:     []string{"left", "right", "faster", "slower"},
	}
}
