package vizserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		want    arena.Request
		wantErr bool
	}{
		{"play", `{"type":"command","command":"play"}`, arena.Request{Op: arena.OpCommand, Command: arena.CommandPlay}, false},
		{"reset", `{"type":"command","command":"reset"}`, arena.Request{Op: arena.OpCommand, Command: arena.CommandReset}, false},
		{"robots", `{"type":"set_count","category":"love","n":3}`, arena.Request{Op: arena.OpSetRobotCount, N: 3, Behavior: components.BehaviorLove}, false},
		{"lights", `{"type":"set_count","category":"light","n":2}`, arena.Request{Op: arena.OpSetLightCount, N: 2}, false},
		{"sensitivity", `{"type":"set_sensitivity","value":600}`, arena.Request{Op: arena.OpSetLightSensitivity, Value: 600}, false},
		{"food", `{"type":"set_food_enabled","enabled":true}`, arena.Request{Op: arena.OpSetFoodEnabled, Flag: true}, false},
		{"nudge", `{"type":"nudge","id":4,"kind":"faster"}`, arena.Request{Op: arena.OpNudge, N: 4, Nudge: arena.NudgeFaster}, false},
		{"bad command", `{"type":"command","command":"jump"}`, arena.Request{}, true},
		{"bad category", `{"type":"set_count","category":"wall"}`, arena.Request{}, true},
		{"bad nudge", `{"type":"nudge","kind":"up"}`, arena.Request{}, true},
		{"bad type", `{"type":"explode"}`, arena.Request{}, true},
		{"bad json", `{`, arena.Request{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest([]byte(tt.msg))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("request = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewHello(t *testing.T) {
	h := NewHello("run", 1200, 950)
	if len(h.Categories) != len(arena.Categories) || h.Categories[0] != "fear" || h.Categories[5] != "food" {
		t.Errorf("categories = %v", h.Categories)
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestHubHelloAndRequests(t *testing.T) {
	hub := NewHub(NewHello("run-1", 100, 80), 4, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	var hello struct {
		Type string `json:"type"`
		Data Hello  `json:"data"`
	}
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read hello: %v", err)
	}
	if hello.Type != TypeHello || hello.Data.RunID != "run-1" || hello.Data.Width != 100 {
		t.Fatalf("hello = %+v", hello)
	}

	if err := conn.WriteJSON(Inbound{Type: TypeCommand, Command: "play"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var reply Outbound
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read ack: %v", err)
	}
	if reply.Type != TypeAck {
		t.Fatalf("reply = %+v, want ack", reply)
	}

	a := arena.New(config.Default(), arena.Options{Seed: 1})
	if n := hub.Drain(a); n != 1 {
		t.Fatalf("drained %d requests, want 1", n)
	}
	if a.Status() != arena.StatusPlaying {
		t.Errorf("status = %v, want Playing", a.Status())
	}

	if err := conn.WriteJSON(Inbound{Type: "nope"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read error reply: %v", err)
	}
	if reply.Type != TypeError || reply.Error == "" {
		t.Errorf("reply = %+v, want error", reply)
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(NewHello("run-2", 1200, 950), 4, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	var hello Outbound
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read hello: %v", err)
	}

	// Registration happens after the hello is written
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() != 1 {
		t.Fatalf("client count = %d, want 1", hub.ClientCount())
	}

	a := arena.New(config.Default(), arena.Options{Seed: 2})
	hub.Broadcast(a.Snapshot())

	var msg struct {
		Type string         `json:"type"`
		Data arena.Snapshot `json:"data"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if msg.Type != TypeSnapshot {
		t.Fatalf("type = %q, want snapshot", msg.Type)
	}
	if len(msg.Data.Entities) != len(a.Entities()) {
		t.Errorf("entities = %d, want %d", len(msg.Data.Entities), len(a.Entities()))
	}
	if msg.Data.Counts["fear"] != a.FearRobotCount() {
		t.Errorf("fear count = %d, want %d", msg.Data.Counts["fear"], a.FearRobotCount())
	}
}

func TestHubQueueFull(t *testing.T) {
	hub := NewHub(NewHello("run-3", 10, 10), 1, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	var reply Outbound
	conn.ReadJSON(&reply) // hello

	conn.WriteJSON(Inbound{Type: TypeCommand, Command: "play"})
	conn.ReadJSON(&reply)
	if reply.Type != TypeAck {
		t.Fatalf("first reply = %+v, want ack", reply)
	}
	conn.WriteJSON(Inbound{Type: TypeCommand, Command: "pause"})
	conn.ReadJSON(&reply)
	if reply.Type != TypeError {
		t.Errorf("second reply = %+v, want error", reply)
	}
}

func TestReplyReportsWriteFailure(t *testing.T) {
	hub := NewHub(NewHello("run-4", 10, 10), 4, nil)
	errs := make(chan error, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			errs <- err
			return
		}
		conn.Close()
		errs <- hub.reply(&client{conn: conn}, []byte(`{"type":"command","command":"play"}`))
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	select {
	case err := <-errs:
		if err == nil {
			t.Error("reply on a closed connection returned nil")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not finish")
	}
}
