package game

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/telemetry"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/vizserver"
)

func headless(t *testing.T, opts Options) *Game {
	t.Helper()
	opts.Headless = true
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessAutoplayAdvances(t *testing.T) {
	g := headless(t, Options{Seed: 1, Autoplay: true, TicksPerFrame: 3})

	g.UpdateHeadless()
	if g.Tick() != 3 {
		t.Errorf("tick = %d, want 3", g.Tick())
	}
	g.UpdateHeadless()
	if g.Tick() != 6 {
		t.Errorf("tick = %d, want 6", g.Tick())
	}
}

func TestHeadlessPausedDoesNotAdvance(t *testing.T) {
	g := headless(t, Options{Seed: 1})

	g.UpdateHeadless()
	if g.Tick() != 0 {
		t.Errorf("tick = %d, want 0 while paused", g.Tick())
	}
	if g.Done() {
		t.Error("paused game reported done")
	}
}

func TestTicksPerFrameClamp(t *testing.T) {
	g := headless(t, Options{Seed: 1})

	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-4, 1},
		{5, 5},
		{MaxTicksPerFrame + 10, MaxTicksPerFrame},
	}
	for _, tt := range tests {
		g.SetTicksPerFrame(tt.in)
		if got := g.TicksPerFrame(); got != tt.want {
			t.Errorf("SetTicksPerFrame(%d) -> %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTelemetryWindowsWritten(t *testing.T) {
	cfg := config.Default()
	cfg.Telemetry.WindowTicks = 5
	dir := t.TempDir()

	var windows []telemetry.WindowStats
	g, err := NewGameWithOptions(Options{
		Config:        cfg,
		Seed:          3,
		Headless:      true,
		Autoplay:      true,
		TicksPerFrame: 10,
		OutputDir:     dir,
		StatsCallback: func(s telemetry.WindowStats) { windows = append(windows, s) },
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}

	g.UpdateHeadless()
	g.Unload()

	if len(windows) != 2 {
		t.Fatalf("windows = %d, want 2", len(windows))
	}
	if windows[1].WindowStartTick != 5 || windows[1].WindowEndTick != 10 {
		t.Errorf("second window = [%d, %d], want [5, 10]", windows[1].WindowStartTick, windows[1].WindowEndTick)
	}

	runDir := filepath.Join(dir, g.RunID())
	for _, name := range []string{"telemetry.csv", "perf.csv", "bookmarks.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	f, err := os.Open(filepath.Join(runDir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines++
	}
	if lines != 3 {
		t.Errorf("telemetry.csv lines = %d, want header + 2", lines)
	}
}

func TestVizFeedControlsArena(t *testing.T) {
	g := headless(t, Options{Seed: 4, VizAddr: "127.0.0.1:0"})

	url := "ws://" + g.VizAddr() + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg vizserver.Outbound
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != vizserver.TypeHello {
		t.Fatalf("hello = %+v, err %v", msg, err)
	}

	if err := conn.WriteJSON(vizserver.Inbound{Type: vizserver.TypeCommand, Command: "play"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != vizserver.TypeAck {
		t.Fatalf("ack = %+v, err %v", msg, err)
	}

	g.UpdateHeadless()
	if g.Arena().Status() != arena.StatusPlaying {
		t.Fatalf("status = %v, want Playing", g.Arena().Status())
	}

	var snap struct {
		Type string         `json:"type"`
		Data arena.Snapshot `json:"data"`
	}
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if snap.Type != vizserver.TypeSnapshot || snap.Data.Status != "Playing" || snap.Data.Tick != 1 {
		t.Errorf("snapshot type %q status %q tick %d", snap.Type, snap.Data.Status, snap.Data.Tick)
	}
	if !strings.Contains(g.VizAddr(), "127.0.0.1:") {
		t.Errorf("addr = %q", g.VizAddr())
	}
}
