package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("", "")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Nil manager methods are no-ops
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir, "run-1")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	for i := 1; i <= 3; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: int32(i * 600), Fear: i}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkRobotDeath, Tick: 1800}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "run-1", "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("telemetry.csv has %d lines, want header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "run_id,window_end") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "run-1,600") {
		t.Errorf("first row = %q", lines[1])
	}

	if _, err := os.Stat(filepath.Join(dir, "run-1", "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}
}

func TestNewRunIDUnique(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b || len(a) != 36 {
		t.Errorf("run IDs %q, %q", a, b)
	}
}
