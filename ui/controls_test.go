package ui

import (
	"testing"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

func TestCountRequest(t *testing.T) {
	tests := []struct {
		name    string
		cat     arena.Category
		current int
		slider  float32
		wantOK  bool
		wantOp  arena.Op
		wantN   int
	}{
		{"unchanged", arena.CategoryFear, 5, 5.2, false, 0, 0},
		{"robot up", arena.CategoryLove, 2, 3.6, true, arena.OpSetRobotCount, 4},
		{"light down", arena.CategoryLight, 4, 0.1, true, arena.OpSetLightCount, 0},
		{"food", arena.CategoryFood, 1, 2, true, arena.OpSetFoodCount, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, ok := countRequest(tt.cat, tt.current, tt.slider)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if req.Op != tt.wantOp || req.N != tt.wantN {
				t.Errorf("request = %+v, want op %d n %d", req, tt.wantOp, tt.wantN)
			}
		})
	}

	req, _ := countRequest(arena.CategoryAggressive, 0, 1)
	if req.Behavior != components.BehaviorAggressive {
		t.Errorf("behavior = %v, want Aggressive", req.Behavior)
	}
}

func TestNumeratorRequest(t *testing.T) {
	if _, ok := numeratorRequest(1200, 1199.8); ok {
		t.Error("rounded-equal value produced a request")
	}
	req, ok := numeratorRequest(1200, 600.4)
	if !ok || req.Op != arena.OpSetLightSensitivity || req.Value != 600 {
		t.Errorf("request = %+v, ok = %v", req, ok)
	}
}

func TestToggleCommand(t *testing.T) {
	tests := []struct {
		status arena.Status
		want   arena.Command
	}{
		{arena.StatusPlaying, arena.CommandPause},
		{arena.StatusPaused, arena.CommandPlay},
		{arena.StatusLost, arena.CommandPlay},
	}
	for _, tt := range tests {
		if got := toggleCommand(tt.status); got != tt.want {
			t.Errorf("toggleCommand(%v) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestControlsLimits(t *testing.T) {
	cfg := config.Default()
	c := NewControlsPanel(0, 0, 300, cfg)

	if c.limits[arena.CategoryFear] != cfg.Population.MaxRobotsPerBehavior {
		t.Errorf("fear limit = %d", c.limits[arena.CategoryFear])
	}
	if c.limits[arena.CategoryLight] != cfg.Population.MaxLights {
		t.Errorf("light limit = %d", c.limits[arena.CategoryLight])
	}
	if c.limits[arena.CategoryFood] != cfg.Population.MaxFood {
		t.Errorf("food limit = %d", c.limits[arena.CategoryFood])
	}
}

func TestFoodToggle(t *testing.T) {
	cfg := config.Default()
	c := NewControlsPanel(0, 0, 300, cfg)

	off := c.foodToggle(true)
	if off.Op != arena.OpSetFoodCount || off.N != 0 {
		t.Errorf("toggle off = %+v", off)
	}
	on := c.foodToggle(false)
	if on.Op != arena.OpSetFoodCount || on.N != cfg.Population.Food {
		t.Errorf("toggle on = %+v", on)
	}

	cfg.Population.Food = 0
	if req := NewControlsPanel(0, 0, 300, cfg).foodToggle(false); req.N != 1 {
		t.Errorf("toggle on with no configured food = %+v, want 1", req)
	}
}

func TestControlsDataFrom(t *testing.T) {
	cfg := config.Default()
	a := arena.New(cfg, arena.Options{Seed: 1})

	d := ControlsDataFrom(a)
	if d.Counts[arena.CategoryFear] != cfg.Population.Fear {
		t.Errorf("fear count = %d, want %d", d.Counts[arena.CategoryFear], cfg.Population.Fear)
	}
	if d.Counts[arena.CategoryFood] != cfg.Population.Food {
		t.Errorf("food count = %d, want %d", d.Counts[arena.CategoryFood], cfg.Population.Food)
	}
	if d.Numerator != cfg.Sensor.Numerator {
		t.Errorf("numerator = %v", d.Numerator)
	}
}
