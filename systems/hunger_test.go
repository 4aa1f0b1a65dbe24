package systems

import (
	"testing"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

func shortHungerConfig() config.RobotConfig {
	cfg := testCfg.Robot
	cfg.HungerTicks = 3
	cfg.StarveTicks = 5
	cfg.DeathTicks = 8
	return cfg
}

func TestHungerProgression(t *testing.T) {
	cfg := shortHungerConfig()
	h := NewHunger(cfg, true)

	want := map[int]HungerState{
		1: NotHungry,
		2: NotHungry,
		3: Hungry,
		4: Hungry,
		5: Starving,
		7: Starving,
		8: Dead,
		9: Dead,
	}

	for tick := 1; tick <= 9; tick++ {
		UpdateHunger(&h)
		if w, ok := want[tick]; ok {
			if got := State(h); got != w {
				t.Errorf("tick %d: state = %v, want %v", tick, got, w)
			}
		}
	}
}

func TestHungerDefaultConstants(t *testing.T) {
	h := NewHunger(testCfg.Robot, true)
	for i := 0; i < testCfg.Robot.HungerTicks-1; i++ {
		UpdateHunger(&h)
	}
	if h.Hungry {
		t.Fatal("hungry one tick early")
	}
	UpdateHunger(&h)
	if !h.Hungry {
		t.Errorf("not hungry after %d ticks", testCfg.Robot.HungerTicks)
	}
}

func TestHungerFrozenWhileFoodDisabled(t *testing.T) {
	cfg := shortHungerConfig()
	h := NewHunger(cfg, false)

	for i := 0; i < 100; i++ {
		UpdateHunger(&h)
	}

	if State(h) != NotHungry {
		t.Errorf("state = %v, want NotHungry", State(h))
	}
	if h.DeathTicks != cfg.DeathTicks {
		t.Errorf("DeathTicks = %d, want frozen at %d", h.DeathTicks, cfg.DeathTicks)
	}
}

func TestResetHunger(t *testing.T) {
	cfg := shortHungerConfig()
	h := NewHunger(cfg, true)
	for i := 0; i < 6; i++ {
		UpdateHunger(&h)
	}
	if !h.Starving {
		t.Fatal("setup: expected starving")
	}

	ResetHunger(&h, cfg)

	want := components.Hunger{HungerTicks: 3, StarveTicks: 5, DeathTicks: 8, FoodEnabled: true}
	if h != want {
		t.Errorf("after reset = %+v, want %+v", h, want)
	}
}

func TestSetFoodEnabledClearsFlags(t *testing.T) {
	cfg := shortHungerConfig()
	h := NewHunger(cfg, true)
	for i := 0; i < 4; i++ {
		UpdateHunger(&h)
	}

	SetFoodEnabled(&h, false, cfg)

	if h.Hungry || h.Starving || h.FoodEnabled {
		t.Errorf("after disable = %+v, want flags cleared", h)
	}
	if h.HungerTicks != cfg.HungerTicks {
		t.Errorf("HungerTicks = %d, want %d", h.HungerTicks, cfg.HungerTicks)
	}

	SetFoodEnabled(&h, true, cfg)
	UpdateHunger(&h)
	if h.HungerTicks != cfg.HungerTicks-1 {
		t.Errorf("countdown did not resume: HungerTicks = %d", h.HungerTicks)
	}
}
