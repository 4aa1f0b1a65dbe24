package systems

import (
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

// HungerState is the most severe hunger flag currently set.
type HungerState uint8

const (
	NotHungry HungerState = iota
	Hungry
	Starving
	Dead
)

// String returns the display name for a HungerState.
func (s HungerState) String() string {
	switch s {
	case Hungry:
		return "Hungry"
	case Starving:
		return "Starving"
	case Dead:
		return "Dead"
	default:
		return "NotHungry"
	}
}

// NewHunger returns fresh timers.
func NewHunger(cfg config.RobotConfig, foodEnabled bool) components.Hunger {
	h := components.Hunger{FoodEnabled: foodEnabled}
	ResetHunger(&h, cfg)
	return h
}

// UpdateHunger counts the timers down one tick. Timers only run while food is
// enabled. Each flag latches once its counter reaches zero.
func UpdateHunger(h *components.Hunger) {
	if !h.FoodEnabled {
		return
	}
	if !h.Dead {
		h.DeathTicks--
		if h.DeathTicks <= 0 {
			h.Dead = true
		}
	}
	if !h.Starving {
		h.StarveTicks--
		if h.StarveTicks <= 0 {
			h.Starving = true
		}
	}
	if !h.Hungry {
		h.HungerTicks--
		if h.HungerTicks <= 0 {
			h.Hungry = true
		}
	}
}

// ResetHunger restores all counters and clears Hungry and Starving.
// Dead is terminal and left as is.
func ResetHunger(h *components.Hunger, cfg config.RobotConfig) {
	h.HungerTicks = cfg.HungerTicks
	h.StarveTicks = cfg.StarveTicks
	h.DeathTicks = cfg.DeathTicks
	h.Hungry = false
	h.Starving = false
}

// SetFoodEnabled switches hunger tracking and restarts the timers.
func SetFoodEnabled(h *components.Hunger, enabled bool, cfg config.RobotConfig) {
	h.FoodEnabled = enabled
	ResetHunger(h, cfg)
}

// State returns the most severe flag set on h.
func State(h components.Hunger) HungerState {
	switch {
	case h.Dead:
		return Dead
	case h.Starving:
		return Starving
	case h.Hungry:
		return Hungry
	default:
		return NotHungry
	}
}
