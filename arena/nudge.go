package arena

import (
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/systems"
)

// NudgeKind is a manual wheel adjustment.
type NudgeKind uint8

const (
	NudgeTurnLeft NudgeKind = iota
	NudgeTurnRight
	NudgeFaster
	NudgeSlower
)

// ParseNudge maps a nudge name to a NudgeKind.
func ParseNudge(s string) (NudgeKind, bool) {
	switch s {
	case "left":
		return NudgeTurnLeft, true
	case "right":
		return NudgeTurnRight, true
	case "faster":
		return NudgeFaster, true
	case "slower":
		return NudgeSlower, true
	default:
		return 0, false
	}
}

// Nudge applies a manual wheel adjustment to the robot with the given id.
// The behavior policy overwrites it on the robot's next update.
// It reports whether a robot was found. During a tick the nudge is queued
// for the tick boundary.
func (a *Arena) Nudge(id int, kind NudgeKind) bool {
	e, ok := a.lookup(id)
	if !ok || a.idMap.Get(e).Kind != components.KindRobot {
		return false
	}
	if a.stepping {
		a.pending = append(a.pending, Request{Op: OpNudge, N: id, Nudge: kind})
		return true
	}

	h := systems.NewMotionHandler(a.motionMap.Get(e), a.robotMap.Get(e).Behavior, a.cfg)
	switch kind {
	case NudgeTurnLeft:
		h.TurnLeft()
	case NudgeTurnRight:
		h.TurnRight()
	case NudgeFaster:
		h.IncreaseSpeed()
	case NudgeSlower:
		h.DecreaseSpeed()
	}
	return true
}
