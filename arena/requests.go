package arena

import "github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"

// Op identifies a configuration request.
type Op uint8

const (
	OpNone Op = iota
	OpCommand
	OpSetRobotCount
	OpSetLightCount
	OpSetFoodCount
	OpSetLightSensitivity
	OpSetFoodEnabled
	OpNudge
)

// Request is a value-typed configuration change from a UI or network client.
type Request struct {
	Op       Op
	Command  Command
	N        int
	Behavior components.Behavior
	Value    float64
	Flag     bool
	Nudge    NudgeKind
}

// Apply dispatches a request. Requests made during a tick are deferred to
// the end of that tick.
func (a *Arena) Apply(req Request) {
	switch req.Op {
	case OpCommand:
		a.AcceptCommand(req.Command)
	case OpSetRobotCount:
		a.ChangeRobotCount(req.N, req.Behavior)
	case OpSetLightCount:
		a.ChangeLightCount(req.N)
	case OpSetFoodCount:
		a.ChangeFoodCount(req.N)
	case OpSetLightSensitivity:
		a.SetLightSensorNumerator(req.Value)
	case OpSetFoodEnabled:
		a.SetFoodEnabled(req.Flag)
	case OpNudge:
		a.Nudge(req.N, req.Nudge)
	}
}

// SetCount builds the request that sets a category's population to n.
func SetCount(c Category, n int) Request {
	switch c {
	case CategoryLight:
		return Request{Op: OpSetLightCount, N: n}
	case CategoryFood:
		return Request{Op: OpSetFoodCount, N: n}
	default:
		return Request{Op: OpSetRobotCount, N: n, Behavior: c.Behavior()}
	}
}

// Behavior returns the behavior of a robot category. Non-robot categories map to Fear.
func (c Category) Behavior() components.Behavior {
	switch c {
	case CategoryExplore:
		return components.BehaviorExplore
	case CategoryLove:
		return components.BehaviorLove
	case CategoryAggressive:
		return components.BehaviorAggressive
	default:
		return components.BehaviorFear
	}
}

// applyPending runs requests deferred during the last tick, in arrival order.
func (a *Arena) applyPending() {
	if len(a.pending) == 0 {
		return
	}
	pending := a.pending
	a.pending = nil
	for _, req := range pending {
		a.Apply(req)
	}
}
