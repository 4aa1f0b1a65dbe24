package systems

import (
	"math"
	"testing"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
)

func newTestHandler(b components.Behavior) (MotionHandler, *components.Motion) {
	m := &components.Motion{MaxSpeed: testCfg.Robot.MaxSpeed}
	return NewMotionHandler(m, b, testCfg), m
}

func TestClampVel(t *testing.T) {
	h, _ := newTestHandler(components.BehaviorFear)

	tests := []struct {
		in, want float64
	}{
		{-3, 0},
		{0, 0},
		{4.5, 4.5},
		{10, 10},
		{12, 10},
	}

	for _, tt := range tests {
		if got := h.ClampVel(tt.in); got != tt.want {
			t.Errorf("ClampVel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUpdateVelocityClampsPolicy(t *testing.T) {
	h, m := newTestHandler(components.BehaviorLove)
	pose := components.Pose{}

	// Love with no light wants 20 on both wheels
	h.UpdateVelocity(Readings{}, false, false, &pose)

	if m.Velocity.Left != 10 || m.Velocity.Right != 10 {
		t.Errorf("velocity = %+v, want clamped (10, 10)", m.Velocity)
	}
	if pose.Theta != 0 {
		t.Errorf("heading changed without touch: %v", pose.Theta)
	}
}

func TestUpdateVelocityStarvingBypassesBehavior(t *testing.T) {
	h, m := newTestHandler(components.BehaviorLove)
	pose := components.Pose{}

	h.UpdateVelocity(Readings{LightLeft: 100, FoodLeft: 10, FoodRight: 5}, true, true, &pose)

	want := components.WheelVelocity{Left: 0.4 * 5, Right: 0.4 * 10}
	if math.Abs(m.Velocity.Left-want.Left) > 1e-9 || math.Abs(m.Velocity.Right-want.Right) > 1e-9 {
		t.Errorf("velocity = %+v, want %+v", m.Velocity, want)
	}
}

func TestUpdateVelocityTouchFlipsHeading(t *testing.T) {
	h, m := newTestHandler(components.BehaviorFear)
	m.Touch = true
	pose := components.Pose{Theta: 30}

	h.UpdateVelocity(Readings{}, false, false, &pose)

	if pose.Theta != 210 {
		t.Errorf("Theta = %v, want 210", pose.Theta)
	}
	if !m.Touch {
		t.Error("UpdateVelocity must not consume the touch flag")
	}
}

func TestManualNudges(t *testing.T) {
	tests := []struct {
		name  string
		start components.WheelVelocity
		nudge func(MotionHandler)
		want  components.WheelVelocity
	}{
		{"turn left", components.WheelVelocity{Left: 5, Right: 5}, MotionHandler.TurnLeft, components.WheelVelocity{Left: 4, Right: 6}},
		{"turn left floors", components.WheelVelocity{Left: 0, Right: 10}, MotionHandler.TurnLeft, components.WheelVelocity{Left: 0, Right: 10}},
		{"turn right", components.WheelVelocity{Left: 5, Right: 5}, MotionHandler.TurnRight, components.WheelVelocity{Left: 6, Right: 4}},
		{"speed up", components.WheelVelocity{Left: 2, Right: 9.5}, MotionHandler.IncreaseSpeed, components.WheelVelocity{Left: 3, Right: 10}},
		{"slow down", components.WheelVelocity{Left: 0.5, Right: 4}, MotionHandler.DecreaseSpeed, components.WheelVelocity{Left: 0, Right: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(components.BehaviorFear)
			m.Velocity = tt.start
			tt.nudge(h)
			if m.Velocity != tt.want {
				t.Errorf("velocity = %+v, want %+v", m.Velocity, tt.want)
			}
		})
	}
}
