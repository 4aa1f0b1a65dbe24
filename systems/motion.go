package systems

import (
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

// MotionHandler drives a robot's wheel velocity from its behavior policy.
// Every velocity assignment goes through ClampVel.
type MotionHandler struct {
	motion   *components.Motion
	behavior components.Behavior
	robot    config.RobotConfig
	sensor   config.SensorConfig
}

// NewMotionHandler binds a handler to a robot's motion state.
func NewMotionHandler(m *components.Motion, b components.Behavior, cfg *config.Config) MotionHandler {
	return MotionHandler{motion: m, behavior: b, robot: cfg.Robot, sensor: cfg.Sensor}
}

// ClampVel limits a wheel speed to [0, MaxSpeed].
func (h MotionHandler) ClampVel(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v > h.motion.MaxSpeed {
		return h.motion.MaxSpeed
	}
	return v
}

// Velocity returns the current wheel velocity.
func (h MotionHandler) Velocity() components.WheelVelocity {
	return h.motion.Velocity
}

// SetVelocity assigns clamped wheel speeds.
func (h MotionHandler) SetVelocity(left, right float64) {
	h.motion.Velocity = components.WheelVelocity{Left: h.ClampVel(left), Right: h.ClampVel(right)}
}

// UpdateVelocity recomputes the wheel velocity from the latest readings.
// A starving robot ignores its behavior and steers straight for food.
// A staged touch flips the heading; clearing Touch is left to the caller.
func (h MotionHandler) UpdateVelocity(r Readings, hungry, starving bool, pose *components.Pose) {
	var v components.WheelVelocity
	if starving {
		v = components.WheelVelocity{
			Left:  h.robot.StarveGain * r.FoodRight,
			Right: h.robot.StarveGain * r.FoodLeft,
		}
	} else {
		v = Movement(h.behavior, r, hungry, h.sensor)
	}
	h.SetVelocity(v.Left, v.Right)

	if h.motion.Touch {
		pose.Theta += 180
	}
}

// TurnLeft slows the left wheel and speeds up the right one.
func (h MotionHandler) TurnLeft() {
	v := h.motion.Velocity
	h.motion.Velocity = components.WheelVelocity{
		Left:  clampFloat(v.Left-h.robot.AngleDelta, 0, h.motion.MaxSpeed),
		Right: clampFloat(v.Right+h.robot.AngleDelta, 0, h.motion.MaxSpeed),
	}
}

// TurnRight slows the right wheel and speeds up the left one.
func (h MotionHandler) TurnRight() {
	v := h.motion.Velocity
	h.motion.Velocity = components.WheelVelocity{
		Left:  clampFloat(v.Left+h.robot.AngleDelta, 0, h.motion.MaxSpeed),
		Right: clampFloat(v.Right-h.robot.AngleDelta, 0, h.motion.MaxSpeed),
	}
}

// IncreaseSpeed raises both wheels by the speed delta.
func (h MotionHandler) IncreaseSpeed() {
	v := h.motion.Velocity
	h.SetVelocity(v.Left+h.robot.SpeedDelta, v.Right+h.robot.SpeedDelta)
}

// DecreaseSpeed lowers both wheels by the speed delta.
func (h MotionHandler) DecreaseSpeed() {
	v := h.motion.Velocity
	h.SetVelocity(v.Left-h.robot.SpeedDelta, v.Right-h.robot.SpeedDelta)
}
