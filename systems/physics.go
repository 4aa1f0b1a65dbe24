package systems

import (
	"math"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
)

// Integrate advances a differential-drive pose by dt.
// The heading turns by (right-left)/wheelSeparation radians per unit time,
// then the body moves along the new heading at the mean wheel speed.
// Robots and lights share this integrator.
func Integrate(pose *components.Pose, v components.WheelVelocity, dt, wheelSeparation float64) {
	if dt <= 0 {
		return
	}
	omega := (v.Right - v.Left) / wheelSeparation
	pose.Theta += radToDeg(omega * dt)

	speed := (v.Left + v.Right) / 2
	heading := pose.Radians()
	pose.X += speed * math.Cos(heading) * dt
	pose.Y += speed * math.Sin(heading) * dt
}
