package systems

import (
	"math"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
)

// WallCollision returns the wall a disc touches, or KindUndefined.
// Walls are checked right, left, bottom, top; the first hit wins.
func WallCollision(pose components.Pose, radius, width, height float64) components.Kind {
	switch {
	case pose.X+radius >= width:
		return components.KindRightWall
	case pose.X-radius <= 0:
		return components.KindLeftWall
	case pose.Y+radius >= height:
		return components.KindBottomWall
	case pose.Y-radius <= 0:
		return components.KindTopWall
	}
	return components.KindUndefined
}

// SnapFromWall moves a disc to sit inset units clear of the given wall.
func SnapFromWall(pose *components.Pose, radius float64, wall components.Kind, width, height, inset float64) {
	switch wall {
	case components.KindRightWall:
		pose.X = width - (radius + inset)
	case components.KindLeftWall:
		pose.X = radius + inset
	case components.KindBottomWall:
		pose.Y = height - (radius + inset)
	case components.KindTopWall:
		pose.Y = radius + inset
	}
}

// Overlapping reports whether two discs touch or intersect.
func Overlapping(a components.Pose, ra float64, b components.Pose, rb float64) bool {
	return a.DistanceTo(b) <= ra+rb
}

// SeparateFrom pushes mobile directly away from other until the gap between
// the two discs equals margin. Only mobile moves.
func SeparateFrom(mobile *components.Pose, rm float64, other components.Pose, ro, margin float64) {
	d := mobile.DistanceTo(other)
	move := rm + ro - d + margin
	angle := math.Atan2(mobile.Y-other.Y, mobile.X-other.X)
	mobile.X += move * math.Cos(angle)
	mobile.Y += move * math.Sin(angle)
}

// BeginArc flips the heading and opens a post-collision arc window of arcTicks.
func BeginArc(pose *components.Pose, m *components.Motion, arcTicks int) {
	pose.Theta += 180
	m.Colliding = true
	m.ArcTicks = arcTicks
}

// StepArc consumes one tick of the arc window and reports whether the entity
// is still inside it. Leaving the window clears Colliding.
func StepArc(m *components.Motion) bool {
	if !m.Colliding {
		return false
	}
	if m.ArcTicks > 0 {
		m.ArcTicks--
		return true
	}
	m.Colliding = false
	return false
}
