package components

import "math"

// Pose is a planar position with a heading in degrees.
// Theta is not wrapped; consumers use it through sin/cos.
type Pose struct {
	X, Y  float64
	Theta float64 `inspect:"angle"`
}

// DistanceTo returns the Euclidean distance between two poses.
func (p Pose) DistanceTo(o Pose) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Radians returns the heading in radians.
func (p Pose) Radians() float64 {
	return p.Theta * math.Pi / 180
}

// WheelVelocity is a pair of differential-drive wheel speeds.
type WheelVelocity struct {
	Left, Right float64
}
