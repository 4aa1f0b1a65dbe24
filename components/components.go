// Package components defines ECS components for the arena.
package components

// Kind identifies what an entity is. Wall kinds only appear as collision results.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindRobot
	KindLight
	KindFood
	KindRightWall
	KindLeftWall
	KindTopWall
	KindBottomWall
)

// IsWall reports whether k is one of the four wall kinds.
func (k Kind) IsWall() bool {
	return k >= KindRightWall && k <= KindBottomWall
}

// Identity names an entity and fixes its kind for its lifetime.
type Identity struct {
	ID   int    `inspect:"label"`
	Kind Kind   `inspect:"label"`
	Name string `inspect:"label"`
}

// Behavior is the sensor-to-motor policy a robot runs.
type Behavior uint8

const (
	BehaviorFear Behavior = iota
	BehaviorExplore
	BehaviorLove
	BehaviorAggressive
)

// Behaviors lists every behavior in display order.
var Behaviors = [...]Behavior{BehaviorFear, BehaviorExplore, BehaviorLove, BehaviorAggressive}

// Motion holds the state of a mobile entity. Present on robots and lights only.
type Motion struct {
	Velocity  WheelVelocity
	MaxSpeed  float64 `inspect:"label,fmt:%.1f"`
	Colliding bool    `inspect:"bool"`  // inside a post-collision arc window
	ArcTicks  int     `inspect:"label"` // ticks left in the arc window
	Touch     bool    `inspect:"bool"`  // collision staged for the motion handler
}

// Robot holds behavior, sensors and hunger for robot entities.
type Robot struct {
	Behavior Behavior  `inspect:"label"`
	Sensors  SensorRig `inspect:"skip"`
	Hunger   Hunger    `inspect:"skip"`
}
