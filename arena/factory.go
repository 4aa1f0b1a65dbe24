package arena

import (
	"fmt"
	"math/rand"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/systems"
)

// Category groups entities for population control.
type Category uint8

const (
	CategoryFear Category = iota
	CategoryExplore
	CategoryLove
	CategoryAggressive
	CategoryLight
	CategoryFood
)

// Categories lists every category in display order.
var Categories = [...]Category{CategoryFear, CategoryExplore, CategoryLove, CategoryAggressive, CategoryLight, CategoryFood}

// RobotCategory returns the category for robots running b.
func RobotCategory(b components.Behavior) Category {
	switch b {
	case components.BehaviorExplore:
		return CategoryExplore
	case components.BehaviorLove:
		return CategoryLove
	case components.BehaviorAggressive:
		return CategoryAggressive
	default:
		return CategoryFear
	}
}

// String returns the display name for a Category.
func (c Category) String() string {
	switch c {
	case CategoryFear:
		return "Fear"
	case CategoryExplore:
		return "Explore"
	case CategoryLove:
		return "Love"
	case CategoryAggressive:
		return "Aggressive"
	case CategoryLight:
		return "Light"
	default:
		return "Food"
	}
}

// ParseCategory maps a lowercase category name to a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if s == c.Key() {
			return c, true
		}
	}
	return 0, false
}

// Key returns the lowercase name used in snapshots and client messages.
func (c Category) Key() string {
	switch c {
	case CategoryFear:
		return "fear"
	case CategoryExplore:
		return "explore"
	case CategoryLove:
		return "love"
	case CategoryAggressive:
		return "aggressive"
	case CategoryLight:
		return "light"
	default:
		return "food"
	}
}

// Disc is an occupied circle used for placement.
type Disc struct {
	X, Y, R float64
}

// RobotSpec is the component bundle for a new robot.
type RobotSpec struct {
	Identity components.Identity
	Pose     components.Pose
	Body     components.Body
	Motion   components.Motion
	Robot    components.Robot
}

// LightSpec is the component bundle for a new light.
type LightSpec struct {
	Identity components.Identity
	Pose     components.Pose
	Body     components.Body
	Motion   components.Motion
}

// FoodSpec is the component bundle for a new food source.
type FoodSpec struct {
	Identity components.Identity
	Pose     components.Pose
	Body     components.Body
}

// EntityFactory builds component bundles with unique ids, names and
// randomized, non-overlapping placement.
type EntityFactory struct {
	cfg    *config.Config
	rng    *rand.Rand
	nextID int
	serial map[Category]int
}

// NewEntityFactory creates a factory drawing randomness from rng.
func NewEntityFactory(cfg *config.Config, rng *rand.Rand) *EntityFactory {
	return &EntityFactory{
		cfg:    cfg,
		rng:    rng,
		serial: make(map[Category]int, len(Categories)),
	}
}

// identity assigns the next id and a per-category serial name.
func (f *EntityFactory) identity(kind components.Kind, cat Category) components.Identity {
	f.nextID++
	f.serial[cat]++
	name := fmt.Sprintf("%s-%d", cat, f.serial[cat])
	if kind == components.KindRobot {
		name = "Robot-" + name
	}
	return components.Identity{ID: f.nextID, Kind: kind, Name: name}
}

// RobotRadius draws a robot radius in [MinRadius, MaxRadius].
func (f *EntityFactory) RobotRadius() float64 {
	r := f.cfg.Robot
	return r.MinRadius + f.rng.Float64()*(r.MaxRadius-r.MinRadius)
}

// ResetLightRadius draws a light radius in [MinRadius, MaxRadius].
// New lights start at InitialRadius instead.
func (f *EntityFactory) ResetLightRadius() float64 {
	l := f.cfg.Light
	return l.MinRadius + f.rng.Float64()*(l.MaxRadius-l.MinRadius)
}

// RandomPose picks a grid cell for a disc of the given radius that does not
// overlap any occupied disc. After MaxAttempts the last candidate is used.
// The heading is uniform in [0, 360).
func (f *EntityFactory) RandomPose(radius float64, occupied []Disc) components.Pose {
	p := f.cfg.Placement
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var pose components.Pose
	for i := 0; i < attempts; i++ {
		pose = components.Pose{
			X: clampAxis(p.Offset+float64(f.rng.Intn(p.Columns))*p.CellSize, radius, f.cfg.Arena.Width),
			Y: clampAxis(p.Offset+float64(f.rng.Intn(p.Rows))*p.CellSize, radius, f.cfg.Arena.Height),
		}
		if isClear(pose, radius, occupied) {
			break
		}
	}
	pose.Theta = f.rng.Float64() * 360
	return pose
}

// clampAxis keeps a coordinate inside [0, limit] where the arena allows it.
func clampAxis(v, radius, limit float64) float64 {
	if v > limit-radius && limit-radius >= 0 {
		return limit - radius
	}
	return v
}

func isClear(pose components.Pose, radius float64, occupied []Disc) bool {
	for _, d := range occupied {
		dx, dy := pose.X-d.X, pose.Y-d.Y
		if dx*dx+dy*dy <= (radius+d.R)*(radius+d.R) {
			return false
		}
	}
	return true
}

// NewRobot builds a robot running b. Hunger tracking follows foodEnabled and
// both light sensors use lightNumerator.
func (f *EntityFactory) NewRobot(b components.Behavior, occupied []Disc, foodEnabled bool, lightNumerator float64) RobotSpec {
	cfg := f.cfg
	radius := f.RobotRadius()
	pose := f.RandomPose(radius, occupied)

	rig := components.NewSensorRig(cfg.Sensor.Angle, cfg.Sensor.Numerator)
	systems.SetNumerator(&rig, components.SensorLight, lightNumerator, cfg.Sensor.MaxNumerator)
	systems.ResetRig(&rig, pose, radius)

	return RobotSpec{
		Identity: f.identity(components.KindRobot, RobotCategory(b)),
		Pose:     pose,
		Body:     components.Body{Radius: radius, Color: behaviorColor(cfg, b)},
		Motion:   components.Motion{MaxSpeed: cfg.Robot.MaxSpeed},
		Robot: components.Robot{
			Behavior: b,
			Sensors:  rig,
			Hunger:   systems.NewHunger(cfg.Robot, foodEnabled),
		},
	}
}

// NewLight builds a light at its initial radius.
func (f *EntityFactory) NewLight(occupied []Disc) LightSpec {
	cfg := f.cfg.Light
	return LightSpec{
		Identity: f.identity(components.KindLight, CategoryLight),
		Pose:     f.RandomPose(cfg.InitialRadius, occupied),
		Body:     components.Body{Radius: cfg.InitialRadius, Color: toColor(cfg.Color)},
		Motion:   components.Motion{MaxSpeed: cfg.ArcSpeed},
	}
}

// NewFood builds a food source.
func (f *EntityFactory) NewFood(occupied []Disc) FoodSpec {
	cfg := f.cfg.Food
	return FoodSpec{
		Identity: f.identity(components.KindFood, CategoryFood),
		Pose:     f.RandomPose(cfg.Radius, occupied),
		Body:     components.Body{Radius: cfg.Radius, Color: toColor(cfg.Color)},
	}
}

func behaviorColor(cfg *config.Config, b components.Behavior) components.Color {
	c := cfg.Robot.Colors
	switch b {
	case components.BehaviorExplore:
		return toColor(c.Explore)
	case components.BehaviorLove:
		return toColor(c.Love)
	case components.BehaviorAggressive:
		return toColor(c.Aggressive)
	default:
		return toColor(c.Fear)
	}
}

func toColor(c config.RGB) components.Color {
	return components.Color{R: c.R, G: c.G, B: c.B}
}
