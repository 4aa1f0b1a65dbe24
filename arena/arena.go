// Package arena runs the Braitenberg vehicle simulation: robots steering by
// light and food sensors among drifting lights and static food.
package arena

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/systems"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/telemetry"
)

// Status is the game state of the arena.
type Status uint8

const (
	StatusPaused Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

// String returns the display name for a Status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Paused"
	}
}

// Command is an external control input.
type Command uint8

const (
	CommandNone Command = iota
	CommandReset
	CommandPlay
	CommandPause
)

// ParseCommand maps a command name to a Command. Unknown names yield CommandNone.
func ParseCommand(s string) Command {
	switch s {
	case "reset":
		return CommandReset
	case "play":
		return CommandPlay
	case "pause":
		return CommandPause
	default:
		return CommandNone
	}
}

// Options configures arena construction.
type Options struct {
	Seed      int64
	Logger    *slog.Logger
	Collector *telemetry.Collector
	Perf      *telemetry.PerfCollector
}

// Arena owns every entity and runs the per-tick pipeline.
// It is single-threaded: all calls must come from one goroutine.
type Arena struct {
	cfg       *config.Config
	world     *ecs.World
	rng       *rand.Rand
	logger    *slog.Logger
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	factory   *EntityFactory

	// Entity mappers per kind
	robotMapper *ecs.Map5[components.Identity, components.Pose, components.Body, components.Motion, components.Robot]
	lightMapper *ecs.Map4[components.Identity, components.Pose, components.Body, components.Motion]
	foodMapper  *ecs.Map3[components.Identity, components.Pose, components.Body]
	robotFilter *ecs.Filter3[components.Identity, components.Motion, components.Robot]

	// Individual component mappers for lookups
	idMap     *ecs.Map1[components.Identity]
	poseMap   *ecs.Map1[components.Pose]
	bodyMap   *ecs.Map1[components.Body]
	motionMap *ecs.Map1[components.Motion]
	robotMap  *ecs.Map1[components.Robot]

	// Ordered views, oldest first
	entities []ecs.Entity
	robots   []ecs.Entity
	lights   []ecs.Entity
	food     []ecs.Entity
	mobile   []ecs.Entity

	counts map[Category]int

	// State
	status         Status
	foodEnabled    bool
	lightNumerator float64
	tick           int32
	stepping       bool
	pending        []Request
}

// New creates an arena populated from cfg.Population. The arena starts paused.
func New(cfg *config.Config, opts Options) *Arena {
	world := ecs.NewWorld()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	a := &Arena{
		cfg:            cfg,
		world:          world,
		rng:            rng,
		logger:         logger,
		collector:      opts.Collector,
		perf:           opts.Perf,
		factory:        NewEntityFactory(cfg, rng),
		counts:         make(map[Category]int, len(Categories)),
		status:         StatusPaused,
		lightNumerator: cfg.Sensor.Numerator,

		robotMapper: ecs.NewMap5[components.Identity, components.Pose, components.Body, components.Motion, components.Robot](world),
		lightMapper: ecs.NewMap4[components.Identity, components.Pose, components.Body, components.Motion](world),
		foodMapper:  ecs.NewMap3[components.Identity, components.Pose, components.Body](world),
		robotFilter: ecs.NewFilter3[components.Identity, components.Motion, components.Robot](world),

		idMap:     ecs.NewMap1[components.Identity](world),
		poseMap:   ecs.NewMap1[components.Pose](world),
		bodyMap:   ecs.NewMap1[components.Body](world),
		motionMap: ecs.NewMap1[components.Motion](world),
		robotMap:  ecs.NewMap1[components.Robot](world),
	}

	p := cfg.Population
	a.foodEnabled = p.Food > 0
	a.ChangeRobotCount(p.Fear, components.BehaviorFear)
	a.ChangeRobotCount(p.Explore, components.BehaviorExplore)
	a.ChangeRobotCount(p.Love, components.BehaviorLove)
	a.ChangeRobotCount(p.Aggressive, components.BehaviorAggressive)
	a.ChangeLightCount(p.Lights)
	a.ChangeFoodCount(p.Food)

	return a
}

// Config returns the configuration the arena was built with.
func (a *Arena) Config() *config.Config {
	return a.cfg
}

// Status returns the current game status.
func (a *Arena) Status() Status {
	return a.status
}

// Tick returns the number of completed ticks.
func (a *Arena) Tick() int32 {
	return a.tick
}

// FoodEnabled reports whether hunger tracking is on.
func (a *Arena) FoodEnabled() bool {
	return a.foodEnabled
}

// Dimensions returns the arena width and height.
func (a *Arena) Dimensions() (width, height float64) {
	return a.cfg.Arena.Width, a.cfg.Arena.Height
}

// setStatus changes status, logging and counting real transitions.
func (a *Arena) setStatus(s Status) {
	if a.status == s {
		return
	}
	a.logger.Info("arena status changed", "from", a.status.String(), "to", s.String(), "tick", a.tick)
	a.status = s
	a.collector.RecordStatusChange()
}

// AcceptCommand applies a control command. CommandNone and unknown values are ignored.
func (a *Arena) AcceptCommand(cmd Command) {
	switch cmd {
	case CommandReset:
		a.Reset()
	case CommandPlay:
		a.setStatus(StatusPlaying)
	case CommandPause:
		a.setStatus(StatusPaused)
	}
}

// Reset re-randomizes every entity in place and pauses the arena.
// Population, behaviors and the food setting are kept.
func (a *Arena) Reset() {
	if a.stepping {
		a.pending = append(a.pending, Request{Op: OpCommand, Command: CommandReset})
		return
	}

	var placed []Disc
	for _, e := range a.entities {
		id := a.idMap.Get(e)
		pose := a.poseMap.Get(e)
		body := a.bodyMap.Get(e)

		switch id.Kind {
		case components.KindRobot:
			body.Radius = a.factory.RobotRadius()
		case components.KindLight:
			body.Radius = a.factory.ResetLightRadius()
		}
		*pose = a.factory.RandomPose(body.Radius, placed)
		placed = append(placed, Disc{X: pose.X, Y: pose.Y, R: body.Radius})

		if a.motionMap.HasAll(e) {
			m := a.motionMap.Get(e)
			m.Velocity = components.WheelVelocity{}
			m.Colliding = false
			m.ArcTicks = 0
			m.Touch = false
		}
		if a.robotMap.HasAll(e) {
			r := a.robotMap.Get(e)
			systems.ResetRig(&r.Sensors, *pose, body.Radius)
			systems.ResetHunger(&r.Hunger, a.cfg.Robot)
			r.Hunger.Dead = false
		}
	}

	a.logger.Info("arena reset", "entities", len(a.entities), "tick", a.tick)
	a.setStatus(StatusPaused)
}
