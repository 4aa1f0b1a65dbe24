package arena

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/systems"
)

// EntityView is a read-only copy of an entity for renderers and clients.
type EntityView struct {
	ID     int              `json:"id"`
	Kind   string           `json:"kind"`
	Name   string           `json:"name"`
	X      float64          `json:"x"`
	Y      float64          `json:"y"`
	Theta  float64          `json:"theta"`
	Radius float64          `json:"radius"`
	Color  components.Color `json:"color"`
}

// SensorView is a read-only copy of one sensor.
type SensorView struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Reading float64 `json:"reading"`
}

// RobotView adds behavior, sensors and hunger state to an EntityView.
type RobotView struct {
	EntityView
	Behavior   string        `json:"behavior"`
	Hunger     string        `json:"hunger"`
	Velocity   [2]float64    `json:"velocity"`
	Colliding  bool          `json:"colliding"`
	Sensors    [4]SensorView `json:"sensors"` // left light, right light, left food, right food
	DeathTicks int           `json:"death_ticks"`
}

// Snapshot is the full observable state after a tick.
type Snapshot struct {
	Tick        int32          `json:"tick"`
	Status      string         `json:"status"`
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	FoodEnabled bool           `json:"food_enabled"`
	Numerator   float64        `json:"light_numerator"`
	Counts      map[string]int `json:"counts"`
	Entities    []EntityView   `json:"entities"`
	Robots      []RobotView    `json:"robots"`
}

func (a *Arena) entityView(e ecs.Entity) EntityView {
	id := a.idMap.Get(e)
	pose := a.poseMap.Get(e)
	body := a.bodyMap.Get(e)
	return EntityView{
		ID:     id.ID,
		Kind:   id.Kind.String(),
		Name:   id.Name,
		X:      pose.X,
		Y:      pose.Y,
		Theta:  systems.NormalizeDegrees(pose.Theta),
		Radius: body.Radius,
		Color:  body.Color,
	}
}

// Entities returns every entity in creation order.
func (a *Arena) Entities() []EntityView {
	views := make([]EntityView, 0, len(a.entities))
	for _, e := range a.entities {
		views = append(views, a.entityView(e))
	}
	return views
}

// Robots returns every robot in creation order with its sensor state.
func (a *Arena) Robots() []RobotView {
	views := make([]RobotView, 0, len(a.robots))
	for _, e := range a.robots {
		r := a.robotMap.Get(e)
		m := a.motionMap.Get(e)

		v := RobotView{
			EntityView: a.entityView(e),
			Behavior:   r.Behavior.String(),
			Hunger:     systems.State(r.Hunger).String(),
			Velocity:   [2]float64{m.Velocity.Left, m.Velocity.Right},
			Colliding:  m.Colliding,
			DeathTicks: r.Hunger.DeathTicks,
		}
		for i, s := range r.Sensors.All() {
			v.Sensors[i] = SensorView{X: s.Pose.X, Y: s.Pose.Y, Reading: s.Reading}
		}
		views = append(views, v)
	}
	return views
}

// Snapshot captures the observable arena state.
func (a *Arena) Snapshot() Snapshot {
	counts := make(map[string]int, len(Categories))
	for _, c := range Categories {
		counts[c.Key()] = a.counts[c]
	}
	return Snapshot{
		Tick:        a.tick,
		Status:      a.status.String(),
		Width:       a.cfg.Arena.Width,
		Height:      a.cfg.Arena.Height,
		FoodEnabled: a.foodEnabled,
		Numerator:   a.lightNumerator,
		Counts:      counts,
		Entities:    a.Entities(),
		Robots:      a.Robots(),
	}
}

// EntityAt returns the id of the topmost entity whose disc contains (x, y).
func (a *Arena) EntityAt(x, y float64) (int, bool) {
	p := components.Pose{X: x, Y: y}
	for i := len(a.entities) - 1; i >= 0; i-- {
		e := a.entities[i]
		if a.poseMap.Get(e).DistanceTo(p) <= a.bodyMap.Get(e).Radius {
			return a.idMap.Get(e).ID, true
		}
	}
	return 0, false
}

// Components returns pointers to the components of the entity with the given
// id, for inspection. The pointers are valid until the next population change.
func (a *Arena) Components(id int) []any {
	e, ok := a.lookup(id)
	if !ok {
		return nil
	}
	comps := []any{a.idMap.Get(e), a.poseMap.Get(e), a.bodyMap.Get(e)}
	if a.motionMap.HasAll(e) {
		comps = append(comps, a.motionMap.Get(e))
	}
	if a.robotMap.HasAll(e) {
		r := a.robotMap.Get(e)
		comps = append(comps, r, &r.Hunger)
	}
	return comps
}

func (a *Arena) lookup(id int) (ecs.Entity, bool) {
	for _, e := range a.entities {
		if a.idMap.Get(e).ID == id {
			return e, true
		}
	}
	return ecs.Entity{}, false
}
