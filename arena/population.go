package arena

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/systems"
)

// Count returns the number of live entities in a category.
func (a *Arena) Count(c Category) int {
	return a.counts[c]
}

// FearRobotCount returns the number of fear robots.
func (a *Arena) FearRobotCount() int { return a.counts[CategoryFear] }

// ExploreRobotCount returns the number of explore robots.
func (a *Arena) ExploreRobotCount() int { return a.counts[CategoryExplore] }

// LoveRobotCount returns the number of love robots.
func (a *Arena) LoveRobotCount() int { return a.counts[CategoryLove] }

// AggressiveRobotCount returns the number of aggressive robots.
func (a *Arena) AggressiveRobotCount() int { return a.counts[CategoryAggressive] }

// LightCount returns the number of lights.
func (a *Arena) LightCount() int { return a.counts[CategoryLight] }

// FoodCount returns the number of food sources.
func (a *Arena) FoodCount() int { return a.counts[CategoryFood] }

// LightSensorNumerator returns the current light sensor sensitivity.
func (a *Arena) LightSensorNumerator() float64 { return a.lightNumerator }

func clampCount(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// ChangeRobotCount grows or shrinks the robots running b to n, clamped to
// [0, MaxRobotsPerBehavior]. Shrinking removes the oldest robots first.
func (a *Arena) ChangeRobotCount(n int, b components.Behavior) {
	if a.stepping {
		a.pending = append(a.pending, Request{Op: OpSetRobotCount, N: n, Behavior: b})
		return
	}
	n = clampCount(n, a.cfg.Population.MaxRobotsPerBehavior)
	cat := RobotCategory(b)

	for a.counts[cat] < n {
		a.addRobot(b)
	}
	for a.counts[cat] > n {
		a.removeEntity(a.oldestRobot(b), cat)
	}
}

// ChangeLightCount grows or shrinks the lights to n, clamped to [0, MaxLights].
func (a *Arena) ChangeLightCount(n int) {
	if a.stepping {
		a.pending = append(a.pending, Request{Op: OpSetLightCount, N: n})
		return
	}
	n = clampCount(n, a.cfg.Population.MaxLights)

	for a.counts[CategoryLight] < n {
		a.addLight()
	}
	for a.counts[CategoryLight] > n {
		a.removeEntity(a.lights[0], CategoryLight)
	}
}

// ChangeFoodCount grows or shrinks the food to n, clamped to [0, MaxFood].
// Growing from zero turns hunger tracking on; shrinking to zero turns it off.
func (a *Arena) ChangeFoodCount(n int) {
	if a.stepping {
		a.pending = append(a.pending, Request{Op: OpSetFoodCount, N: n})
		return
	}
	n = clampCount(n, a.cfg.Population.MaxFood)
	wasEmpty := a.counts[CategoryFood] == 0

	for a.counts[CategoryFood] < n {
		a.addFood()
	}
	for a.counts[CategoryFood] > n {
		a.removeEntity(a.food[0], CategoryFood)
	}

	switch {
	case wasEmpty && n > 0:
		a.SetFoodEnabled(true)
	case !wasEmpty && n == 0:
		a.SetFoodEnabled(false)
	}
}

// SetFoodEnabled switches hunger tracking for every robot and restarts
// their hunger timers. Robots added later inherit the setting.
func (a *Arena) SetFoodEnabled(enabled bool) {
	if a.stepping {
		a.pending = append(a.pending, Request{Op: OpSetFoodEnabled, Flag: enabled})
		return
	}
	a.foodEnabled = enabled
	for _, e := range a.robots {
		systems.SetFoodEnabled(&a.robotMap.Get(e).Hunger, enabled, a.cfg.Robot)
	}
	a.logger.Info("food toggled", "enabled", enabled, "robots", len(a.robots))
}

// SetLightSensorNumerator sets the light sensor sensitivity on every robot,
// clamped to [0, MaxNumerator].
func (a *Arena) SetLightSensorNumerator(n float64) {
	if a.stepping {
		a.pending = append(a.pending, Request{Op: OpSetLightSensitivity, Value: n})
		return
	}
	maxN := a.cfg.Sensor.MaxNumerator
	if n < 0 {
		n = 0
	}
	if n > maxN {
		n = maxN
	}
	a.lightNumerator = n
	for _, e := range a.robots {
		systems.SetNumerator(&a.robotMap.Get(e).Sensors, components.SensorLight, n, maxN)
	}
}

// occupied returns the discs of every current entity.
func (a *Arena) occupied() []Disc {
	discs := make([]Disc, 0, len(a.entities))
	for _, e := range a.entities {
		pose := a.poseMap.Get(e)
		body := a.bodyMap.Get(e)
		discs = append(discs, Disc{X: pose.X, Y: pose.Y, R: body.Radius})
	}
	return discs
}

func (a *Arena) addRobot(b components.Behavior) {
	spec := a.factory.NewRobot(b, a.occupied(), a.foodEnabled, a.lightNumerator)
	e := a.robotMapper.NewEntity(&spec.Identity, &spec.Pose, &spec.Body, &spec.Motion, &spec.Robot)

	a.entities = append(a.entities, e)
	a.robots = append(a.robots, e)
	a.mobile = append(a.mobile, e)
	a.counts[RobotCategory(b)]++
	a.logger.Debug("robot added", "id", spec.Identity.ID, "name", spec.Identity.Name)
}

func (a *Arena) addLight() {
	spec := a.factory.NewLight(a.occupied())
	e := a.lightMapper.NewEntity(&spec.Identity, &spec.Pose, &spec.Body, &spec.Motion)

	a.entities = append(a.entities, e)
	a.lights = append(a.lights, e)
	a.mobile = append(a.mobile, e)
	a.counts[CategoryLight]++
	a.logger.Debug("light added", "id", spec.Identity.ID, "name", spec.Identity.Name)
}

func (a *Arena) addFood() {
	spec := a.factory.NewFood(a.occupied())
	e := a.foodMapper.NewEntity(&spec.Identity, &spec.Pose, &spec.Body)

	a.entities = append(a.entities, e)
	a.food = append(a.food, e)
	a.counts[CategoryFood]++
	a.logger.Debug("food added", "id", spec.Identity.ID, "name", spec.Identity.Name)
}

// oldestRobot returns the first robot in creation order running b.
func (a *Arena) oldestRobot(b components.Behavior) ecs.Entity {
	for _, e := range a.robots {
		if a.robotMap.Get(e).Behavior == b {
			return e
		}
	}
	panic("arena: robot count out of sync with robot view")
}

// removeEntity drops e from every view and the world. All of its components,
// sensors and motion state included, go with it.
func (a *Arena) removeEntity(e ecs.Entity, cat Category) {
	id := *a.idMap.Get(e)

	a.entities = without(a.entities, e)
	a.robots = without(a.robots, e)
	a.lights = without(a.lights, e)
	a.food = without(a.food, e)
	a.mobile = without(a.mobile, e)

	a.world.RemoveEntity(e)
	a.counts[cat]--
	a.logger.Debug("entity removed", "id", id.ID, "name", id.Name)
}

// without returns s with the first occurrence of e removed, preserving order.
func without(s []ecs.Entity, e ecs.Entity) []ecs.Entity {
	for i, x := range s {
		if x == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
