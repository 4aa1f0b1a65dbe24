package systems

import (
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

// foodTerms returns the crossed food contribution, zero unless hungry.
func foodTerms(r Readings, hungry bool, k float64) (left, right float64) {
	if !hungry {
		return 0, 0
	}
	return k * r.FoodRight, k * r.FoodLeft
}

// Fear wires each light sensor to the wheel on its own side, so the robot
// turns away from light and speeds up near it.
func Fear(r Readings, hungry bool, k float64) components.WheelVelocity {
	fl, fr := foodTerms(r, hungry, k)
	return components.WheelVelocity{
		Left:  fl + k*r.LightLeft,
		Right: fr + k*r.LightRight,
	}
}

// Aggressive crosses the light wiring, so the robot turns into light and
// speeds up near it.
func Aggressive(r Readings, hungry bool, k float64) components.WheelVelocity {
	fl, fr := foodTerms(r, hungry, k)
	return components.WheelVelocity{
		Left:  fl + k*r.LightRight,
		Right: fr + k*r.LightLeft,
	}
}

// Love uses direct inhibitory wiring: the robot slows and settles facing light.
func Love(r Readings, hungry bool, k, maxSens float64) components.WheelVelocity {
	fl, fr := foodTerms(r, hungry, k)
	return components.WheelVelocity{
		Left:  fl + maxSens - k*r.LightLeft,
		Right: fr + maxSens - k*r.LightRight,
	}
}

// Explore uses crossed inhibitory wiring: the robot slows near light and
// turns away to wander on.
func Explore(r Readings, hungry bool, k, maxSens float64) components.WheelVelocity {
	fl, fr := foodTerms(r, hungry, k)
	return components.WheelVelocity{
		Left:  fl + maxSens - k*r.LightRight,
		Right: fr + maxSens - k*r.LightLeft,
	}
}

// Movement dispatches to the policy for b. Unknown values run Fear.
func Movement(b components.Behavior, r Readings, hungry bool, cfg config.SensorConfig) components.WheelVelocity {
	switch b {
	case components.BehaviorAggressive:
		return Aggressive(r, hungry, cfg.Gain)
	case components.BehaviorLove:
		return Love(r, hungry, cfg.Gain, cfg.MaxReading)
	case components.BehaviorExplore:
		return Explore(r, hungry, cfg.Gain, cfg.MaxReading)
	default:
		return Fear(r, hungry, cfg.Gain)
	}
}
