package arena

import (
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/telemetry"
)

// TelemetrySample measures the arena for the end of a telemetry window.
func (a *Arena) TelemetrySample() telemetry.Sample {
	s := telemetry.Sample{
		Status:      a.status.String(),
		FoodEnabled: a.foodEnabled,
		Fear:        a.counts[CategoryFear],
		Explore:     a.counts[CategoryExplore],
		Love:        a.counts[CategoryLove],
		Aggressive:  a.counts[CategoryAggressive],
		Lights:      a.counts[CategoryLight],
		Food:        a.counts[CategoryFood],
	}

	query := a.robotFilter.Query()
	for query.Next() {
		_, m, r := query.Get()
		rig := &r.Sensors

		if r.Hunger.Hungry {
			s.Hungry++
		}
		if r.Hunger.Starving {
			s.Starving++
		}
		s.LightReadings = append(s.LightReadings, rig.LeftLight.Reading+rig.RightLight.Reading)
		s.FoodReadings = append(s.FoodReadings, rig.LeftFood.Reading+rig.RightFood.Reading)
		s.Speeds = append(s.Speeds, (m.Velocity.Left+m.Velocity.Right)/2)
		s.DeathTicks = append(s.DeathTicks, float64(r.Hunger.DeathTicks))
	}
	return s
}
