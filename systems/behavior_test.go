package systems

import (
	"math"
	"testing"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
)

func TestBehaviorPolicies(t *testing.T) {
	cfg := testCfg.Sensor // k = 0.5, MAX_SENS = 20

	tests := []struct {
		name     string
		behavior components.Behavior
		r        Readings
		hungry   bool
		want     components.WheelVelocity
	}{
		{"fear symmetric", components.BehaviorFear, Readings{LightLeft: 2, LightRight: 2}, false, components.WheelVelocity{Left: 1, Right: 1}},
		{"fear direct", components.BehaviorFear, Readings{LightLeft: 4, LightRight: 2}, false, components.WheelVelocity{Left: 2, Right: 1}},
		{"fear ignores food when fed", components.BehaviorFear, Readings{FoodLeft: 8, FoodRight: 6}, false, components.WheelVelocity{}},
		{"fear hungry adds crossed food", components.BehaviorFear, Readings{LightLeft: 2, LightRight: 2, FoodLeft: 8, FoodRight: 6}, true, components.WheelVelocity{Left: 4, Right: 5}},
		{"aggressive crossed", components.BehaviorAggressive, Readings{LightLeft: 4, LightRight: 2}, false, components.WheelVelocity{Left: 1, Right: 2}},
		{"aggressive hungry", components.BehaviorAggressive, Readings{LightLeft: 4, LightRight: 2, FoodLeft: 2, FoodRight: 4}, true, components.WheelVelocity{Left: 3, Right: 3}},
		{"love direct inhibitory", components.BehaviorLove, Readings{LightLeft: 4, LightRight: 2}, false, components.WheelVelocity{Left: 18, Right: 19}},
		{"love no light cruises", components.BehaviorLove, Readings{}, false, components.WheelVelocity{Left: 20, Right: 20}},
		{"explore crossed inhibitory", components.BehaviorExplore, Readings{LightLeft: 4, LightRight: 2}, false, components.WheelVelocity{Left: 19, Right: 18}},
		{"explore hungry", components.BehaviorExplore, Readings{FoodLeft: 2, FoodRight: 6}, true, components.WheelVelocity{Left: 23, Right: 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Movement(tt.behavior, tt.r, tt.hungry, cfg)
			if math.Abs(got.Left-tt.want.Left) > 1e-9 || math.Abs(got.Right-tt.want.Right) > 1e-9 {
				t.Errorf("Movement(%v) = %+v, want %+v", tt.behavior, got, tt.want)
			}
		})
	}
}

func TestMovementUnknownBehaviorRunsFear(t *testing.T) {
	r := Readings{LightLeft: 6, LightRight: 2}
	got := Movement(components.Behavior(99), r, false, testCfg.Sensor)
	want := Fear(r, false, testCfg.Sensor.Gain)
	if got != want {
		t.Errorf("unknown behavior = %+v, want fear %+v", got, want)
	}
}
