package systems

import (
	"math"
	"testing"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

var testCfg = config.Default()

func TestUpdateSensorPose(t *testing.T) {
	tests := []struct {
		name   string
		owner  components.Pose
		radius float64
		angle  float64
		wantX  float64
		wantY  float64
	}{
		{"ahead", components.Pose{X: 100, Y: 100, Theta: 0}, 10, 0, 110, 100},
		{"right mount", components.Pose{X: 0, Y: 0, Theta: 0}, 20, 90, 0, 20},
		{"left mount", components.Pose{X: 0, Y: 0, Theta: 0}, 20, -90, 0, -20},
		{"heading adds to mount", components.Pose{X: 50, Y: 50, Theta: 45}, 10, 45, 50, 60},
		{"forty degrees", components.Pose{X: 0, Y: 0, Theta: 0}, 15, 40, 15 * math.Cos(40*math.Pi/180), 15 * math.Sin(40*math.Pi/180)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := components.Sensor{Angle: tt.angle}
			UpdateSensorPose(&s, tt.owner, tt.radius)
			if math.Abs(s.Pose.X-tt.wantX) > 1e-9 || math.Abs(s.Pose.Y-tt.wantY) > 1e-9 {
				t.Errorf("pose = (%v, %v), want (%v, %v)", s.Pose.X, s.Pose.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNotifySensor(t *testing.T) {
	cfg := testCfg.Sensor

	tests := []struct {
		name     string
		stimulus components.Pose
		want     float64
	}{
		{"unit distance", components.Pose{X: 1, Y: 0}, 1200},
		{"distance 100", components.Pose{X: 100, Y: 0}, 1200 / math.Pow(100, 1.08)},
		{"diagonal", components.Pose{X: 3, Y: 4}, 1200 / math.Pow(5, 1.08)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := components.Sensor{Numerator: 1200}
			NotifySensor(&s, tt.stimulus, cfg)
			if math.Abs(s.Reading-tt.want) > 1e-9 {
				t.Errorf("Reading = %v, want %v", s.Reading, tt.want)
			}
		})
	}
}

func TestNotifySensorAccumulates(t *testing.T) {
	cfg := testCfg.Sensor
	s := components.Sensor{Numerator: 1200}

	d := NotifySensor(&s, components.Pose{X: 10}, cfg)
	NotifySensor(&s, components.Pose{X: -10}, cfg)

	if math.Abs(d-10) > 1e-9 {
		t.Errorf("distance = %v, want 10", d)
	}
	want := 2 * 1200 / math.Pow(10, 1.08)
	if math.Abs(s.Reading-want) > 1e-9 {
		t.Errorf("Reading = %v, want %v", s.Reading, want)
	}
}

func TestNotifySensorZeroDistanceSaturates(t *testing.T) {
	cfg := testCfg.Sensor
	s := components.Sensor{Numerator: 1200}

	d := NotifySensor(&s, components.Pose{}, cfg)

	if d != 0 {
		t.Errorf("distance = %v, want 0", d)
	}
	if math.IsInf(s.Reading, 0) || math.IsNaN(s.Reading) {
		t.Fatalf("Reading = %v, want finite", s.Reading)
	}
	if s.Reading < 1e6 {
		t.Errorf("Reading = %v, want saturated (large)", s.Reading)
	}
}

func TestResetRig(t *testing.T) {
	rig := components.NewSensorRig(40, 1200)
	for _, s := range rig.All() {
		s.Reading = 42
	}
	owner := components.Pose{X: 200, Y: 300, Theta: 90}

	ResetRig(&rig, owner, 18)

	for i, s := range rig.All() {
		if s.Reading != 0 {
			t.Errorf("sensor %d reading = %v, want 0", i, s.Reading)
		}
		if math.Abs(s.Pose.DistanceTo(owner)-18) > 1e-9 {
			t.Errorf("sensor %d not on rim: distance %v", i, s.Pose.DistanceTo(owner))
		}
	}
	// Facing +y, the left sensor (-40) sits at larger x than the right one (+40)
	if rig.LeftLight.Pose.X <= rig.RightLight.Pose.X {
		t.Errorf("left sensor x %v should exceed right sensor x %v", rig.LeftLight.Pose.X, rig.RightLight.Pose.X)
	}
}

func TestSetNumerator(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want float64
	}{
		{"in range", 600, 600},
		{"negative clamps to zero", -5, 0},
		{"above max clamps", 5000, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := components.NewSensorRig(40, 1200)
			SetNumerator(&rig, components.SensorLight, tt.n, 1200)
			if rig.LeftLight.Numerator != tt.want || rig.RightLight.Numerator != tt.want {
				t.Errorf("light numerators = (%v, %v), want %v", rig.LeftLight.Numerator, rig.RightLight.Numerator, tt.want)
			}
			if rig.LeftFood.Numerator != 1200 || rig.RightFood.Numerator != 1200 {
				t.Error("food numerators should be untouched")
			}
		})
	}
}
