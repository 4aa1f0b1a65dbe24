package systems

import (
	"math"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
)

// Readings is the sensor state a behavior policy consumes.
type Readings struct {
	LightLeft, LightRight float64
	FoodLeft, FoodRight   float64
}

// ReadRig collects the current readings from a robot's sensors.
func ReadRig(rig *components.SensorRig) Readings {
	return Readings{
		LightLeft:  rig.LeftLight.Reading,
		LightRight: rig.RightLight.Reading,
		FoodLeft:   rig.LeftFood.Reading,
		FoodRight:  rig.RightFood.Reading,
	}
}

// UpdateSensorPose places the sensor on the owner's rim at its mount angle.
func UpdateSensorPose(s *components.Sensor, owner components.Pose, ownerRadius float64) {
	rad := degToRad(owner.Theta + s.Angle)
	s.Pose = components.Pose{
		X:     owner.X + ownerRadius*math.Cos(rad),
		Y:     owner.Y + ownerRadius*math.Sin(rad),
		Theta: owner.Theta + s.Angle,
	}
}

// NotifySensor adds the contribution of one stimulus to the reading and
// returns the sensor-to-stimulus distance.
// Distances under MinDistance are floored, so coincident stimuli saturate to a
// large finite reading instead of dividing by zero.
func NotifySensor(s *components.Sensor, stimulus components.Pose, cfg config.SensorConfig) float64 {
	d := s.Pose.DistanceTo(stimulus)
	eff := d
	if eff < cfg.MinDistance {
		eff = cfg.MinDistance
	}
	s.Reading += s.Numerator / math.Pow(eff, cfg.Exponent)
	return d
}

// ResetSensor moves the sensor to its current mount point and zeroes its reading.
func ResetSensor(s *components.Sensor, owner components.Pose, ownerRadius float64) {
	UpdateSensorPose(s, owner, ownerRadius)
	s.Reading = 0
}

// UpdateRigPose repositions every sensor of the rig.
func UpdateRigPose(rig *components.SensorRig, owner components.Pose, ownerRadius float64) {
	for _, s := range rig.All() {
		UpdateSensorPose(s, owner, ownerRadius)
	}
}

// ResetRig repositions every sensor of the rig and zeroes all readings.
func ResetRig(rig *components.SensorRig, owner components.Pose, ownerRadius float64) {
	for _, s := range rig.All() {
		ResetSensor(s, owner, ownerRadius)
	}
}

// SetNumerator sets the sensitivity numerator on every sensor of the given kind,
// clamped to [0, maxNumerator].
func SetNumerator(rig *components.SensorRig, kind components.SensorKind, numerator, maxNumerator float64) {
	n := clampFloat(numerator, 0, maxNumerator)
	for _, s := range rig.All() {
		if s.Kind == kind {
			s.Numerator = n
		}
	}
}
