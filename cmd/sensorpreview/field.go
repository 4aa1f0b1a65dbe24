package main

import (
	"image/color"
	"math"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/systems"
)

// Probe is a robot placed at a point of the preview, used to sample the
// response of every behavior to a single light.
type Probe struct {
	Pose   components.Pose
	Radius float64
}

// Readings returns the light readings the probe's sensors would take from
// one light at lightPose.
func (p Probe) Readings(lightPose components.Pose, cfg config.SensorConfig) systems.Readings {
	rig := components.NewSensorRig(cfg.Angle, cfg.Numerator)
	systems.ResetRig(&rig, p.Pose, p.Radius)
	systems.NotifySensor(&rig.LeftLight, lightPose, cfg)
	systems.NotifySensor(&rig.RightLight, lightPose, cfg)
	return systems.ReadRig(&rig)
}

// Responses returns the wheel velocities each behavior would command.
func (p Probe) Responses(lightPose components.Pose, cfg config.SensorConfig) [len(components.Behaviors)]components.WheelVelocity {
	r := p.Readings(lightPose, cfg)
	var out [len(components.Behaviors)]components.WheelVelocity
	for i, b := range components.Behaviors {
		out[i] = systems.Movement(b, r, false, cfg)
	}
	return out
}

// generateField fills grid with the reading of a single sensor at the center
// of each cell, for a light at (lx, ly). The grid covers worldW x worldH.
func generateField(grid []float32, size int, worldW, worldH, lx, ly float64, cfg config.SensorConfig) {
	light := components.Pose{X: lx, Y: ly}
	for y := 0; y < size; y++ {
		wy := (float64(y) + 0.5) / float64(size) * worldH
		for x := 0; x < size; x++ {
			wx := (float64(x) + 0.5) / float64(size) * worldW
			s := components.Sensor{Kind: components.SensorLight, Numerator: cfg.Numerator, Pose: components.Pose{X: wx, Y: wy}}
			systems.NotifySensor(&s, light, cfg)
			grid[y*size+x] = float32(s.Reading)
		}
	}
}

// normalizeReading maps a reading onto [0,1] on a log scale relative to
// maxReading, so the near-field saturation and the far tail stay visible.
func normalizeReading(v, maxReading float32) float32 {
	if v <= 0 || maxReading <= 0 {
		return 0
	}
	n := float32(math.Log1p(float64(v)) / math.Log1p(float64(maxReading)))
	if n > 1 {
		return 1
	}
	return n
}

// readingColor shades a normalized reading: dark blue -> cyan -> yellow -> white.
func readingColor(v float32) color.RGBA {
	var r, g, b uint8
	switch {
	case v < 0.25:
		t := v / 0.25
		r = uint8(10 + t*30)
		g = uint8(20 + t*60)
		b = uint8(60 + t*100)
	case v < 0.5:
		t := (v - 0.25) / 0.25
		r = uint8(40 + t*20)
		g = uint8(80 + t*120)
		b = uint8(160 + t*40)
	case v < 0.75:
		t := (v - 0.5) / 0.25
		r = uint8(60 + t*140)
		g = uint8(200 - t*40)
		b = uint8(200 - t*150)
	default:
		t := (v - 0.75) / 0.25
		r = uint8(200 + t*55)
		g = uint8(160 + t*95)
		b = uint8(50 + t*205)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// fieldStats returns min, max and mean of the grid.
func fieldStats(grid []float32) (minVal, maxVal, mean float32) {
	if len(grid) == 0 {
		return 0, 0, 0
	}
	minVal, maxVal = grid[0], grid[0]
	var total float32
	for _, v := range grid {
		total += v
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal, total / float32(len(grid))
}
