package components

// SensorKind selects which stimulus a sensor responds to.
type SensorKind uint8

const (
	SensorLight SensorKind = iota
	SensorFood
)

// Sensor is a point detector mounted on a robot's rim.
// Reading accumulates stimulus within a tick and is zeroed after the robot moves.
type Sensor struct {
	Kind      SensorKind
	Angle     float64 // mount angle relative to heading, degrees
	Pose      Pose
	Reading   float64
	Numerator float64
}

// SensorRig is the fixed set of four sensors every robot carries.
type SensorRig struct {
	LeftLight  Sensor
	RightLight Sensor
	LeftFood   Sensor
	RightFood  Sensor
}

// All returns pointers to every sensor in the rig.
func (r *SensorRig) All() [4]*Sensor {
	return [4]*Sensor{&r.LeftLight, &r.RightLight, &r.LeftFood, &r.RightFood}
}

// NewSensorRig mounts light and food sensors at -angle (left) and +angle (right).
func NewSensorRig(angle, numerator float64) SensorRig {
	return SensorRig{
		LeftLight:  Sensor{Kind: SensorLight, Angle: -angle, Numerator: numerator},
		RightLight: Sensor{Kind: SensorLight, Angle: angle, Numerator: numerator},
		LeftFood:   Sensor{Kind: SensorFood, Angle: -angle, Numerator: numerator},
		RightFood:  Sensor{Kind: SensorFood, Angle: angle, Numerator: numerator},
	}
}

// Hunger tracks a robot's feeding timers. Counters count down in ticks.
type Hunger struct {
	HungerTicks int  `inspect:"label"`
	StarveTicks int  `inspect:"label"`
	DeathTicks  int  `inspect:"label"`
	Hungry      bool `inspect:"bool"`
	Starving    bool `inspect:"bool"`
	Dead        bool `inspect:"bool"`
	FoodEnabled bool `inspect:"bool"`
}
