// Package telemetry provides arena statistics, event bookmarks and CSV output.
package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
// All Record methods are safe on a nil Collector.
type Collector struct {
	windowTicks int32
	dt          float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	wallCollisions  int
	robotCollisions int
	lightCollisions int
	foodOverlaps    int
	foodSensorFeeds int
	deaths          int
	statusChanges   int
}

// NewCollector creates a new stats collector.
// windowTicks: how many ticks each stats window lasts
// dt: simulation time per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: int32(windowTicks),
		dt:          dt,
	}
}

// RecordWallCollision records a mobile entity hitting a wall.
func (c *Collector) RecordWallCollision() {
	if c == nil {
		return
	}
	c.wallCollisions++
}

// RecordRobotCollision records a robot-robot contact.
func (c *Collector) RecordRobotCollision() {
	if c == nil {
		return
	}
	c.robotCollisions++
}

// RecordLightCollision records a light-light contact.
func (c *Collector) RecordLightCollision() {
	if c == nil {
		return
	}
	c.lightCollisions++
}

// RecordFoodOverlap records a robot body overlapping food.
func (c *Collector) RecordFoodOverlap() {
	if c == nil {
		return
	}
	c.foodOverlaps++
}

// RecordFoodSensorFeed records a food sensor close enough to feed.
func (c *Collector) RecordFoodSensorFeed() {
	if c == nil {
		return
	}
	c.foodSensorFeeds++
}

// RecordDeath records a robot dying of starvation.
func (c *Collector) RecordDeath() {
	if c == nil {
		return
	}
	c.deaths++
}

// RecordStatusChange records an arena status transition.
func (c *Collector) RecordStatusChange() {
	if c == nil {
		return
	}
	c.statusChanges++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	if c == nil {
		return false
	}
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Sample is the arena state measured at the end of a window.
type Sample struct {
	Status      string
	FoodEnabled bool

	Fear, Explore, Love, Aggressive int
	Lights, Food                    int

	Hungry   int
	Starving int

	LightReadings []float64 // summed light reading per robot
	FoodReadings  []float64 // summed food reading per robot
	Speeds        []float64 // mean wheel speed per robot
	DeathTicks    []float64 // ticks left before death per robot
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, s Sample) WindowStats {
	lightMean, lightStd, lightP50, lightP90 := ComputeReadingStats(s.LightReadings)
	foodMean, _, foodP50, foodP90 := ComputeReadingStats(s.FoodReadings)
	speedMean, speedStd, _, _ := ComputeReadingStats(s.Speeds)
	deathMean, _, _, _ := ComputeReadingStats(s.DeathTicks)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTime:         float64(currentTick) * c.dt,
		Status:          s.Status,
		FoodEnabled:     s.FoodEnabled,

		Fear:       s.Fear,
		Explore:    s.Explore,
		Love:       s.Love,
		Aggressive: s.Aggressive,
		Lights:     s.Lights,
		Food:       s.Food,
		Hungry:     s.Hungry,
		Starving:   s.Starving,

		WallCollisions:  c.wallCollisions,
		RobotCollisions: c.robotCollisions,
		LightCollisions: c.lightCollisions,
		FoodOverlaps:    c.foodOverlaps,
		FoodSensorFeeds: c.foodSensorFeeds,
		Deaths:          c.deaths,
		StatusChanges:   c.statusChanges,

		LightReadingMean: lightMean,
		LightReadingStd:  lightStd,
		LightReadingP50:  lightP50,
		LightReadingP90:  lightP90,
		FoodReadingMean:  foodMean,
		FoodReadingP50:   foodP50,
		FoodReadingP90:   foodP90,
		SpeedMean:        speedMean,
		SpeedStd:         speedStd,
		DeathTicksMean:   deathMean,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.wallCollisions = 0
	c.robotCollisions = 0
	c.lightCollisions = 0
	c.foodOverlaps = 0
	c.foodSensorFeeds = 0
	c.deaths = 0
	c.statusChanges = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
