package telemetry

import "testing"

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(100, 1.0)

	c.RecordWallCollision()
	c.RecordWallCollision()
	c.RecordRobotCollision()
	c.RecordFoodOverlap()
	c.RecordDeath()

	if c.ShouldFlush(99) {
		t.Error("should not flush before window ends")
	}
	if !c.ShouldFlush(100) {
		t.Fatal("should flush at window end")
	}

	stats := c.Flush(100, Sample{Status: "Playing", Fear: 3, Lights: 2, Speeds: []float64{2, 4}})

	if stats.WallCollisions != 2 || stats.RobotCollisions != 1 || stats.FoodOverlaps != 1 || stats.Deaths != 1 {
		t.Errorf("event counts wrong: %+v", stats)
	}
	if stats.Fear != 3 || stats.Lights != 2 {
		t.Errorf("population wrong: fear=%d lights=%d", stats.Fear, stats.Lights)
	}
	if stats.SpeedMean != 3 {
		t.Errorf("SpeedMean = %v, want 3", stats.SpeedMean)
	}
	if stats.SimTime != 100 {
		t.Errorf("SimTime = %v, want 100", stats.SimTime)
	}

	// Counters reset and window restarts
	next := c.Flush(150, Sample{})
	if next.WallCollisions != 0 || next.Deaths != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 100 {
		t.Errorf("WindowStartTick = %d, want 100", next.WindowStartTick)
	}
	if c.ShouldFlush(249) {
		t.Error("window should restart at last flush")
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.RecordWallCollision()
	c.RecordRobotCollision()
	c.RecordLightCollision()
	c.RecordFoodOverlap()
	c.RecordFoodSensorFeed()
	c.RecordDeath()
	c.RecordStatusChange()
	if c.ShouldFlush(1 << 20) {
		t.Error("nil collector should never flush")
	}
}
