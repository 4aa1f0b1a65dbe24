package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTime         float64 `csv:"sim_time"`
	Status          string  `csv:"status"`
	FoodEnabled     bool    `csv:"food_enabled"`

	// Population at window end
	Fear       int `csv:"fear"`
	Explore    int `csv:"explore"`
	Love       int `csv:"love"`
	Aggressive int `csv:"aggressive"`
	Lights     int `csv:"lights"`
	Food       int `csv:"food"`
	Hungry     int `csv:"hungry"`
	Starving   int `csv:"starving"`

	// Events during window
	WallCollisions  int `csv:"wall_collisions"`
	RobotCollisions int `csv:"robot_collisions"`
	LightCollisions int `csv:"light_collisions"`
	FoodOverlaps    int `csv:"food_overlaps"`
	FoodSensorFeeds int `csv:"food_sensor_feeds"`
	Deaths          int `csv:"deaths"`
	StatusChanges   int `csv:"status_changes"`

	// Sensor and motion distribution (sampled at window end)
	LightReadingMean float64 `csv:"light_mean"`
	LightReadingStd  float64 `csv:"light_std"`
	LightReadingP50  float64 `csv:"light_p50"`
	LightReadingP90  float64 `csv:"light_p90"`
	FoodReadingMean  float64 `csv:"food_mean"`
	FoodReadingP50   float64 `csv:"food_p50"`
	FoodReadingP90   float64 `csv:"food_p90"`
	SpeedMean        float64 `csv:"speed_mean"`
	SpeedStd         float64 `csv:"speed_std"`
	DeathTicksMean   float64 `csv:"death_ticks_mean"`
}

// ComputeReadingStats returns mean, sample standard deviation, median and
// 90th percentile. Percentiles use the empirical quantile of the sorted data.
// The std is zero for fewer than two values.
func ComputeReadingStats(values []float64) (mean, std, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}
	if n == 1 {
		return values[0], 0, values[0], values[0]
	}

	mean, std = stat.MeanStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTime),
		slog.String("status", s.Status),
		slog.Int("fear", s.Fear),
		slog.Int("explore", s.Explore),
		slog.Int("love", s.Love),
		slog.Int("aggressive", s.Aggressive),
		slog.Int("lights", s.Lights),
		slog.Int("food", s.Food),
		slog.Int("hungry", s.Hungry),
		slog.Int("starving", s.Starving),
		slog.Int("wall_collisions", s.WallCollisions),
		slog.Int("robot_collisions", s.RobotCollisions),
		slog.Int("light_collisions", s.LightCollisions),
		slog.Int("food_overlaps", s.FoodOverlaps),
		slog.Int("deaths", s.Deaths),
		slog.Float64("light_mean", s.LightReadingMean),
		slog.Float64("light_p90", s.LightReadingP90),
		slog.Float64("speed_mean", s.SpeedMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
