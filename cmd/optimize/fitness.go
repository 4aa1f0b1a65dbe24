package main

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/telemetry"
)

// FitnessEvaluator runs headless arenas and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	configPath  string
	windowTicks int

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator. Each evaluation reloads the
// base config from configPath so runs never share a mutated Config.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, configPath string) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		configPath:  configPath,
		windowTicks: 500,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single arena run.
type runResult struct {
	survivalTicks int32                   // ticks before a robot starved (or maxTicks)
	windowStats   []telemetry.WindowStats // one per telemetry window
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is negative survival ticks scaled up by run quality.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup

	// Arenas are single-threaded; each seed gets its own
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			cfg, err := config.Load(fe.configPath)
			if err != nil {
				results[idx] = runResult{}
				return
			}
			fe.params.ApplyToConfig(cfg, x)
			results[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		q := computeQuality(r.windowStats)
		totalQuality += q
		totalFitness += computeFitness(r.survivalTicks, q)
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation plays one arena until a robot starves or maxTicks pass.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) runResult {
	collector := telemetry.NewCollector(fe.windowTicks, cfg.Arena.DT)
	a := arena.New(cfg, arena.Options{
		Seed:      seed,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Collector: collector,
	})
	a.AcceptCommand(arena.CommandPlay)

	var result runResult
	for a.Tick() < fe.maxTicks && a.Status() != arena.StatusLost {
		a.AdvanceTime(cfg.Arena.DT)
		if collector.ShouldFlush(a.Tick()) {
			result.windowStats = append(result.windowStats, collector.Flush(a.Tick(), a.TelemetrySample()))
		}
	}
	result.survivalTicks = a.Tick()
	return result
}

// computeQuality scores a run in [0, 1]: the mean share of robots that were
// not starving at each window end.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) == 0 {
		return 0
	}
	var sum float64
	for _, w := range windows {
		robots := w.Fear + w.Explore + w.Love + w.Aggressive
		if robots == 0 {
			continue
		}
		sum += 1 - float64(w.Starving)/float64(robots)
	}
	return sum / float64(len(windows))
}

// computeFitness = -(survivalTicks × (1 + 0.2×quality)).
func computeFitness(survivalTicks int32, quality float64) float64 {
	if math.IsNaN(quality) {
		quality = 0
	}
	return -float64(survivalTicks) * (1 + 0.2*quality)
}
