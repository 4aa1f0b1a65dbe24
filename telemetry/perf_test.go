package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseIntegrate)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseContacts)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg[PhaseIntegrate]; !ok {
		t.Error("expected integrate phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseContacts]; !ok {
		t.Error("expected contacts phase to be tracked")
	}
	if stats.MinTickDuration > stats.MaxTickDuration {
		t.Errorf("min %v > max %v", stats.MinTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseWalls)
		pc.EndTick()
	}

	if pc.sampleCount != 5 {
		t.Errorf("sampleCount = %d, want 5", pc.sampleCount)
	}
}

func TestPerfCollector_NilSafe(t *testing.T) {
	var pc *PerfCollector
	pc.StartTick()
	pc.StartPhase(PhaseStimuli)
	pc.EndTick()
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.AvgTickDuration != 0 || stats.PhaseAvg == nil {
		t.Errorf("nil collector stats = %+v", stats)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 2 * time.Millisecond,
		PhasePct:        map[string]float64{PhaseIntegrate: 40, PhaseContacts: 60},
	}
	row := s.ToCSV(1200)
	if row.WindowEnd != 1200 || row.AvgTickUS != 2000 {
		t.Errorf("row = %+v", row)
	}
	if row.IntegratePct != 40 || row.ContactsPct != 60 || row.WallsPct != 0 {
		t.Errorf("phase pcts = %+v", row)
	}
}
