package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_HungerOnsetOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if bms := bd.Check(WindowStats{WindowEndTick: 600, Fear: 2, SpeedMean: 3}); hasBookmark(bms, BookmarkHungerOnset) {
		t.Error("no robot hungry yet")
	}
	if bms := bd.Check(WindowStats{WindowEndTick: 1200, Fear: 2, Hungry: 2, SpeedMean: 3}); !hasBookmark(bms, BookmarkHungerOnset) {
		t.Error("expected hunger_onset bookmark")
	}
	if bms := bd.Check(WindowStats{WindowEndTick: 1800, Fear: 2, Hungry: 2, SpeedMean: 3}); hasBookmark(bms, BookmarkHungerOnset) {
		t.Error("hunger_onset should fire only on transition")
	}
}

func TestBookmarkDetector_RobotDeath(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bms := bd.Check(WindowStats{WindowEndTick: 3000, Deaths: 1, Starving: 3, Fear: 3, SpeedMean: 1})

	if !hasBookmark(bms, BookmarkRobotDeath) {
		t.Error("expected robot_death bookmark")
	}
	if !hasBookmark(bms, BookmarkStarvationOnset) {
		t.Error("expected starvation_onset bookmark")
	}
}

func TestBookmarkDetector_CollisionSpike(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), WallCollisions: 5, Fear: 1, SpeedMean: 2})
	}

	bms := bd.Check(WindowStats{WindowEndTick: 3000, WallCollisions: 20, RobotCollisions: 4, Fear: 1, SpeedMean: 2})
	if !hasBookmark(bms, BookmarkCollisionSpike) {
		t.Error("expected collision_spike bookmark")
	}
}

func TestBookmarkDetector_Gridlock(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if bms := bd.Check(WindowStats{Love: 2, SpeedMean: 0}); !hasBookmark(bms, BookmarkGridlock) {
		t.Error("expected gridlock bookmark")
	}
	if bms := bd.Check(WindowStats{Love: 2, SpeedMean: 0}); hasBookmark(bms, BookmarkGridlock) {
		t.Error("gridlock should not repeat while stuck")
	}
	if bms := bd.Check(WindowStats{SpeedMean: 0}); hasBookmark(bms, BookmarkGridlock) {
		t.Error("no robots means no gridlock")
	}
}
