package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkHungerOnset     BookmarkType = "hunger_onset"
	BookmarkStarvationOnset BookmarkType = "starvation_onset"
	BookmarkRobotDeath      BookmarkType = "robot_death"
	BookmarkCollisionSpike  BookmarkType = "collision_spike"
	BookmarkGridlock        BookmarkType = "gridlock"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments across stats windows.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	prevHungry   int
	prevStarving int
	gridlocked   bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if stats.Hungry > 0 && bd.prevHungry == 0 {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkHungerOnset,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d robots became hungry", stats.Hungry),
		})
	}
	if stats.Starving > 0 && bd.prevStarving == 0 {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkStarvationOnset,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d robots are starving", stats.Starving),
		})
	}
	if stats.Deaths > 0 {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkRobotDeath,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d robots died in window", stats.Deaths),
		})
	}
	if b := bd.checkCollisionSpike(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkGridlock(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	bd.prevHungry = stats.Hungry
	bd.prevStarving = stats.Starving

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkCollisionSpike fires when collisions exceed twice the rolling average.
func (bd *BookmarkDetector) checkCollisionSpike(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.WallCollisions + h.RobotCollisions + h.LightCollisions
	}
	avg := float64(total) / float64(len(history))
	current := float64(stats.WallCollisions + stats.RobotCollisions + stats.LightCollisions)

	if avg > 0 && current > avg*2.0 && current >= 10 {
		return &Bookmark{
			Type:        BookmarkCollisionSpike,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%.0f collisions is %.1fx average (%.1f)", current, current/avg, avg),
		}
	}
	return nil
}

// checkGridlock fires once when robots exist but none of them move.
func (bd *BookmarkDetector) checkGridlock(stats WindowStats) *Bookmark {
	robots := stats.Fear + stats.Explore + stats.Love + stats.Aggressive
	stuck := robots > 0 && stats.SpeedMean < 1e-6
	if !stuck {
		bd.gridlocked = false
		return nil
	}
	if bd.gridlocked {
		return nil
	}
	bd.gridlocked = true
	return &Bookmark{
		Type:        BookmarkGridlock,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("all %d robots stationary", robots),
	}
}
