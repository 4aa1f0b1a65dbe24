// Package game drives an arena: it owns the window-side collaborators
// (camera, renderer, panels), telemetry output and the network viewer feed.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/camera"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/config"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/inspector"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/renderer"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/telemetry"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/ui"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/vizserver"
)

// MaxTicksPerFrame bounds the speed multiplier.
const MaxTicksPerFrame = 20

// Options configures a game.
type Options struct {
	Config        *config.Config // nil uses the embedded defaults
	Seed          int64
	Logger        *slog.Logger
	LogStats      bool
	OutputDir     string // empty disables CSV output
	Headless      bool   // no raylib calls at all
	Autoplay      bool   // start in Playing
	TicksPerFrame int    // 0 uses screen.ticks_per_frame
	VizAddr       string // empty uses viz.addr; both empty disables the feed
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the arena and everything around it.
type Game struct {
	cfg    *config.Config
	arena  *arena.Arena
	logger *slog.Logger
	runID  string

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	bookmarks     *telemetry.BookmarkDetector
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// Network viewer feed
	hub            *vizserver.Hub
	broadcastEvery int32
	lastBroadcast  int32

	// Stepping
	headless      bool
	ticksPerFrame int

	// Graphics (nil when headless)
	camera     *camera.Camera
	background *renderer.BackgroundRenderer
	entities   *renderer.EntityRenderer
	hud        *ui.HUD
	controls   *ui.ControlsPanel
	perfPanel  *ui.PerfPanel
	inspector  *inspector.Inspector
	overlays   *ui.OverlayRegistry
	showPerf   bool

	// Requests from the controls panel, applied at the start of the next Update
	uiRequests []arena.Request

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. The graphical collaborators are built
// only when opts.Headless is false, and then a raylib window must already exist.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		cfg:           cfg,
		logger:        logger,
		runID:         telemetry.NewRunID(),
		collector:     telemetry.NewCollector(cfg.Telemetry.WindowTicks, cfg.Arena.DT),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.WindowTicks),
		bookmarks:     telemetry.NewBookmarkDetector(10),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
		headless:      opts.Headless,
		ticksPerFrame: opts.TicksPerFrame,
	}
	if g.ticksPerFrame <= 0 {
		g.ticksPerFrame = cfg.Screen.TicksPerFrame
	}
	g.ticksPerFrame = clampInt(g.ticksPerFrame, 1, MaxTicksPerFrame)

	om, err := telemetry.NewOutputManager(opts.OutputDir, g.runID)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if om != nil {
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, fmt.Errorf("writing config snapshot: %w", err)
		}
	}
	g.outputManager = om

	g.arena = arena.New(cfg, arena.Options{
		Seed:      opts.Seed,
		Logger:    logger.With("run_id", g.runID),
		Collector: g.collector,
		Perf:      g.perfCollector,
	})
	if opts.Autoplay {
		g.arena.AcceptCommand(arena.CommandPlay)
	}

	addr := opts.VizAddr
	if addr == "" {
		addr = cfg.Viz.Addr
	}
	if addr != "" {
		w, h := g.arena.Dimensions()
		g.hub = vizserver.NewHub(vizserver.NewHello(g.runID, w, h), cfg.Viz.QueueSize, logger)
		if err := g.hub.Start(addr); err != nil {
			g.closeOutput()
			return nil, fmt.Errorf("starting viz server: %w", err)
		}
		g.broadcastEvery = int32(cfg.Viz.BroadcastEvery)
		if g.broadcastEvery < 1 {
			g.broadcastEvery = 1
		}
	}

	if !g.headless {
		g.initGraphics()
	}

	logger.Info("game created",
		"run_id", g.runID,
		"seed", opts.Seed,
		"headless", g.headless,
		"ticks_per_frame", g.ticksPerFrame,
		"viz_addr", g.VizAddr(),
	)
	return g, nil
}

// initGraphics builds the window-side collaborators.
func (g *Game) initGraphics() {
	cfg := g.cfg
	g.screenWidth = float32(cfg.Screen.Width)
	g.screenHeight = float32(cfg.Screen.Height)
	panel := float32(cfg.Screen.PanelWidth)

	g.camera = camera.New(panel, 0, g.screenWidth-panel, g.screenHeight,
		float32(cfg.Arena.Width), float32(cfg.Arena.Height))
	g.background = renderer.NewBackgroundRenderer(cfg.Arena.Width, cfg.Arena.Height,
		cfg.Placement.Offset, cfg.Placement.CellSize)
	g.entities = renderer.NewEntityRenderer(cfg.Sensor.MaxReading)
	g.hud = ui.NewHUD()
	g.controls = ui.NewControlsPanel(0, 0, int32(cfg.Screen.PanelWidth), cfg)
	g.perfPanel = ui.NewPerfPanel(0, 0)
	g.inspector = inspector.NewInspector(0, 10, cfg.Sensor.MaxReading)
	g.overlays = ui.NewOverlayRegistry()
	g.layoutPanels()
}

// layoutPanels positions panels that hug the right and bottom edges.
func (g *Game) layoutPanels() {
	g.inspector.SetPosition(int32(g.screenWidth)-inspector.PanelWidth-10, 10)
	g.perfPanel.SetPosition(int32(g.screenWidth)-264, int32(g.screenHeight)-160)
}

// Arena returns the simulated arena.
func (g *Game) Arena() *arena.Arena {
	return g.arena
}

// Tick returns the arena tick.
func (g *Game) Tick() int32 {
	return g.arena.Tick()
}

// RunID returns the identifier of this run.
func (g *Game) RunID() string {
	return g.runID
}

// VizAddr returns the viewer feed address, or "" when disabled.
func (g *Game) VizAddr() string {
	if g.hub == nil {
		return ""
	}
	return g.hub.Addr()
}

// Done reports whether a headless run can make no further progress.
func (g *Game) Done() bool {
	return g.headless && g.arena.Status() == arena.StatusLost
}

// TicksPerFrame returns the speed multiplier.
func (g *Game) TicksPerFrame() int {
	return g.ticksPerFrame
}

// SetTicksPerFrame sets the speed multiplier, clamped to [1, MaxTicksPerFrame].
func (g *Game) SetTicksPerFrame(n int) {
	g.ticksPerFrame = clampInt(n, 1, MaxTicksPerFrame)
}

// Update handles input and advances the arena (graphics mode).
func (g *Game) Update() {
	g.handleInput()

	for _, req := range g.uiRequests {
		g.arena.Apply(req)
	}
	g.uiRequests = g.uiRequests[:0]

	for i := 0; i < g.ticksPerFrame; i++ {
		g.step()
	}
}

// UpdateHeadless advances the arena without any raylib calls.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.ticksPerFrame; i++ {
		g.step()
	}
}

// step applies queued viewer requests, advances one tick and publishes results.
func (g *Game) step() {
	drained := 0
	if g.hub != nil {
		drained = g.hub.Drain(g.arena)
	}

	before := g.arena.Tick()
	g.arena.AdvanceTime(g.cfg.Arena.DT)
	advanced := g.arena.Tick() != before

	if advanced {
		g.flushTelemetry()
	}
	if g.hub != nil && (drained > 0 || (advanced && g.arena.Tick()-g.lastBroadcast >= g.broadcastEvery)) {
		g.hub.Broadcast(g.arena.Snapshot())
		g.lastBroadcast = g.arena.Tick()
	}
}

// Unload releases graphics resources, stops the viewer feed and closes output.
func (g *Game) Unload() {
	if g.background != nil {
		g.background.Unload()
	}
	if g.hub != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := g.hub.Shutdown(ctx); err != nil {
			g.logger.Error("viz server shutdown", "error", err)
		}
	}
	g.closeOutput()
}

func (g *Game) closeOutput() {
	if g.outputManager == nil {
		return
	}
	if err := g.outputManager.Close(); err != nil {
		g.logger.Error("closing output", "error", err)
	}
	g.outputManager = nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
