// Package config provides configuration loading and validation for the arena.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

//go:embed schema.json
var schemaJSON string

// Config holds all arena configuration parameters.
// A loaded Config is treated as immutable and passed explicitly to its consumers.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen" json:"screen"`
	Arena      ArenaConfig      `yaml:"arena" json:"arena"`
	Population PopulationConfig `yaml:"population" json:"population"`
	Robot      RobotConfig      `yaml:"robot" json:"robot"`
	Light      LightConfig      `yaml:"light" json:"light"`
	Food       FoodConfig       `yaml:"food" json:"food"`
	Sensor     SensorConfig     `yaml:"sensor" json:"sensor"`
	Motion     MotionConfig     `yaml:"motion" json:"motion"`
	Collision  CollisionConfig  `yaml:"collision" json:"collision"`
	Placement  PlacementConfig  `yaml:"placement" json:"placement"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" json:"telemetry"`
	Viz        VizConfig        `yaml:"viz" json:"viz"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-" json:"-"`
}

// ScreenConfig holds window settings for the graphical viewer.
type ScreenConfig struct {
	Width         int `yaml:"width" json:"width"`
	Height        int `yaml:"height" json:"height"`
	TargetFPS     int `yaml:"target_fps" json:"target_fps"`
	PanelWidth    int `yaml:"panel_width" json:"panel_width"`
	TicksPerFrame int `yaml:"ticks_per_frame" json:"ticks_per_frame"`
}

// ArenaConfig holds the arena extent and timestep.
type ArenaConfig struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	DT     float64 `yaml:"dt" json:"dt"` // simulation time per tick
}

// PopulationConfig holds initial counts and per-category maxima.
type PopulationConfig struct {
	Fear       int `yaml:"fear" json:"fear"`
	Explore    int `yaml:"explore" json:"explore"`
	Love       int `yaml:"love" json:"love"`
	Aggressive int `yaml:"aggressive" json:"aggressive"`
	Lights     int `yaml:"lights" json:"lights"`
	Food       int `yaml:"food" json:"food"`

	MaxRobotsPerBehavior int `yaml:"max_robots_per_behavior" json:"max_robots_per_behavior"`
	MaxLights            int `yaml:"max_lights" json:"max_lights"`
	MaxFood              int `yaml:"max_food" json:"max_food"`
}

// RobotConfig holds robot body, speed and hunger parameters.
type RobotConfig struct {
	MinRadius   float64 `yaml:"min_radius" json:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius" json:"max_radius"`
	MaxSpeed    float64 `yaml:"max_speed" json:"max_speed"`
	AngleDelta  float64 `yaml:"angle_delta" json:"angle_delta"`
	SpeedDelta  float64 `yaml:"speed_delta" json:"speed_delta"`
	StarveGain  float64 `yaml:"starve_gain" json:"starve_gain"`   // wheel gain on food readings while starving
	ArcSpeed    float64 `yaml:"arc_speed" json:"arc_speed"`       // wheel speed during the post-collision arc
	ArcTurn     float64 `yaml:"arc_turn" json:"arc_turn"`         // heading change per arc tick (degrees)
	HungerTicks int     `yaml:"hunger_ticks" json:"hunger_ticks"` // ticks until hungry
	StarveTicks int     `yaml:"starve_ticks" json:"starve_ticks"` // ticks until starving
	DeathTicks  int     `yaml:"death_ticks" json:"death_ticks"`   // ticks until dead

	Colors BehaviorColors `yaml:"colors" json:"colors"`
}

// BehaviorColors holds the display color per behavior.
type BehaviorColors struct {
	Fear       RGB `yaml:"fear" json:"fear"`
	Explore    RGB `yaml:"explore" json:"explore"`
	Love       RGB `yaml:"love" json:"love"`
	Aggressive RGB `yaml:"aggressive" json:"aggressive"`
}

// LightConfig holds light body and motion parameters.
type LightConfig struct {
	InitialRadius float64 `yaml:"initial_radius" json:"initial_radius"`
	MinRadius     float64 `yaml:"min_radius" json:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius" json:"max_radius"`
	CruiseSpeed   float64 `yaml:"cruise_speed" json:"cruise_speed"`
	ArcSpeed      float64 `yaml:"arc_speed" json:"arc_speed"`
	ArcTurn       float64 `yaml:"arc_turn" json:"arc_turn"`
	Color         RGB     `yaml:"color" json:"color"`
}

// FoodConfig holds food body parameters.
type FoodConfig struct {
	Radius          float64 `yaml:"radius" json:"radius"`
	ContactDistance float64 `yaml:"contact_distance" json:"contact_distance"` // food-sensor distance that counts as eating
	Color           RGB     `yaml:"color" json:"color"`
}

// SensorConfig holds sensor geometry and response parameters.
type SensorConfig struct {
	Angle        float64 `yaml:"angle" json:"angle"`       // mount angle off heading (degrees)
	Exponent     float64 `yaml:"exponent" json:"exponent"` // falloff exponent on distance
	Numerator    float64 `yaml:"numerator" json:"numerator"`
	MaxNumerator float64 `yaml:"max_numerator" json:"max_numerator"`
	MinDistance  float64 `yaml:"min_distance" json:"min_distance"` // distance floor before saturation
	MaxReading   float64 `yaml:"max_reading" json:"max_reading"`   // MAX_SENS used by explore/aggressive
	Gain         float64 `yaml:"gain" json:"gain"`                 // policy gain k
}

// MotionConfig holds integrator and collision-arc parameters.
type MotionConfig struct {
	WheelSeparation float64 `yaml:"wheel_separation" json:"wheel_separation"`
	ArcTicks        int     `yaml:"arc_ticks" json:"arc_ticks"`
}

// CollisionConfig holds collision resolution margins.
type CollisionConfig struct {
	WallInset        float64 `yaml:"wall_inset" json:"wall_inset"`
	SeparationMargin float64 `yaml:"separation_margin" json:"separation_margin"`
}

// PlacementConfig holds the random placement grid.
type PlacementConfig struct {
	Offset      float64 `yaml:"offset" json:"offset"`
	CellSize    float64 `yaml:"cell_size" json:"cell_size"`
	Columns     int     `yaml:"columns" json:"columns"`
	Rows        int     `yaml:"rows" json:"rows"`
	MaxAttempts int     `yaml:"max_attempts" json:"max_attempts"`
}

// TelemetryConfig holds telemetry window settings.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks" json:"window_ticks"`
}

// VizConfig holds network viewer settings.
type VizConfig struct {
	Addr           string `yaml:"addr" json:"addr"`
	BroadcastEvery int    `yaml:"broadcast_every" json:"broadcast_every"` // ticks between snapshots
	QueueSize      int    `yaml:"queue_size" json:"queue_size"`
}

// RGB is an 8-bit color triple.
type RGB struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	SensorAngleRad float64
	MaxRobots      int // across all behaviors
	MaxEntities    int
}

// Load reads configuration from a YAML file, merging with embedded defaults.
// The merged document is validated against the embedded JSON schema.
// If path is empty, only defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()
	return cfg, nil
}

// MustLoad is Load that panics on error. Intended for tests and tools.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Default returns the embedded defaults.
func Default() *Config {
	return MustLoad("")
}

// Validate checks the configuration against the embedded JSON schema.
func (c *Config) Validate() error {
	sch, err := jsonschema.CompileString("schema.json", schemaJSON)
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	// The validator expects decoded JSON values, not Go structs
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Robot.MinRadius > c.Robot.MaxRadius {
		return fmt.Errorf("robot.min_radius %.1f exceeds robot.max_radius %.1f", c.Robot.MinRadius, c.Robot.MaxRadius)
	}
	if c.Light.MinRadius > c.Light.MaxRadius {
		return fmt.Errorf("light.min_radius %.1f exceeds light.max_radius %.1f", c.Light.MinRadius, c.Light.MaxRadius)
	}
	return nil
}

// computeDerived calculates derived values from the loaded config.
func (c *Config) computeDerived() {
	c.Derived.SensorAngleRad = c.Sensor.Angle * math.Pi / 180
	c.Derived.MaxRobots = 4 * c.Population.MaxRobotsPerBehavior
	c.Derived.MaxEntities = c.Derived.MaxRobots + c.Population.MaxLights + c.Population.MaxFood
}

// WriteYAML writes the config to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
