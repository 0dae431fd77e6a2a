// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Particle count range exposed by the settings surface.
const (
	MinParticleCount = 0
	MaxParticleCount = 1000
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Noise     NoiseConfig     `yaml:"noise"`
	Field     FieldConfig     `yaml:"field"`
	Particles ParticlesConfig `yaml:"particles"`
	Sim       SimConfig       `yaml:"sim"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The window also fixes the
// simulation bounds at startup.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// NoiseConfig holds noise field sampling parameters.
type NoiseConfig struct {
	Window   float64 `yaml:"window"`   // Half-extent of the noise sampling window
	Seamless bool    `yaml:"seamless"` // Tileable field so the wrap shows no seam
}

// FieldConfig holds flow-field arrow overlay parameters.
type FieldConfig struct {
	CellSize   int     `yaml:"cell_size"`   // Arrow grid spacing in pixels
	ArrowScale float32 `yaml:"arrow_scale"` // Arrow length in pixels
}

// ParticlesConfig holds particle simulation parameters.
type ParticlesConfig struct {
	Count         int     `yaml:"count"`
	Size          float32 `yaml:"size"`           // Marker diameter in pixels
	MaxSpeed      float32 `yaml:"max_speed"`      // Velocity renormalization target
	SteerRate     float32 `yaml:"steer_rate"`     // [0, 1]
	FlowInfluence float32 `yaml:"flow_influence"` // [0, 1]
	MaxAccel      float32 `yaml:"max_accel"`      // Accumulator cap (accumulate mode)
	Integrator    string  `yaml:"integrator"`     // "steer" or "accumulate"
}

// SimConfig holds tick parameters.
type SimConfig struct {
	Seed       uint32  `yaml:"seed"`         // 0 = random at startup
	TimeScale  float64 `yaml:"time_scale"`   // Frame delta multiplier
	MaxFrameDT float64 `yaml:"max_frame_dt"` // Frame delta clamp in seconds
}

// RenderConfig holds the initial display toggles.
type RenderConfig struct {
	Background bool `yaml:"background"`
	Particles  bool `yaml:"particles"`
	FlowField  bool `yaml:"flowfield"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32    float32 // Screen.Width as float32
	ScreenH32    float32 // Screen.Height as float32
	TimeScale32  float32 // Sim.TimeScale as float32
	MaxFrameDT32 float32 // Sim.MaxFrameDT as float32

	// MaxSpeedLimit32 is the largest max_speed the settings surface may
	// hand the simulation at runtime: the single-step toroidal wrap needs
	// max_speed * time_scale * max_frame_dt to stay under the smaller
	// bounds dimension.
	MaxSpeedLimit32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults, then validates it. If path is empty, only embedded defaults
// are used.
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
		// Unmarshal into same struct - only overwrites fields present in file
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

// Validate checks parameter ranges. Beyond per-field bounds it enforces
// the wrap-safety invariant: the largest single-tick displacement,
// max_speed * time_scale * max_frame_dt, must stay under the smaller
// bounds dimension or the single-step toroidal wrap would leave positions
// out of range.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen: dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Noise.Window <= 0 {
		return fmt.Errorf("noise: window must be positive, got %v", c.Noise.Window)
	}
	if c.Field.CellSize <= 0 {
		return fmt.Errorf("field: cell_size must be positive, got %d", c.Field.CellSize)
	}
	if c.Particles.Count < MinParticleCount || c.Particles.Count > MaxParticleCount {
		return fmt.Errorf("particles: count %d outside [%d, %d]", c.Particles.Count, MinParticleCount, MaxParticleCount)
	}
	if c.Particles.MaxSpeed < 0 {
		return fmt.Errorf("particles: max_speed must be non-negative, got %v", c.Particles.MaxSpeed)
	}
	if c.Particles.SteerRate < 0 || c.Particles.SteerRate > 1 {
		return fmt.Errorf("particles: steer_rate %v outside [0, 1]", c.Particles.SteerRate)
	}
	if c.Particles.FlowInfluence < 0 || c.Particles.FlowInfluence > 1 {
		return fmt.Errorf("particles: flow_influence %v outside [0, 1]", c.Particles.FlowInfluence)
	}
	if c.Particles.MaxAccel < 0 {
		return fmt.Errorf("particles: max_accel must be non-negative, got %v", c.Particles.MaxAccel)
	}
	switch c.Particles.Integrator {
	case "steer", "accumulate":
	default:
		return fmt.Errorf("particles: unknown integrator %q", c.Particles.Integrator)
	}
	if c.Sim.TimeScale <= 0 {
		return fmt.Errorf("sim: time_scale must be positive, got %v", c.Sim.TimeScale)
	}
	if c.Sim.MaxFrameDT <= 0 {
		return fmt.Errorf("sim: max_frame_dt must be positive, got %v", c.Sim.MaxFrameDT)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("telemetry: stats_window must be positive, got %v", c.Telemetry.StatsWindow)
	}

	minDim := c.Screen.Width
	if c.Screen.Height < minDim {
		minDim = c.Screen.Height
	}
	maxStep := float64(c.Particles.MaxSpeed) * c.Sim.TimeScale * c.Sim.MaxFrameDT
	if maxStep >= float64(minDim) {
		return fmt.Errorf("wrap safety: max_speed*time_scale*max_frame_dt = %v reaches bounds dimension %d", maxStep, minDim)
	}

	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.TimeScale32 = float32(c.Sim.TimeScale)
	c.Derived.MaxFrameDT32 = float32(c.Sim.MaxFrameDT)

	minDim := c.Screen.Width
	if c.Screen.Height < minDim {
		minDim = c.Screen.Height
	}
	// 1% under the exact bound keeps the strict inequality after float32
	// rounding in the hot path.
	c.Derived.MaxSpeedLimit32 = float32(0.99 * float64(minDim) / (c.Sim.TimeScale * c.Sim.MaxFrameDT))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
