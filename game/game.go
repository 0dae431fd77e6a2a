// Package game wires the simulation core to raylib: per-frame input,
// settings application, and drawing.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/systems"
	"github.com/pthm-cable/drift/telemetry"
	"github.com/pthm-cable/drift/ui"
)

// Options configures a game instance beyond the loaded config.
type Options struct {
	Seed      uint32 // Noise seed; 0 = random at startup
	RNGSeed   int64  // Particle placement RNG seed; 0 = time-based
	LogStats  bool   // Emit window stats via slog
	OutputDir string // CSV output directory; empty = disabled
	Headless  bool   // Skip renderer and UI construction
}

// Game holds the complete per-run state.
type Game struct {
	cfg      *config.Config
	settings systems.Settings
	sim      *systems.Simulation
	rng      *rand.Rand

	panel          *ui.SettingsPanel
	flowRenderer   *renderer.FlowFieldRenderer
	particleDrawer *renderer.ParticleRenderer

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	timeScale     float32
	maxFrameDT    float32
	maxSpeedLimit float32
}

// NewGame creates a game instance from the global config and options.
// The noise field and particle set are built synchronously here, so the
// first frame already sees complete state.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	rngSeed := opts.RNGSeed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Sim.Seed
	}
	if seed == 0 {
		seed = rng.Uint32()
	}

	mode := systems.ModeSteer
	if cfg.Particles.Integrator == "accumulate" {
		mode = systems.ModeAccumulate
	}

	settings := systems.Settings{
		Seed:           seed,
		ParticleCount:  cfg.Particles.Count,
		ParticleSize:   cfg.Particles.Size,
		MaxSpeed:       cfg.Particles.MaxSpeed,
		SteerRate:      cfg.Particles.SteerRate,
		FlowInfluence:  cfg.Particles.FlowInfluence,
		MaxAccel:       cfg.Particles.MaxAccel,
		Mode:           mode,
		DrawBackground: cfg.Render.Background,
		DrawParticles:  cfg.Render.Particles,
		DrawFlowField:  cfg.Render.FlowField,
	}

	bounds := systems.Bounds{Width: cfg.Derived.ScreenW32, Height: cfg.Derived.ScreenH32}
	noiseOpts := systems.NoiseOptions{Window: cfg.Noise.Window, Seamless: cfg.Noise.Seamless}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:           cfg,
		settings:      settings,
		sim:           systems.NewSimulation(bounds, settings, noiseOpts, rng),
		rng:           rng,
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		output:        output,
		logStats:      opts.LogStats,
		timeScale:     cfg.Derived.TimeScale32,
		maxFrameDT:    cfg.Derived.MaxFrameDT32,
		maxSpeedLimit: cfg.Derived.MaxSpeedLimit32,
	}

	if !opts.Headless {
		g.panel = ui.NewSettingsPanel(cfg.Derived.ScreenW32-280, 10, 270, rng, cfg.Derived.MaxSpeedLimit32)
		g.flowRenderer = renderer.NewFlowFieldRenderer(int32(cfg.Field.CellSize), cfg.Field.ArrowScale)
		g.particleDrawer = renderer.NewParticleRenderer()
	}

	slog.Info("simulation initialized",
		"seed", seed,
		"particles", settings.ParticleCount,
		"bounds_w", bounds.Width,
		"bounds_h", bounds.Height,
		"integrator", cfg.Particles.Integrator,
	)

	return g, nil
}

// Update runs one frame: input, settings reconciliation, then one tick.
// dt is the raw frame delta in seconds; it is clamped and time-scaled
// here so the wrap invariant holds even after long stalls.
func (g *Game) Update(dt float32) {
	g.handleInput()
	g.step(dt)
}

// UpdateHeadless runs one tick at a fixed frame delta with no input.
func (g *Game) UpdateHeadless() {
	g.step(1 / float32(g.cfg.Screen.TargetFPS))
}

func (g *Game) step(dt float32) {
	if dt > g.maxFrameDT {
		dt = g.maxFrameDT
	}

	// Settings arrive from the UI and config, but the wrap-safety bound
	// is re-enforced here so no runtime path can request a displacement
	// larger than the domain.
	if g.settings.MaxSpeed > g.maxSpeedLimit {
		g.settings.MaxSpeed = g.maxSpeedLimit
	}

	g.sim.Apply(g.settings)
	g.sim.Step(g.settings, dt*g.timeScale)

	g.observe(float64(dt))
}

// observe feeds the collector and emits window stats to slog and CSV.
func (g *Game) observe(dt float64) {
	stats := g.collector.Observe(g.sim.Particles(), g.sim.Tick(), dt)
	if stats == nil {
		return
	}
	if g.logStats {
		stats.Log()
	}
	if err := g.output.WriteStats(*stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int64 {
	return g.sim.Tick()
}

// Settings returns the current settings snapshot.
func (g *Game) Settings() systems.Settings {
	return g.settings
}

// Close releases output resources.
func (g *Game) Close() error {
	return g.output.Close()
}
