package systems

import "math/rand"

// Simulation owns the noise field and the particle set and advances them
// one tick per frame. The field and the particle slice are each immutable
// within a tick and replaced by a single swap at tick boundaries, so a
// renderer holding a reference never observes a torn mix of old and new
// state.
type Simulation struct {
	bounds    Bounds
	noiseOpts NoiseOptions
	field     *NoiseField
	particles []Particle
	scratch   []Particle
	rng       *rand.Rand
	seed      uint32
	count     int
	tick      int64
}

// NewSimulation builds the initial field and particle set from a settings
// snapshot.
func NewSimulation(b Bounds, s Settings, opts NoiseOptions, rng *rand.Rand) *Simulation {
	return &Simulation{
		bounds:    b,
		noiseOpts: opts,
		field:     BuildNoiseField(s.Seed, b, opts),
		particles: GenerateParticles(s.ParticleCount, b, rng),
		scratch:   make([]Particle, s.ParticleCount),
		rng:       rng,
		seed:      s.Seed,
		count:     s.ParticleCount,
	}
}

// Apply reconciles the simulation with a new settings snapshot. A seed
// change rebuilds the noise field; a count change regenerates the particle
// set; every other parameter takes effect on the next tick with no
// rebuild. Rebuilds complete before Apply returns, so readers only ever
// see a whole field and a whole set.
func (s *Simulation) Apply(st Settings) {
	if st.Seed != s.seed {
		s.seed = st.Seed
		s.field = BuildNoiseField(st.Seed, s.bounds, s.noiseOpts)
	}
	if st.ParticleCount != s.count {
		s.count = st.ParticleCount
		s.particles = GenerateParticles(st.ParticleCount, s.bounds, s.rng)
		s.scratch = make([]Particle, st.ParticleCount)
	}
}

// Step advances the simulation by one tick. dt is already time-scaled by
// the caller. Paused ticks leave the particle set untouched while the
// renderer and UI stay live.
func (s *Simulation) Step(st Settings, dt float32) {
	if st.Paused {
		return
	}
	StepParticles(s.scratch, s.particles, s.field, s.bounds, st.Params(), dt)
	s.particles, s.scratch = s.scratch, s.particles
	s.tick++
}

// Particles returns the current particle set in stable order. The slice is
// replaced, never mutated, after each tick; callers may hold it across a
// frame.
func (s *Simulation) Particles() []Particle {
	return s.particles
}

// SampleDirection returns the flow direction at a position. Used by the
// arrow overlay; read-only.
func (s *Simulation) SampleDirection(x, y float32) (float32, float32) {
	return FlowDirection(s.field, x, y)
}

// Field returns the current noise field.
func (s *Simulation) Field() *NoiseField {
	return s.field
}

// Bounds returns the toroidal domain.
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int64 {
	return s.tick
}
