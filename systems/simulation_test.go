package systems

import (
	"math/rand"
	"testing"
)

func testSettings() Settings {
	return Settings{
		Seed:          42,
		ParticleCount: 100,
		MaxSpeed:      1,
		SteerRate:     0.1,
		FlowInfluence: 1.0,
		MaxAccel:      1,
		Mode:          ModeSteer,
	}
}

func newTestSim(s Settings) *Simulation {
	bounds := Bounds{Width: 320, Height: 240}
	return NewSimulation(bounds, s, DefaultNoiseOptions(), rand.New(rand.NewSource(1)))
}

func TestSimulationPauseLeavesStateUntouched(t *testing.T) {
	settings := testSettings()
	sim := newTestSim(settings)

	// Run a few live ticks first so motion state is nonzero.
	for i := 0; i < 5; i++ {
		sim.Step(settings, 1.0/60*100)
	}

	before := make([]Particle, len(sim.Particles()))
	copy(before, sim.Particles())
	tickBefore := sim.Tick()

	settings.Paused = true
	for i := 0; i < 10; i++ {
		sim.Step(settings, 1.0/60*100)
	}

	if sim.Tick() != tickBefore {
		t.Errorf("paused ticks advanced the tick counter: %d -> %d", tickBefore, sim.Tick())
	}
	for i, p := range sim.Particles() {
		if p != before[i] {
			t.Fatalf("particle %d changed while paused: %+v -> %+v", i, before[i], p)
		}
	}
}

func TestSimulationApplySeedChange(t *testing.T) {
	settings := testSettings()
	sim := newTestSim(settings)

	field := sim.Field()
	particles := sim.Particles()

	// Unchanged settings rebuild nothing.
	sim.Apply(settings)
	if sim.Field() != field {
		t.Error("Apply with unchanged seed rebuilt the field")
	}
	if &sim.Particles()[0] != &particles[0] {
		t.Error("Apply with unchanged count regenerated particles")
	}

	// A new seed replaces the field wholesale and leaves particles alone.
	settings.Seed = 43
	sim.Apply(settings)
	if sim.Field() == field {
		t.Error("Apply with new seed did not rebuild the field")
	}
	if &sim.Particles()[0] != &particles[0] {
		t.Error("seed change regenerated particles")
	}
	if sim.Field().Get(3, 3) == field.Get(3, 3) && sim.Field().Get(7, 11) == field.Get(7, 11) {
		t.Error("rebuilt field looks identical to the old one")
	}
}

func TestSimulationApplyCountChange(t *testing.T) {
	settings := testSettings()
	sim := newTestSim(settings)

	for i := 0; i < 3; i++ {
		sim.Step(settings, 1.0/60*100)
	}

	settings.ParticleCount = 250
	sim.Apply(settings)

	particles := sim.Particles()
	if len(particles) != 250 {
		t.Fatalf("got %d particles after count change, want 250", len(particles))
	}
	bounds := sim.Bounds()
	for i, p := range particles {
		if !bounds.Contains(p.X, p.Y) {
			t.Errorf("regenerated particle %d outside bounds: (%v, %v)", i, p.X, p.Y)
		}
		if p.MX != 0 || p.MY != 0 {
			t.Errorf("regenerated particle %d has nonzero motion state", i)
		}
	}
}

func TestSimulationStepSwapsWholeSet(t *testing.T) {
	settings := testSettings()
	sim := newTestSim(settings)

	held := sim.Particles()
	snapshot := make([]Particle, len(held))
	copy(snapshot, held)

	sim.Step(settings, 1.0/60*100)

	// A reader holding the old slice across the tick sees the old set,
	// complete and unmodified; the new set is a different slice.
	for i := range held {
		if held[i] != snapshot[i] {
			t.Fatalf("held particle %d mutated during tick", i)
		}
	}
	if &sim.Particles()[0] == &held[0] {
		t.Error("tick did not replace the particle slice")
	}
}

func TestSimulationDeterministicRun(t *testing.T) {
	settings := testSettings()
	a := newTestSim(settings)
	b := newTestSim(settings)

	for i := 0; i < 50; i++ {
		a.Step(settings, 1.0/60*100)
		b.Step(settings, 1.0/60*100)
	}

	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("runs diverged at particle %d: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
