package systems

import "math/rand"

// Particle is one advected point. MX/MY is the motion state: a velocity
// under ModeSteer, an acceleration accumulator under ModeAccumulate.
type Particle struct {
	X, Y   float32
	MX, MY float32
}

// GenerateParticles places count particles uniformly at random inside the
// bounds with zero motion state. The whole set is regenerated whenever the
// configured count changes; particles are never added or removed
// individually.
func GenerateParticles(count int, b Bounds, rng *rand.Rand) []Particle {
	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = Particle{
			X: rng.Float32() * b.Width,
			Y: rng.Float32() * b.Height,
		}
	}
	return particles
}
