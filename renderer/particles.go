package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/systems"
)

// particleColor is the marker fill (plum).
var particleColor = rl.Color{R: 221, G: 160, B: 221, A: 255}

// ParticleRenderer draws the particle set as fixed-size markers.
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw renders every particle as a circle of the given diameter.
func (r *ParticleRenderer) Draw(particles []systems.Particle, size float32) {
	radius := size / 2
	if radius < 0.5 {
		radius = 0.5
	}
	for i := range particles {
		p := &particles[i]
		rl.DrawCircleV(rl.Vector2{X: p.X, Y: p.Y}, radius, particleColor)
	}
}
