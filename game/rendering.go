package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders one frame and runs the immediate-mode settings panel. The
// panel mutates the settings snapshot here; the simulation picks the new
// values up at the start of the next Update.
func (g *Game) Draw() {
	rl.BeginDrawing()

	// Skipping the clear leaves previous frames in the buffer, which
	// gives the classic trail look when the background toggle is off.
	if g.settings.DrawBackground {
		rl.ClearBackground(rl.Black)
	}

	if g.settings.DrawFlowField {
		g.flowRenderer.Draw(g.sim)
	}

	if g.settings.DrawParticles {
		g.particleDrawer.Draw(g.sim.Particles(), g.settings.ParticleSize)
	}

	updated := g.panel.Draw(g.settings)
	if updated.Seed != g.settings.Seed {
		slog.Info("seed changed", "seed", updated.Seed)
	}
	if updated.ParticleCount != g.settings.ParticleCount {
		slog.Info("particle count changed", "count", updated.ParticleCount)
	}
	g.settings = updated

	rl.EndDrawing()
}
