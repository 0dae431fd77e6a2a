package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.settings.Paused = !g.settings.Paused
	}

	if rl.IsKeyPressed(rl.KeyTab) && g.panel != nil {
		g.panel.Toggle()
	}

	// R rerolls the noise seed; the rebuild happens on the next tick.
	if rl.IsKeyPressed(rl.KeyR) {
		g.settings.Seed = g.rng.Uint32()
	}
}
