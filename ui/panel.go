// Package ui provides the raygui settings panel for live parameter tuning.
package ui

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/systems"
)

// panelBg is the panel background fill.
var panelBg = rl.Color{R: 20, G: 20, B: 25, A: 230}

// SettingsPanel renders slider and checkbox controls and writes the
// results back into a settings snapshot. raygui is immediate-mode, so all
// mutation happens inside Draw, between ticks.
// maxSpeedSliderCeil is the widest velocity range the panel ever offers;
// small domains narrow it further via the wrap-safe limit.
const maxSpeedSliderCeil = 10

type SettingsPanel struct {
	x, y     float32
	width    float32
	visible  bool
	rng      *rand.Rand
	maxSpeed float32
}

// NewSettingsPanel creates a panel anchored at (x, y). maxSpeed bounds the
// velocity slider; callers pass the wrap-safe limit so runtime tuning can
// never produce a displacement the single-step wrap cannot fold back.
func NewSettingsPanel(x, y, width float32, rng *rand.Rand, maxSpeed float32) *SettingsPanel {
	if maxSpeed > maxSpeedSliderCeil {
		maxSpeed = maxSpeedSliderCeil
	}
	return &SettingsPanel{x: x, y: y, width: width, visible: true, rng: rng, maxSpeed: maxSpeed}
}

// Toggle switches panel visibility and returns the new state.
func (p *SettingsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the panel is shown.
func (p *SettingsPanel) Visible() bool {
	return p.visible
}

// Draw renders the panel and returns the possibly modified settings. Seed
// and count changes surface through the returned snapshot; the caller
// hands it to Simulation.Apply before the next tick.
func (p *SettingsPanel) Draw(s systems.Settings) systems.Settings {
	if !p.visible {
		return s
	}

	const lineGap = 36
	sliderW := p.width - 90

	const panelHeight = 560
	rl.DrawRectangle(int32(p.x), int32(p.y), int32(p.width), int32(panelHeight), panelBg)
	rl.DrawRectangleLines(int32(p.x), int32(p.y), int32(p.width), int32(panelHeight), rl.Gray)

	x := p.x + 10
	y := p.y + 10

	rl.DrawText("Noise", int32(x), int32(y), 16, rl.White)
	y += 24

	// Sliders are float32, so the full u32 seed range is driven coarsely
	// here and exactly by the randomize button.
	rl.DrawText(fmt.Sprintf("seed: %d", s.Seed), int32(x), int32(y), 14, rl.Gray)
	y += 18
	newSeed := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 20},
		"0", "99999",
		float32(s.Seed%100000), 0, 99999,
	)
	if uint32(newSeed) != s.Seed%100000 {
		s.Seed = s.Seed - s.Seed%100000 + uint32(newSeed)
	}
	if gui.Button(rl.Rectangle{X: x + sliderW + 8, Y: y, Width: 70, Height: 20}, "Random") {
		s.Seed = p.rng.Uint32()
	}
	y += lineGap

	rl.DrawText("Particles", int32(x), int32(y), 16, rl.White)
	y += 24

	y, count := p.slider(x, y, sliderW, "count", float32(s.ParticleCount),
		config.MinParticleCount, config.MaxParticleCount, "%d")
	s.ParticleCount = int(count)

	y, s.ParticleSize = p.slider(x, y, sliderW, "size", s.ParticleSize, 0.1, 50, "%.1f")
	y, s.MaxSpeed = p.slider(x, y, sliderW, "velocity", s.MaxSpeed, 0, p.maxSpeed, "%.2f")
	y, s.SteerRate = p.slider(x, y, sliderW, "steering", s.SteerRate, 0, 1, "%.2f")
	y, s.FlowInfluence = p.slider(x, y, sliderW, "flow force", s.FlowInfluence, 0, 1, "%.2f")
	y, s.MaxAccel = p.slider(x, y, sliderW, "max accel", s.MaxAccel, 0, 2, "%.2f")

	accumulate := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"accumulate mode", s.Mode == systems.ModeAccumulate)
	if accumulate {
		s.Mode = systems.ModeAccumulate
	} else {
		s.Mode = systems.ModeSteer
	}
	y += 28

	rl.DrawText("Rendering", int32(x), int32(y), 16, rl.White)
	y += 24

	s.DrawBackground = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"background", s.DrawBackground)
	y += 22
	s.DrawParticles = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"particles", s.DrawParticles)
	y += 22
	s.DrawFlowField = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"flowfield", s.DrawFlowField)
	y += 28

	rl.DrawText("Sim", int32(x), int32(y), 16, rl.White)
	y += 24
	s.Paused = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"pause [Space]", s.Paused)

	return s
}

// slider draws a labeled SliderBar with its current value and returns the
// advanced y cursor and the new value.
func (p *SettingsPanel) slider(x, y, width float32, label string, value, min, max float32, format string) (float32, float32) {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18

	newValue := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: width, Height: 20},
		"", "",
		value, min, max,
	)

	var text string
	if format == "%d" {
		text = fmt.Sprintf(format, int(newValue))
	} else {
		text = fmt.Sprintf(format, newValue)
	}
	rl.DrawText(text, int32(x+width+8), int32(y+2), 14, rl.LightGray)

	return y + 26, newValue
}
