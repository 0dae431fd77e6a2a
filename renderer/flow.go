// Package renderer provides raylib drawing for the flow field and the
// particle set. It only reads simulation state.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/systems"
)

// FlowFieldRenderer draws the direction map as a grid of arrows.
type FlowFieldRenderer struct {
	cellSize   int32
	arrowScale float32
}

// NewFlowFieldRenderer creates an arrow-grid renderer with the given cell
// spacing and arrow length in pixels.
func NewFlowFieldRenderer(cellSize int32, arrowScale float32) *FlowFieldRenderer {
	return &FlowFieldRenderer{cellSize: cellSize, arrowScale: arrowScale}
}

// Draw renders one arrow per grid cell, from the cell corner toward the
// sampled flow direction. The grid extends one cell beyond each edge so
// the wrap boundary is visibly padded; the field clamps those samples.
func (r *FlowFieldRenderer) Draw(sim *systems.Simulation) {
	bounds := sim.Bounds()
	cols := int32(bounds.Width) / r.cellSize
	rows := int32(bounds.Height) / r.cellSize

	for gx := int32(-1); gx <= cols; gx++ {
		for gy := int32(-1); gy <= rows; gy++ {
			x := float32(gx * r.cellSize)
			y := float32(gy * r.cellSize)

			dx, dy := sim.SampleDirection(x, y)

			start := rl.Vector2{X: x, Y: y}
			end := rl.Vector2{X: x + dx*r.arrowScale, Y: y + dy*r.arrowScale}

			rl.DrawLineEx(start, end, 1, rl.DarkGray)
			rl.DrawCircleV(end, 1, rl.DarkGray)
		}
	}
}
