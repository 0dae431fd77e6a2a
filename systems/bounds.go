// Package systems contains the simulation core: the noise-derived flow
// field, the particle set, and the steering integrators. Nothing here
// imports raylib; the renderer consumes read-only views.
package systems

// Bounds represents the simulation bounds. The domain is toroidal: a
// particle leaving one edge re-enters from the opposite edge.
type Bounds struct {
	Width, Height float32
}

// Wrap applies single-step toroidal wrapping to a position. Callers
// guarantee per-tick displacement stays under Width and Height (config
// validation enforces this), so one add or subtract per axis suffices.
func (b Bounds) Wrap(x, y float32) (float32, float32) {
	if x < 0 {
		// Adding the width to a coordinate within one ulp of zero can
		// round to the width itself; fold that back onto the origin so
		// the result stays in [0, Width).
		x += b.Width
		if x >= b.Width {
			x = 0
		}
	} else if x >= b.Width {
		x -= b.Width
	}

	if y < 0 {
		y += b.Height
		if y >= b.Height {
			y = 0
		}
	} else if y >= b.Height {
		y -= b.Height
	}

	return x, y
}

// Contains reports whether a position lies inside the half-open domain
// [0, Width) x [0, Height).
func (b Bounds) Contains(x, y float32) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}
