package systems

import "math"

// FlowDirection maps the field scalar under a position to a unit steering
// direction: v in [0, 1] becomes the angle v*2*Pi. Pure and read-only on
// an immutable field, so the simulation tick and the renderer may call it
// concurrently without synchronization.
func FlowDirection(f *NoiseField, x, y float32) (float32, float32) {
	angle := f.Get(int(x), int(y)) * 2 * math.Pi
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}
