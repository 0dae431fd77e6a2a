package systems

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseOptions controls how the scalar field is sampled from OpenSimplex.
type NoiseOptions struct {
	// Window is the half-extent of the noise-space sampling window; the
	// bounds rectangle maps onto [-Window, Window] on both axes.
	Window float64
	// Seamless makes opposite edges of the field continuous, so the
	// toroidal wrap shows no visible seam.
	Seamless bool
}

// DefaultNoiseOptions returns the sampling window used by the simulation.
func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{Window: 3.0, Seamless: true}
}

// NoiseField is a deterministic scalar field over [0, W) x [0, H) with
// values in [0, 1]. It is sampled once at build time and immutable
// afterward; seed or bounds changes replace it wholesale.
type NoiseField struct {
	width, height int
	values        []float64
}

// BuildNoiseField samples a seeded OpenSimplex field across the bounds at
// one value per pixel. Two calls with identical arguments produce
// bit-identical fields.
//
// In seamless mode the field is evaluated as 4D noise on a torus embedding
// of the sampling window (one circle per axis), which makes the wrap exact
// rather than edge-blended.
func BuildNoiseField(seed uint32, b Bounds, opts NoiseOptions) *NoiseField {
	w := int(b.Width)
	h := int(b.Height)
	noise := opensimplex.NewNormalized(int64(seed))
	values := make([]float64, w*h)

	span := 2 * opts.Window

	if opts.Seamless {
		// Circle radii chosen so one lap covers the full window span,
		// keeping the apparent noise frequency close to planar sampling.
		radius := span / (2 * math.Pi)
		for y := 0; y < h; y++ {
			ty := float64(y) / float64(h) * 2 * math.Pi
			nz := radius * math.Cos(ty)
			nw := radius * math.Sin(ty)
			for x := 0; x < w; x++ {
				tx := float64(x) / float64(w) * 2 * math.Pi
				nx := radius * math.Cos(tx)
				ny := radius * math.Sin(tx)
				values[y*w+x] = noise.Eval4(nx, ny, nz, nw)
			}
		}
	} else {
		for y := 0; y < h; y++ {
			ny := -opts.Window + float64(y)/float64(h)*span
			for x := 0; x < w; x++ {
				nx := -opts.Window + float64(x)/float64(w)*span
				values[y*w+x] = noise.Eval2(nx, ny)
			}
		}
	}

	return &NoiseField{width: w, height: h, values: values}
}

// ConstantField returns a 1x1 field holding a fixed scalar; every
// position samples the same value, which makes a uniform flow.
func ConstantField(v float64) *NoiseField {
	return &NoiseField{width: 1, height: 1, values: []float64{v}}
}

// Get returns the field value at a cell. Coordinates outside the grid
// clamp to the nearest edge cell; the arrow overlay samples one cell
// beyond each edge for visual padding.
func (f *NoiseField) Get(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= f.width {
		x = f.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= f.height {
		y = f.height - 1
	}
	return f.values[y*f.width+x]
}

// Size returns the field dimensions in cells.
func (f *NoiseField) Size() (int, int) {
	return f.width, f.height
}
