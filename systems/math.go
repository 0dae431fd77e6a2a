package systems

import "math"

// vecLength returns the magnitude of a vector.
func vecLength(x, y float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y)))
}

// setLength rescales (x, y) to exactly the given length. Zero vectors are
// returned unchanged: they carry no direction to preserve.
func setLength(x, y, length float32) (float32, float32) {
	mag := vecLength(x, y)
	if mag == 0 {
		return x, y
	}
	scale := length / mag
	return x * scale, y * scale
}

// capLength limits (x, y) to at most maxLen. Upper bound only.
func capLength(x, y, maxLen float32) (float32, float32) {
	magSq := x*x + y*y
	if magSq <= maxLen*maxLen {
		return x, y
	}
	scale := maxLen / float32(math.Sqrt(float64(magSq)))
	return x * scale, y * scale
}
