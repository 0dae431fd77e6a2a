// Package telemetry aggregates particle kinematics over time windows and
// writes them to structured logs or CSV.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowEndTick int64   `csv:"window_end"`
	WallTimeSec   float64 `csv:"wall_time"` // Clamped frame deltas, before time scaling
	Ticks         int     `csv:"ticks"`
	TicksPerSec   float64 `csv:"ticks_per_sec"`

	// Particle kinematics sampled at window end
	Particles int     `csv:"particles"`
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedMin  float64 `csv:"speed_min"`
	SpeedMax  float64 `csv:"speed_max"`
}

// ComputeSpeedStats returns mean, standard deviation, min and max of the
// given speeds. Returns all zeros for an empty slice; standard deviation
// is zero for a single sample.
func ComputeSpeedStats(speeds []float64) (mean, std, min, max float64) {
	if len(speeds) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		std = stat.StdDev(speeds, nil)
	}
	min = floats.Min(speeds)
	max = floats.Max(speeds)
	return mean, std, min, max
}

// Log emits the window stats as a structured log record.
func (w WindowStats) Log() {
	slog.Info("window stats",
		"window_end", w.WindowEndTick,
		"wall_time", w.WallTimeSec,
		"ticks_per_sec", w.TicksPerSec,
		"particles", w.Particles,
		"speed_mean", w.SpeedMean,
		"speed_std", w.SpeedStd,
		"speed_min", w.SpeedMin,
		"speed_max", w.SpeedMax,
	)
}
