package telemetry

import (
	"math"

	"github.com/pthm-cable/drift/systems"
)

// Collector accumulates per-tick observations and closes a stats window
// every windowSec of wall time. dt is the clamped frame delta in seconds,
// before time scaling.
type Collector struct {
	windowSec float64

	wallTime    float64
	windowStart float64
	windowTicks int
}

// NewCollector creates a collector with the given window size in seconds.
func NewCollector(windowSec float64) *Collector {
	return &Collector{windowSec: windowSec}
}

// Observe records one tick. It returns a non-nil WindowStats when the
// current window closes, sampling particle speeds at that moment.
func (c *Collector) Observe(particles []systems.Particle, tick int64, dt float64) *WindowStats {
	c.wallTime += dt
	c.windowTicks++

	if c.wallTime-c.windowStart < c.windowSec {
		return nil
	}

	elapsed := c.wallTime - c.windowStart

	speeds := make([]float64, len(particles))
	for i, p := range particles {
		speeds[i] = math.Sqrt(float64(p.MX*p.MX + p.MY*p.MY))
	}
	mean, std, min, max := ComputeSpeedStats(speeds)

	stats := &WindowStats{
		WindowEndTick: tick,
		WallTimeSec:   c.wallTime,
		Ticks:         c.windowTicks,
		TicksPerSec:   float64(c.windowTicks) / elapsed,
		Particles:     len(particles),
		SpeedMean:     mean,
		SpeedStd:      std,
		SpeedMin:      min,
		SpeedMax:      max,
	}

	c.windowStart = c.wallTime
	c.windowTicks = 0

	return stats
}
