package systems

// IntegratorMode selects how flow samples turn into motion.
type IntegratorMode int

const (
	// ModeSteer blends the flow direction into the velocity under
	// inertia and steering-rate control.
	ModeSteer IntegratorMode = iota
	// ModeAccumulate adds a capped flow impulse to an acceleration
	// accumulator each tick.
	ModeAccumulate
)

// flowImpulse caps the per-tick flow contribution under ModeAccumulate.
const flowImpulse = 0.04

// StepParams holds the per-tick steering parameters, snapshotted from the
// settings surface before the tick starts.
type StepParams struct {
	Mode          IntegratorMode
	MaxSpeed      float32
	SteerRate     float32 // [0, 1]
	FlowInfluence float32 // [0, 1]
	MaxAccel      float32
}

// StepParticles advances every particle in src by one tick into dst. The
// two slices must have equal length and not alias; the caller swaps them
// afterward so readers see either the old or the new complete set. dt
// arrives already time-scaled.
func StepParticles(dst, src []Particle, field *NoiseField, b Bounds, p StepParams, dt float32) {
	for i := range src {
		switch p.Mode {
		case ModeAccumulate:
			dst[i] = stepAccumulate(src[i], field, b, p, dt)
		default:
			dst[i] = stepSteer(src[i], field, b, p, dt)
		}
	}
}

// stepSteer integrates one particle under velocity steering.
//
// The two length clamps are renormalizations, not bounds: the steering
// target is forced to exactly max(|velocity|, 1) and the blended velocity
// to exactly MaxSpeed. Zero vectors pass through setLength untouched.
func stepSteer(prev Particle, field *NoiseField, b Bounds, p StepParams, dt float32) Particle {
	dirX, dirY := FlowDirection(field, prev.X, prev.Y)
	dirX *= p.FlowInfluence
	dirY *= p.FlowInfluence

	inertiaX := prev.MX * (1 - p.FlowInfluence)
	inertiaY := prev.MY * (1 - p.FlowInfluence)

	steerX := dirX + inertiaX
	steerY := dirY + inertiaY

	target := vecLength(prev.MX, prev.MY)
	if target < 1 {
		target = 1
	}
	steerX, steerY = setLength(steerX, steerY, target)

	velX := prev.MX*(1-p.SteerRate) + steerX*p.SteerRate
	velY := prev.MY*(1-p.SteerRate) + steerY*p.SteerRate
	velX, velY = setLength(velX, velY, p.MaxSpeed)

	x, y := b.Wrap(prev.X+velX*dt, prev.Y+velY*dt)

	return Particle{X: x, Y: y, MX: velX, MY: velY}
}

// stepAccumulate integrates one particle under acceleration accumulation.
// Unlike stepSteer, the accumulator cap is an upper bound only.
func stepAccumulate(prev Particle, field *NoiseField, b Bounds, p StepParams, dt float32) Particle {
	dirX, dirY := FlowDirection(field, prev.X, prev.Y)
	dirX, dirY = capLength(dirX, dirY, flowImpulse)

	accX := prev.MX + dirX
	accY := prev.MY + dirY
	accX, accY = capLength(accX, accY, p.MaxAccel)

	x, y := b.Wrap(prev.X+accX*dt, prev.Y+accY*dt)

	return Particle{X: x, Y: y, MX: accX, MY: accY}
}
