package systems

// Settings is the per-frame parameter snapshot handed to the simulation.
// The settings UI mutates it between ticks; the simulation only reads it
// during a tick.
type Settings struct {
	Seed          uint32
	ParticleCount int
	ParticleSize  float32
	MaxSpeed      float32
	SteerRate     float32 // [0, 1]
	FlowInfluence float32 // [0, 1]
	MaxAccel      float32
	Mode          IntegratorMode
	Paused        bool

	// Display toggles, read by the renderer only.
	DrawBackground bool
	DrawParticles  bool
	DrawFlowField  bool
}

// Params extracts the steering parameters for one tick.
func (s Settings) Params() StepParams {
	return StepParams{
		Mode:          s.Mode,
		MaxSpeed:      s.MaxSpeed,
		SteerRate:     s.SteerRate,
		FlowInfluence: s.FlowInfluence,
		MaxAccel:      s.MaxAccel,
	}
}
