package ggterm

// Damping constants for AnimatorState.Advance.
const (
	// VelocityDecay is the share of the previous velocity kept each frame.
	VelocityDecay = 0.90

	// EnergyGain scales the normalized squared displacement added to the
	// velocity each frame.
	EnergyGain = 0.10

	// MinVelocity is the velocity floor. Every frame moves each corner at
	// least this fraction of its remaining distance.
	MinVelocity = 0.20

	// MaxVelocity is the velocity ceiling. At 1 a corner lands on its target.
	MaxVelocity = 1.00
)

// AnimatorState is the smoothing state of one on-screen cursor: the corners
// as currently drawn and a per-corner velocity in [MinVelocity, MaxVelocity].
//
// The zero value is the initial state. A renderer owns exactly one
// AnimatorState per cursor and is the only writer.
type AnimatorState struct {
	Positions  [4]Point
	Velocities [4]float32
}

// Advance moves every corner one frame toward target.
//
// Each corner's velocity decays by VelocityDecay and gains EnergyGain times
// its squared distance to the target normalized by the squared viewport
// diagonal, clamped to [MinVelocity, MaxVelocity]. The corner then moves that
// fraction of the way to its target. Large jumps therefore snap quickly
// while small moves glide.
func (s *AnimatorState) Advance(target [4]Point, viewportWidth, viewportHeight float32) {
	diagSq := viewportWidth*viewportWidth + viewportHeight*viewportHeight

	for i := range s.Positions {
		distSq := target[i].Sub(s.Positions[i]).LengthSquared()

		var energy float32
		if diagSq > 0 {
			energy = distSq / diagSq
		}

		v := s.Velocities[i]*VelocityDecay + energy*EnergyGain
		v = min(max(v, MinVelocity), MaxVelocity)

		s.Velocities[i] = v
		if distSq == 0 {
			// Already on target; skip the blend so rounding cannot drift it.
			continue
		}
		s.Positions[i] = s.Positions[i].Lerp(target[i], v)
	}
}

// Advanced returns the state after one Advance step without modifying s.
func (s AnimatorState) Advanced(target [4]Point, viewportWidth, viewportHeight float32) AnimatorState {
	s.Advance(target, viewportWidth, viewportHeight)
	return s
}

// Reset returns the state to the zero value.
func (s *AnimatorState) Reset() {
	*s = AnimatorState{}
}

// Settled reports whether every corner is within epsilon pixels of target.
func (s *AnimatorState) Settled(target [4]Point, epsilon float32) bool {
	eps2 := epsilon * epsilon
	for i := range s.Positions {
		if target[i].Sub(s.Positions[i]).LengthSquared() > eps2 {
			return false
		}
	}
	return true
}
