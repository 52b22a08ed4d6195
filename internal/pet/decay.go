// Package pet implements the pet state engine: time decay, emotion
// resolution, action gating and action effects.
package pet

import "github.com/rogers-f/moodpet/internal/domain"

// Per-hour decay rates.
const (
	hungerPerHour  = 5.0
	healthPerHour  = 2.0
	angerPerHour   = 3.0
	boredomPerHour = 4.0
	energyPerHour  = 10.0
)

// Decay advances s by the given number of elapsed hours.
// Happiness and sadness do not change over time. Non-positive hours are a no-op.
func Decay(s domain.Status, hours float64) domain.Status {
	if !(hours > 0) {
		return s
	}

	s.Hunger = min(100, s.Hunger+hours*hungerPerHour)
	if s.Health < 100 {
		s.Health = min(100, s.Health+hours*healthPerHour)
	}
	if s.Anger > 0 {
		s.Anger = max(0, s.Anger-hours*angerPerHour)
	}
	s.Boredom = min(100, s.Boredom+hours*boredomPerHour)
	if s.Energy < 100 {
		s.Energy = min(100, s.Energy+hours*energyPerHour)
	}
	return s
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
