package pet

import "github.com/rogers-f/moodpet/internal/domain"

// emotionPriority is the scan order used by Resolve. Earlier entries win ties.
var emotionPriority = []domain.Emotion{
	domain.EmotionHungry,
	domain.EmotionHappy,
	domain.EmotionSad,
	domain.EmotionAngry,
	domain.EmotionBored,
	domain.EmotionSick,
	domain.EmotionTired,
}

// Intensity returns how strongly s expresses the given emotion.
func Intensity(s domain.Status, e domain.Emotion) float64 {
	switch e {
	case domain.EmotionHungry:
		return s.Hunger
	case domain.EmotionHappy:
		return s.Happiness
	case domain.EmotionSad:
		return s.Sadness
	case domain.EmotionAngry:
		return s.Anger
	case domain.EmotionBored:
		return s.Boredom
	case domain.EmotionSick:
		return 100 - s.Health
	case domain.EmotionTired:
		return 100 - s.Energy
	}
	return 0
}

// Resolve returns the dominant emotion of s and its level.
func Resolve(s domain.Status) (domain.Emotion, domain.Level) {
	best := emotionPriority[0]
	bestVal := Intensity(s, best)
	for _, e := range emotionPriority[1:] {
		if v := Intensity(s, e); v > bestVal {
			best, bestVal = e, v
		}
	}
	return best, domain.LevelOf(bestVal)
}
