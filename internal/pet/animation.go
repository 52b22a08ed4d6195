package pet

import "github.com/rogers-f/moodpet/internal/domain"

var highAnimations = map[domain.Emotion]domain.Display{
	domain.EmotionHappy:  domain.DisplayDancing,
	domain.EmotionSad:    domain.DisplayCrying,
	domain.EmotionAngry:  domain.DisplayAngry,
	domain.EmotionTired:  domain.DisplaySleeping,
	domain.EmotionHungry: domain.DisplayEating,
	domain.EmotionBored:  domain.DisplayPlaying,
	domain.EmotionSick:   domain.DisplaySick,
}

// Animate picks what the pet is visibly doing. Only high-level emotions
// show; everything else rests.
func Animate(emotion domain.Emotion, level domain.Level) domain.Display {
	if level != domain.LevelHigh {
		return domain.DisplayResting
	}
	if d, ok := highAnimations[emotion]; ok {
		return d
	}
	return domain.DisplayResting
}
