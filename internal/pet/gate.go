package pet

import "github.com/rogers-f/moodpet/internal/domain"

// restrictions lists the actions an emotion forbids while it is at high level.
var restrictions = map[domain.Emotion]map[domain.Action]bool{
	domain.EmotionAngry: {domain.ActionPet: true, domain.ActionShake: true},
	domain.EmotionSad:   {domain.ActionFeed: true, domain.ActionShake: true},
	domain.EmotionSick:  {domain.ActionShake: true, domain.ActionHit: true},
	domain.EmotionTired: {domain.ActionShake: true, domain.ActionHit: true, domain.ActionPet: true},
}

// Permitted reports whether the pet accepts action given its dominant emotion.
func Permitted(action domain.Action, emotion domain.Emotion, level domain.Level) bool {
	if level != domain.LevelHigh {
		return true
	}
	forbidden, ok := restrictions[emotion]
	if !ok {
		return true
	}
	return !forbidden[action]
}
