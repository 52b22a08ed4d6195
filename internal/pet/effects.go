package pet

import "github.com/rogers-f/moodpet/internal/domain"

// delta is a signed change to each status field.
type delta domain.Status

var effects = map[domain.Action]delta{
	domain.ActionFeed:  {Hunger: -30, Happiness: 10, Energy: 5},
	domain.ActionPet:   {Happiness: 15, Sadness: -10, Anger: -10},
	domain.ActionHeal:  {Happiness: 5, Health: 20},
	domain.ActionHit:   {Happiness: -20, Anger: 30, Health: -10},
	domain.ActionShake: {Happiness: 5, Boredom: -20, Energy: -10},
}

// successResponses has no entry for hit.
var successResponses = map[domain.Action]domain.Response{
	domain.ActionFeed:  domain.ResponseFeedSuccess,
	domain.ActionPet:   domain.ResponsePetSuccess,
	domain.ActionHeal:  domain.ResponseHealSuccess,
	domain.ActionShake: domain.ResponseShakeSuccess,
}

// ApplyEffect returns s after action's deltas, each field clamped to [0,100].
// Unknown actions leave s unchanged.
func ApplyEffect(s domain.Status, action domain.Action) domain.Status {
	d, ok := effects[action]
	if !ok {
		return s
	}
	return domain.Status{
		Hunger:    clamp(s.Hunger + d.Hunger),
		Happiness: clamp(s.Happiness + d.Happiness),
		Sadness:   clamp(s.Sadness + d.Sadness),
		Anger:     clamp(s.Anger + d.Anger),
		Boredom:   clamp(s.Boredom + d.Boredom),
		Health:    clamp(s.Health + d.Health),
		Energy:    clamp(s.Energy + d.Energy),
	}
}
