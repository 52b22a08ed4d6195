// Package domain defines the core types for the pet state engine.
package domain

import (
	"fmt"
	"time"
)

// Emotion is one of the seven emotions the pet can show.
type Emotion string

const (
	EmotionHappy  Emotion = "happy"
	EmotionSad    Emotion = "sad"
	EmotionAngry  Emotion = "angry"
	EmotionHungry Emotion = "hungry"
	EmotionTired  Emotion = "tired"
	EmotionBored  Emotion = "bored"
	EmotionSick   Emotion = "sick"
)

// Index returns the wire index for the emotion, or -1 if unknown.
func (e Emotion) Index() int {
	switch e {
	case EmotionHappy:
		return 20
	case EmotionSad:
		return 21
	case EmotionAngry:
		return 22
	case EmotionHungry:
		return 23
	case EmotionTired:
		return 24
	case EmotionBored:
		return 25
	case EmotionSick:
		return 26
	}
	return -1
}

// Level classifies the intensity of the dominant emotion.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// LevelOf maps an intensity in [0,100] to a Level.
func LevelOf(intensity float64) Level {
	switch {
	case intensity >= 70:
		return LevelHigh
	case intensity >= 30:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Display is what the pet is visibly doing.
type Display string

const (
	DisplaySleeping Display = "sleeping"
	DisplayDancing  Display = "dancing"
	DisplayCrying   Display = "crying"
	DisplayPlaying  Display = "playing"
	DisplayEating   Display = "eating"
	DisplayResting  Display = "resting"
	DisplayAngry    Display = "angry"
	DisplaySick     Display = "sick"
)

// Index returns the wire index for the display action, or -1 if unknown.
func (d Display) Index() int {
	switch d {
	case DisplaySleeping:
		return 0
	case DisplayDancing:
		return 1
	case DisplayCrying:
		return 2
	case DisplayPlaying:
		return 3
	case DisplayEating:
		return 4
	case DisplayResting:
		return 5
	case DisplayAngry:
		return 6
	case DisplaySick:
		return 7
	}
	return -1
}

// Action is a user interaction with the pet.
type Action string

const (
	ActionFeed  Action = "feed"
	ActionPet   Action = "pet"
	ActionHeal  Action = "heal"
	ActionHit   Action = "hit"
	ActionShake Action = "shake"
)

// Actions lists every recognized action.
var Actions = []Action{ActionFeed, ActionPet, ActionHeal, ActionHit, ActionShake}

// ParseAction returns the Action named by s, or ErrInvalidAction.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", ErrInvalidAction
}

// Response is the pet's reaction to an action.
type Response string

const (
	ResponseFeedSuccess  Response = "feed_success"
	ResponsePetSuccess   Response = "pet_success"
	ResponseHealSuccess  Response = "heal_success"
	ResponseShakeSuccess Response = "shake_success"
	ResponseRefuse       Response = "refuse"
)

// Index returns the wire index for the response, or -1 if unknown.
func (r Response) Index() int {
	switch r {
	case ResponseFeedSuccess:
		return 10
	case ResponsePetSuccess:
		return 11
	case ResponseHealSuccess:
		return 12
	case ResponseShakeSuccess:
		return 13
	case ResponseRefuse:
		return 14
	}
	return -1
}

// Status holds the seven pet attributes, each within [0,100].
type Status struct {
	Hunger    float64 `json:"hunger" toml:"hunger"`
	Happiness float64 `json:"happiness" toml:"happiness"`
	Sadness   float64 `json:"sadness" toml:"sadness"`
	Anger     float64 `json:"anger" toml:"anger"`
	Boredom   float64 `json:"boredom" toml:"boredom"`
	Health    float64 `json:"health" toml:"health"`
	Energy    float64 `json:"energy" toml:"energy"`
}

// DefaultStatus returns the attributes of a freshly created pet.
func DefaultStatus() Status {
	return Status{
		Hunger:    50,
		Happiness: 50,
		Health:    100,
		Energy:    100,
	}
}

// Snapshot is the persisted form of a pet.
type Snapshot struct {
	Name       string    `json:"name" toml:"name"`
	Status     Status    `json:"status" toml:"status"`
	LastUpdate time.Time `json:"last_update" toml:"last_update"`
}

// Validate reports ErrSnapshotCorrupt if any field is NaN or outside [0,100].
func (s Status) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"hunger", s.Hunger},
		{"happiness", s.Happiness},
		{"sadness", s.Sadness},
		{"anger", s.Anger},
		{"boredom", s.Boredom},
		{"health", s.Health},
		{"energy", s.Energy},
	}
	var problems []string
	for _, f := range fields {
		if !(f.v >= 0 && f.v <= 100) {
			problems = append(problems, fmt.Sprintf("%s=%v", f.name, f.v))
		}
	}
	if len(problems) > 0 {
		return NewPetError(
			ErrSnapshotCorrupt.Code,
			fmt.Sprintf("%s: out of range %v", ErrSnapshotCorrupt.Message, problems),
		)
	}
	return nil
}
