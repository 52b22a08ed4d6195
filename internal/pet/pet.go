package pet

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rogers-f/moodpet/internal/domain"
)

// Store persists a single pet snapshot.
// Load returns nil if nothing has been saved yet.
type Store interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// View is the pet as seen after a request.
type View struct {
	Name       string
	Status     domain.Status
	Emotion    domain.Emotion
	Level      domain.Level
	Display    domain.Display
	LastUpdate time.Time
}

// Outcome is the result of Perform.
type Outcome struct {
	View
	Action domain.Action
	// Response is empty when the action was accepted but has no
	// success response (hit).
	Response domain.Response
}

// HasResponse reports whether the outcome carries a response code.
func (o Outcome) HasResponse() bool {
	return o.Response != ""
}

// Refused reports whether the pet refused the action.
func (o Outcome) Refused() bool {
	return o.Response == domain.ResponseRefuse
}

// Option configures a Pet.
type Option func(*Pet)

// WithClock replaces time.Now as the pet's clock.
func WithClock(now func() time.Time) Option {
	return func(p *Pet) { p.now = now }
}

// Pet is the aggregate root. All methods are safe for concurrent use;
// each request runs decay, gate, mutation and persistence under one lock.
// In-memory state only changes once the store has accepted it.
type Pet struct {
	mu         sync.Mutex
	name       string
	status     domain.Status
	lastUpdate time.Time

	store Store
	now   func() time.Time
}

// New creates a pet backed by store. If store holds a snapshot it replaces the
// defaults and a decay pass runs immediately.
func New(ctx context.Context, name string, store Store, opts ...Option) (*Pet, error) {
	p := &Pet{
		name:   name,
		status: domain.DefaultStatus(),
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.lastUpdate = p.now()

	snap, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pet: %w", err)
	}
	if snap == nil {
		return p, nil
	}
	if err := snap.Status.Validate(); err != nil {
		return nil, err
	}

	if snap.Name != "" {
		p.name = snap.Name
	}
	p.status = snap.Status
	p.lastUpdate = snap.LastUpdate
	if err := p.decay(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Status runs a decay pass and returns the current view.
func (p *Pet) Status(ctx context.Context) (View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.decay(ctx); err != nil {
		return View{}, err
	}
	return p.view(), nil
}

// Perform runs a decay pass, then applies action if the pet's mood permits
// it. The snapshot is saved whether or not the action was refused. If the
// save fails the pet is left as it was before the call.
func (p *Pet) Perform(ctx context.Context, action domain.Action) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	status, lastUpdate, _ := p.advance()

	out := Outcome{Action: action}
	emotion, level := Resolve(status)
	if Permitted(action, emotion, level) {
		status = ApplyEffect(status, action)
		out.Response = successResponses[action]
	} else {
		out.Response = domain.ResponseRefuse
	}

	if err := p.commit(ctx, status, lastUpdate); err != nil {
		return Outcome{}, err
	}
	out.View = p.view()
	return out, nil
}

// Snapshot returns a copy of the persisted state.
func (p *Pet) Snapshot() domain.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.Snapshot{
		Name:       p.name,
		Status:     p.status,
		LastUpdate: p.lastUpdate,
	}
}

// advance returns the status decayed to now. ok is false within the same
// instant or with the clock behind lastUpdate, in which case nothing moves.
func (p *Pet) advance() (status domain.Status, lastUpdate time.Time, ok bool) {
	now := p.now()
	hours := now.Sub(p.lastUpdate).Hours()
	if hours <= 0 {
		return p.status, p.lastUpdate, false
	}
	return Decay(p.status, hours), now, true
}

// decay advances the status to now and persists it.
func (p *Pet) decay(ctx context.Context) error {
	status, lastUpdate, ok := p.advance()
	if !ok {
		return nil
	}
	return p.commit(ctx, status, lastUpdate)
}

// commit saves the candidate state and adopts it only if the save succeeds.
func (p *Pet) commit(ctx context.Context, status domain.Status, lastUpdate time.Time) error {
	snap := domain.Snapshot{Name: p.name, Status: status, LastUpdate: lastUpdate}
	if err := p.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("save pet: %w", err)
	}
	p.status = status
	p.lastUpdate = lastUpdate
	return nil
}

func (p *Pet) view() View {
	emotion, level := Resolve(p.status)
	return View{
		Name:       p.name,
		Status:     p.status,
		Emotion:    emotion,
		Level:      level,
		Display:    Animate(emotion, level),
		LastUpdate: p.lastUpdate,
	}
}
