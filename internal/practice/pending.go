package practice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"FundLens/internal/model"
	"FundLens/internal/store"
)

// ErrNoPending is returned when no generated scenario is waiting for answers.
var ErrNoPending = errors.New("no pending practice scenario")

// Pending keeps the last generated scenario between "new" and "submit".
type Pending struct {
	store store.Store
	key   string
}

// NewPending stores the scenario under key.
func NewPending(s store.Store, key string) *Pending {
	return &Pending{store: s, key: key}
}

// Save replaces the pending scenario.
func (p *Pending) Save(ctx context.Context, s model.PracticeScenario) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	if err := p.store.Set(ctx, p.key, data); err != nil {
		return fmt.Errorf("save pending scenario: %w", err)
	}
	return nil
}

// Load returns the pending scenario if its ID matches id.
func (p *Pending) Load(ctx context.Context, id string) (model.PracticeScenario, error) {
	data, err := p.store.Get(ctx, p.key)
	if errors.Is(err, store.ErrNotFound) {
		return model.PracticeScenario{}, ErrNoPending
	}
	if err != nil {
		return model.PracticeScenario{}, fmt.Errorf("load pending scenario: %w", err)
	}

	var s model.PracticeScenario
	if err := json.Unmarshal(data, &s); err != nil {
		return model.PracticeScenario{}, fmt.Errorf("decode pending scenario: %w", err)
	}
	if s.ID != id {
		return model.PracticeScenario{}, fmt.Errorf("scenario %q: %w", id, ErrNoPending)
	}
	return s, nil
}

// Take returns the pending scenario with id and empties the slot, so a
// generated scenario can be graded only once.
func (p *Pending) Take(ctx context.Context, id string) (model.PracticeScenario, error) {
	s, err := p.Load(ctx, id)
	if err != nil {
		return s, err
	}
	if err := p.store.Delete(ctx, p.key); err != nil {
		return model.PracticeScenario{}, fmt.Errorf("clear pending scenario: %w", err)
	}
	return s, nil
}

// Resolve finds id among the canned scenarios and templates, then takes the
// pending one. Canned scenarios and templates can be answered repeatedly.
func (p *Pending) Resolve(ctx context.Context, id string, currentYear int) (model.PracticeScenario, error) {
	if s, ok := Find(id, currentYear); ok {
		return s, nil
	}
	return p.Take(ctx, id)
}
