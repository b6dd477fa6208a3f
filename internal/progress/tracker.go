package progress

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"FundLens/internal/model"
	"FundLens/internal/store"
)

// DefaultKey is the slot the progress record lives in.
const DefaultKey = "vc-dashboard-progress"

const (
	xpCorrect   = 10
	xpAttempted = 2
	xpPerLevel  = 100
)

// Tracker applies practice outcomes to the persisted progress record.
type Tracker struct {
	mu    sync.Mutex
	store store.Store
	key   string
	now   func() time.Time
	loc   *time.Location
	log   *zap.Logger
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLocation sets the zone whose calendar day counts as "today". Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) { t.loc = loc }
}

// WithKey overrides the store slot.
func WithKey(key string) Option {
	return func(t *Tracker) { t.key = key }
}

// NewTracker creates a Tracker over s.
func NewTracker(s store.Store, log *zap.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		store: s,
		key:   DefaultKey,
		now:   time.Now,
		loc:   time.UTC,
		log:   log,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Today returns the current calendar date as YYYY-MM-DD.
func (t *Tracker) Today() string {
	return t.now().In(t.loc).Format(model.DateLayout)
}

// Default returns a fresh record dated today.
func (t *Tracker) Default() model.UserProgress {
	return model.UserProgress{
		LastPracticeDate:   t.Today(),
		Level:              1,
		ScenariosCompleted: []string{},
	}
}

// Load returns the stored record, or the default record if none is stored or
// it cannot be decoded.
func (t *Tracker) Load(ctx context.Context) model.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load(ctx)
}

// Record applies one practice submission and persists the result.
func (t *Tracker) Record(ctx context.Context, correct bool) model.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.load(ctx)
	today := t.Today()

	p.TotalAttempts++
	if correct {
		p.CorrectEstimates++
		p.XP += xpCorrect

		days := daysBetween(p.LastPracticeDate, today)
		switch {
		case days == 1:
			p.Streak++
		case days > 1:
			p.Streak = 1
		}
		// days <= 0: same day, or a stored date ahead of the clock; streak unchanged
	} else {
		p.XP += xpAttempted
	}

	p.LastPracticeDate = today
	p.Level = LevelFor(p.XP)

	t.save(ctx, p)
	return p
}

// Reset overwrites the stored record with the default record.
func (t *Tracker) Reset(ctx context.Context) model.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.Default()
	t.save(ctx, p)
	t.log.Info("progress reset")
	return p
}

// StreakAtRisk reports whether p's streak breaks unless a correct answer is
// recorded today: the last practice was yesterday.
func (t *Tracker) StreakAtRisk(p model.UserProgress) bool {
	return p.Streak > 0 && daysBetween(p.LastPracticeDate, t.Today()) == 1
}

// LevelFor derives the level from XP.
func LevelFor(xp int) int {
	return xp/xpPerLevel + 1
}

func (t *Tracker) load(ctx context.Context) model.UserProgress {
	data, err := t.store.Get(ctx, t.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			t.log.Warn("load progress failed, using defaults", zap.Error(err))
		}
		return t.Default()
	}

	var p model.UserProgress
	if err := json.Unmarshal(data, &p); err != nil {
		t.log.Warn("stored progress is corrupt, using defaults", zap.Error(err))
		return t.Default()
	}
	if _, err := time.Parse(model.DateLayout, p.LastPracticeDate); err != nil {
		t.log.Warn("stored progress has invalid date, using defaults",
			zap.String("lastPracticeDate", p.LastPracticeDate))
		return t.Default()
	}
	if p.ScenariosCompleted == nil {
		p.ScenariosCompleted = []string{}
	}
	return p
}

func (t *Tracker) save(ctx context.Context, p model.UserProgress) {
	data, err := json.Marshal(p)
	if err != nil {
		t.log.Error("encode progress", zap.Error(err))
		return
	}
	if err := t.store.Set(ctx, t.key, data); err != nil {
		t.log.Error("failed to save progress", zap.Error(err))
	}
}

// daysBetween counts whole calendar days from a to b. Both must be YYYY-MM-DD;
// an unparseable date yields 0.
func daysBetween(a, b string) int {
	from, err := time.Parse(model.DateLayout, a)
	if err != nil {
		return 0
	}
	to, err := time.Parse(model.DateLayout, b)
	if err != nil {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
