package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FundLens/internal/model"
	"FundLens/internal/store"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time   { return c.t }
func (c *clock) advance(days int) { c.t = c.t.AddDate(0, 0, days) }

func newClock(date string) *clock {
	t, _ := time.Parse(model.DateLayout, date)
	return &clock{t: t.Add(10 * time.Hour)}
}

func newTracker(s store.Store, c *clock) *Tracker {
	return NewTracker(s, zap.NewNop(), WithClock(c.now))
}

func seed(t *testing.T, s store.Store, p model.UserProgress) {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), DefaultKey, data))
}

func TestLoad_DefaultWhenEmpty(t *testing.T) {
	c := newClock("2025-03-10")
	tr := newTracker(store.NewMemoryStore(), c)

	p := tr.Load(context.Background())
	assert.Equal(t, model.UserProgress{
		LastPracticeDate:   "2025-03-10",
		Level:              1,
		ScenariosCompleted: []string{},
	}, p)
}

func TestLoad_CorruptFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	c := newClock("2025-03-10")

	for name, raw := range map[string]string{
		"garbage":      "not json",
		"wrong shape":  `{"xp":"lots"}`,
		"invalid date": `{"xp":50,"level":1,"lastPracticeDate":"yesterday"}`,
	} {
		t.Run(name, func(t *testing.T) {
			s := store.NewMemoryStore()
			require.NoError(t, s.Set(ctx, DefaultKey, []byte(raw)))
			p := newTracker(s, c).Load(ctx)
			assert.Equal(t, 0, p.XP)
			assert.Equal(t, 1, p.Level)
			assert.Equal(t, "2025-03-10", p.LastPracticeDate)
		})
	}
}

func TestRecord_StreakLaw(t *testing.T) {
	tests := []struct {
		name       string
		daysLater  int
		wantStreak int
	}{
		{"same day keeps streak", 0, 4},
		{"next day extends streak", 1, 5},
		{"two days later restarts", 2, 1},
		{"a week later restarts", 7, 1},
		{"stored date in the future keeps streak", -1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := store.NewMemoryStore()
			seed(t, s, model.UserProgress{
				TotalAttempts: 6, CorrectEstimates: 5, Streak: 4,
				LastPracticeDate: "2025-03-10", XP: 50, Level: 1,
			})
			c := newClock("2025-03-10")
			c.advance(tt.daysLater)

			p := newTracker(s, c).Record(ctx, true)
			assert.Equal(t, tt.wantStreak, p.Streak)
			assert.Equal(t, c.t.Format(model.DateLayout), p.LastPracticeDate)
		})
	}
}

func TestRecord_Incorrect(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	seed(t, s, model.UserProgress{
		TotalAttempts: 3, CorrectEstimates: 2, Streak: 2,
		LastPracticeDate: "2025-03-01", XP: 20, Level: 1,
	})
	c := newClock("2025-03-10")

	p := newTracker(s, c).Record(ctx, false)
	assert.Equal(t, 4, p.TotalAttempts)
	assert.Equal(t, 2, p.CorrectEstimates)
	assert.Equal(t, 2, p.Streak)
	assert.Equal(t, 22, p.XP)
	assert.Equal(t, "2025-03-10", p.LastPracticeDate)
}

func TestRecord_LevelUpExample(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	seed(t, s, model.UserProgress{
		TotalAttempts: 12, CorrectEstimates: 9, Streak: 2,
		LastPracticeDate: "2025-03-09", XP: 95, Level: 1,
	})
	tr := newTracker(s, newClock("2025-03-10"))

	p := tr.Record(ctx, true)
	assert.Equal(t, 105, p.XP)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 3, p.Streak)

	// persisted
	assert.Equal(t, p, tr.Load(ctx))
}

func TestRecord_LevelAlwaysDerivedFromXP(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	// inconsistent stored level gets overwritten
	seed(t, s, model.UserProgress{LastPracticeDate: "2025-03-10", XP: 0, Level: 9})
	c := newClock("2025-03-10")
	tr := newTracker(s, c)

	outcomes := []bool{true, false, true, true, false, false, true, true, true, true, true, false, true}
	for i, correct := range outcomes {
		if i%3 == 0 {
			c.advance(1)
		}
		p := tr.Record(ctx, correct)
		assert.Equal(t, p.XP/100+1, p.Level)
	}
	p := tr.Load(ctx)
	assert.Equal(t, len(outcomes), p.TotalAttempts)
	assert.Equal(t, 9, p.CorrectEstimates)
	assert.Equal(t, 9*10+4*2, p.XP)
}

func TestRecord_FirstEverCorrectSameDayKeepsZeroStreak(t *testing.T) {
	// default record is dated today, so the first correct answer is a same-day repeat
	p := newTracker(store.NewMemoryStore(), newClock("2025-03-10")).Record(context.Background(), true)
	assert.Equal(t, 0, p.Streak)
	assert.Equal(t, 1, p.TotalAttempts)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	seed(t, s, model.UserProgress{
		TotalAttempts: 40, CorrectEstimates: 30, Streak: 6,
		LastPracticeDate: "2025-03-01", XP: 330, Level: 4,
		ScenariosCompleted: []string{"seed-fund-1"},
	})
	tr := newTracker(s, newClock("2025-03-10"))

	reset := tr.Reset(ctx)
	loaded := tr.Load(ctx)
	assert.Equal(t, reset, loaded)
	assert.Equal(t, 0, loaded.TotalAttempts)
	assert.Equal(t, 0, loaded.Streak)
	assert.Equal(t, 0, loaded.XP)
	assert.Equal(t, 1, loaded.Level)
	assert.Empty(t, loaded.ScenariosCompleted)
}

func TestWithLocation_DefinesToday(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	utcEvening := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

	tr := NewTracker(store.NewMemoryStore(), zap.NewNop(),
		WithClock(func() time.Time { return utcEvening }), WithLocation(tokyo))
	assert.Equal(t, "2025-03-11", tr.Today())
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("disk on fire")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("disk on fire")
}

func (failingStore) Close() error { return nil }

func TestStoreFailuresAreNotSurfaced(t *testing.T) {
	tr := newTracker(&failingStore{}, newClock("2025-03-10"))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		p := tr.Record(ctx, true)
		assert.Equal(t, 1, p.TotalAttempts)
		assert.Equal(t, 10, p.XP)
	})
	assert.Equal(t, 1, tr.Load(ctx).Level)
	assert.Equal(t, 1, tr.Reset(ctx).Level)
}

func TestAchievements(t *testing.T) {
	assert.Empty(t, Achievements(model.UserProgress{Level: 1}))

	got := Achievements(model.UserProgress{TotalAttempts: 10, Streak: 3, Level: 5})
	ids := make([]string, len(got))
	for i, a := range got {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"dedicated-learner", "on-fire", "expert"}, ids)
}

func TestAccuracyAndXPToNextLevel(t *testing.T) {
	assert.Equal(t, 0.0, Accuracy(model.UserProgress{}))
	assert.InDelta(t, 75.0, Accuracy(model.UserProgress{TotalAttempts: 4, CorrectEstimates: 3}), 1e-9)

	assert.Equal(t, 95, XPToNextLevel(model.UserProgress{XP: 105, Level: 2}))
	assert.Equal(t, 100, XPToNextLevel(model.UserProgress{XP: 0, Level: 1}))
}

func TestStreakAtRisk(t *testing.T) {
	tr := newTracker(store.NewMemoryStore(), newClock("2025-03-10"))

	tests := []struct {
		name   string
		last   string
		streak int
		want   bool
	}{
		{"practiced yesterday", "2025-03-09", 4, true},
		{"practiced today", "2025-03-10", 4, false},
		{"already broken", "2025-03-07", 4, false},
		{"no streak", "2025-03-09", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.UserProgress{LastPracticeDate: tt.last, Streak: tt.streak}
			assert.Equal(t, tt.want, tr.StreakAtRisk(p))
		})
	}
}
