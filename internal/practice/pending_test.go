package practice

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/store"
)

func TestPending_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p := NewPending(store.NewMemoryStore(), "pending")

	_, err := p.Load(ctx, "scenario-x")
	assert.ErrorIs(t, err, ErrNoPending)

	sess := NewGenerator(rand.New(rand.NewPCG(1, 2)), fixedNow).Random()
	require.NoError(t, p.Save(ctx, sess.Scenario))

	got, err := p.Load(ctx, sess.Scenario.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Scenario.FundData, got.FundData)
	assert.Equal(t, sess.Scenario.TargetMetrics, got.TargetMetrics)

	_, err = p.Load(ctx, "scenario-other")
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestPending_Resolve(t *testing.T) {
	ctx := context.Background()
	p := NewPending(store.NewMemoryStore(), "pending")

	s, err := p.Resolve(ctx, "seed-fund-1", 2024)
	require.NoError(t, err)
	assert.Equal(t, "seed-fund-1", s.ID)

	s, err = p.Resolve(ctx, "struggling", 2024)
	require.NoError(t, err)
	assert.Equal(t, "struggling", s.ID)

	_, err = p.Resolve(ctx, "scenario-unknown", 2024)
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestPending_ResolveTakesGeneratedScenarioOnce(t *testing.T) {
	ctx := context.Background()
	p := NewPending(store.NewMemoryStore(), "pending")

	sess := NewGenerator(rand.New(rand.NewPCG(3, 4)), fixedNow).Random()
	require.NoError(t, p.Save(ctx, sess.Scenario))

	s, err := p.Resolve(ctx, sess.Scenario.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, sess.Scenario.ID, s.ID)

	_, err = p.Resolve(ctx, sess.Scenario.ID, 2024)
	assert.ErrorIs(t, err, ErrNoPending)

	_, err = p.Resolve(ctx, "seed-fund-1", 2024)
	require.NoError(t, err)
	_, err = p.Resolve(ctx, "seed-fund-1", 2024)
	assert.NoError(t, err)
}

func TestPending_TakeKeepsSlotOnMismatch(t *testing.T) {
	ctx := context.Background()
	p := NewPending(store.NewMemoryStore(), "pending")

	sess := NewGenerator(rand.New(rand.NewPCG(5, 6)), fixedNow).Random()
	require.NoError(t, p.Save(ctx, sess.Scenario))

	_, err := p.Take(ctx, "scenario-other")
	assert.ErrorIs(t, err, ErrNoPending)

	_, err = p.Take(ctx, sess.Scenario.ID)
	assert.NoError(t, err)
}
