package core

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetBudget(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo())

	set, err := svc.Set(context.Background(), "user-1", 5000)
	require.NoError(t, err)
	assert.Equal(t, "user-1", set.UserID)
	assert.InDelta(t, 5000, set.Amount, 1e-9)

	got, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.InDelta(t, 5000, got.Amount, 1e-9)
}

func TestSetBudgetOverwrites(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo())

	_, err := svc.Set(context.Background(), "user-1", 5000)
	require.NoError(t, err)
	_, err = svc.Set(context.Background(), "user-1", 3000)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.InDelta(t, 3000, got.Amount, 1e-9)
}

func TestSetBudgetZeroIsAllowed(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo())

	budget, err := svc.Set(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Zero(t, budget.Amount)
}

func TestSetBudgetRejectsInvalidAmounts(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo())

	for _, amount := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := svc.Set(context.Background(), "user-1", amount)
		assert.ErrorIs(t, err, ErrInvalidBudget, "amount %v", amount)
	}
}

func TestGetBudgetNeverSet(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo())

	_, err := svc.Get(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrBudgetNotFound)
}
