package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamaC336/bay2/infrastructure/repository/memory"
	"github.com/AdamaC336/bay2/internal/fixture"
)

func TestRun_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	store := memory.New(func() time.Time { return now })

	seeded, err := run(ctx, store, now)
	require.NoError(t, err)
	assert.True(t, seeded)

	brands, err := store.GetBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 2)

	pt, err := store.GetBrandByCode(ctx, fixture.PawsomeTreatsCode)
	require.NoError(t, err)
	require.NotNil(t, pt)

	revenue, err := store.GetRevenue(ctx, pt.ID, now.AddDate(0, 0, -31), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, revenue, 31*5)

	seeded, err = run(ctx, store, now)
	require.NoError(t, err)
	assert.False(t, seeded)

	brands, err = store.GetBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 2)
}
