package remote_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamaC336/bay2/infrastructure/integrator/supabase/supabaseclient"
	"github.com/AdamaC336/bay2/infrastructure/integrator/supabase/supabasetest"
	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/infrastructure/repository/remote"
	"github.com/AdamaC336/bay2/infrastructure/repository/storetest"
	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/domain"
)

const apiKey = "service-role-key"

func newStore(t *testing.T, now repository.Clock) (*remote.Store, *supabasetest.Server) {
	t.Helper()

	server := supabasetest.NewServer(apiKey)
	t.Cleanup(server.Close)

	client := supabaseclient.NewClient(config.Supabase{URL: server.URL, ServiceRoleKey: apiKey, Timeout: 5 * time.Second})

	return remote.New(client, now), server
}

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T, now repository.Clock) repository.Storage {
		store, _ := newStore(t, now)
		return store
	})
}

func TestStore_WritesSnakeCaseColumns(t *testing.T) {
	now := storetest.Reference()
	store, server := newStore(t, func() time.Time { return now })
	ctx := context.Background()

	brand, err := store.CreateBrand(ctx, &domain.InsertBrand{Name: "Acme", Code: "AC"})
	require.NoError(t, err)

	adSet := "Ad Set 1"
	_, err = store.CreateAdSpend(ctx, &domain.InsertAdSpend{
		BrandID:  brand.ID,
		Date:     now,
		Amount:   12.5,
		Platform: "meta",
		AdSet:    &adSet,
	})
	require.NoError(t, err)

	rows := server.Rows("ad_spend")
	require.Len(t, rows, 1)
	assert.Equal(t, float64(brand.ID), rows[0]["brand_id"])
	assert.Equal(t, "Ad Set 1", rows[0]["ad_set"])
	assert.Nil(t, rows[0]["campaign"])
	assert.Equal(t, supabaseclient.FormatTime(now), rows[0]["date"])
	assert.NotContains(t, rows[0], "adSet")
}

func TestStore_MissingTimestampsDefaultToNow(t *testing.T) {
	client := &stubClient{rows: []supabaseclient.Row{
		{"id": float64(1), "name": "HydraBark", "code": "HB"},
	}}
	now := storetest.Reference()
	store := remote.New(client, func() time.Time { return now })

	brand, err := store.GetBrand(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, brand)
	assert.True(t, now.Equal(brand.CreatedAt))
}

func TestStore_ParsesPostgresTimestamps(t *testing.T) {
	client := &stubClient{rows: []supabaseclient.Row{
		{"id": float64(3), "brand_id": float64(1), "title": "Approve customer refund", "status": "todo",
			"category": "support", "progress": float64(0), "due_date": "2025-06-15T00:00:00+00:00",
			"created_at": "2025-06-14T10:00:00.123456", "updated_at": "2025-06-14 10:00:00.123456+00"},
	}}
	store := remote.New(client, nil)

	task, err := store.GetOpsTask(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, task)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), task.DueDate.UTC())
	assert.Equal(t, 123456000, task.CreatedAt.Nanosecond())
	assert.Nil(t, task.Description)
}

func TestStore_ServiceErrorsAreWrapped(t *testing.T) {
	client := &stubClient{err: &supabaseclient.Error{Status: 500, Message: "connection refused"}}
	store := remote.New(client, nil)

	_, err := store.GetBrands(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "falha ao listar marcas")
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestStore_SumsTodayAmounts(t *testing.T) {
	client := &stubClient{rows: []supabaseclient.Row{
		{"amount": float64(120.5)},
		{"amount": float64(79.5)},
		{"amount": nil},
	}}
	store := remote.New(client, nil)

	total, err := store.GetTodayRevenue(context.Background(), 1)

	require.NoError(t, err)
	assert.InDelta(t, 200.0, total, 0.001)
}

func TestStore_RejectsNonNumericAmounts(t *testing.T) {
	client := &stubClient{rows: []supabaseclient.Row{
		{"amount": float64(10)},
		{"amount": "12.50"},
	}}
	store := remote.New(client, nil)

	total, err := store.GetTodayAdSpend(context.Background(), 1)

	require.Error(t, err)
	assert.Zero(t, total)
	assert.Contains(t, err.Error(), "falha ao somar valores de hoje")
	assert.Contains(t, err.Error(), "erro ao mapear linha")
}

type stubClient struct {
	rows []supabaseclient.Row
	err  error
}

func (s *stubClient) Select(context.Context, string, supabaseclient.Query) ([]supabaseclient.Row, error) {
	return s.rows, s.err
}

func (s *stubClient) Insert(context.Context, string, supabaseclient.Row) (supabaseclient.Row, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows[0], nil
}

func (s *stubClient) Update(context.Context, string, supabaseclient.Row, ...supabaseclient.Filter) ([]supabaseclient.Row, error) {
	return s.rows, s.err
}
