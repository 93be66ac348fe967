package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/infrastructure/repository/memory"
	"github.com/AdamaC336/bay2/infrastructure/repository/storetest"
	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/fixture"
)

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T, now repository.Clock) repository.Storage {
		return memory.New(now)
	})
}

func TestNewSeeded(t *testing.T) {
	ctx := context.Background()
	now := storetest.Reference()

	store, err := memory.NewSeeded(ctx, func() time.Time { return now })
	require.NoError(t, err)

	brand, err := store.GetBrandByCode(ctx, fixture.HydraBarkCode)
	require.NoError(t, err)
	require.NotNil(t, brand)
	assert.Equal(t, 1, brand.ID)
	assert.Equal(t, "HydraBark", brand.Name)

	admin, err := store.GetUserByUsername(ctx, fixture.AdminUsername)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(fixture.AdminPassword)))

	agents, err := store.GetAIAgents(ctx, brand.ID)
	require.NoError(t, err)
	require.Len(t, agents, 3)
	assert.InDelta(t, 0.84, agents[0].Cost, 1e-9)
	assert.Equal(t, domain.AIAgentStatusPaused, agents[2].Status)

	ads, err := store.GetAdPerformance(ctx, brand.ID, "tiktok")
	require.NoError(t, err)
	assert.Len(t, ads, 4)

	tasks, err := store.GetOpsTasks(ctx, brand.ID, domain.OpsTaskStatusDone)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	revenue, err := store.GetRevenue(ctx, brand.ID, now.AddDate(0, 0, -6), now)
	require.NoError(t, err)
	assert.Len(t, revenue, 7)

	today, err := store.GetTodayRevenue(ctx, brand.ID)
	require.NoError(t, err)
	assert.InDelta(t, revenue[len(revenue)-1].Amount, today, 1e-9)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.New(nil)

	brand, err := store.CreateBrand(ctx, &domain.InsertBrand{Name: "Acme", Code: "AC"})
	require.NoError(t, err)

	agent, err := store.CreateAIAgent(ctx, &domain.InsertAIAgent{
		BrandID: brand.ID,
		Name:    "Content Creator",
		Type:    "content",
		Status:  domain.AIAgentStatusActive,
		Metrics: domain.AgentMetrics{"articles": 3},
	})
	require.NoError(t, err)

	agent.Status = domain.AIAgentStatusPaused
	agent.Metrics["articles"] = 99

	stored, err := store.GetAIAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AIAgentStatusActive, stored.Status)
	assert.Equal(t, float64(3), stored.Metrics["articles"])
}

func TestStore_ConcurrentProgressUpdates(t *testing.T) {
	ctx := context.Background()
	store := memory.New(nil)

	brand, err := store.CreateBrand(ctx, &domain.InsertBrand{Name: "Acme", Code: "AC"})
	require.NoError(t, err)

	task, err := store.CreateOpsTask(ctx, &domain.InsertOpsTask{
		BrandID:  brand.ID,
		Title:    "Update inventory forecast",
		Status:   domain.OpsTaskStatusTodo,
		Category: "operations",
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(progress int) {
			defer wg.Done()
			_, err := store.UpdateOpsTaskProgress(ctx, task.ID, progress)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := store.GetOpsTask(ctx, task.ID)
	require.NoError(t, err)

	// qualquer ordem de escrita deixa status e progresso coerentes
	if stored.Progress == domain.MaxProgress {
		assert.Equal(t, domain.OpsTaskStatusDone, stored.Status)
	} else {
		assert.Equal(t, domain.OpsTaskStatusInProgress, stored.Status)
	}
}
