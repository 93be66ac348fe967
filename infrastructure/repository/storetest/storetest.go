// Package storetest contém a suíte de conformidade executada contra todas as
// implementações de repository.Storage. Todas devem produzir os mesmos resultados
// para a mesma sequência de chamadas, exceto ids e timestamps gerados.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/internal/domain"
)

// Factory cria um storage vazio que usa o relógio informado
type Factory func(t *testing.T, now repository.Clock) repository.Storage

// Clock é um relógio manual para os testes
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

func NewClock(t time.Time) *Clock {
	return &Clock{t: t}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Reference é o instante usado pela suíte: meio da tarde, horário local
func Reference() time.Time {
	return time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
}

type harness struct {
	store repository.Storage
	clock *Clock
	ctx   context.Context
}

func Run(t *testing.T, factory Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, h *harness)
	}{
		{"Users", testUsers},
		{"Brands", testBrands},
		{"TodayRevenue", testTodayRevenue},
		{"RevenueRange", testRevenueRange},
		{"AdSpend", testAdSpend},
		{"AIAgents", testAIAgents},
		{"AdPerformance", testAdPerformance},
		{"OpsTaskCreate", testOpsTaskCreate},
		{"OpsTaskCreateCoupling", testOpsTaskCreateCoupling},
		{"OpsTaskProgress", testOpsTaskProgress},
		{"OpsTaskStatus", testOpsTaskStatus},
		{"UnknownIDs", testUnknownIDs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewClock(Reference())
			h := &harness{
				store: factory(t, clock.Now),
				clock: clock,
				ctx:   context.Background(),
			}
			tt.fn(t, h)
		})
	}
}

func (h *harness) brand(t *testing.T, name, code string) *domain.Brand {
	t.Helper()

	brand, err := h.store.CreateBrand(h.ctx, &domain.InsertBrand{Name: name, Code: code})
	require.NoError(t, err)
	require.NotNil(t, brand)
	return brand
}

func (h *harness) task(t *testing.T, brandID int, status domain.OpsTaskStatus, progress int) *domain.OpsTask {
	t.Helper()

	task, err := h.store.CreateOpsTask(h.ctx, &domain.InsertOpsTask{
		BrandID:  brandID,
		Title:    "Review new ad creatives",
		Status:   status,
		Category: "marketing",
		Progress: &progress,
	})
	require.NoError(t, err)
	require.NotNil(t, task)
	return task
}

func sameInstant(t *testing.T, want, got time.Time) {
	t.Helper()
	assert.True(t, want.Equal(got), "esperado %s, obtido %s", want, got)
}

func testUsers(t *testing.T, h *harness) {
	name := "John Doe"
	created, err := h.store.CreateUser(h.ctx, &domain.InsertUser{
		Username: "admin",
		Password: "$2a$10$hash",
		Name:     &name,
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "admin", created.Username)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
	require.NotNil(t, created.Name)
	assert.Equal(t, "John Doe", *created.Name)
	assert.Equal(t, domain.RoleAdmin, created.Role)

	byID, err := h.store.GetUser(h.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := h.store.GetUserByUsername(h.ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	missing, err := h.store.GetUserByUsername(h.ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = h.store.CreateUser(h.ctx, &domain.InsertUser{Username: "admin", Password: "x", Role: domain.RoleUser})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	noName, err := h.store.CreateUser(h.ctx, &domain.InsertUser{Username: "ops", Password: "x", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Nil(t, noName.Name)
	assert.NotEqual(t, created.ID, noName.ID)
}

func testBrands(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	assert.Positive(t, acme.ID)
	sameInstant(t, h.clock.Now(), acme.CreatedAt)

	other := h.brand(t, "Other", "OT")

	got, err := h.store.GetBrand(h.ctx, acme.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "AC", got.Code)

	byCode, err := h.store.GetBrandByCode(h.ctx, "OT")
	require.NoError(t, err)
	require.NotNil(t, byCode)
	assert.Equal(t, other.ID, byCode.ID)

	missing, err := h.store.GetBrandByCode(h.ctx, "ZZ")
	require.NoError(t, err)
	assert.Nil(t, missing)

	brands, err := h.store.GetBrands(h.ctx)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.ElementsMatch(t, []int{acme.ID, other.ID}, []int{brands[0].ID, brands[1].ID})

	_, err = h.store.CreateBrand(h.ctx, &domain.InsertBrand{Name: "Acme 2", Code: "AC"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	_, err = h.store.CreateBrand(h.ctx, &domain.InsertBrand{Name: "Acme", Code: "A2"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func testTodayRevenue(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	other := h.brand(t, "Other", "OT")
	start, end := domain.DayBounds(h.clock.Now())

	total, err := h.store.GetTodayRevenue(h.ctx, acme.ID)
	require.NoError(t, err)
	assert.Zero(t, total)

	rows := []domain.InsertRevenue{
		{BrandID: acme.ID, Date: h.clock.Now(), Amount: 100, Source: "direct"},
		{BrandID: acme.ID, Date: start, Amount: 25.5, Source: "shopify"},
		{BrandID: acme.ID, Date: h.clock.Now().AddDate(0, 0, -1), Amount: 50, Source: "direct"},
		{BrandID: acme.ID, Date: end, Amount: 1000, Source: "direct"},
		{BrandID: other.ID, Date: h.clock.Now(), Amount: 7, Source: "direct"},
	}
	for i := range rows {
		created, err := h.store.CreateRevenue(h.ctx, &rows[i])
		require.NoError(t, err)
		assert.Equal(t, rows[i].Amount, created.Amount)
		sameInstant(t, rows[i].Date, created.Date)
		sameInstant(t, h.clock.Now(), created.CreatedAt)
	}

	total, err = h.store.GetTodayRevenue(h.ctx, acme.ID)
	require.NoError(t, err)
	assert.InDelta(t, 125.5, total, 1e-9)

	total, err = h.store.GetTodayRevenue(h.ctx, other.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7, total, 1e-9)
}

func testRevenueRange(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	from := h.clock.Now().AddDate(0, 0, -3)
	to := h.clock.Now()

	for _, date := range []time.Time{from.Add(-time.Second), from, to.Add(-time.Hour), to, to.Add(time.Second)} {
		_, err := h.store.CreateRevenue(h.ctx, &domain.InsertRevenue{BrandID: acme.ID, Date: date, Amount: 10, Source: "direct"})
		require.NoError(t, err)
	}

	revenue, err := h.store.GetRevenue(h.ctx, acme.ID, from, to)
	require.NoError(t, err)
	require.Len(t, revenue, 3)
	sameInstant(t, from, revenue[0].Date)
	sameInstant(t, to, revenue[2].Date)

	empty, err := h.store.GetRevenue(h.ctx, acme.ID+1000, from, to)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testAdSpend(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	campaign := "Campaign 0"

	today, err := h.store.CreateAdSpend(h.ctx, &domain.InsertAdSpend{
		BrandID:  acme.ID,
		Date:     h.clock.Now(),
		Amount:   300,
		Platform: "meta",
		Campaign: &campaign,
	})
	require.NoError(t, err)
	require.NotNil(t, today.Campaign)
	assert.Equal(t, "Campaign 0", *today.Campaign)
	assert.Nil(t, today.AdSet)

	_, err = h.store.CreateAdSpend(h.ctx, &domain.InsertAdSpend{
		BrandID:  acme.ID,
		Date:     h.clock.Now().AddDate(0, 0, -1),
		Amount:   200,
		Platform: "tiktok",
	})
	require.NoError(t, err)

	total, err := h.store.GetTodayAdSpend(h.ctx, acme.ID)
	require.NoError(t, err)
	assert.InDelta(t, 300, total, 1e-9)

	spends, err := h.store.GetAdSpend(h.ctx, acme.ID, h.clock.Now().AddDate(0, 0, -7), h.clock.Now())
	require.NoError(t, err)
	require.Len(t, spends, 2)
	assert.Equal(t, "tiktok", spends[0].Platform)
	assert.Equal(t, "meta", spends[1].Platform)
}

func testAIAgents(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")

	agent, err := h.store.CreateAIAgent(h.ctx, &domain.InsertAIAgent{
		BrandID: acme.ID,
		Name:    "Customer Support Assistant",
		Type:    "support",
		Status:  domain.AIAgentStatusActive,
		Metrics: domain.AgentMetrics{"conversations": 24, "avgResponse": "3.2s"},
	})
	require.NoError(t, err)
	assert.Zero(t, agent.Cost)
	assert.Equal(t, domain.AgentMetrics{"conversations": float64(24), "avgResponse": "3.2s"}, agent.Metrics)
	sameInstant(t, h.clock.Now(), agent.CreatedAt)
	sameInstant(t, h.clock.Now(), agent.UpdatedAt)

	bare, err := h.store.CreateAIAgent(h.ctx, &domain.InsertAIAgent{
		BrandID: acme.ID,
		Name:    "Ad Optimizer",
		Type:    "ads",
		Status:  domain.AIAgentStatusPaused,
	})
	require.NoError(t, err)
	assert.Empty(t, bare.Metrics)

	h.clock.Advance(time.Minute)

	updated, err := h.store.UpdateAIAgentStatus(h.ctx, agent.ID, domain.AIAgentStatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.AIAgentStatusPaused, updated.Status)
	sameInstant(t, h.clock.Now(), updated.UpdatedAt)
	sameInstant(t, agent.CreatedAt, updated.CreatedAt)

	h.clock.Advance(time.Minute)

	updated, err = h.store.UpdateAIAgentCost(h.ctx, agent.ID, 2.36)
	require.NoError(t, err)
	assert.InDelta(t, 2.36, updated.Cost, 1e-9)
	assert.Equal(t, domain.AIAgentStatusPaused, updated.Status)
	sameInstant(t, h.clock.Now(), updated.UpdatedAt)

	got, err := h.store.GetAIAgent(h.ctx, agent.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.36, got.Cost, 1e-9)

	agents, err := h.store.GetAIAgents(h.ctx, acme.ID)
	require.NoError(t, err)
	assert.Len(t, agents, 2)
}

func testAdPerformance(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	thumb := "https://images.unsplash.com/photo-1581888227599-779811939961"

	ads := []domain.InsertAdPerformance{
		{AdSetID: "TT_HB_PUPPY_01", AdSetName: "HydraBark Puppy", Platform: "tiktok", Spend: 1245.32, ROAS: 3.8, CTR: 2.1, Status: domain.AdStatusActive, Thumbnail: &thumb},
		{AdSetID: "FB_01", AdSetName: "Summer", Platform: "meta", Spend: 100, ROAS: 2, CTR: 1, Status: domain.AdStatusWarning},
		{AdSetID: "TT_HB_BUNDLE_03", AdSetName: "HydraBark Bundle", Platform: "tiktok", Spend: 0, ROAS: 1.2, CTR: 0.9, Status: domain.AdStatusPaused},
	}
	var first *domain.AdPerformance
	for i := range ads {
		ads[i].BrandID = acme.ID
		ads[i].Date = h.clock.Now()
		created, err := h.store.CreateAdPerformance(h.ctx, &ads[i])
		require.NoError(t, err)
		if first == nil {
			first = created
		}
	}
	require.NotNil(t, first.Thumbnail)
	assert.Equal(t, thumb, *first.Thumbnail)
	assert.InDelta(t, 1245.32, first.Spend, 1e-9)
	assert.InDelta(t, 3.8, first.ROAS, 1e-9)

	all, err := h.store.GetAdPerformance(h.ctx, acme.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	tiktok, err := h.store.GetAdPerformance(h.ctx, acme.ID, "tiktok")
	require.NoError(t, err)
	require.Len(t, tiktok, 2)

	allIDs := map[int]bool{}
	for _, ad := range all {
		allIDs[ad.ID] = true
	}
	for _, ad := range tiktok {
		assert.Equal(t, "tiktok", ad.Platform)
		assert.True(t, allIDs[ad.ID])
	}

	updated, err := h.store.UpdateAdStatus(h.ctx, first.ID, domain.AdStatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusPaused, updated.Status)
	sameInstant(t, first.CreatedAt, updated.CreatedAt)

	got, err := h.store.GetAdPerformanceByID(h.ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusPaused, got.Status)
}

func testOpsTaskCreate(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	due := h.clock.Now().AddDate(0, 0, 1)
	description := "Review 5 new TikTok ad creatives"

	created, err := h.store.CreateOpsTask(h.ctx, &domain.InsertOpsTask{
		BrandID:     acme.ID,
		Title:       "Review new ad creatives",
		Description: &description,
		Status:      domain.OpsTaskStatusTodo,
		Category:    "marketing",
		DueDate:     &due,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Progress)
	require.NotNil(t, created.DueDate)
	sameInstant(t, due, *created.DueDate)
	require.NotNil(t, created.Description)
	assert.Equal(t, description, *created.Description)

	done := h.task(t, acme.ID, domain.OpsTaskStatusDone, 10)
	assert.Equal(t, 100, done.Progress)

	full := h.task(t, acme.ID, domain.OpsTaskStatusInProgress, 100)
	assert.Equal(t, domain.OpsTaskStatusDone, full.Status)

	todo, err := h.store.GetOpsTasks(h.ctx, acme.ID, domain.OpsTaskStatusTodo)
	require.NoError(t, err)
	require.Len(t, todo, 1)
	assert.Equal(t, created.ID, todo[0].ID)
	assert.NotNil(t, todo[0].DueDate)

	all, err := h.store.GetOpsTasks(h.ctx, acme.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func testOpsTaskCreateCoupling(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")

	cases := []struct {
		name         string
		status       domain.OpsTaskStatus
		progress     *int
		wantStatus   domain.OpsTaskStatus
		wantProgress int
	}{
		{"em andamento com 100 vira done", domain.OpsTaskStatusInProgress, intPtr(100), domain.OpsTaskStatusDone, 100},
		{"todo com 100 vira done", domain.OpsTaskStatusTodo, intPtr(100), domain.OpsTaskStatusDone, 100},
		{"done sobe para 100", domain.OpsTaskStatusDone, intPtr(30), domain.OpsTaskStatusDone, 100},
		{"done sem progresso", domain.OpsTaskStatusDone, nil, domain.OpsTaskStatusDone, 100},
		{"em andamento parcial", domain.OpsTaskStatusInProgress, intPtr(60), domain.OpsTaskStatusInProgress, 60},
		{"todo sem progresso", domain.OpsTaskStatusTodo, nil, domain.OpsTaskStatusTodo, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var original *int
			if tc.progress != nil {
				original = intPtr(*tc.progress)
			}
			input := &domain.InsertOpsTask{
				BrandID:  acme.ID,
				Title:    "Review new ad creatives",
				Status:   tc.status,
				Category: "marketing",
				Progress: tc.progress,
			}

			created, err := h.store.CreateOpsTask(h.ctx, input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, created.Status)
			assert.Equal(t, tc.wantProgress, created.Progress)

			stored, err := h.store.GetOpsTask(h.ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tc.wantStatus, stored.Status)
			assert.Equal(t, tc.wantProgress, stored.Progress)

			// o insert recebido não é alterado
			assert.Equal(t, tc.status, input.Status)
			if original == nil {
				assert.Nil(t, input.Progress)
			} else {
				require.NotNil(t, input.Progress)
				assert.Equal(t, *original, *input.Progress)
			}
		})
	}
}

func intPtr(v int) *int {
	return &v
}

func testOpsTaskProgress(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	task := h.task(t, acme.ID, domain.OpsTaskStatusTodo, 0)

	h.clock.Advance(time.Minute)

	updated, err := h.store.UpdateOpsTaskProgress(h.ctx, task.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, domain.OpsTaskStatusInProgress, updated.Status)
	assert.Equal(t, 50, updated.Progress)
	sameInstant(t, h.clock.Now(), updated.UpdatedAt)

	updated, err = h.store.UpdateOpsTaskProgress(h.ctx, task.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.OpsTaskStatusDone, updated.Status)
	assert.Equal(t, 100, updated.Progress)

	// zero não devolve a tarefa para todo
	updated, err = h.store.UpdateOpsTaskProgress(h.ctx, task.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.OpsTaskStatusDone, updated.Status)
	assert.Equal(t, 0, updated.Progress)

	stored, err := h.store.GetOpsTask(h.ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Status, stored.Status)
	assert.Equal(t, updated.Progress, stored.Progress)
}

func testOpsTaskStatus(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	task := h.task(t, acme.ID, domain.OpsTaskStatusInProgress, 40)

	updated, err := h.store.UpdateOpsTaskStatus(h.ctx, task.ID, domain.OpsTaskStatusTodo)
	require.NoError(t, err)
	assert.Equal(t, domain.OpsTaskStatusTodo, updated.Status)
	assert.Equal(t, 40, updated.Progress)

	updated, err = h.store.UpdateOpsTaskStatus(h.ctx, task.ID, domain.OpsTaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, domain.OpsTaskStatusDone, updated.Status)
	assert.Equal(t, 100, updated.Progress)
}

func testUnknownIDs(t *testing.T, h *harness) {
	acme := h.brand(t, "Acme", "AC")
	task := h.task(t, acme.ID, domain.OpsTaskStatusTodo, 0)
	const unknown = 987654

	user, err := h.store.GetUser(h.ctx, unknown)
	require.NoError(t, err)
	assert.Nil(t, user)

	brand, err := h.store.GetBrand(h.ctx, unknown)
	require.NoError(t, err)
	assert.Nil(t, brand)

	agent, err := h.store.UpdateAIAgentStatus(h.ctx, unknown, domain.AIAgentStatusActive)
	require.NoError(t, err)
	assert.Nil(t, agent)

	agent, err = h.store.UpdateAIAgentCost(h.ctx, unknown, 1)
	require.NoError(t, err)
	assert.Nil(t, agent)

	agent, err = h.store.GetAIAgent(h.ctx, unknown)
	require.NoError(t, err)
	assert.Nil(t, agent)

	ad, err := h.store.UpdateAdStatus(h.ctx, unknown, domain.AdStatusPaused)
	require.NoError(t, err)
	assert.Nil(t, ad)

	ad, err = h.store.GetAdPerformanceByID(h.ctx, unknown)
	require.NoError(t, err)
	assert.Nil(t, ad)

	missing, err := h.store.UpdateOpsTaskStatus(h.ctx, unknown, domain.OpsTaskStatusDone)
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = h.store.UpdateOpsTaskProgress(h.ctx, unknown, 100)
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = h.store.GetOpsTask(h.ctx, unknown)
	require.NoError(t, err)
	assert.Nil(t, missing)

	// a tarefa existente continua intacta
	stored, err := h.store.GetOpsTask(h.ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OpsTaskStatusTodo, stored.Status)
	assert.Equal(t, 0, stored.Progress)
}
