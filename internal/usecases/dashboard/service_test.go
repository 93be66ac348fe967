package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/infrastructure/repository/mocks"
	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
)

func newService(t *testing.T) (*mocks.MockStorage, Dashboarder) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	return store, NewService(store)
}

func requireCode(t *testing.T, err error, code string) *Error {
	t.Helper()

	var dashErr *Error
	require.True(t, errors.As(err, &dashErr), "esperava *dashboard.Error, recebeu %v", err)
	assert.Equal(t, code, dashErr.Code)
	return dashErr
}

func TestCreateUserHashesPassword(t *testing.T) {
	store, service := newService(t)
	ctx := context.Background()

	store.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.InsertUser) (*domain.User, error) {
			assert.NotEqual(t, "segredo", user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("segredo")))
			assert.Equal(t, domain.RoleUser, user.Role)
			return &domain.User{ID: 7, Username: user.Username, PasswordHash: user.Password, Role: user.Role}, nil
		})

	input := &domain.InsertUser{Username: " maria ", Password: "segredo"}
	profile, err := service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, "maria", profile.Username)
	assert.Equal(t, "segredo", input.Password, "a entrada do chamador não é alterada")
}

func TestCreateUserValidation(t *testing.T) {
	_, service := newService(t)

	_, err := service.CreateUser(context.Background(), &domain.InsertUser{Username: "x", Password: "y", Role: "root"})
	dashErr := requireCode(t, err, apiErrors.ErrInvalidFormat)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, domain.ValidationErrors{{Field: "role", Message: "deve ser admin ou user"}}, dashErr.Details)

	_, err = service.CreateUser(context.Background(), &domain.InsertUser{})
	dashErr = requireCode(t, err, apiErrors.ErrInvalidFormat)
	assert.Len(t, dashErr.Details, 2)
}

func TestCreateUserDuplicate(t *testing.T) {
	store, service := newService(t)

	store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicateKey)

	_, err := service.CreateUser(context.Background(), &domain.InsertUser{Username: "admin", Password: "admin"})
	requireCode(t, err, apiErrors.ErrConflict)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetBrand(t *testing.T) {
	store, service := newService(t)
	ctx := context.Background()

	store.EXPECT().GetBrand(ctx, 1).Return(&domain.Brand{ID: 1, Code: "HB"}, nil)
	store.EXPECT().GetBrand(ctx, 99).Return(nil, nil)
	store.EXPECT().GetBrand(ctx, 5).Return(nil, errors.New("conexão recusada"))

	brand, err := service.GetBrand(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "HB", brand.Code)

	_, err = service.GetBrand(ctx, 99)
	requireCode(t, err, apiErrors.ErrResourceNotFound)
	assert.True(t, IsNotFound(err))

	_, err = service.GetBrand(ctx, 5)
	requireCode(t, err, apiErrors.ErrDatabaseOperation)
	assert.Contains(t, err.Error(), "conexão recusada")
}

func TestCreateBrandConflict(t *testing.T) {
	store, service := newService(t)

	store.EXPECT().CreateBrand(gomock.Any(), &domain.InsertBrand{Name: "Acme", Code: "AC"}).Return(nil, repository.ErrDuplicateKey)

	_, err := service.CreateBrand(context.Background(), &domain.InsertBrand{Name: " Acme ", Code: "AC"})
	requireCode(t, err, apiErrors.ErrConflict)
}

func TestBrandScopedCreatesRequireExistingBrand(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		create func(Dashboarder) error
	}{
		{"receita", func(s Dashboarder) error {
			_, err := s.CreateRevenue(context.Background(), &domain.InsertRevenue{BrandID: 42, Date: now, Amount: 10, Source: "direct"})
			return err
		}},
		{"gasto", func(s Dashboarder) error {
			_, err := s.CreateAdSpend(context.Background(), &domain.InsertAdSpend{BrandID: 42, Date: now, Amount: 10, Platform: "meta"})
			return err
		}},
		{"agente", func(s Dashboarder) error {
			_, err := s.CreateAIAgent(context.Background(), &domain.InsertAIAgent{BrandID: 42, Name: "a", Type: "b", Status: domain.AIAgentStatusActive})
			return err
		}},
		{"anúncio", func(s Dashboarder) error {
			_, err := s.CreateAdPerformance(context.Background(), &domain.InsertAdPerformance{
				BrandID: 42, AdSetID: "1", AdSetName: "x", Platform: "tiktok", Status: domain.AdStatusActive, Date: now,
			})
			return err
		}},
		{"tarefa", func(s Dashboarder) error {
			_, err := s.CreateOpsTask(context.Background(), &domain.InsertOpsTask{BrandID: 42, Title: "t", Status: domain.OpsTaskStatusTodo, Category: "c"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, service := newService(t)
			store.EXPECT().GetBrand(gomock.Any(), 42).Return(nil, nil)

			err := tt.create(service)

			dashErr := requireCode(t, err, apiErrors.ErrInvalidFormat)
			assert.ErrorIs(t, err, ErrUnknownBrand)
			assert.Equal(t, domain.ValidationErrors{{Field: "brandId", Message: "marca não encontrada"}}, dashErr.Details)
		})
	}
}

func TestCreateRevenue(t *testing.T) {
	store, service := newService(t)
	ctx := context.Background()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	input := &domain.InsertRevenue{BrandID: 1, Date: date, Amount: 100, Source: "direct"}

	gomock.InOrder(
		store.EXPECT().GetBrand(ctx, 1).Return(&domain.Brand{ID: 1}, nil),
		store.EXPECT().CreateRevenue(ctx, input).Return(&domain.Revenue{ID: 3, BrandID: 1, Date: date, Amount: 100, Source: "direct"}, nil),
	)

	revenue, err := service.CreateRevenue(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 3, revenue.ID)
}

func TestCreateRevenueInvalidSkipsStorage(t *testing.T) {
	_, service := newService(t)

	_, err := service.CreateRevenue(context.Background(), &domain.InsertRevenue{})

	dashErr := requireCode(t, err, apiErrors.ErrInvalidFormat)
	assert.Len(t, dashErr.Details, 3)
}

func TestGetRevenueRejectsInvertedRange(t *testing.T) {
	_, service := newService(t)
	from := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)

	_, err := service.GetRevenue(context.Background(), 1, from, from.AddDate(0, 0, -1))
	requireCode(t, err, apiErrors.ErrInvalidFormat)

	_, err = service.GetAdSpend(context.Background(), 1, from, from.AddDate(0, 0, -1))
	requireCode(t, err, apiErrors.ErrInvalidFormat)
}

func TestTodayAggregates(t *testing.T) {
	store, service := newService(t)
	ctx := context.Background()

	store.EXPECT().GetTodayRevenue(ctx, 1).Return(150.5, nil)
	store.EXPECT().GetTodayAdSpend(ctx, 1).Return(0.0, errors.New("timeout"))

	amount, err := service.GetTodayRevenue(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 150.5, amount)

	_, err = service.GetTodayAdSpend(ctx, 1)
	requireCode(t, err, apiErrors.ErrDatabaseOperation)
}

func TestGetAIAgentScopedByBrand(t *testing.T) {
	store, service := newService(t)
	ctx := context.Background()

	store.EXPECT().GetAIAgent(ctx, 3).Return(&domain.AIAgent{ID: 3, BrandID: 1}, nil).Times(2)

	agent, err := service.GetAIAgent(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, agent.ID)

	_, err = service.GetAIAgent(ctx, 2, 3)
	requireCode(t, err, apiErrors.ErrResourceNotFound)
}

func TestUpdateAIAgent(t *testing.T) {
	store, service := newService(t)
	ctx := context.Background()

	_, err := service.UpdateAIAgentStatus(ctx, 1, "deleted")
	requireCode(t, err, apiErrors.ErrInvalidFormat)

	_, err = service.UpdateAIAgentCost(ctx, 1, -1)
	requireCode(t, err, apiErrors.ErrInvalidFormat)

	store.EXPECT().UpdateAIAgentStatus(ctx, 9, domain.AIAgentStatusPaused).Return(nil, nil)
	_, err = service.UpdateAIAgentStatus(ctx, 9, domain.AIAgentStatusPaused)
	requireCode(t, err, apiErrors.ErrResourceNotFound)

	store.EXPECT().UpdateAIAgentCost(ctx, 1, 12.5).Return(&domain.AIAgent{ID: 1, Cost: 12.5}, nil)
	agent, err := service.UpdateAIAgentCost(ctx, 1, 12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, agent.Cost)
}

func TestAdPerformance(t *testing.T) {
	store, service := newService(t)
	ctx := context.Background()

	store.EXPECT().GetAdPerformance(ctx, 1, "tiktok").Return([]*domain.AdPerformance{{ID: 1, Platform: "tiktok"}}, nil)
	ads, err := service.GetAdPerformance(ctx, 1, " tiktok ")
	require.NoError(t, err)
	assert.Len(t, ads, 1)

	store.EXPECT().GetAdPerformanceByID(ctx, 4).Return(&domain.AdPerformance{ID: 4, BrandID: 2}, nil)
	_, err = service.GetAdPerformanceByID(ctx, 1, 4)
	requireCode(t, err, apiErrors.ErrResourceNotFound)

	_, err = service.UpdateAdStatus(ctx, 4, "archived")
	requireCode(t, err, apiErrors.ErrInvalidFormat)

	store.EXPECT().UpdateAdStatus(ctx, 4, domain.AdStatusWarning).Return(&domain.AdPerformance{ID: 4, Status: domain.AdStatusWarning}, nil)
	ad, err := service.UpdateAdStatus(ctx, 4, domain.AdStatusWarning)
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusWarning, ad.Status)
}

func TestOpsTasks(t *testing.T) {
	store, service := newService(t)
	ctx := context.Background()

	_, err := service.GetOpsTasks(ctx, 1, "blocked")
	requireCode(t, err, apiErrors.ErrInvalidFormat)

	store.EXPECT().GetOpsTasks(ctx, 1, domain.OpsTaskStatus("")).Return([]*domain.OpsTask{}, nil)
	tasks, err := service.GetOpsTasks(ctx, 1, "")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = service.UpdateOpsTaskProgress(ctx, 1, 101)
	requireCode(t, err, apiErrors.ErrInvalidFormat)

	_, err = service.UpdateOpsTaskProgress(ctx, 1, -1)
	requireCode(t, err, apiErrors.ErrInvalidFormat)

	_, err = service.UpdateOpsTaskStatus(ctx, 1, "blocked")
	requireCode(t, err, apiErrors.ErrInvalidFormat)

	store.EXPECT().UpdateOpsTaskProgress(ctx, 1, 100).
		Return(&domain.OpsTask{ID: 1, Progress: 100, Status: domain.OpsTaskStatusDone}, nil)
	task, err := service.UpdateOpsTaskProgress(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.OpsTaskStatusDone, task.Status)

	store.EXPECT().UpdateOpsTaskStatus(ctx, 77, domain.OpsTaskStatusDone).Return(nil, nil)
	_, err = service.UpdateOpsTaskStatus(ctx, 77, domain.OpsTaskStatusDone)
	requireCode(t, err, apiErrors.ErrResourceNotFound)
}

func TestCreateOpsTaskValidatesProgress(t *testing.T) {
	_, service := newService(t)
	progress := 150

	_, err := service.CreateOpsTask(context.Background(), &domain.InsertOpsTask{
		BrandID: 1, Title: "t", Status: domain.OpsTaskStatusTodo, Category: "c", Progress: &progress,
	})

	dashErr := requireCode(t, err, apiErrors.ErrInvalidFormat)
	assert.Equal(t, domain.ValidationErrors{{Field: "progress", Message: "deve estar entre 0 e 100"}}, dashErr.Details)
}
