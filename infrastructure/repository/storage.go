package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AdamaC336/bay2/internal/domain"
)

// ErrDuplicateKey é retornado por qualquer backend quando um insert viola uma chave única
var ErrDuplicateKey = errors.New("registro duplicado: violação de chave única")

// Clock fornece o instante atual. Os backends recebem um Clock para carimbar timestamps.
type Clock func() time.Time

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks Storage

// Storage é o único caminho para ler ou alterar entidades, independente do backend.
// Ausência é sempre (nil, nil), nunca um erro.
type Storage interface {
	UserRepository
	BrandRepository
	RevenueRepository
	AdSpendRepository
	AIAgentRepository
	AdPerformanceRepository
	OpsTaskRepository
}

type UserRepository interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.InsertUser) (*domain.User, error)
}

type BrandRepository interface {
	GetBrands(ctx context.Context) ([]*domain.Brand, error)
	GetBrand(ctx context.Context, id int) (*domain.Brand, error)
	GetBrandByCode(ctx context.Context, code string) (*domain.Brand, error)
	CreateBrand(ctx context.Context, brand *domain.InsertBrand) (*domain.Brand, error)
}

type RevenueRepository interface {
	// GetRevenue retorna as receitas da marca com date em [from, to], inclusivo nas duas pontas
	GetRevenue(ctx context.Context, brandID int, from, to time.Time) ([]*domain.Revenue, error)
	GetTodayRevenue(ctx context.Context, brandID int) (float64, error)
	CreateRevenue(ctx context.Context, revenue *domain.InsertRevenue) (*domain.Revenue, error)
}

type AdSpendRepository interface {
	GetAdSpend(ctx context.Context, brandID int, from, to time.Time) ([]*domain.AdSpend, error)
	GetTodayAdSpend(ctx context.Context, brandID int) (float64, error)
	CreateAdSpend(ctx context.Context, adSpend *domain.InsertAdSpend) (*domain.AdSpend, error)
}

type AIAgentRepository interface {
	GetAIAgents(ctx context.Context, brandID int) ([]*domain.AIAgent, error)
	GetAIAgent(ctx context.Context, id int) (*domain.AIAgent, error)
	CreateAIAgent(ctx context.Context, agent *domain.InsertAIAgent) (*domain.AIAgent, error)
	UpdateAIAgentStatus(ctx context.Context, id int, status domain.AIAgentStatus) (*domain.AIAgent, error)
	UpdateAIAgentCost(ctx context.Context, id int, cost float64) (*domain.AIAgent, error)
}

type AdPerformanceRepository interface {
	// GetAdPerformance filtra por plataforma quando platform não é vazio
	GetAdPerformance(ctx context.Context, brandID int, platform string) ([]*domain.AdPerformance, error)
	GetAdPerformanceByID(ctx context.Context, id int) (*domain.AdPerformance, error)
	CreateAdPerformance(ctx context.Context, ad *domain.InsertAdPerformance) (*domain.AdPerformance, error)
	UpdateAdStatus(ctx context.Context, id int, status domain.AdStatus) (*domain.AdPerformance, error)
}

type OpsTaskRepository interface {
	// GetOpsTasks filtra por status quando status não é vazio
	GetOpsTasks(ctx context.Context, brandID int, status domain.OpsTaskStatus) ([]*domain.OpsTask, error)
	GetOpsTask(ctx context.Context, id int) (*domain.OpsTask, error)
	CreateOpsTask(ctx context.Context, task *domain.InsertOpsTask) (*domain.OpsTask, error)
	UpdateOpsTaskStatus(ctx context.Context, id int, status domain.OpsTaskStatus) (*domain.OpsTask, error)
	UpdateOpsTaskProgress(ctx context.Context, id int, progress int) (*domain.OpsTask, error)
}
