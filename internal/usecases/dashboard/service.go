package dashboard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
	"github.com/AdamaC336/bay2/pkg/log"
)

// Dashboarder é a porta de entrada dos handlers. Toda escrita passa pela
// mesma validação, independente do backend de Storage configurado.
type Dashboarder interface {
	CreateUser(ctx context.Context, user *domain.InsertUser) (*domain.UserProfile, error)

	GetBrands(ctx context.Context) ([]*domain.Brand, error)
	GetBrand(ctx context.Context, id int) (*domain.Brand, error)
	CreateBrand(ctx context.Context, brand *domain.InsertBrand) (*domain.Brand, error)

	GetRevenue(ctx context.Context, brandID int, from, to time.Time) ([]*domain.Revenue, error)
	GetTodayRevenue(ctx context.Context, brandID int) (float64, error)
	CreateRevenue(ctx context.Context, revenue *domain.InsertRevenue) (*domain.Revenue, error)

	GetAdSpend(ctx context.Context, brandID int, from, to time.Time) ([]*domain.AdSpend, error)
	GetTodayAdSpend(ctx context.Context, brandID int) (float64, error)
	CreateAdSpend(ctx context.Context, adSpend *domain.InsertAdSpend) (*domain.AdSpend, error)

	GetAIAgents(ctx context.Context, brandID int) ([]*domain.AIAgent, error)
	GetAIAgent(ctx context.Context, brandID, id int) (*domain.AIAgent, error)
	CreateAIAgent(ctx context.Context, agent *domain.InsertAIAgent) (*domain.AIAgent, error)
	UpdateAIAgentStatus(ctx context.Context, id int, status domain.AIAgentStatus) (*domain.AIAgent, error)
	UpdateAIAgentCost(ctx context.Context, id int, cost float64) (*domain.AIAgent, error)

	GetAdPerformance(ctx context.Context, brandID int, platform string) ([]*domain.AdPerformance, error)
	GetAdPerformanceByID(ctx context.Context, brandID, id int) (*domain.AdPerformance, error)
	CreateAdPerformance(ctx context.Context, ad *domain.InsertAdPerformance) (*domain.AdPerformance, error)
	UpdateAdStatus(ctx context.Context, id int, status domain.AdStatus) (*domain.AdPerformance, error)

	GetOpsTasks(ctx context.Context, brandID int, status domain.OpsTaskStatus) ([]*domain.OpsTask, error)
	GetOpsTask(ctx context.Context, brandID, id int) (*domain.OpsTask, error)
	CreateOpsTask(ctx context.Context, task *domain.InsertOpsTask) (*domain.OpsTask, error)
	UpdateOpsTaskStatus(ctx context.Context, id int, status domain.OpsTaskStatus) (*domain.OpsTask, error)
	UpdateOpsTaskProgress(ctx context.Context, id int, progress int) (*domain.OpsTask, error)
}

type Service struct {
	store repository.Storage
}

func NewService(store repository.Storage) Dashboarder {
	return &Service{store: store}
}

// storageError classifica falhas do Storage: chave duplicada vira conflito, o resto é erro de banco
func storageError(err error, op string) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return NewError(ErrConflict, apiErrors.ErrConflict, op)
	}

	logrus.WithError(err).WithField("operation", op).Error("Falha no armazenamento")
	return NewError(errors.Wrapf(err, "falha ao %s", op), apiErrors.ErrDatabaseOperation, nil)
}

// requireBrand garante que brand_id referencia uma marca existente em qualquer backend
func (s *Service) requireBrand(ctx context.Context, brandID int) error {
	brand, err := s.store.GetBrand(ctx, brandID)
	if err != nil {
		return storageError(err, "buscar marca")
	}
	if brand == nil {
		return NewError(ErrUnknownBrand, apiErrors.ErrInvalidFormat,
			domain.ValidationErrors{{Field: "brandId", Message: "marca não encontrada"}})
	}
	return nil
}

func (s *Service) CreateUser(ctx context.Context, user *domain.InsertUser) (*domain.UserProfile, error) {
	if err := fromValidation(user.Validate()); err != nil {
		return nil, err
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleUser {
		return nil, invalid("role", "deve ser admin ou user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar hash da senha")
		return nil, NewError(ErrPasswordCrypt, apiErrors.ErrInternalServer, nil)
	}

	insert := *user
	insert.Password = string(hash)

	created, err := s.store.CreateUser(ctx, &insert)
	if err != nil {
		return nil, storageError(err, "criar usuário")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":   created.ID,
		"user_role": created.Role,
	}).Info("Usuário criado")

	return created.Profile(), nil
}

func (s *Service) GetBrands(ctx context.Context) ([]*domain.Brand, error) {
	brands, err := s.store.GetBrands(ctx)
	if err != nil {
		return nil, storageError(err, "listar marcas")
	}
	return brands, nil
}

func (s *Service) GetBrand(ctx context.Context, id int) (*domain.Brand, error) {
	brand, err := s.store.GetBrand(ctx, id)
	if err != nil {
		return nil, storageError(err, "buscar marca")
	}
	if brand == nil {
		return nil, notFound("marca", id)
	}
	return brand, nil
}

func (s *Service) CreateBrand(ctx context.Context, brand *domain.InsertBrand) (*domain.Brand, error) {
	if err := fromValidation(brand.Validate()); err != nil {
		return nil, err
	}

	created, err := s.store.CreateBrand(ctx, brand)
	if err != nil {
		return nil, storageError(err, "criar marca")
	}
	return created, nil
}

func (s *Service) GetRevenue(ctx context.Context, brandID int, from, to time.Time) ([]*domain.Revenue, error) {
	if to.Before(from) {
		return nil, invalid("toDate", "deve ser posterior a fromDate")
	}

	revenue, err := s.store.GetRevenue(ctx, brandID, from, to)
	if err != nil {
		return nil, storageError(err, "listar receitas")
	}
	return revenue, nil
}

func (s *Service) GetTodayRevenue(ctx context.Context, brandID int) (float64, error) {
	amount, err := s.store.GetTodayRevenue(ctx, brandID)
	if err != nil {
		return 0, storageError(err, "somar receitas do dia")
	}
	return amount, nil
}

func (s *Service) CreateRevenue(ctx context.Context, revenue *domain.InsertRevenue) (*domain.Revenue, error) {
	if err := fromValidation(revenue.Validate()); err != nil {
		return nil, err
	}
	if err := s.requireBrand(ctx, revenue.BrandID); err != nil {
		return nil, err
	}

	created, err := s.store.CreateRevenue(ctx, revenue)
	if err != nil {
		return nil, storageError(err, "criar receita")
	}
	return created, nil
}

func (s *Service) GetAdSpend(ctx context.Context, brandID int, from, to time.Time) ([]*domain.AdSpend, error) {
	if to.Before(from) {
		return nil, invalid("toDate", "deve ser posterior a fromDate")
	}

	spend, err := s.store.GetAdSpend(ctx, brandID, from, to)
	if err != nil {
		return nil, storageError(err, "listar gastos com anúncios")
	}
	return spend, nil
}

func (s *Service) GetTodayAdSpend(ctx context.Context, brandID int) (float64, error) {
	amount, err := s.store.GetTodayAdSpend(ctx, brandID)
	if err != nil {
		return 0, storageError(err, "somar gastos do dia")
	}
	return amount, nil
}

func (s *Service) CreateAdSpend(ctx context.Context, adSpend *domain.InsertAdSpend) (*domain.AdSpend, error) {
	if err := fromValidation(adSpend.Validate()); err != nil {
		return nil, err
	}
	if err := s.requireBrand(ctx, adSpend.BrandID); err != nil {
		return nil, err
	}

	created, err := s.store.CreateAdSpend(ctx, adSpend)
	if err != nil {
		return nil, storageError(err, "criar gasto com anúncios")
	}
	return created, nil
}
