// Package memory implementa o Storage com mapas em memória protegidos por um único RWMutex.
// O conteúdo é volátil e se perde ao reiniciar o processo.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/fixture"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sequences são os contadores de id por entidade, todos começando em 1
type sequences struct {
	user, brand, revenue, adSpend, aiAgent, adPerformance, opsTask int
}

type Store struct {
	mu  sync.RWMutex
	now repository.Clock

	users         map[int]*domain.User
	brands        map[int]*domain.Brand
	revenue       map[int]*domain.Revenue
	adSpend       map[int]*domain.AdSpend
	aiAgents      map[int]*domain.AIAgent
	adPerformance map[int]*domain.AdPerformance
	opsTasks      map[int]*domain.OpsTask
	lastIDs       sequences
}

var _ repository.Storage = (*Store)(nil)

// New cria um storage vazio
func New(now repository.Clock) *Store {
	if now == nil {
		now = time.Now
	}

	return &Store{
		now:           now,
		users:         make(map[int]*domain.User),
		brands:        make(map[int]*domain.Brand),
		revenue:       make(map[int]*domain.Revenue),
		adSpend:       make(map[int]*domain.AdSpend),
		aiAgents:      make(map[int]*domain.AIAgent),
		adPerformance: make(map[int]*domain.AdPerformance),
		opsTasks:      make(map[int]*domain.OpsTask),
	}
}

// NewSeeded cria o storage já com o fixture padrão (marca HB e usuário admin)
func NewSeeded(ctx context.Context, now repository.Clock) (*Store, error) {
	s := New(now)
	if err := fixture.Load(ctx, s, fixture.Default(s.now())); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) GetUser(_ context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyOf(s.users[id]), nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return copyOf(user), nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(_ context.Context, insert *domain.InsertUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == insert.Username {
			return nil, repository.ErrDuplicateKey
		}
	}

	s.lastIDs.user++
	user := &domain.User{
		ID:           s.lastIDs.user,
		Username:     insert.Username,
		PasswordHash: insert.Password,
		Name:         copyOf(insert.Name),
		Role:         insert.Role,
	}
	s.users[user.ID] = user

	return copyOf(user), nil
}

func (s *Store) GetBrands(_ context.Context) ([]*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.brands, func(*domain.Brand) bool { return true }), nil
}

func (s *Store) GetBrand(_ context.Context, id int) (*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyOf(s.brands[id]), nil
}

func (s *Store) GetBrandByCode(_ context.Context, code string) (*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, brand := range s.brands {
		if brand.Code == code {
			return copyOf(brand), nil
		}
	}
	return nil, nil
}

func (s *Store) CreateBrand(_ context.Context, insert *domain.InsertBrand) (*domain.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, brand := range s.brands {
		if brand.Name == insert.Name || brand.Code == insert.Code {
			return nil, repository.ErrDuplicateKey
		}
	}

	s.lastIDs.brand++
	brand := &domain.Brand{
		ID:        s.lastIDs.brand,
		Name:      insert.Name,
		Code:      insert.Code,
		CreatedAt: s.now(),
	}
	s.brands[brand.ID] = brand

	return copyOf(brand), nil
}

func (s *Store) GetRevenue(_ context.Context, brandID int, from, to time.Time) ([]*domain.Revenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	revenue := collect(s.revenue, func(r *domain.Revenue) bool {
		return r.BrandID == brandID && !r.Date.Before(from) && !r.Date.After(to)
	})
	sort.SliceStable(revenue, func(i, j int) bool { return revenue[i].Date.Before(revenue[j].Date) })

	return revenue, nil
}

func (s *Store) GetTodayRevenue(_ context.Context, brandID int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := domain.DayBounds(s.now())

	var total float64
	for _, r := range s.revenue {
		if r.BrandID == brandID && domain.InDay(r.Date, start, end) {
			total += r.Amount
		}
	}
	return total, nil
}

func (s *Store) CreateRevenue(_ context.Context, insert *domain.InsertRevenue) (*domain.Revenue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastIDs.revenue++
	revenue := &domain.Revenue{
		ID:        s.lastIDs.revenue,
		BrandID:   insert.BrandID,
		Date:      insert.Date,
		Amount:    insert.Amount,
		Source:    insert.Source,
		CreatedAt: s.now(),
	}
	s.revenue[revenue.ID] = revenue

	return copyOf(revenue), nil
}

func (s *Store) GetAdSpend(_ context.Context, brandID int, from, to time.Time) ([]*domain.AdSpend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spends := collect(s.adSpend, func(a *domain.AdSpend) bool {
		return a.BrandID == brandID && !a.Date.Before(from) && !a.Date.After(to)
	})
	sort.SliceStable(spends, func(i, j int) bool { return spends[i].Date.Before(spends[j].Date) })

	return spends, nil
}

func (s *Store) GetTodayAdSpend(_ context.Context, brandID int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := domain.DayBounds(s.now())

	var total float64
	for _, a := range s.adSpend {
		if a.BrandID == brandID && domain.InDay(a.Date, start, end) {
			total += a.Amount
		}
	}
	return total, nil
}

func (s *Store) CreateAdSpend(_ context.Context, insert *domain.InsertAdSpend) (*domain.AdSpend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastIDs.adSpend++
	spend := &domain.AdSpend{
		ID:        s.lastIDs.adSpend,
		BrandID:   insert.BrandID,
		Date:      insert.Date,
		Amount:    insert.Amount,
		Platform:  insert.Platform,
		Campaign:  copyOf(insert.Campaign),
		AdSet:     copyOf(insert.AdSet),
		CreatedAt: s.now(),
	}
	s.adSpend[spend.ID] = spend

	return copyOf(spend), nil
}
