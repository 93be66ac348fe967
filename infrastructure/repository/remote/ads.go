package remote

import (
	"context"

	"github.com/AdamaC336/bay2/infrastructure/integrator/supabase/supabaseclient"
	"github.com/AdamaC336/bay2/internal/domain"
)

func (s *Store) GetAdPerformance(ctx context.Context, brandID int, platform string) ([]*domain.AdPerformance, error) {
	filters := []supabaseclient.Filter{supabaseclient.Eq("brand_id", brandID)}
	if platform != "" {
		filters = append(filters, supabaseclient.Eq("platform", platform))
	}

	query := supabaseclient.Query{Filters: filters, Order: orderByID}
	return list[domain.AdPerformance](ctx, s, adPerformanceTable, query, "listar performance de anúncios")
}

func (s *Store) GetAdPerformanceByID(ctx context.Context, id int) (*domain.AdPerformance, error) {
	return getOne[domain.AdPerformance](ctx, s, adPerformanceTable, byID(id), "buscar performance de anúncio")
}

func (s *Store) CreateAdPerformance(ctx context.Context, ad *domain.InsertAdPerformance) (*domain.AdPerformance, error) {
	row := encode(ad)
	row["created_at"] = supabaseclient.FormatTime(s.now())

	return create[domain.AdPerformance](ctx, s, adPerformanceTable, row, "criar performance de anúncio")
}

func (s *Store) UpdateAdStatus(ctx context.Context, id int, status domain.AdStatus) (*domain.AdPerformance, error) {
	values := supabaseclient.Row{"status": string(status)}
	return update[domain.AdPerformance](ctx, s, adPerformanceTable, id, values, "atualizar status do anúncio")
}
