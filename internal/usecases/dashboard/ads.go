package dashboard

import (
	"context"
	"strings"

	"github.com/AdamaC336/bay2/internal/domain"
)

func (s *Service) GetAdPerformance(ctx context.Context, brandID int, platform string) ([]*domain.AdPerformance, error) {
	ads, err := s.store.GetAdPerformance(ctx, brandID, strings.TrimSpace(platform))
	if err != nil {
		return nil, storageError(err, "listar anúncios")
	}
	return ads, nil
}

func (s *Service) GetAdPerformanceByID(ctx context.Context, brandID, id int) (*domain.AdPerformance, error) {
	ad, err := s.store.GetAdPerformanceByID(ctx, id)
	if err != nil {
		return nil, storageError(err, "buscar anúncio")
	}
	if ad == nil || ad.BrandID != brandID {
		return nil, notFound("anúncio", id)
	}
	return ad, nil
}

func (s *Service) CreateAdPerformance(ctx context.Context, ad *domain.InsertAdPerformance) (*domain.AdPerformance, error) {
	if err := fromValidation(ad.Validate()); err != nil {
		return nil, err
	}
	if err := s.requireBrand(ctx, ad.BrandID); err != nil {
		return nil, err
	}

	created, err := s.store.CreateAdPerformance(ctx, ad)
	if err != nil {
		return nil, storageError(err, "criar anúncio")
	}
	return created, nil
}

func (s *Service) UpdateAdStatus(ctx context.Context, id int, status domain.AdStatus) (*domain.AdPerformance, error) {
	if !status.IsValid() {
		return nil, invalid("status", "deve ser active, warning ou paused")
	}

	ad, err := s.store.UpdateAdStatus(ctx, id, status)
	if err != nil {
		return nil, storageError(err, "atualizar status do anúncio")
	}
	if ad == nil {
		return nil, notFound("anúncio", id)
	}
	return ad, nil
}
