package memory

import (
	"context"

	"github.com/AdamaC336/bay2/internal/domain"
)

func (s *Store) GetAdPerformance(_ context.Context, brandID int, platform string) ([]*domain.AdPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ads := collect(s.adPerformance, func(a *domain.AdPerformance) bool {
		return a.BrandID == brandID && (platform == "" || a.Platform == platform)
	})
	for i, ad := range ads {
		ads[i].Thumbnail = copyOf(ad.Thumbnail)
	}
	return ads, nil
}

func (s *Store) GetAdPerformanceByID(_ context.Context, id int) (*domain.AdPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAd(s.adPerformance[id]), nil
}

func (s *Store) CreateAdPerformance(_ context.Context, insert *domain.InsertAdPerformance) (*domain.AdPerformance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastIDs.adPerformance++
	ad := &domain.AdPerformance{
		ID:        s.lastIDs.adPerformance,
		BrandID:   insert.BrandID,
		AdSetID:   insert.AdSetID,
		AdSetName: insert.AdSetName,
		Platform:  insert.Platform,
		Spend:     insert.Spend,
		ROAS:      insert.ROAS,
		CTR:       insert.CTR,
		Status:    insert.Status,
		Thumbnail: copyOf(insert.Thumbnail),
		Date:      insert.Date,
		CreatedAt: s.now(),
	}
	s.adPerformance[ad.ID] = ad

	return cloneAd(ad), nil
}

func (s *Store) UpdateAdStatus(_ context.Context, id int, status domain.AdStatus) (*domain.AdPerformance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad, ok := s.adPerformance[id]
	if !ok {
		return nil, nil
	}
	ad.Status = status

	return cloneAd(ad), nil
}

func cloneAd(ad *domain.AdPerformance) *domain.AdPerformance {
	c := copyOf(ad)
	if c != nil {
		c.Thumbnail = copyOf(ad.Thumbnail)
	}
	return c
}
