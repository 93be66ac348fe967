package domain

import "time"

type AdStatus string

const (
	AdStatusActive  AdStatus = "active"
	AdStatusWarning AdStatus = "warning"
	AdStatusPaused  AdStatus = "paused"
)

func (s AdStatus) IsValid() bool {
	switch s {
	case AdStatusActive, AdStatusWarning, AdStatusPaused:
		return true
	}
	return false
}

type AdPerformance struct {
	ID        int       `json:"id" db:"id"`
	BrandID   int       `json:"brandId" db:"brand_id"`
	AdSetID   string    `json:"adSetId" db:"ad_set_id"`
	AdSetName string    `json:"adSetName" db:"ad_set_name"`
	Platform  string    `json:"platform" db:"platform"`
	Spend     float64   `json:"spend" db:"spend"`
	ROAS      float64   `json:"roas" db:"roas"`
	CTR       float64   `json:"ctr" db:"ctr"`
	Status    AdStatus  `json:"status" db:"status"`
	Thumbnail *string   `json:"thumbnail" db:"thumbnail"`
	Date      time.Time `json:"date" db:"date"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type InsertAdPerformance struct {
	BrandID   int       `json:"brandId" db:"brand_id"`
	AdSetID   string    `json:"adSetId" db:"ad_set_id"`
	AdSetName string    `json:"adSetName" db:"ad_set_name"`
	Platform  string    `json:"platform" db:"platform"`
	Spend     float64   `json:"spend" db:"spend"`
	ROAS      float64   `json:"roas" db:"roas"`
	CTR       float64   `json:"ctr" db:"ctr"`
	Status    AdStatus  `json:"status" db:"status"`
	Thumbnail *string   `json:"thumbnail" db:"thumbnail"`
	Date      time.Time `json:"date" db:"date"`
}

func (a *InsertAdPerformance) Validate() error {
	var errs ValidationErrors

	if a.BrandID <= 0 {
		errs.Add("brandId", "deve ser um ID positivo")
	}
	if a.AdSetID == "" {
		errs.Add("adSetId", "obrigatório")
	}
	if a.AdSetName == "" {
		errs.Add("adSetName", "obrigatório")
	}
	if a.Platform == "" {
		errs.Add("platform", "obrigatório")
	}
	if !a.Status.IsValid() {
		errs.Add("status", "deve ser active, warning ou paused")
	}
	if a.Date.IsZero() {
		errs.Add("date", "obrigatório")
	}

	return errs.OrNil()
}
