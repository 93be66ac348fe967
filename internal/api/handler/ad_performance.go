package handler

import (
	"net/http"

	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
)

type AdPerformanceRequest struct {
	BrandID   int     `json:"brandId"`
	AdSetID   string  `json:"adSetId"`
	AdSetName string  `json:"adSetName"`
	Platform  string  `json:"platform"`
	Spend     float64 `json:"spend"`
	ROAS      float64 `json:"roas"`
	CTR       float64 `json:"ctr"`
	Status    string  `json:"status"`
	Thumbnail *string `json:"thumbnail"`
	Date      *Date   `json:"date"`
}

func (req AdPerformanceRequest) insert() *domain.InsertAdPerformance {
	insert := &domain.InsertAdPerformance{
		BrandID:   req.BrandID,
		AdSetID:   req.AdSetID,
		AdSetName: req.AdSetName,
		Platform:  req.Platform,
		Spend:     req.Spend,
		ROAS:      req.ROAS,
		CTR:       req.CTR,
		Status:    domain.AdStatus(req.Status),
		Thumbnail: req.Thumbnail,
	}
	if date := req.Date.value(); date != nil {
		insert.Date = *date
	}
	return insert
}

func ListAdPerformance(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}

		ads, err := service.GetAdPerformance(r.Context(), brandID, r.URL.Query().Get("platform"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ads)
	}
}

func GetAdPerformance(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id", "ID do anúncio")
		if !ok {
			return
		}

		ad, err := service.GetAdPerformanceByID(r.Context(), brandID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ad)
	}
}

func CreateAdPerformance(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdPerformanceRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateAdPerformance(r.Context(), req.insert())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateAdStatus(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", "ID do anúncio")
		if !ok {
			return
		}
		status, ok := decodeStatus(w, r)
		if !ok {
			return
		}

		ad, err := service.UpdateAdStatus(r.Context(), id, domain.AdStatus(status))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ad)
	}
}
