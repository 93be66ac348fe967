package handler

import (
	"net/http"

	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
)

type AdSpendRequest struct {
	BrandID  int     `json:"brandId"`
	Date     *Date   `json:"date"`
	Amount   float64 `json:"amount"`
	Platform string  `json:"platform"`
	Campaign *string `json:"campaign"`
	AdSet    *string `json:"adSet"`
}

func (req AdSpendRequest) insert() *domain.InsertAdSpend {
	insert := &domain.InsertAdSpend{
		BrandID:  req.BrandID,
		Amount:   req.Amount,
		Platform: req.Platform,
		Campaign: req.Campaign,
		AdSet:    req.AdSet,
	}
	if date := req.Date.value(); date != nil {
		insert.Date = *date
	}
	return insert
}

func GetAdSpend(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}

		from, to, ok := dateRange(w, r)
		if !ok {
			return
		}

		spend, err := service.GetAdSpend(r.Context(), brandID, from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, spend)
	}
}

func GetTodayAdSpend(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}

		amount, err := service.GetTodayAdSpend(r.Context(), brandID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AmountResponse{Amount: amount})
	}
}

func CreateAdSpend(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdSpendRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateAdSpend(r.Context(), req.insert())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}
