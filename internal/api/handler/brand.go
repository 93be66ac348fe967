package handler

import (
	"net/http"

	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
)

func ListBrands(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := service.GetBrands(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, brands)
	}
}

func GetBrand(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", "ID da marca")
		if !ok {
			return
		}

		brand, err := service.GetBrand(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, brand)
	}
}

func CreateBrand(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var brand domain.InsertBrand
		if !decodeBody(w, r, &brand) {
			return
		}

		created, err := service.CreateBrand(r.Context(), &brand)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}
