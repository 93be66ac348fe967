package handler

import (
	"net/http"

	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
)

type OpsTaskRequest struct {
	BrandID     int     `json:"brandId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	DueDate     *Date   `json:"dueDate"`
	Progress    *int    `json:"progress"`
}

func (req OpsTaskRequest) insert() *domain.InsertOpsTask {
	return &domain.InsertOpsTask{
		BrandID:     req.BrandID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.OpsTaskStatus(req.Status),
		Category:    req.Category,
		DueDate:     req.DueDate.value(),
		Progress:    req.Progress,
	}
}

type ProgressRequest struct {
	Progress *int `json:"progress"`
}

func ListOpsTasks(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}

		status := domain.OpsTaskStatus(r.URL.Query().Get("status"))
		tasks, err := service.GetOpsTasks(r.Context(), brandID, status)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tasks)
	}
}

func GetOpsTask(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id", "ID da tarefa")
		if !ok {
			return
		}

		task, err := service.GetOpsTask(r.Context(), brandID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}

func CreateOpsTask(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpsTaskRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateOpsTask(r.Context(), req.insert())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateOpsTaskStatus(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", "ID da tarefa")
		if !ok {
			return
		}
		status, ok := decodeStatus(w, r)
		if !ok {
			return
		}

		task, err := service.UpdateOpsTaskStatus(r.Context(), id, domain.OpsTaskStatus(status))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}

func UpdateOpsTaskProgress(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", "ID da tarefa")
		if !ok {
			return
		}

		var req ProgressRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Progress == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Progresso deve ser um número entre 0 e 100", nil)
			return
		}

		task, err := service.UpdateOpsTaskProgress(r.Context(), id, *req.Progress)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}
