package handler

import (
	"net/http"

	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
)

type StatusRequest struct {
	Status string `json:"status"`
}

type CostRequest struct {
	Cost *float64 `json:"cost"`
}

// decodeStatus exige um status não vazio no corpo
func decodeStatus(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req StatusRequest
	if !decodeBody(w, r, &req) {
		return "", false
	}
	if req.Status == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Status é obrigatório", nil)
		return "", false
	}
	return req.Status, true
}

func ListAIAgents(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}

		agents, err := service.GetAIAgents(r.Context(), brandID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, agents)
	}
}

func GetAIAgent(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id", "ID do agente")
		if !ok {
			return
		}

		agent, err := service.GetAIAgent(r.Context(), brandID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, agent)
	}
}

func CreateAIAgent(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var agent domain.InsertAIAgent
		if !decodeBody(w, r, &agent) {
			return
		}

		created, err := service.CreateAIAgent(r.Context(), &agent)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateAIAgentStatus(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", "ID do agente")
		if !ok {
			return
		}
		status, ok := decodeStatus(w, r)
		if !ok {
			return
		}

		agent, err := service.UpdateAIAgentStatus(r.Context(), id, domain.AIAgentStatus(status))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, agent)
	}
}

func UpdateAIAgentCost(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", "ID do agente")
		if !ok {
			return
		}

		var req CostRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Cost == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Custo deve ser um número", nil)
			return
		}

		agent, err := service.UpdateAIAgentCost(r.Context(), id, *req.Cost)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, agent)
	}
}
