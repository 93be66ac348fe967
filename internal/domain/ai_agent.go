package domain

import (
	"maps"
	"slices"
	"time"
)

type AIAgentStatus string

const (
	AIAgentStatusActive AIAgentStatus = "active"
	AIAgentStatusPaused AIAgentStatus = "paused"
)

func (s AIAgentStatus) IsValid() bool {
	return s == AIAgentStatusActive || s == AIAgentStatusPaused
}

// AgentMetrics é um mapa livre de métricas, as chaves variam por tipo de agente.
// Os valores são escalares: número, texto, booleano ou nulo.
type AgentMetrics map[string]any

// nonScalarKeys devolve, em ordem, as chaves cujo valor é objeto ou lista
func (m AgentMetrics) nonScalarKeys() []string {
	var keys []string
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if !isScalar(m[key]) {
			keys = append(keys, key)
		}
	}
	return keys
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

type AIAgent struct {
	ID        int           `json:"id" db:"id"`
	BrandID   int           `json:"brandId" db:"brand_id"`
	Name      string        `json:"name" db:"name"`
	Type      string        `json:"type" db:"type"`
	Status    AIAgentStatus `json:"status" db:"status"`
	Cost      float64       `json:"cost" db:"cost"`
	Metrics   AgentMetrics  `json:"metrics" db:"metrics"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

// InsertAIAgent não carrega custo: todo agente nasce com custo zero
type InsertAIAgent struct {
	BrandID int           `json:"brandId" db:"brand_id"`
	Name    string        `json:"name" db:"name"`
	Type    string        `json:"type" db:"type"`
	Status  AIAgentStatus `json:"status" db:"status"`
	Metrics AgentMetrics  `json:"metrics" db:"metrics"`
}

func (a *InsertAIAgent) Validate() error {
	var errs ValidationErrors

	if a.BrandID <= 0 {
		errs.Add("brandId", "deve ser um ID positivo")
	}
	if a.Name == "" {
		errs.Add("name", "obrigatório")
	}
	if a.Type == "" {
		errs.Add("type", "obrigatório")
	}
	if !a.Status.IsValid() {
		errs.Add("status", "deve ser active ou paused")
	}
	for _, key := range a.Metrics.nonScalarKeys() {
		errs.Add("metrics."+key, "deve ser número, texto ou booleano")
	}

	return errs.OrNil()
}
