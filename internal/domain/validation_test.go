package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertValidation(t *testing.T) {
	t.Run("brand sem nome e código", func(t *testing.T) {
		err := (&InsertBrand{Name: "  "}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "code")
	})

	t.Run("revenue válido", func(t *testing.T) {
		err := (&InsertRevenue{BrandID: 1, Date: time.Now(), Amount: 10, Source: "direct"}).Validate()
		assert.NoError(t, err)
	})

	t.Run("agente com status desconhecido", func(t *testing.T) {
		err := (&InsertAIAgent{BrandID: 1, Name: "a", Type: "support", Status: "running"}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("agente com métricas aninhadas", func(t *testing.T) {
		err := (&InsertAIAgent{
			BrandID: 1, Name: "a", Type: "support", Status: AIAgentStatusActive,
			Metrics: AgentMetrics{
				"tickets":  float64(12),
				"channels": []any{"email", "chat"},
				"sla":      map[string]any{"hours": 4},
			},
		}).Validate()
		require.Error(t, err)

		var fields ValidationErrors
		require.ErrorAs(t, err, &fields)
		require.Len(t, fields, 2)
		assert.Equal(t, "metrics.channels", fields[0].Field)
		assert.Equal(t, "metrics.sla", fields[1].Field)
	})

	t.Run("agente com métricas escalares é aceito", func(t *testing.T) {
		err := (&InsertAIAgent{
			BrandID: 1, Name: "a", Type: "support", Status: AIAgentStatusPaused,
			Metrics: AgentMetrics{
				"tickets": 12, "satisfaction": 4.8, "channel": "email", "escalates": true, "lastRun": nil,
			},
		}).Validate()
		assert.NoError(t, err)
	})

	t.Run("anúncio com status warning é aceito", func(t *testing.T) {
		err := (&InsertAdPerformance{
			BrandID: 1, AdSetID: "A", AdSetName: "A", Platform: "tiktok",
			Status: AdStatusWarning, Date: time.Now(),
		}).Validate()
		assert.NoError(t, err)
	})

	t.Run("usuário recebe role padrão", func(t *testing.T) {
		u := &InsertUser{Username: "ana", Password: "x"}
		require.NoError(t, u.Validate())
		assert.Equal(t, RoleUser, u.Role)
	})
}
