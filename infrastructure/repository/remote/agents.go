package remote

import (
	"context"

	"github.com/AdamaC336/bay2/infrastructure/integrator/supabase/supabaseclient"
	"github.com/AdamaC336/bay2/internal/domain"
)

func (s *Store) GetAIAgents(ctx context.Context, brandID int) ([]*domain.AIAgent, error) {
	query := supabaseclient.Query{
		Filters: []supabaseclient.Filter{supabaseclient.Eq("brand_id", brandID)},
		Order:   orderByID,
	}

	agents, err := list[domain.AIAgent](ctx, s, aiAgentsTable, query, "listar agentes")
	if err != nil {
		return nil, err
	}
	for _, agent := range agents {
		withMetrics(agent)
	}
	return agents, nil
}

func (s *Store) GetAIAgent(ctx context.Context, id int) (*domain.AIAgent, error) {
	agent, err := getOne[domain.AIAgent](ctx, s, aiAgentsTable, byID(id), "buscar agente")
	return withMetrics(agent), err
}

func (s *Store) CreateAIAgent(ctx context.Context, agent *domain.InsertAIAgent) (*domain.AIAgent, error) {
	now := supabaseclient.FormatTime(s.now())

	row := encode(agent)
	if agent.Metrics == nil {
		row["metrics"] = domain.AgentMetrics{}
	}
	row["cost"] = 0
	row["created_at"] = now
	row["updated_at"] = now

	created, err := create[domain.AIAgent](ctx, s, aiAgentsTable, row, "criar agente")
	return withMetrics(created), err
}

func (s *Store) UpdateAIAgentStatus(ctx context.Context, id int, status domain.AIAgentStatus) (*domain.AIAgent, error) {
	values := supabaseclient.Row{
		"status":     string(status),
		"updated_at": supabaseclient.FormatTime(s.now()),
	}

	agent, err := update[domain.AIAgent](ctx, s, aiAgentsTable, id, values, "atualizar status do agente")
	return withMetrics(agent), err
}

func (s *Store) UpdateAIAgentCost(ctx context.Context, id int, cost float64) (*domain.AIAgent, error) {
	values := supabaseclient.Row{
		"cost":       cost,
		"updated_at": supabaseclient.FormatTime(s.now()),
	}

	agent, err := update[domain.AIAgent](ctx, s, aiAgentsTable, id, values, "atualizar custo do agente")
	return withMetrics(agent), err
}

func withMetrics(agent *domain.AIAgent) *domain.AIAgent {
	if agent != nil && agent.Metrics == nil {
		agent.Metrics = domain.AgentMetrics{}
	}
	return agent
}
