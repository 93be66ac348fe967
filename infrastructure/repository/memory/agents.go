package memory

import (
	"context"
	"fmt"

	"github.com/AdamaC336/bay2/internal/domain"
)

func (s *Store) GetAIAgents(_ context.Context, brandID int) ([]*domain.AIAgent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agents := collect(s.aiAgents, func(a *domain.AIAgent) bool { return a.BrandID == brandID })
	for i, agent := range agents {
		agents[i] = cloneAgent(agent)
	}
	return agents, nil
}

func (s *Store) GetAIAgent(_ context.Context, id int) (*domain.AIAgent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAgent(s.aiAgents[id]), nil
}

func (s *Store) CreateAIAgent(_ context.Context, insert *domain.InsertAIAgent) (*domain.AIAgent, error) {
	metrics, err := cloneMetrics(insert.Metrics)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.lastIDs.aiAgent++
	agent := &domain.AIAgent{
		ID:        s.lastIDs.aiAgent,
		BrandID:   insert.BrandID,
		Name:      insert.Name,
		Type:      insert.Type,
		Status:    insert.Status,
		Cost:      0,
		Metrics:   metrics,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.aiAgents[agent.ID] = agent

	return cloneAgent(agent), nil
}

func (s *Store) UpdateAIAgentStatus(_ context.Context, id int, status domain.AIAgentStatus) (*domain.AIAgent, error) {
	return s.updateAgent(id, func(a *domain.AIAgent) { a.Status = status })
}

func (s *Store) UpdateAIAgentCost(_ context.Context, id int, cost float64) (*domain.AIAgent, error) {
	return s.updateAgent(id, func(a *domain.AIAgent) { a.Cost = cost })
}

func (s *Store) updateAgent(id int, apply func(*domain.AIAgent)) (*domain.AIAgent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agent, ok := s.aiAgents[id]
	if !ok {
		return nil, nil
	}

	apply(agent)
	agent.UpdatedAt = s.now()

	return cloneAgent(agent), nil
}

func cloneAgent(agent *domain.AIAgent) *domain.AIAgent {
	if agent == nil {
		return nil
	}

	c := *agent
	c.Metrics = make(domain.AgentMetrics, len(agent.Metrics))
	for k, v := range agent.Metrics {
		c.Metrics[k] = v
	}
	return &c
}

// cloneMetrics passa as métricas por JSON para que números saiam como float64,
// o mesmo formato devolvido pelos backends relacional e remoto
func cloneMetrics(metrics domain.AgentMetrics) (domain.AgentMetrics, error) {
	out := domain.AgentMetrics{}
	if metrics == nil {
		return out, nil
	}

	raw, err := json.Marshal(metrics)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar métricas do agente: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("erro ao ler métricas do agente: %w", err)
	}

	return out, nil
}
