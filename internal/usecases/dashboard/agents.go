package dashboard

import (
	"context"

	"github.com/AdamaC336/bay2/internal/domain"
)

func (s *Service) GetAIAgents(ctx context.Context, brandID int) ([]*domain.AIAgent, error) {
	agents, err := s.store.GetAIAgents(ctx, brandID)
	if err != nil {
		return nil, storageError(err, "listar agentes")
	}
	return agents, nil
}

// GetAIAgent responde como inexistente quando o agente pertence a outra marca
func (s *Service) GetAIAgent(ctx context.Context, brandID, id int) (*domain.AIAgent, error) {
	agent, err := s.store.GetAIAgent(ctx, id)
	if err != nil {
		return nil, storageError(err, "buscar agente")
	}
	if agent == nil || agent.BrandID != brandID {
		return nil, notFound("agente", id)
	}
	return agent, nil
}

func (s *Service) CreateAIAgent(ctx context.Context, agent *domain.InsertAIAgent) (*domain.AIAgent, error) {
	if err := fromValidation(agent.Validate()); err != nil {
		return nil, err
	}
	if err := s.requireBrand(ctx, agent.BrandID); err != nil {
		return nil, err
	}

	created, err := s.store.CreateAIAgent(ctx, agent)
	if err != nil {
		return nil, storageError(err, "criar agente")
	}
	return created, nil
}

func (s *Service) UpdateAIAgentStatus(ctx context.Context, id int, status domain.AIAgentStatus) (*domain.AIAgent, error) {
	if !status.IsValid() {
		return nil, invalid("status", "deve ser active ou paused")
	}

	agent, err := s.store.UpdateAIAgentStatus(ctx, id, status)
	if err != nil {
		return nil, storageError(err, "atualizar status do agente")
	}
	if agent == nil {
		return nil, notFound("agente", id)
	}
	return agent, nil
}

func (s *Service) UpdateAIAgentCost(ctx context.Context, id int, cost float64) (*domain.AIAgent, error) {
	if cost < 0 {
		return nil, invalid("cost", "não pode ser negativo")
	}

	agent, err := s.store.UpdateAIAgentCost(ctx, id, cost)
	if err != nil {
		return nil, storageError(err, "atualizar custo do agente")
	}
	if agent == nil {
		return nil, notFound("agente", id)
	}
	return agent, nil
}
