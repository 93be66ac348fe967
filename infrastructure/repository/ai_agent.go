package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AdamaC336/bay2/infrastructure/database"
	"github.com/AdamaC336/bay2/internal/domain"
)

const aiAgentsTable = "ai_agents"

var aiAgentColumns = []string{"id", "brand_id", "name", "type", "status", "cost", "metrics", "created_at", "updated_at"}

type aiAgentRepository struct {
	conn *database.Connection
	now  Clock
}

func NewAIAgentRepository(conn *database.Connection, now Clock) AIAgentRepository {
	return &aiAgentRepository{
		conn: conn,
		now:  now,
	}
}

func (r *aiAgentRepository) GetAIAgents(ctx context.Context, brandID int) ([]*domain.AIAgent, error) {
	query, args, err := r.conn.Builder().
		Select(aiAgentColumns...).
		From(aiAgentsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agentes da marca %d: %w", brandID, err)
	}
	defer rows.Close()

	agents := []*domain.AIAgent{}
	for rows.Next() {
		agent, err := scanAIAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler agente: %w", err)
		}
		agents = append(agents, agent)
	}

	return agents, rows.Err()
}

func (r *aiAgentRepository) GetAIAgent(ctx context.Context, id int) (*domain.AIAgent, error) {
	query, args, err := r.conn.Builder().
		Select(aiAgentColumns...).
		From(aiAgentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	agent, err := scanAIAgent(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar agente %d: %w", id, err)
	}

	return agent, nil
}

func (r *aiAgentRepository) CreateAIAgent(ctx context.Context, agent *domain.InsertAIAgent) (*domain.AIAgent, error) {
	metrics, err := encodeMetrics(agent.Metrics)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC()

	query, args, err := r.conn.Builder().
		Insert(aiAgentsTable).
		Columns("brand_id", "name", "type", "status", "cost", "metrics", "created_at", "updated_at").
		Values(agent.BrandID, agent.Name, agent.Type, string(agent.Status), 0.0, metrics, now, now).
		Suffix(returning(aiAgentColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanAIAgent(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError("erro ao criar agente", err)
	}

	return created, nil
}

func (r *aiAgentRepository) UpdateAIAgentStatus(ctx context.Context, id int, status domain.AIAgentStatus) (*domain.AIAgent, error) {
	return r.update(ctx, id, "status", string(status))
}

func (r *aiAgentRepository) UpdateAIAgentCost(ctx context.Context, id int, cost float64) (*domain.AIAgent, error) {
	return r.update(ctx, id, "cost", cost)
}

func (r *aiAgentRepository) update(ctx context.Context, id int, column string, value any) (*domain.AIAgent, error) {
	query, args, err := r.conn.Builder().
		Update(aiAgentsTable).
		Set(column, value).
		Set("updated_at", r.now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(aiAgentColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	agent, err := scanAIAgent(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar %s do agente %d: %w", column, id, err)
	}

	return agent, nil
}

func scanAIAgent(row scanner) (*domain.AIAgent, error) {
	var (
		agent   domain.AIAgent
		status  string
		metrics []byte
	)

	err := row.Scan(
		&agent.ID,
		&agent.BrandID,
		&agent.Name,
		&agent.Type,
		&status,
		&agent.Cost,
		&metrics,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	agent.Status = domain.AIAgentStatus(status)
	agent.Metrics, err = decodeMetrics(metrics)
	if err != nil {
		return nil, err
	}

	return &agent, nil
}

func encodeMetrics(metrics domain.AgentMetrics) (string, error) {
	if metrics == nil {
		return "{}", nil
	}

	b, err := json.Marshal(metrics)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar métricas do agente: %w", err)
	}

	return string(b), nil
}

func decodeMetrics(raw []byte) (domain.AgentMetrics, error) {
	metrics := domain.AgentMetrics{}
	if len(raw) == 0 {
		return metrics, nil
	}

	if err := json.Unmarshal(raw, &metrics); err != nil {
		return nil, fmt.Errorf("erro ao ler métricas do agente: %w", err)
	}

	return metrics, nil
}
