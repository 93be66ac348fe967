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

const opsTasksTable = "ops_tasks"

var opsTaskColumns = []string{
	"id", "brand_id", "title", "description", "status", "category",
	"due_date", "progress", "created_at", "updated_at",
}

type opsTaskRepository struct {
	conn *database.Connection
	now  Clock
}

func NewOpsTaskRepository(conn *database.Connection, now Clock) OpsTaskRepository {
	return &opsTaskRepository{
		conn: conn,
		now:  now,
	}
}

func (r *opsTaskRepository) GetOpsTasks(ctx context.Context, brandID int, status domain.OpsTaskStatus) ([]*domain.OpsTask, error) {
	builder := r.conn.Builder().
		Select(opsTaskColumns...).
		From(opsTasksTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("id")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": string(status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tarefas da marca %d: %w", brandID, err)
	}
	defer rows.Close()

	tasks := []*domain.OpsTask{}
	for rows.Next() {
		task, err := scanOpsTask(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler tarefa: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *opsTaskRepository) GetOpsTask(ctx context.Context, id int) (*domain.OpsTask, error) {
	query, args, err := r.conn.Builder().
		Select(opsTaskColumns...).
		From(opsTasksTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	task, err := scanOpsTask(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar tarefa %d: %w", id, err)
	}

	return task, nil
}

func (r *opsTaskRepository) CreateOpsTask(ctx context.Context, input *domain.InsertOpsTask) (*domain.OpsTask, error) {
	task := input.Normalized()
	now := r.now().UTC()

	query, args, err := r.conn.Builder().
		Insert(opsTasksTable).
		Columns(
			"brand_id", "title", "description", "status", "category",
			"due_date", "progress", "created_at", "updated_at",
		).
		Values(
			task.BrandID,
			task.Title,
			argString(task.Description),
			string(task.Status),
			task.Category,
			argTime(task.DueDate),
			*task.Progress,
			now,
			now,
		).
		Suffix(returning(opsTaskColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanOpsTask(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError("erro ao criar tarefa", err)
	}

	return created, nil
}

func (r *opsTaskRepository) UpdateOpsTaskStatus(ctx context.Context, id int, status domain.OpsTaskStatus) (*domain.OpsTask, error) {
	return r.applyPatch(ctx, id, domain.OpsTaskStatusPatch(status))
}

func (r *opsTaskRepository) UpdateOpsTaskProgress(ctx context.Context, id int, progress int) (*domain.OpsTask, error) {
	return r.applyPatch(ctx, id, domain.OpsTaskProgressPatch(progress))
}

// applyPatch grava status e progresso num único UPDATE, mantendo o acoplamento atômico
func (r *opsTaskRepository) applyPatch(ctx context.Context, id int, patch domain.OpsTaskPatch) (*domain.OpsTask, error) {
	builder := r.conn.Builder().
		Update(opsTasksTable).
		Set("updated_at", r.now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(opsTaskColumns))

	if patch.Status != nil {
		builder = builder.Set("status", string(*patch.Status))
	}
	if patch.Progress != nil {
		builder = builder.Set("progress", *patch.Progress)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	task, err := scanOpsTask(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar tarefa %d: %w", id, err)
	}

	return task, nil
}

func scanOpsTask(row scanner) (*domain.OpsTask, error) {
	var (
		task        domain.OpsTask
		description sql.NullString
		status      string
		dueDate     sql.NullTime
	)

	err := row.Scan(
		&task.ID,
		&task.BrandID,
		&task.Title,
		&description,
		&status,
		&task.Category,
		&dueDate,
		&task.Progress,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Description = nullableString(description)
	task.Status = domain.OpsTaskStatus(status)
	task.DueDate = nullableTime(dueDate)

	return &task, nil
}
