package remote

import (
	"context"

	"github.com/AdamaC336/bay2/infrastructure/integrator/supabase/supabaseclient"
	"github.com/AdamaC336/bay2/internal/domain"
)

func (s *Store) GetOpsTasks(ctx context.Context, brandID int, status domain.OpsTaskStatus) ([]*domain.OpsTask, error) {
	filters := []supabaseclient.Filter{supabaseclient.Eq("brand_id", brandID)}
	if status != "" {
		filters = append(filters, supabaseclient.Eq("status", string(status)))
	}

	query := supabaseclient.Query{Filters: filters, Order: orderByID}
	return list[domain.OpsTask](ctx, s, opsTasksTable, query, "listar tarefas")
}

func (s *Store) GetOpsTask(ctx context.Context, id int) (*domain.OpsTask, error) {
	return getOne[domain.OpsTask](ctx, s, opsTasksTable, byID(id), "buscar tarefa")
}

func (s *Store) CreateOpsTask(ctx context.Context, input *domain.InsertOpsTask) (*domain.OpsTask, error) {
	task := input.Normalized()
	now := supabaseclient.FormatTime(s.now())

	row := encode(&task)
	row["created_at"] = now
	row["updated_at"] = now

	return create[domain.OpsTask](ctx, s, opsTasksTable, row, "criar tarefa")
}

func (s *Store) UpdateOpsTaskStatus(ctx context.Context, id int, status domain.OpsTaskStatus) (*domain.OpsTask, error) {
	return s.patchTask(ctx, id, domain.OpsTaskStatusPatch(status))
}

func (s *Store) UpdateOpsTaskProgress(ctx context.Context, id int, progress int) (*domain.OpsTask, error) {
	return s.patchTask(ctx, id, domain.OpsTaskProgressPatch(progress))
}

// patchTask envia status e progresso no mesmo PATCH
func (s *Store) patchTask(ctx context.Context, id int, patch domain.OpsTaskPatch) (*domain.OpsTask, error) {
	values := supabaseclient.Row{"updated_at": supabaseclient.FormatTime(s.now())}
	if patch.Status != nil {
		values["status"] = string(*patch.Status)
	}
	if patch.Progress != nil {
		values["progress"] = *patch.Progress
	}

	return update[domain.OpsTask](ctx, s, opsTasksTable, id, values, "atualizar tarefa")
}
