package dashboard

import (
	"context"

	"github.com/AdamaC336/bay2/internal/domain"
)

// GetOpsTasks aceita status vazio como "sem filtro"
func (s *Service) GetOpsTasks(ctx context.Context, brandID int, status domain.OpsTaskStatus) ([]*domain.OpsTask, error) {
	if status != "" && !status.IsValid() {
		return nil, invalid("status", "deve ser todo, in_progress ou done")
	}

	tasks, err := s.store.GetOpsTasks(ctx, brandID, status)
	if err != nil {
		return nil, storageError(err, "listar tarefas")
	}
	return tasks, nil
}

func (s *Service) GetOpsTask(ctx context.Context, brandID, id int) (*domain.OpsTask, error) {
	task, err := s.store.GetOpsTask(ctx, id)
	if err != nil {
		return nil, storageError(err, "buscar tarefa")
	}
	if task == nil || task.BrandID != brandID {
		return nil, notFound("tarefa", id)
	}
	return task, nil
}

func (s *Service) CreateOpsTask(ctx context.Context, task *domain.InsertOpsTask) (*domain.OpsTask, error) {
	if err := fromValidation(task.Validate()); err != nil {
		return nil, err
	}
	if err := s.requireBrand(ctx, task.BrandID); err != nil {
		return nil, err
	}

	created, err := s.store.CreateOpsTask(ctx, task)
	if err != nil {
		return nil, storageError(err, "criar tarefa")
	}
	return created, nil
}

func (s *Service) UpdateOpsTaskStatus(ctx context.Context, id int, status domain.OpsTaskStatus) (*domain.OpsTask, error) {
	if !status.IsValid() {
		return nil, invalid("status", "deve ser todo, in_progress ou done")
	}

	task, err := s.store.UpdateOpsTaskStatus(ctx, id, status)
	if err != nil {
		return nil, storageError(err, "atualizar status da tarefa")
	}
	if task == nil {
		return nil, notFound("tarefa", id)
	}
	return task, nil
}

func (s *Service) UpdateOpsTaskProgress(ctx context.Context, id int, progress int) (*domain.OpsTask, error) {
	if !domain.ValidProgress(progress) {
		return nil, invalid("progress", "deve estar entre 0 e 100")
	}

	task, err := s.store.UpdateOpsTaskProgress(ctx, id, progress)
	if err != nil {
		return nil, storageError(err, "atualizar progresso da tarefa")
	}
	if task == nil {
		return nil, notFound("tarefa", id)
	}
	return task, nil
}
