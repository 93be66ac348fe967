package memory

import (
	"context"

	"github.com/AdamaC336/bay2/internal/domain"
)

func (s *Store) GetOpsTasks(_ context.Context, brandID int, status domain.OpsTaskStatus) ([]*domain.OpsTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := collect(s.opsTasks, func(t *domain.OpsTask) bool {
		return t.BrandID == brandID && (status == "" || t.Status == status)
	})
	for i, task := range tasks {
		tasks[i] = cloneTask(task)
	}
	return tasks, nil
}

func (s *Store) GetOpsTask(_ context.Context, id int) (*domain.OpsTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneTask(s.opsTasks[id]), nil
}

func (s *Store) CreateOpsTask(_ context.Context, input *domain.InsertOpsTask) (*domain.OpsTask, error) {
	insert := input.Normalized()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.lastIDs.opsTask++
	task := &domain.OpsTask{
		ID:          s.lastIDs.opsTask,
		BrandID:     insert.BrandID,
		Title:       insert.Title,
		Description: copyOf(insert.Description),
		Status:      insert.Status,
		Category:    insert.Category,
		DueDate:     copyOf(insert.DueDate),
		Progress:    *insert.Progress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.opsTasks[task.ID] = task

	return cloneTask(task), nil
}

func (s *Store) UpdateOpsTaskStatus(_ context.Context, id int, status domain.OpsTaskStatus) (*domain.OpsTask, error) {
	return s.patchTask(id, domain.OpsTaskStatusPatch(status))
}

func (s *Store) UpdateOpsTaskProgress(_ context.Context, id int, progress int) (*domain.OpsTask, error) {
	return s.patchTask(id, domain.OpsTaskProgressPatch(progress))
}

func (s *Store) patchTask(id int, patch domain.OpsTaskPatch) (*domain.OpsTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.opsTasks[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(task, s.now())

	return cloneTask(task), nil
}

func cloneTask(task *domain.OpsTask) *domain.OpsTask {
	c := copyOf(task)
	if c != nil {
		c.Description = copyOf(task.Description)
		c.DueDate = copyOf(task.DueDate)
	}
	return c
}
