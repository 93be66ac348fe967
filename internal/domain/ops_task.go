package domain

import "time"

type OpsTaskStatus string

const (
	OpsTaskStatusTodo       OpsTaskStatus = "todo"
	OpsTaskStatusInProgress OpsTaskStatus = "in_progress"
	OpsTaskStatusDone       OpsTaskStatus = "done"
)

const (
	MinProgress = 0
	MaxProgress = 100
)

func (s OpsTaskStatus) IsValid() bool {
	switch s {
	case OpsTaskStatusTodo, OpsTaskStatusInProgress, OpsTaskStatusDone:
		return true
	}
	return false
}

type OpsTask struct {
	ID          int           `json:"id" db:"id"`
	BrandID     int           `json:"brandId" db:"brand_id"`
	Title       string        `json:"title" db:"title"`
	Description *string       `json:"description" db:"description"`
	Status      OpsTaskStatus `json:"status" db:"status"`
	Category    string        `json:"category" db:"category"`
	DueDate     *time.Time    `json:"dueDate" db:"due_date"`
	Progress    int           `json:"progress" db:"progress"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

type InsertOpsTask struct {
	BrandID     int           `json:"brandId" db:"brand_id"`
	Title       string        `json:"title" db:"title"`
	Description *string       `json:"description" db:"description"`
	Status      OpsTaskStatus `json:"status" db:"status"`
	Category    string        `json:"category" db:"category"`
	DueDate     *time.Time    `json:"dueDate" db:"due_date"`
	Progress    *int          `json:"progress" db:"progress"`
}

func (t *InsertOpsTask) Validate() error {
	var errs ValidationErrors

	if t.BrandID <= 0 {
		errs.Add("brandId", "deve ser um ID positivo")
	}
	if t.Title == "" {
		errs.Add("title", "obrigatório")
	}
	if !t.Status.IsValid() {
		errs.Add("status", "deve ser todo, in_progress ou done")
	}
	if t.Category == "" {
		errs.Add("category", "obrigatório")
	}
	if t.Progress != nil && !ValidProgress(*t.Progress) {
		errs.Add("progress", "deve estar entre 0 e 100")
	}

	return errs.OrNil()
}

// Normalized devolve uma cópia com as mesmas regras de acoplamento
// status/progresso das atualizações: done implica 100 e 100 implica done.
// Progress da cópia nunca é nil e o insert original fica intacto.
func (t InsertOpsTask) Normalized() InsertOpsTask {
	progress := MinProgress
	if t.Progress != nil {
		progress = *t.Progress
	}

	switch {
	case t.Status == OpsTaskStatusDone:
		progress = MaxProgress
	case progress == MaxProgress:
		t.Status = OpsTaskStatusDone
	}

	t.Progress = &progress
	return t
}

func ValidProgress(progress int) bool {
	return progress >= MinProgress && progress <= MaxProgress
}

// OpsTaskPatch é o conjunto completo de campos que uma atualização de tarefa
// grava. Campos nil ficam inalterados.
type OpsTaskPatch struct {
	Status   *OpsTaskStatus
	Progress *int
}

// OpsTaskStatusPatch: status done força progresso 100.
func OpsTaskStatusPatch(status OpsTaskStatus) OpsTaskPatch {
	patch := OpsTaskPatch{Status: &status}
	if status == OpsTaskStatusDone {
		progress := MaxProgress
		patch.Progress = &progress
	}
	return patch
}

// OpsTaskProgressPatch: 100 força done, qualquer valor acima de zero força
// in_progress e zero mantém o status atual (inclusive done).
func OpsTaskProgressPatch(progress int) OpsTaskPatch {
	patch := OpsTaskPatch{Progress: &progress}

	var status OpsTaskStatus
	switch {
	case progress == MaxProgress:
		status = OpsTaskStatusDone
	case progress > MinProgress:
		status = OpsTaskStatusInProgress
	default:
		return patch
	}

	patch.Status = &status
	return patch
}

// Apply grava o patch na tarefa e carimba updated_at
func (p OpsTaskPatch) Apply(task *OpsTask, now time.Time) {
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Progress != nil {
		task.Progress = *p.Progress
	}
	task.UpdatedAt = now
}
