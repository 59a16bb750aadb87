package repository

import (
	"context"
	"time"

	"zenflow/internal/adapter/store"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
)

const tasksCollection = "tasks"

type TaskRepository struct {
	tasks *store.Collection[taskRecord]
}

type taskRecord struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Completed        bool      `json:"completed"`
	MentalEffort     string    `json:"mentalEffort"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
	CreatedAt        time.Time `json:"createdAt"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(s ports.Store) *TaskRepository {
	return &TaskRepository{tasks: store.NewCollection[taskRecord](s, tasksCollection)}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	records, err := r.tasks.Get(ctx)
	if err != nil {
		return nil, err
	}
	return mapTaskRecords(records, func(taskRecord) bool { return true }), nil
}

// ListByUser keeps stored order, newest first.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	records, err := r.tasks.Get(ctx)
	if err != nil {
		return nil, err
	}
	return mapTaskRecords(records, func(record taskRecord) bool { return record.UserID == userID }), nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	records, err := r.tasks.Get(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for _, record := range records {
		if record.ID == id {
			return mapTaskRecordToDomainTask(record), nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

// Create prepends the task so listings come back newest first.
func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	return r.tasks.Update(ctx, func(records []taskRecord) ([]taskRecord, error) {
		return append([]taskRecord{mapDomainTaskToTaskRecord(task)}, records...), nil
	})
}

func (r *TaskRepository) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	var updated domain.Task
	err := r.tasks.Update(ctx, func(records []taskRecord) ([]taskRecord, error) {
		for i, record := range records {
			if record.ID != id {
				continue
			}
			updated = mapTaskRecordToDomainTask(record)
			input.Apply(&updated)
			records[i] = mapDomainTaskToTaskRecord(updated)
			return records, nil
		}
		return nil, domain.ErrTaskNotFound
	})
	if err != nil {
		return domain.Task{}, err
	}
	return updated, nil
}

// Delete is a no-op when the task does not exist.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.tasks.Update(ctx, func(records []taskRecord) ([]taskRecord, error) {
		kept := make([]taskRecord, 0, len(records))
		for _, record := range records {
			if record.ID != id {
				kept = append(kept, record)
			}
		}
		return kept, nil
	})
}

func mapTaskRecords(records []taskRecord, keep func(taskRecord) bool) []domain.Task {
	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		if keep(record) {
			tasks = append(tasks, mapTaskRecordToDomainTask(record))
		}
	}
	return tasks
}

func mapTaskRecordToDomainTask(record taskRecord) domain.Task {
	return domain.Task{
		ID:               record.ID,
		UserID:           record.UserID,
		Title:            record.Title,
		Description:      record.Description,
		Completed:        record.Completed,
		MentalEffort:     domain.MentalEffort(record.MentalEffort),
		EstimatedMinutes: record.EstimatedMinutes,
		CreatedAt:        record.CreatedAt,
	}
}

func mapDomainTaskToTaskRecord(task domain.Task) taskRecord {
	return taskRecord{
		ID:               task.ID,
		UserID:           task.UserID,
		Title:            task.Title,
		Description:      task.Description,
		Completed:        task.Completed,
		MentalEffort:     string(task.MentalEffort),
		EstimatedMinutes: task.EstimatedMinutes,
		CreatedAt:        task.CreatedAt.UTC(),
	}
}
