package ports

import (
	"context"

	"zenflow/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}
