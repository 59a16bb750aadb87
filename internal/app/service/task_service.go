package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
}

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, userRepository: userRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.taskRepository.ListByUser(ctx, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}

	effort := domain.DefaultMentalEffort
	if input.MentalEffort != nil {
		if !input.MentalEffort.Valid() {
			return domain.Task{}, domain.ErrInvalidTaskInput
		}
		effort = *input.MentalEffort
	}

	minutes := domain.DefaultEstimatedMinutes
	if input.EstimatedMinutes != nil {
		if *input.EstimatedMinutes <= 0 {
			return domain.Task{}, domain.ErrInvalidTaskInput
		}
		minutes = *input.EstimatedMinutes
	}

	if _, err := s.userRepository.GetByID(ctx, input.UserID); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:               uuid.NewString(),
		UserID:           input.UserID,
		Title:            title,
		Description:      input.Description,
		MentalEffort:     effort,
		EstimatedMinutes: minutes,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// UpdateTask applies input to a task owned by userID. Tasks owned by someone
// else are reported as not found.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.UserID != userID {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return s.taskRepository.Update(ctx, taskID, input)
}

func (s *TaskService) RenameTask(ctx context.Context, userID, taskID, title string) (domain.Task, error) {
	return s.UpdateTask(ctx, userID, taskID, domain.RenameTask(title))
}

func (s *TaskService) SetTaskDescription(ctx context.Context, userID, taskID, description string) (domain.Task, error) {
	return s.UpdateTask(ctx, userID, taskID, domain.DescribeTask(description))
}

func (s *TaskService) SetTaskCompleted(ctx context.Context, userID, taskID string, completed bool) (domain.Task, error) {
	return s.UpdateTask(ctx, userID, taskID, domain.CompleteTask(completed))
}

func (s *TaskService) RescheduleTask(ctx context.Context, userID, taskID string, effort domain.MentalEffort, minutes int) (domain.Task, error) {
	return s.UpdateTask(ctx, userID, taskID, domain.RescheduleTask(effort, minutes))
}

// DeleteTask succeeds whether or not the task exists; tasks owned by someone else are left alone.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil
		}
		return err
	}
	if task.UserID != userID {
		return nil
	}
	return s.taskRepository.Delete(ctx, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
