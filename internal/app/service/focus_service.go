package service

import (
	"context"

	"zenflow/internal/core/domain"
	"zenflow/internal/core/focus"
	"zenflow/internal/core/ports"
)

type FocusService struct {
	taskRepository ports.TaskRepository
}

func NewFocusService(taskRepository ports.TaskRepository) *FocusService {
	return &FocusService{taskRepository: taskRepository}
}

// Suggest checks the user in with an energy level and time budget and
// returns the first incomplete task that fits, or an empty outcome.
func (s *FocusService) Suggest(ctx context.Context, userID string, energy domain.MentalEffort, budget int) (focus.Suggestion, error) {
	tasks, err := s.taskRepository.ListByUser(ctx, userID)
	if err != nil {
		return focus.Suggestion{}, err
	}

	open := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.Completed {
			open = append(open, task)
		}
	}

	return focus.NewFlow().CheckIn(open, energy, budget)
}

// Complete finishes the caller's focused task, persists the completion and
// moves the flow to its break. Completing an already-completed task returns
// focus.ErrInvalidTransition.
func (s *FocusService) Complete(ctx context.Context, userID, taskID string) (focus.Suggestion, error) {
	flow, err := s.resume(ctx, userID, taskID)
	if err != nil {
		return focus.Suggestion{}, err
	}

	if _, err := flow.Complete(); err != nil {
		return focus.Suggestion{}, err
	}

	updated, err := s.taskRepository.Update(ctx, taskID, domain.CompleteTask(true))
	if err != nil {
		return focus.Suggestion{}, err
	}
	return focus.Suggestion{Stage: flow.Stage(), Task: &updated}, nil
}

// TakeBreak leaves the caller's focused task open and moves the flow to its break.
func (s *FocusService) TakeBreak(ctx context.Context, userID, taskID string) (focus.Suggestion, error) {
	flow, err := s.resume(ctx, userID, taskID)
	if err != nil {
		return focus.Suggestion{}, err
	}

	task, _ := flow.Active()
	if err := flow.TakeBreak(); err != nil {
		return focus.Suggestion{}, err
	}
	return focus.Suggestion{Stage: flow.Stage(), Task: &task}, nil
}

func (s *FocusService) resume(ctx context.Context, userID, taskID string) (*focus.Flow, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return focus.Resume(task), nil
}

var _ ports.FocusService = (*FocusService)(nil)
