package service

import (
	"context"
	"errors"

	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
)

// AdminService aggregates platform-wide data for administrators.
type AdminService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
}

func NewAdminService(userRepository ports.UserRepository, taskRepository ports.TaskRepository) *AdminService {
	return &AdminService{userRepository: userRepository, taskRepository: taskRepository}
}

// ListUsers returns every user without secrets. The caller must be an existing ADMIN.
func (s *AdminService) ListUsers(ctx context.Context, callerID string) ([]domain.User, error) {
	caller, err := s.userRepository.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	public := make([]domain.User, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	return public, nil
}

// GlobalStats counts users, tasks and completed tasks. It performs no role check.
func (s *AdminService) GlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return domain.GlobalStats{}, err
	}
	tasks, err := s.taskRepository.List(ctx)
	if err != nil {
		return domain.GlobalStats{}, err
	}

	stats := domain.GlobalStats{TotalUsers: len(users), TotalTasks: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.CompletedTasks++
		}
	}
	return stats, nil
}

var _ ports.AdminService = (*AdminService)(nil)
