package mapper

import (
	"time"

	"zenflow/internal/adapter/http/dto"
	"zenflow/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToSessionResponse(session domain.Session) dto.SessionResponse {
	return dto.SessionResponse{Token: session.Token, User: ToUserItem(session.User)}
}

func ToStatsResponse(stats domain.GlobalStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalUsers:     stats.TotalUsers,
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		CompletionRate: stats.CompletionRate(),
	}
}
