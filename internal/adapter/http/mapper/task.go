package mapper

import (
	"time"

	"zenflow/internal/adapter/http/dto"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/focus"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:               task.ID,
		UserID:           task.UserID,
		Title:            task.Title,
		Description:      task.Description,
		Completed:        task.Completed,
		MentalEffort:     string(task.MentalEffort),
		EstimatedMinutes: task.EstimatedMinutes,
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
	}
}

func ToFocusResponse(suggestion focus.Suggestion) dto.FocusResponse {
	resp := dto.FocusResponse{Stage: string(suggestion.Stage)}
	if suggestion.Task != nil {
		item := ToTaskItem(*suggestion.Task)
		resp.Task = &item
	}
	return resp
}
