package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"zenflow/internal/adapter/http/dto"
	"zenflow/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

var taskUpdateFields = []string{"title", "description", "completed", "mentalEffort", "estimatedMinutes"}

// BuildCreateTaskInput converts a bound create request; raw is the decoded body and is used
// to reject explicit nulls the binder cannot distinguish from absent fields.
func BuildCreateTaskInput(userID string, req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "mentalEffort") && req.MentalEffort == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "estimatedMinutes") && req.EstimatedMinutes == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	var effort *domain.MentalEffort
	if req.MentalEffort != nil {
		value, err := domain.ParseMentalEffort(*req.MentalEffort)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		effort = &value
	}

	return domain.CreateTaskInput{
		UserID:           userID,
		Title:            title,
		Description:      req.Description,
		MentalEffort:     effort,
		EstimatedMinutes: req.EstimatedMinutes,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	// Every field is non-nullable, so a key present with a nil value was an explicit null.
	if hasJSONField(raw, "title") && req.Title == nil ||
		hasJSONField(raw, "description") && req.Description == nil ||
		hasJSONField(raw, "completed") && req.Completed == nil ||
		hasJSONField(raw, "mentalEffort") && req.MentalEffort == nil ||
		hasJSONField(raw, "estimatedMinutes") && req.EstimatedMinutes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var effort *domain.MentalEffort
	if req.MentalEffort != nil {
		value, err := domain.ParseMentalEffort(*req.MentalEffort)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		effort = &value
	}

	return domain.UpdateTaskInput{
		Title:            title,
		Description:      req.Description,
		Completed:        req.Completed,
		MentalEffort:     effort,
		EstimatedMinutes: req.EstimatedMinutes,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range taskUpdateFields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
