package domain

import (
	"fmt"
	"strings"
	"time"
)

// MentalEffort tags both the energy a user reports and the exertion a task needs.
type MentalEffort string

const (
	MentalEffortLow    MentalEffort = "LOW"
	MentalEffortMedium MentalEffort = "MEDIUM"
	MentalEffortHigh   MentalEffort = "HIGH"
)

const (
	DefaultMentalEffort     = MentalEffortMedium
	DefaultEstimatedMinutes = 30
)

func (e MentalEffort) Valid() bool {
	switch e {
	case MentalEffortLow, MentalEffortMedium, MentalEffortHigh:
		return true
	}
	return false
}

func ParseMentalEffort(value string) (MentalEffort, error) {
	effort := MentalEffort(strings.ToUpper(strings.TrimSpace(value)))
	if !effort.Valid() {
		return "", fmt.Errorf("unknown mental effort %q", value)
	}
	return effort, nil
}

type Task struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	Completed        bool
	MentalEffort     MentalEffort
	EstimatedMinutes int
	CreatedAt        time.Time
}

type CreateTaskInput struct {
	UserID           string
	Title            string
	Description      string
	MentalEffort     *MentalEffort
	EstimatedMinutes *int
}

// UpdateTaskInput carries the fields to change on a task; nil fields are left untouched.
type UpdateTaskInput struct {
	Title            *string
	Description      *string
	Completed        *bool
	MentalEffort     *MentalEffort
	EstimatedMinutes *int
}

func RenameTask(title string) UpdateTaskInput {
	return UpdateTaskInput{Title: &title}
}

func DescribeTask(description string) UpdateTaskInput {
	return UpdateTaskInput{Description: &description}
}

func CompleteTask(completed bool) UpdateTaskInput {
	return UpdateTaskInput{Completed: &completed}
}

func RescheduleTask(effort MentalEffort, minutes int) UpdateTaskInput {
	return UpdateTaskInput{MentalEffort: &effort, EstimatedMinutes: &minutes}
}

func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil &&
		in.Description == nil &&
		in.Completed == nil &&
		in.MentalEffort == nil &&
		in.EstimatedMinutes == nil
}

func (in UpdateTaskInput) Validate() error {
	if in.IsEmpty() {
		return ErrInvalidTaskInput
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return ErrInvalidTaskInput
	}
	if in.MentalEffort != nil && !in.MentalEffort.Valid() {
		return ErrInvalidTaskInput
	}
	if in.EstimatedMinutes != nil && *in.EstimatedMinutes <= 0 {
		return ErrInvalidTaskInput
	}
	return nil
}

// Apply merges the set fields into task.
func (in UpdateTaskInput) Apply(task *Task) {
	if in.Title != nil {
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	if in.MentalEffort != nil {
		task.MentalEffort = *in.MentalEffort
	}
	if in.EstimatedMinutes != nil {
		task.EstimatedMinutes = *in.EstimatedMinutes
	}
}
