package domain_test

import (
	"testing"

	"zenflow/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestParseMentalEffort(t *testing.T) {
	effort, err := domain.ParseMentalEffort(" low ")
	require.NoError(t, err)
	require.Equal(t, domain.MentalEffortLow, effort)

	_, err = domain.ParseMentalEffort("EXTREME")
	require.Error(t, err)
}

func TestUpdateTaskInput_Validate(t *testing.T) {
	blank := "   "
	zero := 0
	bad := domain.MentalEffort("EXTREME")

	require.ErrorIs(t, domain.UpdateTaskInput{}.Validate(), domain.ErrInvalidTaskInput)
	require.ErrorIs(t, domain.UpdateTaskInput{Title: &blank}.Validate(), domain.ErrInvalidTaskInput)
	require.ErrorIs(t, domain.UpdateTaskInput{EstimatedMinutes: &zero}.Validate(), domain.ErrInvalidTaskInput)
	require.ErrorIs(t, domain.UpdateTaskInput{MentalEffort: &bad}.Validate(), domain.ErrInvalidTaskInput)
	require.NoError(t, domain.RescheduleTask(domain.MentalEffortHigh, 90).Validate())
}

func TestUpdateTaskInput_ApplyOnlyTouchesSetFields(t *testing.T) {
	task := domain.Task{
		ID:               "t1",
		Title:            "Write report",
		Description:      "quarterly",
		MentalEffort:     domain.MentalEffortMedium,
		EstimatedMinutes: 45,
	}

	domain.CompleteTask(true).Apply(&task)
	domain.RenameTask("  Send report ").Apply(&task)

	require.True(t, task.Completed)
	require.Equal(t, "Send report", task.Title)
	require.Equal(t, "quarterly", task.Description)
	require.Equal(t, domain.MentalEffortMedium, task.MentalEffort)
	require.Equal(t, 45, task.EstimatedMinutes)
}

func TestGlobalStats_CompletionRate(t *testing.T) {
	require.Equal(t, 0, domain.GlobalStats{}.CompletionRate())
	require.Equal(t, 33, domain.GlobalStats{TotalTasks: 3, CompletedTasks: 1}.CompletionRate())
	require.Equal(t, 67, domain.GlobalStats{TotalTasks: 3, CompletedTasks: 2}.CompletionRate())
}

func TestUser_Public(t *testing.T) {
	user := domain.User{ID: "1", PasswordHash: "hash", Role: domain.RoleAdmin}
	require.Empty(t, user.Public().PasswordHash)
	require.True(t, user.Public().IsAdmin())
	require.Equal(t, "hash", user.PasswordHash)
}
