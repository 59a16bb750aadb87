// Package focus picks a single actionable task for a focus session and
// tracks the check-in, focus, break and empty stages around it.
package focus

import "zenflow/internal/core/domain"

// AnyTime is the time budget meaning "no time limit".
const AnyTime = -1

// Select returns the first task, in the given order, that fits both the
// time budget and the stated energy level.
func Select(tasks []domain.Task, energy domain.MentalEffort, budget int) (domain.Task, bool) {
	for _, task := range tasks {
		if fitsTime(task, budget) && fitsEnergy(task, energy) {
			return task, true
		}
	}
	return domain.Task{}, false
}

func fitsTime(task domain.Task, budget int) bool {
	return budget == AnyTime || task.EstimatedMinutes <= budget
}

// High energy takes anything, medium skips high-effort work, low only takes low-effort work.
func fitsEnergy(task domain.Task, energy domain.MentalEffort) bool {
	switch energy {
	case domain.MentalEffortHigh:
		return true
	case domain.MentalEffortMedium:
		return task.MentalEffort != domain.MentalEffortHigh
	case domain.MentalEffortLow:
		return task.MentalEffort == domain.MentalEffortLow
	}
	return false
}

// ValidBudget reports whether budget is AnyTime or a positive number of minutes.
func ValidBudget(budget int) bool {
	return budget == AnyTime || budget > 0
}
