package domain

import "math"

type GlobalStats struct {
	TotalUsers     int
	TotalTasks     int
	CompletedTasks int
}

// CompletionRate is the rounded percentage of completed tasks, 0 when there are none.
func (s GlobalStats) CompletionRate() int {
	if s.TotalTasks == 0 {
		return 0
	}
	return int(math.Round(float64(s.CompletedTasks) / float64(s.TotalTasks) * 100))
}
