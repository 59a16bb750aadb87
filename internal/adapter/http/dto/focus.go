package dto

// FocusRequest is a check-in. A missing minutes value means "any time".
type FocusRequest struct {
	Energy  string `json:"energy" binding:"required,oneof=LOW MEDIUM HIGH"`
	Minutes *int   `json:"minutes" binding:"omitempty,gte=1"`
}

type FocusResponse struct {
	Stage string    `json:"stage"`
	Task  *TaskItem `json:"task,omitempty"`
}

type StatsResponse struct {
	TotalUsers     int `json:"totalUsers"`
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	CompletionRate int `json:"completionRate"`
}
