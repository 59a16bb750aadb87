package dto

type TaskItem struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Completed        bool   `json:"completed"`
	MentalEffort     string `json:"mentalEffort"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	CreatedAt        string `json:"createdAt"`
}

type CreateTaskRequest struct {
	Title            string  `json:"title" binding:"required,max=255"`
	Description      string  `json:"description" binding:"max=65535"`
	MentalEffort     *string `json:"mentalEffort" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	EstimatedMinutes *int    `json:"estimatedMinutes" binding:"omitempty,gte=1,lte=1440"`
}

type UpdateTaskRequest struct {
	Title            *string `json:"title" binding:"omitempty,max=255"`
	Description      *string `json:"description" binding:"omitempty,max=65535"`
	Completed        *bool   `json:"completed"`
	MentalEffort     *string `json:"mentalEffort" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	EstimatedMinutes *int    `json:"estimatedMinutes" binding:"omitempty,gte=1,lte=1440"`
}
