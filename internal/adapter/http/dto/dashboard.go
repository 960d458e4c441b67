package dto

type UserPerformanceItem struct {
	UserID           uint64  `json:"user_id"`
	UserName         string  `json:"user_name"`
	TasksCompleted   int     `json:"tasks_completed"`
	TasksInProgress  int     `json:"tasks_in_progress"`
	TasksPending     int     `json:"tasks_pending"`
	TotalTasks       int     `json:"total_tasks"`
	CompletionRate   int     `json:"completion_rate"`
	QualityScore     float64 `json:"quality_score"`
	QualitySimulated bool    `json:"quality_simulated"`
}

type WorkloadItem struct {
	Completed               int `json:"completed"`
	Pending                 int `json:"pending"`
	InProgress              int `json:"in_progress"`
	Total                   int `json:"total"`
	CompletionRate          int `json:"completion_rate"`
	TodayCompleted          int `json:"today_completed"`
	OverallProgress         int `json:"overall_progress"`
	EstimatedHoursRemaining int `json:"estimated_hours_remaining"`
}

type DashboardSummaryItem struct {
	Users    int          `json:"users"`
	Shops    int          `json:"shops"`
	Channels int          `json:"channels"`
	Tasks    WorkloadItem `json:"tasks"`
}
