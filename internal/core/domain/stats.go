package domain

type UserPerformance struct {
	UserID          uint64
	UserName        string
	TasksCompleted  int
	TasksInProgress int
	TasksPending    int
	TotalTasks      int
	CompletionRate  int
	QualityScore    float64
	// QualitySimulated is true while QualityScore comes from a placeholder
	// generator rather than real review data.
	QualitySimulated bool
}

type WorkloadSummary struct {
	Completed               int
	Pending                 int
	InProgress              int
	Total                   int
	CompletionRate          int
	TodayCompleted          int
	OverallProgress         int
	EstimatedHoursRemaining int
}

type DashboardSummary struct {
	Users    int
	Shops    int
	Channels int
	Tasks    WorkloadSummary
}
