package mapper

import (
	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/core/domain"
)

func ToUserPerformanceItems(records []domain.UserPerformance) []dto.UserPerformanceItem {
	items := make([]dto.UserPerformanceItem, 0, len(records))
	for _, record := range records {
		items = append(items, dto.UserPerformanceItem{
			UserID:           record.UserID,
			UserName:         record.UserName,
			TasksCompleted:   record.TasksCompleted,
			TasksInProgress:  record.TasksInProgress,
			TasksPending:     record.TasksPending,
			TotalTasks:       record.TotalTasks,
			CompletionRate:   record.CompletionRate,
			QualityScore:     record.QualityScore,
			QualitySimulated: record.QualitySimulated,
		})
	}
	return items
}

func ToWorkloadItem(summary domain.WorkloadSummary) dto.WorkloadItem {
	return dto.WorkloadItem{
		Completed:               summary.Completed,
		Pending:                 summary.Pending,
		InProgress:              summary.InProgress,
		Total:                   summary.Total,
		CompletionRate:          summary.CompletionRate,
		TodayCompleted:          summary.TodayCompleted,
		OverallProgress:         summary.OverallProgress,
		EstimatedHoursRemaining: summary.EstimatedHoursRemaining,
	}
}

func ToDashboardSummaryItem(summary domain.DashboardSummary) dto.DashboardSummaryItem {
	return dto.DashboardSummaryItem{
		Users:    summary.Users,
		Shops:    summary.Shops,
		Channels: summary.Channels,
		Tasks:    ToWorkloadItem(summary.Tasks),
	}
}
