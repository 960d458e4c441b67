package handlers

import (
	"net/http"

	"teamboard/internal/adapter/http/mapper"
	"teamboard/internal/adapter/http/validation"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
	"teamboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

var dashboardMessages = errorMessages{
	invalid: apierrors.MsgInvalidDashboardQuery,
	failure: apierrors.MsgFailLoadDashboard,
}

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Performance(c *gin.Context) {
	records, err := h.dashboardService.Performance(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, dashboardMessages, "failed to compute performance")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserPerformanceItems(records))
}

func (h *DashboardHandler) Workload(c *gin.Context) {
	userID, err := validation.ParseOptionalID(c.Query("user_id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidDashboardQuery)
		return
	}

	summary, err := h.dashboardService.Workload(c.Request.Context(), userID, domain.TaskType(c.Query("type")))
	if err != nil {
		writeServiceError(c, err, dashboardMessages, "failed to compute workload")
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkloadItem(summary))
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, dashboardMessages, "failed to compute dashboard summary")
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardSummaryItem(summary))
}
