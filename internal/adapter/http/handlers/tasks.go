package handlers

import (
	"context"
	"net/http"
	"time"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/adapter/http/mapper"
	"teamboard/internal/adapter/http/validation"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
	"teamboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	taskCreateMessages = errorMessages{invalid: apierrors.MsgInvalidTaskPayload, failure: apierrors.MsgFailCreateTask}
	taskUpdateMessages = errorMessages{invalid: apierrors.MsgInvalidTaskPayload, failure: apierrors.MsgFailUpdateTask}
)

type TaskHandler struct {
	taskService ports.TaskService
	now         func() time.Time
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService, now: time.Now}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, err := validation.ParseOptionalID(c.Query("user_id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskQuery)
		return
	}
	todayOnly, err := validation.ParseOptionalBool(c.Query("today"))
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskQuery)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), domain.TaskQuery{
		View:      c.Query("view"),
		UserID:    userID,
		Type:      domain.TaskType(c.Query("type")),
		TodayOnly: todayOnly,
	})
	if err != nil {
		writeServiceError(c, err, errorMessages{
			invalid: apierrors.MsgInvalidTaskQuery,
			failure: apierrors.MsgFailListTask,
		}, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.now()))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		writeServiceError(c, err, errorMessages{failure: apierrors.MsgFailListTask}, "failed to get task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	draft, err := validation.BuildTaskDraft(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), draft)
	if err != nil {
		writeServiceError(c, err, taskCreateMessages, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) CreateSupportTask(c *gin.Context) {
	var req dto.CreateSupportTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildSupportTaskInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateSupportTask(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err, taskCreateMessages, "failed to create support task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) CreateMediaTask(c *gin.Context) {
	var req dto.CreateMediaTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildMediaTaskInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateMediaTask(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err, taskCreateMessages, "failed to create media task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	patch, err := validation.BuildTaskPatch(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, patch)
	if err != nil {
		writeServiceError(c, err, taskUpdateMessages, "failed to update task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		writeServiceError(c, err, errorMessages{failure: apierrors.MsgFailDeleteTask}, "failed to delete task", zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) StartTask(c *gin.Context) {
	h.transition(c, h.taskService.StartTask, "failed to start task")
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	h.transition(c, h.taskService.CompleteTask, "failed to complete task")
}

func (h *TaskHandler) SetProgress(c *gin.Context) {
	taskID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.SetProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.SetProgress(c.Request.Context(), taskID, *req.Progress)
	if err != nil {
		writeServiceError(c, err, taskUpdateMessages, "failed to set task progress", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) transition(c *gin.Context, apply func(context.Context, uint64) (domain.Task, error), logMsg string) {
	taskID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := apply(c.Request.Context(), taskID)
	if err != nil {
		writeServiceError(c, err, taskUpdateMessages, logMsg, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}
