package handlers

import (
	"net/http"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/adapter/http/mapper"
	"teamboard/internal/adapter/http/validation"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
	"teamboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userSaveMessages = errorMessages{
	invalid:   apierrors.MsgInvalidUserPayload,
	duplicate: apierrors.MsgDuplicateUserEmail,
	failure:   apierrors.MsgFailSaveUser,
}

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	page, ok := parsePageQuery(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPagination)
		return
	}

	users, pagination, err := h.userService.ListUsers(c.Request.Context(), page)
	if err != nil {
		writeServiceError(c, err, errorMessages{invalid: apierrors.MsgInvalidPagination, failure: apierrors.MsgFailListUsers}, "failed to list users")
		return
	}

	items := mapper.ToUserItems(users)
	if pagination == nil {
		c.JSON(http.StatusOK, items)
		return
	}
	c.JSON(http.StatusOK, dto.PageResponse[dto.UserItem]{Data: items, Pagination: mapper.ToPaginationItem(*pagination)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidUserID)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, errorMessages{failure: apierrors.MsgFailListUsers}, "failed to get user", zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidUserPayload)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), domain.UserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		writeServiceError(c, err, userSaveMessages, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidUserID)
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidUserPayload)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, domain.UserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		writeServiceError(c, err, userSaveMessages, "failed to update user", zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidUserID)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		writeServiceError(c, err, errorMessages{failure: apierrors.MsgFailDeleteUser}, "failed to delete user", zap.Uint64("user_id", userID))
		return
	}

	c.Status(http.StatusNoContent)
}

// parsePageQuery reads the optional page and limit query parameters. A nil
// page with ok=true means the caller asked for the whole list.
func parsePageQuery(c *gin.Context) (*domain.Page, bool) {
	pageValue, hasPage := c.GetQuery("page")
	limitValue, hasLimit := c.GetQuery("limit")

	page, err := validation.ParsePage(pageValue, hasPage, limitValue, hasLimit)
	if err != nil {
		return nil, false
	}
	return page, true
}
