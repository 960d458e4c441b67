package handlers

import (
	"net/http"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/adapter/http/mapper"
	"teamboard/internal/core/ports"
	"teamboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var channelSaveMessages = errorMessages{
	invalid:   apierrors.MsgInvalidChannelPayload,
	duplicate: apierrors.MsgDuplicateChannelName,
	failure:   apierrors.MsgFailSaveChannel,
}

type ChannelHandler struct {
	channelService ports.ChannelService
}

func NewChannelHandler(channelService ports.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

func (h *ChannelHandler) ListChannels(c *gin.Context) {
	page, ok := parsePageQuery(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPagination)
		return
	}

	channels, pagination, err := h.channelService.ListChannels(c.Request.Context(), page)
	if err != nil {
		writeServiceError(c, err, errorMessages{invalid: apierrors.MsgInvalidPagination, failure: apierrors.MsgFailListChannels}, "failed to list channels")
		return
	}

	items := mapper.ToChannelItems(channels)
	if pagination == nil {
		c.JSON(http.StatusOK, items)
		return
	}
	c.JSON(http.StatusOK, dto.PageResponse[dto.CatalogItem]{Data: items, Pagination: mapper.ToPaginationItem(*pagination)})
}

func (h *ChannelHandler) GetChannel(c *gin.Context) {
	channelID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidChannelID)
		return
	}

	channel, err := h.channelService.GetChannel(c.Request.Context(), channelID)
	if err != nil {
		writeServiceError(c, err, errorMessages{failure: apierrors.MsgFailListChannels}, "failed to get channel", zap.Uint64("channel_id", channelID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToChannelItem(channel))
}

func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	var req dto.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidChannelPayload)
		return
	}

	channel, err := h.channelService.CreateChannel(c.Request.Context(), toCatalogInput(req))
	if err != nil {
		writeServiceError(c, err, channelSaveMessages, "failed to create channel")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToChannelItem(channel))
}

func (h *ChannelHandler) UpdateChannel(c *gin.Context) {
	channelID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidChannelID)
		return
	}

	var req dto.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidChannelPayload)
		return
	}

	channel, err := h.channelService.UpdateChannel(c.Request.Context(), channelID, toCatalogInput(req))
	if err != nil {
		writeServiceError(c, err, channelSaveMessages, "failed to update channel", zap.Uint64("channel_id", channelID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToChannelItem(channel))
}

func (h *ChannelHandler) DeleteChannel(c *gin.Context) {
	channelID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidChannelID)
		return
	}

	if err := h.channelService.DeleteChannel(c.Request.Context(), channelID); err != nil {
		writeServiceError(c, err, errorMessages{failure: apierrors.MsgFailDeleteChannel}, "failed to delete channel", zap.Uint64("channel_id", channelID))
		return
	}

	c.Status(http.StatusNoContent)
}
