package handlers

import (
	"net/http"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/adapter/http/mapper"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
	"teamboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var shopSaveMessages = errorMessages{
	invalid:   apierrors.MsgInvalidShopPayload,
	duplicate: apierrors.MsgDuplicateShopName,
	failure:   apierrors.MsgFailSaveShop,
}

type ShopHandler struct {
	shopService ports.ShopService
}

func NewShopHandler(shopService ports.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

func (h *ShopHandler) ListShops(c *gin.Context) {
	page, ok := parsePageQuery(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPagination)
		return
	}

	shops, pagination, err := h.shopService.ListShops(c.Request.Context(), page)
	if err != nil {
		writeServiceError(c, err, errorMessages{invalid: apierrors.MsgInvalidPagination, failure: apierrors.MsgFailListShops}, "failed to list shops")
		return
	}

	items := mapper.ToShopItems(shops)
	if pagination == nil {
		c.JSON(http.StatusOK, items)
		return
	}
	c.JSON(http.StatusOK, dto.PageResponse[dto.CatalogItem]{Data: items, Pagination: mapper.ToPaginationItem(*pagination)})
}

func (h *ShopHandler) GetShop(c *gin.Context) {
	shopID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidShopID)
		return
	}

	shop, err := h.shopService.GetShop(c.Request.Context(), shopID)
	if err != nil {
		writeServiceError(c, err, errorMessages{failure: apierrors.MsgFailListShops}, "failed to get shop", zap.Uint64("shop_id", shopID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToShopItem(shop))
}

func (h *ShopHandler) CreateShop(c *gin.Context) {
	var req dto.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidShopPayload)
		return
	}

	shop, err := h.shopService.CreateShop(c.Request.Context(), toCatalogInput(req))
	if err != nil {
		writeServiceError(c, err, shopSaveMessages, "failed to create shop")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToShopItem(shop))
}

func (h *ShopHandler) UpdateShop(c *gin.Context) {
	shopID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidShopID)
		return
	}

	var req dto.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidShopPayload)
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), shopID, toCatalogInput(req))
	if err != nil {
		writeServiceError(c, err, shopSaveMessages, "failed to update shop", zap.Uint64("shop_id", shopID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToShopItem(shop))
}

func (h *ShopHandler) DeleteShop(c *gin.Context) {
	shopID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidShopID)
		return
	}

	if err := h.shopService.DeleteShop(c.Request.Context(), shopID); err != nil {
		writeServiceError(c, err, errorMessages{failure: apierrors.MsgFailDeleteShop}, "failed to delete shop", zap.Uint64("shop_id", shopID))
		return
	}

	c.Status(http.StatusNoContent)
}

func toCatalogInput(req dto.CatalogRequest) domain.CatalogInput {
	return domain.CatalogInput{Name: req.Name, Description: req.Description}
}
