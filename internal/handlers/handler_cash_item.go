package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/parkwise/parking_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashItemHandler handles HTTP requests related to the denomination catalog.
type cashItemHandler struct {
	cashItemService portssvc.CashItemSvcFacade
}

func newCashItemHandler(cs portssvc.CashItemSvcFacade) *cashItemHandler {
	return &cashItemHandler{cashItemService: cs}
}

// registerCashItemRoutes registers routes related to cash items.
func registerCashItemRoutes(rg *gin.RouterGroup, cashItemService portssvc.CashItemSvcFacade) {
	h := newCashItemHandler(cashItemService)

	cashItems := rg.Group("/cash-items")
	{
		cashItems.POST("", h.createCashItem)
		cashItems.GET("/all", h.listCashItems)
	}
}

// createCashItem godoc
// @Summary Create a new cash item
// @Description Registers a new coin or note denomination
// @Tags cash-items
// @Accept  json
// @Produce  json
// @Param   cashItem body dto.CreateCashItemRequest true "Denomination details"
// @Success 201 {object} dto.CashItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Value already registered"
// @Failure 500 {object} ErrorResponse "Failed to create cash item"
// @Security BearerAuth
// @Router /cash-items [post]
func (h *cashItemHandler) createCashItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCashItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCashItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	item, err := h.cashItemService.CreateCashItem(c.Request.Context(), req, userID)
	if err != nil {
		logger.Warn("Failed to create cash item", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Cash item created", slog.String("cash_item_id", item.CashItemID), slog.Int64("value", item.Value))
	c.JSON(http.StatusCreated, dto.ToCashItemResponse(item))
}

// listCashItems godoc
// @Summary List all cash items
// @Description Retrieves the full denomination catalog ordered by face value
// @Tags cash-items
// @Produce  json
// @Success 200 {array} dto.CashItemResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Empty catalog"
// @Failure 500 {object} ErrorResponse "Failed to list cash items"
// @Security BearerAuth
// @Router /cash-items/all [get]
func (h *cashItemHandler) listCashItems(c *gin.Context) {
	items, err := h.cashItemService.ListCashItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCashItemResponse(items))
}
