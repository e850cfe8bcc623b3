package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/parkwise/parking_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashRegisterHandler handles HTTP requests against the drawer register log.
type cashRegisterHandler struct {
	cashRegisterService portssvc.CashRegisterSvcFacade
}

func newCashRegisterHandler(cs portssvc.CashRegisterSvcFacade) *cashRegisterHandler {
	return &cashRegisterHandler{cashRegisterService: cs}
}

// registerCashRegisterRoutes registers routes related to cash registers.
func registerCashRegisterRoutes(rg *gin.RouterGroup, cashRegisterService portssvc.CashRegisterSvcFacade) {
	h := newCashRegisterHandler(cashRegisterService)

	cashRegisters := rg.Group("/cash-registers")
	{
		cashRegisters.POST("", h.createCashRegisters)
		cashRegisters.GET("", h.registerBalance)
		cashRegisters.POST("/change", h.createChange)
	}
}

// createCashRegisters godoc
// @Summary Append cash register movements
// @Description Appends a batch of INFLOW/OUTFLOW movements to the register log atomically
// @Tags cash-registers
// @Accept  json
// @Produce  json
// @Param   registers body []dto.CreateCashRegisterRequest true "Movements to append"
// @Success 201 {object} dto.CreateCashRegisterBatchResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Insufficient quantity available"
// @Failure 404 {object} ErrorResponse "Unknown cash item"
// @Failure 500 {object} ErrorResponse "Failed to create registers"
// @Security BearerAuth
// @Router /cash-registers [post]
func (h *cashRegisterHandler) createCashRegisters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var reqs []dto.CreateCashRegisterRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		logger.Warn("Failed to bind JSON for createCashRegisters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format: " + err.Error()})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "At least one register is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	count, err := h.cashRegisterService.CreateCashRegisters(c.Request.Context(), reqs, userID)
	if err != nil {
		logger.Warn("Failed to create cash registers", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateCashRegisterBatchResponse{Count: count})
}

// registerBalance godoc
// @Summary Drawer balance
// @Description Returns every denomination with its derived stock, ascending by face value
// @Tags cash-registers
// @Produce  json
// @Success 200 {array} dto.RegisterBalanceResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Empty catalog"
// @Failure 500 {object} ErrorResponse "Failed to compute balance"
// @Security BearerAuth
// @Router /cash-registers [get]
func (h *cashRegisterHandler) registerBalance(c *gin.Context) {
	balances, err := h.cashRegisterService.RegisterBalance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListRegisterBalanceResponse(balances))
}

// createChange godoc
// @Summary Compute and register change
// @Description Computes greedy exact change for a payment, persists the change OUTFLOWs with the payment INFLOWs atomically and returns the change breakdown
// @Tags cash-registers
// @Accept  json
// @Produce  json
// @Param   change body dto.CreateChangeRequest true "Payment details"
// @Success 201 {array} dto.ChangeDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Change not representable or underpaid"
// @Failure 404 {object} ErrorResponse "Unknown cash item"
// @Failure 500 {object} ErrorResponse "Failed to create change"
// @Security BearerAuth
// @Router /cash-registers/change [post]
func (h *cashRegisterHandler) createChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createChange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	details, err := h.cashRegisterService.CreateChange(c.Request.Context(), req, userID)
	if err != nil {
		logger.Warn("Failed to create change", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListChangeDetailResponse(details))
}
