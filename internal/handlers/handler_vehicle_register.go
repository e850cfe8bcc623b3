package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/parkwise/parking_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vehicleRegisterHandler handles HTTP requests related to parking stays.
type vehicleRegisterHandler struct {
	vehicleRegisterService portssvc.VehicleRegisterSvcFacade
}

func newVehicleRegisterHandler(vs portssvc.VehicleRegisterSvcFacade) *vehicleRegisterHandler {
	return &vehicleRegisterHandler{vehicleRegisterService: vs}
}

// registerVehicleRegisterRoutes registers routes related to vehicle registers.
func registerVehicleRegisterRoutes(rg *gin.RouterGroup, vehicleRegisterService portssvc.VehicleRegisterSvcFacade) {
	h := newVehicleRegisterHandler(vehicleRegisterService)

	vehicleRegisters := rg.Group("/vehicle-registers")
	{
		vehicleRegisters.POST("", h.checkIn)
		vehicleRegisters.GET("/all", h.listVehicleRegisters)
		vehicleRegisters.GET("/active", h.listActiveVehicleRegisters)
		vehicleRegisters.GET("/plate/:plate_number", h.findByPlateNumber)
		vehicleRegisters.GET("/date/:date", h.findByDate)
		vehicleRegisters.PATCH("/:id", h.checkOut)
	}
}

// checkIn godoc
// @Summary Check a vehicle in
// @Description Opens a parking stay for a plate; at most one active stay per plate
// @Tags vehicle-registers
// @Accept  json
// @Produce  json
// @Param   register body dto.CreateVehicleRegisterRequest true "Check-in details"
// @Success 201 {object} dto.VehicleRegisterResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown vehicle type"
// @Failure 409 {object} ErrorResponse "Plate already has an active register"
// @Failure 500 {object} ErrorResponse "Failed to check in"
// @Security BearerAuth
// @Router /vehicle-registers [post]
func (h *vehicleRegisterHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVehicleRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for checkIn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format: " + err.Error()})
		return
	}
	req.PlateNumber = strings.ToUpper(req.PlateNumber)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	vr, err := h.vehicleRegisterService.CheckIn(c.Request.Context(), userID, req)
	if err != nil {
		logger.Warn("Failed to check vehicle in", slog.String("error", err.Error()), slog.String("plate_number", req.PlateNumber))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleRegisterResponse(vr))
}

// listVehicleRegisters godoc
// @Summary List all vehicle registers
// @Description Retrieves every parking stay, ordered by exit time then entry time
// @Tags vehicle-registers
// @Produce  json
// @Success 200 {array} dto.VehicleRegisterResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No registers"
// @Failure 500 {object} ErrorResponse "Failed to list registers"
// @Security BearerAuth
// @Router /vehicle-registers/all [get]
func (h *vehicleRegisterHandler) listVehicleRegisters(c *gin.Context) {
	registers, err := h.vehicleRegisterService.ListVehicleRegisters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListVehicleRegisterResponse(registers))
}

// listActiveVehicleRegisters godoc
// @Summary List active vehicle registers
// @Description Retrieves parking stays without a recorded check-out
// @Tags vehicle-registers
// @Produce  json
// @Success 200 {array} dto.VehicleRegisterResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No active registers"
// @Failure 500 {object} ErrorResponse "Failed to list registers"
// @Security BearerAuth
// @Router /vehicle-registers/active [get]
func (h *vehicleRegisterHandler) listActiveVehicleRegisters(c *gin.Context) {
	registers, err := h.vehicleRegisterService.ListActiveVehicleRegisters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListVehicleRegisterResponse(registers))
}

// findByPlateNumber godoc
// @Summary Find the active register for a plate
// @Description Retrieves the currently open parking stay for the given plate number
// @Tags vehicle-registers
// @Produce  json
// @Param   plate_number path string true "Plate number (7 alphanumeric characters)"
// @Success 200 {object} dto.VehicleRegisterResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No active register for plate"
// @Failure 500 {object} ErrorResponse "Failed to find register"
// @Security BearerAuth
// @Router /vehicle-registers/plate/{plate_number} [get]
func (h *vehicleRegisterHandler) findByPlateNumber(c *gin.Context) {
	plateNumber := strings.ToUpper(c.Param("plate_number"))

	register, err := h.vehicleRegisterService.FindByPlateNumber(c.Request.Context(), plateNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleRegisterResponse(register))
}

// findByDate godoc
// @Summary Find registers by entry date
// @Description Retrieves parking stays whose entry time falls on the given day (UTC)
// @Tags vehicle-registers
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.VehicleRegisterResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No registers for date"
// @Failure 500 {object} ErrorResponse "Failed to find registers"
// @Security BearerAuth
// @Router /vehicle-registers/date/{date} [get]
func (h *vehicleRegisterHandler) findByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	registers, err := h.vehicleRegisterService.FindByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListVehicleRegisterResponse(registers))
}

// checkOut godoc
// @Summary Check a vehicle out
// @Description Closes an open parking stay, computing the amount due from the elapsed time
// @Tags vehicle-registers
// @Produce  json
// @Param   id path string true "Vehicle register ID"
// @Success 200 {object} dto.VehicleRegisterResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Register already closed"
// @Failure 404 {object} ErrorResponse "Unknown register"
// @Failure 500 {object} ErrorResponse "Failed to check out"
// @Security BearerAuth
// @Router /vehicle-registers/{id} [patch]
func (h *vehicleRegisterHandler) checkOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	registerID := c.Param("id")

	register, err := h.vehicleRegisterService.CheckOut(c.Request.Context(), userID, registerID)
	if err != nil {
		logger.Warn("Failed to check vehicle out", slog.String("error", err.Error()), slog.String("vehicle_register_id", registerID))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleRegisterResponse(register))
}
