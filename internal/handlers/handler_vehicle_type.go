package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/parkwise/parking_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vehicleTypeHandler handles HTTP requests related to vehicle types.
type vehicleTypeHandler struct {
	vehicleTypeService portssvc.VehicleTypeSvcFacade
}

func newVehicleTypeHandler(vs portssvc.VehicleTypeSvcFacade) *vehicleTypeHandler {
	return &vehicleTypeHandler{vehicleTypeService: vs}
}

// registerVehicleTypeRoutes registers routes related to vehicle types.
func registerVehicleTypeRoutes(rg *gin.RouterGroup, vehicleTypeService portssvc.VehicleTypeSvcFacade) {
	h := newVehicleTypeHandler(vehicleTypeService)

	vehicleTypes := rg.Group("/vehicle-types")
	{
		vehicleTypes.POST("", h.createVehicleType)
		vehicleTypes.GET("/all", h.listVehicleTypes)
	}
}

// createVehicleType godoc
// @Summary Create a new vehicle type
// @Description Registers a vehicle category with its hourly parking rate
// @Tags vehicle-types
// @Accept  json
// @Produce  json
// @Param   vehicleType body dto.CreateVehicleTypeRequest true "Vehicle type details"
// @Success 201 {object} dto.VehicleTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Name already registered"
// @Failure 500 {object} ErrorResponse "Failed to create vehicle type"
// @Security BearerAuth
// @Router /vehicle-types [post]
func (h *vehicleTypeHandler) createVehicleType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVehicleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createVehicleType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	vt, err := h.vehicleTypeService.CreateVehicleType(c.Request.Context(), req, userID)
	if err != nil {
		logger.Warn("Failed to create vehicle type", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Vehicle type created", slog.String("vehicle_type_id", vt.VehicleTypeID), slog.String("name", vt.Name))
	c.JSON(http.StatusCreated, dto.ToVehicleTypeResponse(vt))
}

// listVehicleTypes godoc
// @Summary List all vehicle types
// @Description Retrieves every registered vehicle type
// @Tags vehicle-types
// @Produce  json
// @Success 200 {array} dto.VehicleTypeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No vehicle types"
// @Failure 500 {object} ErrorResponse "Failed to list vehicle types"
// @Security BearerAuth
// @Router /vehicle-types/all [get]
func (h *vehicleTypeHandler) listVehicleTypes(c *gin.Context) {
	vts, err := h.vehicleTypeService.ListVehicleTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListVehicleTypeResponse(vts))
}
