package handlers

import (
	"github.com/gin-gonic/gin"

	"wildrydes/internal/middleware"
	"wildrydes/internal/services"
	"wildrydes/internal/utils"
	"wildrydes/internal/validators"
)

type RideHandler struct {
	rideService services.RideService
}

func NewRideHandler(rideService services.RideService) *RideHandler {
	return &RideHandler{
		rideService: rideService,
	}
}

// RequestRide creates a new ride request for the caller
func (h *RideHandler) RequestRide(c *gin.Context) {
	var request validators.RideRequestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		// Missing and unparseable bodies are reported the same way
		utils.BadRequestResponse(c, utils.ErrBodyRequired)
		return
	}

	riderID := middleware.CallerIdentity(c)

	response, err := h.rideService.RequestRide(c.Request.Context(), riderID, &request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, response)
}

// GetRide retrieves a ride record by id
func (h *RideHandler) GetRide(c *gin.Context) {
	rideID := c.Param("id")

	ride, err := h.rideService.GetRide(c.Request.Context(), rideID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, ride)
}

// UpdateRideStatus transitions a ride through its status lifecycle
func (h *RideHandler) UpdateRideStatus(c *gin.Context) {
	rideID := c.Param("id")

	var request validators.RideStatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrBodyRequired)
		return
	}

	ride, err := h.rideService.UpdateRideStatus(c.Request.Context(), rideID, &request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, ride)
}
