package routes

import (
	handlers "wildrydes/internal/handlers/shared"

	"github.com/gin-gonic/gin"
)

// SetupRideRoutes sets up routes for ride functionality
func SetupRideRoutes(r *gin.RouterGroup, rideHandler *handlers.RideHandler) {
	rides := r.Group("/rides")
	{
		rides.POST("", rideHandler.RequestRide)
		rides.GET("/:id", rideHandler.GetRide)
		rides.PUT("/:id/status", rideHandler.UpdateRideStatus)
	}
}
