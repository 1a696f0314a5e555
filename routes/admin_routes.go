package routes

import (
	"github.com/Yeshwanth-lb/hotel-bombaat-project/controllers"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the admin console routes.
func SetupAdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/dashboard", controllers.AdminDashboard)

		admin.GET("/users", controllers.ListUsers)
		admin.DELETE("/users/:id", controllers.DeleteUser)
		admin.POST("/users/:id/block", controllers.BlockUser)

		admin.GET("/bookings", controllers.ListBookings)
		admin.DELETE("/bookings/:booking_id", controllers.DeleteBooking)

		admin.GET("/reports/revenue", controllers.DownloadRevenueReport)
	}
}
