package routes

import (
	"github.com/Yeshwanth-lb/hotel-bombaat-project/controllers"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the guest-facing routes. Everything under /user
// requires a logged-in session.
func SetupUserRoutes(r *gin.Engine) {
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.POST("/logout", controllers.Logout)
	r.POST("/forgot-password", controllers.ForgotPassword)
	r.POST("/reset-password", controllers.ResetPassword)

	r.GET("/rooms", controllers.ListRooms)
	r.GET("/reviews", controllers.ListReviews)
	r.POST("/contact", controllers.SubmitContact)
	r.POST("/chatbot", controllers.Chatbot)

	user := r.Group("/user")
	user.Use(middleware.AuthRequired())
	{
		user.GET("/dashboard", controllers.GetDashboard)

		user.POST("/bookings", controllers.BookRoom)
		user.GET("/bookings", controllers.MyBookings)
		user.POST("/bookings/:booking_id/cancel", controllers.CancelBooking)
		user.GET("/booked-dates/:room_type", controllers.GetBookedDates)

		user.GET("/menu", controllers.GetMenu)
		user.POST("/cart/add", controllers.AddToCart)
		user.POST("/cart/remove/:name", controllers.RemoveFromCart)
		user.POST("/food-orders", controllers.PlaceFoodOrder)

		user.GET("/billing", controllers.GetBillingSummary)
		user.POST("/billing/promo", controllers.ApplyPromo)
		user.POST("/payment", controllers.ProcessPayment)
		user.GET("/payment/confirmation/:order_id", controllers.GetConfirmation)
		user.GET("/invoice/:order_id", controllers.DownloadInvoice)

		user.POST("/reviews", controllers.SubmitReview)
	}
}
