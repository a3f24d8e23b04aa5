package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahesadev/billiard-hall-app/controllers"
	"github.com/mahesadev/billiard-hall-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	bookingCtrl := controllers.NewBookingController(db)
	espCtrl := controllers.NewEspController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Auth, behind the strict limiter
	auth := r.Group("/")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// Table inventory
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)
	r.PUT("/tables", tableCtrl.CreateTable)
	r.PATCH("/tables/:table_id/update", tableCtrl.UpdateTable)
	r.PATCH("/tables/:table_id/update-status", tableCtrl.UpdateTableStatus)
	r.PATCH("/tables/:table_id/update-light-status", tableCtrl.UpdateLightStatus)
	r.DELETE("/tables/:table_id/delete", tableCtrl.DeleteTable)

	// Bookings
	r.GET("/bookings", bookingCtrl.GetAllBookings)
	r.POST("/bookings", bookingCtrl.CreateBooking)
	r.POST("/bookings/extend", bookingCtrl.ExtendBooking)
	r.POST("/bookings/update-status", bookingCtrl.UpdateBookingStatus)

	// Lighting feed for the ESP controller
	r.GET("/esp/lights", espCtrl.GetLightStatus)

	// Admin dashboard
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.GET("/stats", adminCtrl.GetDashboardStats)
	}

	return r
}
