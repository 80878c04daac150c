package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/linskybing/reserve-go/handlers"
	"github.com/linskybing/reserve-go/middleware"
	"github.com/linskybing/reserve-go/repositories"
	"github.com/linskybing/reserve-go/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repositories.New(db)
	svc := services.New(repos)
	h := handlers.New(svc)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	resources := r.Group("/resources")
	{
		resources.GET("", h.Resource.ListPublished)
		resources.GET("/all", middleware.JWTAuthMiddleware(), middleware.AuthorizeAdmin(), h.Resource.ListAll)
		resources.GET("/:id", h.Resource.GetResource)
		resources.POST("", middleware.JWTAuthMiddleware(), middleware.AuthorizeAdmin(), h.Resource.CreateResource)
		resources.PUT("/:id", middleware.JWTAuthMiddleware(), middleware.AuthorizeAdmin(), h.Resource.UpdateResource)
		resources.DELETE("/:id", middleware.JWTAuthMiddleware(), middleware.AuthorizeAdmin(), h.Resource.DeleteResource)
	}

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		reservations := auth.Group("/reservations")
		{
			reservations.POST("", h.Reservation.CreateReservation)
			reservations.GET("/mine", h.Reservation.ListMine)
			reservations.GET("", middleware.AuthorizeAdmin(), h.Reservation.ListAll)
			reservations.PUT("/:id", h.Reservation.Reschedule)
			reservations.PUT("/:id/status", middleware.AuthorizeAdmin(), h.Reservation.SetStatus)
			reservations.DELETE("/:id", h.Reservation.Cancel)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.AuthorizeAdmin(), h.Audit.GetAuditLogs)
		}

		auth.GET("/ws/reservations", h.WS.WatchReservations)
	}
}
