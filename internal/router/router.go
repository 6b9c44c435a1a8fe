// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundsmarket/sounds-backend/internal/config"
	"github.com/soundsmarket/sounds-backend/internal/handlers"
	"github.com/soundsmarket/sounds-backend/internal/middleware"
	"github.com/soundsmarket/sounds-backend/internal/services"
	"github.com/soundsmarket/sounds-backend/internal/store"
)

func Initialize(st *store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(st)
	loyaltyService := services.NewLoyaltyService(st)
	commerceService := services.NewCommerceService(st, notificationService)
	engagementService := services.NewEngagementService(st, notificationService)
	rankingService := services.NewRankingService(st)
	catalogService := services.NewCatalogService(st)
	authService := services.NewAuthService(st, cfg)
	userService := services.NewUserService(st, cfg)
	paymentService := services.NewPaymentService(st, cfg, loyaltyService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(catalogService)
	ticketHandler := handlers.NewTicketHandler(catalogService)
	commerceHandler := handlers.NewCommerceHandler(commerceService, catalogService, rankingService, st)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit(cfg.RateLimit))
		{
			auth.POST("/register/artist", authHandler.RegisterArtist)
			auth.POST("/register/buyer", authHandler.RegisterBuyer)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.Session)
			auth.POST("/reset/check", authHandler.CheckResetEmail)
			auth.POST("/reset/confirm", authHandler.ResetPassword)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateProfile)
			users.DELETE("/:id", userHandler.DeleteAccount)
			users.GET("/:id/referral-link", userHandler.GetReferralLink)
			users.POST("/:id/library/:productId", commerceHandler.AddToLibrary)
			users.POST("/:id/subscription/intent", paymentHandler.CreateSubscriptionIntent)
			users.POST("/:id/subscription/activate", paymentHandler.ActivateSubscription)
		}

		// Artist routes
		artists := v1.Group("/artists")
		{
			artists.GET("", engagementHandler.GetArtists)
			artists.GET("/top", commerceHandler.GetTopArtists)
			artists.POST("/:id/vote", engagementHandler.Vote)
			artists.POST("/:id/follow", engagementHandler.ToggleFollow)
			artists.GET("/:id/followers/count", engagementHandler.FollowerCount)
			artists.GET("/:id/notifications", notificationHandler.GetNotifications)
			artists.DELETE("/:id/notifications", notificationHandler.DeleteAllNotifications)
			artists.DELETE("/:id/notifications/:notificationId", notificationHandler.DeleteNotification)
			artists.POST("/:id/products", productHandler.CreateProduct)
			artists.POST("/:id/tickets", ticketHandler.CreateTicket)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/like", engagementHandler.ToggleLike)
			products.POST("/:id/share", commerceHandler.RecordShare)
		}

		// Ticket routes
		tickets := v1.Group("/tickets")
		{
			tickets.GET("", ticketHandler.GetTickets)
			tickets.PUT("/:id", ticketHandler.UpdateTicket)
			tickets.DELETE("/:id", ticketHandler.DeleteTicket)
		}

		// Sales routes
		sales := v1.Group("/sales")
		{
			sales.GET("", commerceHandler.GetSales)
			sales.POST("", commerceHandler.RecordSale)
		}
	}

	return r
}
