package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/infogrowkro/growkroweb/config"
	"github.com/infogrowkro/growkroweb/internal/handlers"
	"github.com/infogrowkro/growkroweb/internal/logging"
	"github.com/infogrowkro/growkroweb/internal/middleware"
	"github.com/infogrowkro/growkroweb/internal/payments"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	rzpCfg, err := config.LoadRazorpayConfig()
	if err != nil {
		return fmt.Errorf("failed to load payment config: %v", err)
	}
	gateway := config.InitPaymentGateway(rzpCfg)
	if gateway == nil {
		logger := logging.NewLogger("server")
		logger.Warn().Msg("razorpay keys missing, payment endpoints disabled")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger())

	SetupRoutes(r, db, gateway)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

// SetupRoutes wires middleware and the full route table onto r.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gateway payments.Gateway) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.PaymentMiddleware(gateway))

	api := r.Group("/api")
	{
		api.GET("/", handlers.Root)

		creators := api.Group("/creators")
		{
			creators.GET("", handlers.ListCreators)
			creators.POST("", handlers.CreateCreator)
			creators.GET("/:id", handlers.GetCreator)
			creators.PUT("/:id", handlers.UpdateCreator)
			creators.DELETE("/:id", handlers.DeleteCreator)
			creators.POST("/:id/upgrade-package/:package_id", handlers.UpgradeCreatorPackage)
			creators.GET("/match-business/:id", handlers.MatchCreatorsForBusiness)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", handlers.ListPackages)
			packages.GET("/:id", handlers.GetPackage)
		}

		api.GET("/search/creators", handlers.SearchCreators)
		api.GET("/stats", handlers.PlatformStats)

		paymentRoutes := api.Group("/payments")
		{
			paymentRoutes.POST("/create-order", handlers.CreatePaymentOrder)
			paymentRoutes.POST("/verify", handlers.VerifyPayment)
			paymentRoutes.GET("/transaction/:order_id", handlers.GetTransaction)
			paymentRoutes.GET("/pricing", handlers.GetPricing)
		}

		business := api.Group("/business-owners")
		{
			business.GET("", handlers.ListBusinessOwners)
			business.POST("", handlers.CreateBusinessOwner)
		}

		api.POST("/collaboration-requests", handlers.CreateCollaborationRequest)
	}

	admin := api.Group("/admin")
	admin.POST("/auth/login", handlers.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.POST("/creators/:id/approve", handlers.ApproveCreator)
		protected.GET("/creators/pending", handlers.ListPendingCreators)
		protected.GET("/users/stats", handlers.AdminUserStats)
		protected.GET("/financial/transactions", handlers.FinancialTransactions)
		protected.GET("/financial/revenue", handlers.RevenueStats)
		protected.GET("/analytics/dashboard", handlers.AnalyticsDashboard)
		protected.GET("/content/reports", handlers.ContentReports)
		protected.POST("/notifications/send", handlers.SendNotification)
		protected.GET("/notifications/history", handlers.NotificationHistory)
		protected.POST("/verification/otp", handlers.SendOTP)
		protected.POST("/verification/verify-otp", handlers.VerifyOTP)
	}
}
