package routes

import (
	"github.com/KentLacno/ccl-reservation-system/configs"
	"github.com/KentLacno/ccl-reservation-system/controllers"
	"github.com/KentLacno/ccl-reservation-system/middlewares"
	"github.com/KentLacno/ccl-reservation-system/pkg/msgraph"
	"github.com/KentLacno/ccl-reservation-system/pkg/paymongo"
	"github.com/KentLacno/ccl-reservation-system/repository"
	"github.com/KentLacno/ccl-reservation-system/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	formRepo := repository.NewFormRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// External collaborators
	graph := msgraph.NewClient(cfg.MicrosoftClientID, cfg.MicrosoftClientSecret, cfg.HostURL)
	gateway := paymongo.NewClient(cfg.PaymongoSecretKey, cfg.PaymongoWebhookSecret, cfg.HostURL)

	// Services
	authSvc := services.NewAuthService(db, userRepo, graph, cfg.AllowedEmailDomain, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(db, formRepo, foodRepo)
	rewardSvc := services.NewRewardService(userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, foodRepo, rewardSvc)
	paymentSvc := services.NewPaymentService(db, orderRepo, gateway)
	reportSvc := services.NewReportService(reportRepo, formRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, catalogSvc, authSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc, authSvc)
	adminCtrl := controllers.NewAdminController(catalogSvc, reportSvc)

	// Public
	r.GET("/login", authCtrl.Login)
	r.GET("/callback", authCtrl.Callback)
	r.POST("/webhooks", paymentCtrl.Webhook)

	// Staff
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("", orderCtrl.Index)
		u.POST("", orderCtrl.Submit)
		u.POST("delete_order/:id", orderCtrl.Delete)
		u.POST("pay_order/:id", paymentCtrl.PayOrder)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/print_form/:id", adminCtrl.PrintForm)
		admin.GET("/check_quantities/:id", adminCtrl.CheckQuantities)
		admin.GET("/check_order/:id", adminCtrl.CheckOrder)

		admin.POST("/food_items", adminCtrl.CreateFoodItem)
		admin.GET("/food_items", adminCtrl.ListFoodItems)
		admin.POST("/forms", adminCtrl.CreateForm)
		admin.GET("/forms", adminCtrl.ListForms)
		admin.POST("/forms/:id/activate", adminCtrl.ActivateForm)
		admin.POST("/forms/:id/options", adminCtrl.SetOption)
		admin.GET("/forms/:id/orders", adminCtrl.ListFormOrders)
	}
}
