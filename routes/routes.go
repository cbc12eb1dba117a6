package routes

import (
	"tomyumkitchen/configs"
	"tomyumkitchen/controllers"
	"tomyumkitchen/middlewares"
	"tomyumkitchen/repository"
	"tomyumkitchen/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(catalogRepo)
	couponSvc := services.NewCouponService(couponRepo)
	cartSvc := services.NewCartService()
	orderSvc := services.NewOrderService(db, orderRepo, cartSvc, couponRepo)
	reservationSvc := services.NewReservationService(db, reservationRepo)
	adminSvc := services.NewAdminService(orderRepo, reservationRepo)
	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)
	cartCtrl := controllers.NewCartController(cartSvc, catalogSvc, couponRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/session", authCtrl.Session)
		a.POST("/admin/login", authCtrl.AdminLogin)
	}

	// Public catalog / coupons / slot availability
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/categories", menuCtrl.Categories)
	r.GET("/coupons", couponCtrl.List)
	r.GET("/reservations/slots", reservationCtrl.Slots)

	// Session surface (guest or admin token)
	s := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		s.GET("/cart", cartCtrl.Get)
		s.POST("/cart/items", cartCtrl.Add)
		s.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		s.DELETE("/cart/items/:dishId", cartCtrl.RemoveItem)
		s.DELETE("/cart", cartCtrl.Clear)

		s.POST("/orders", orderCtrl.Create)
		s.GET("/orders/:id", orderCtrl.Detail)

		s.POST("/reservations", reservationCtrl.Create)
	}

	// Admin dashboard (read-only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/reservations", adminCtrl.Reservations)
		admin.GET("/orders", adminCtrl.Orders)
	}
}
