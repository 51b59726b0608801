package routes

import (
	"github.com/LXHNeko/space-takeout/configs"
	"github.com/LXHNeko/space-takeout/controllers"
	"github.com/LXHNeko/space-takeout/middlewares"
	"github.com/LXHNeko/space-takeout/pkg/payment"
	"github.com/LXHNeko/space-takeout/repository"
	"github.com/LXHNeko/space-takeout/services"
	"github.com/LXHNeko/space-takeout/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, gateway payment.Gateway, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()
	rdb := configs.Redis()

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	dishRepo := repository.NewDishRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, addrRepo, gateway, hub)
	setmealSvc := services.NewSetmealService(db, setmealRepo)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo, setmealRepo)
	shopSvc := services.NewShopService(rdb)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	addrCtrl := controllers.NewAddressController(addrRepo)
	dishCtrl := controllers.NewDishController(dishRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	setmealCtrl := controllers.NewSetmealController(setmealSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	shopCtrl := controllers.NewShopController(shopSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Public
	r.GET("/shop/status", shopCtrl.GetStatus)
	r.GET("/dishes", dishCtrl.List)
	r.GET("/setmeals/:id", setmealCtrl.GetByID)

	// Payment gateway callback (server-to-server)
	r.POST("/notify/payment", orderCtrl.PayNotify)

	// Customer (authenticated)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.POST("/addresses", addrCtrl.Create)
		u.GET("/addresses", addrCtrl.List)
		u.DELETE("/addresses/:id", addrCtrl.Delete)

		u.POST("/cart", cartCtrl.Add)
		u.GET("/cart", cartCtrl.List)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders", orderCtrl.Submit)
		u.GET("/orders", orderCtrl.History)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PUT("/orders/:id/cancel", orderCtrl.Cancel)
		u.POST("/orders/:id/again", orderCtrl.Reorder)
		u.PUT("/payment/:number", orderCtrl.RequestPayment)
	}

	// Shop side (admin)
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/orders", orderCtrl.ConditionSearch)
		admin.GET("/orders/statistics", orderCtrl.Statistics)

		admin.POST("/setmeals", setmealCtrl.Create)
		admin.GET("/setmeals", setmealCtrl.Page)
		admin.PUT("/setmeals/:id", setmealCtrl.Update)
		admin.DELETE("/setmeals", setmealCtrl.Delete)

		admin.PUT("/shop/:status", shopCtrl.SetStatus)

		// new-order feed for the merchant screen
		admin.GET("/ws/orders", hub.Serve)
	}
}
