package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/controllers"
	"github.com/adisyonqr/restaurant-app/middlewares"
	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/services"
)

func SetupRouter(db *gorm.DB, webhooks *services.WebhookDispatcher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Must be registered before any route: gin snapshots the handler
	// chain at registration time.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	setupCtrl := controllers.NewSetupController(db)
	settingsCtrl := controllers.NewSettingsController(db)
	staffCtrl := controllers.NewStaffController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db, webhooks)
	kitchenCtrl := controllers.NewKitchenController(db, webhooks)
	cashierCtrl := controllers.NewCashierController(db, webhooks)
	waiterCtrl := controllers.NewWaiterController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/api/setup", setupCtrl.Status)
	r.POST("/api/setup", setupCtrl.Run)

	login := r.Group("/")
	login.Use(middlewares.NewStrictRateLimiter())
	{
		login.POST("/api/auth", authCtrl.Login)
	}

	// Customer-facing: menu browsing and order placement need no login,
	// but a waiter's token attributes the order when present.
	r.GET("/api/menu", menuCtrl.GetMenu)
	r.POST("/api/orders", middlewares.OptionalAuthMiddleware(), orderCtrl.CreateOrder)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/auth", authCtrl.Profile)
	auth.DELETE("/auth", authCtrl.Logout)

	// WAITER (floor view + order detail)
	waiter := auth.Group("/waiter")
	waiter.Use(middlewares.RequireRoles(models.RoleWaiter))
	{
		waiter.GET("/tables", waiterCtrl.GetFloor)
	}

	// KITCHEN (queue + advance to preparing/ready)
	kitchen := auth.Group("/kitchen")
	kitchen.Use(middlewares.RequireRoles(models.RoleKitchen))
	{
		kitchen.GET("/orders", kitchenCtrl.GetQueue)
		kitchen.PUT("/orders", kitchenCtrl.UpdateStatus)
	}

	// CASHIER (open bills + settle/cancel)
	cashier := auth.Group("/cashier")
	cashier.Use(middlewares.RequireRoles(models.RoleCashier))
	{
		cashier.GET("/orders", cashierCtrl.GetOpenBills)
		cashier.PUT("/orders", cashierCtrl.UpdateStatus)
	}

	// Order detail for any staff role
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// ADMIN (everything else)
	admin := auth.Group("/")
	admin.Use(middlewares.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/orders", orderCtrl.GetAllOrders)

		admin.GET("/tables", tableCtrl.GetAllTables)
		admin.POST("/tables", tableCtrl.CreateTable)
		admin.PUT("/tables/:table_id", tableCtrl.UpdateTable)
		admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
		admin.GET("/tables/:table_id/qr", tableCtrl.GetTableQR)
		admin.POST("/table-groups", tableCtrl.CreateGroup)
		admin.PUT("/table-groups/:group_id", tableCtrl.UpdateGroup)
		admin.DELETE("/table-groups/:group_id", tableCtrl.DeleteGroup)

		admin.GET("/categories", categoryCtrl.GetAllCategories)
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PUT("/categories/:cat_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		admin.GET("/products", productCtrl.GetAllProducts)
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:product_id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:product_id", productCtrl.DeleteProduct)

		admin.GET("/staff", staffCtrl.GetAllStaff)
		admin.POST("/staff", staffCtrl.CreateStaff)
		admin.PUT("/staff/:staff_id", staffCtrl.UpdateStaff)
		admin.DELETE("/staff/:staff_id", staffCtrl.DeleteStaff)

		admin.GET("/settings", settingsCtrl.GetSettings)
		admin.PUT("/settings", settingsCtrl.UpdateSettings)

		admin.GET("/dashboard/stats", adminCtrl.GetDashboardStats)
		admin.POST("/admin/reset-data", adminCtrl.ResetData)
	}

	return r
}
