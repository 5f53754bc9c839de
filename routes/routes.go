package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backend/controllers"
	"restaurant-backend/middleware"
	"restaurant-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

type Controllers struct {
	Auth         *controllers.AuthController
	Register     *controllers.RegisterController
	Menu         *controllers.MenuController
	Tables       *controllers.TableController
	Orders       *controllers.OrderController
	Billing      *controllers.BillingController
	Expenses     *controllers.ExpenseController
	Settings     *controllers.SettingsController
	Reports      *controllers.ReportController
	Reservations *controllers.ReservationController
	Superadmin   *controllers.SuperadminController
}

func SetupRouter(db *gorm.DB, jwtSecret []byte, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", ctrl.Register.Register)

		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrl.Auth.Login)
			auth.GET("/me", middleware.Auth(jwtSecret), ctrl.Auth.Me)
		}

		// Tenant-scoped routes: every request re-resolves the caller's
		// role and rejects blocked hotels.
		authed := api.Group("")
		authed.Use(middleware.Auth(jwtSecret))

		staff := authed.Group("")
		staff.Use(middleware.RequireRole(db, models.RoleAdmin, models.RoleStaff))
		{
			staff.GET("/menu", ctrl.Menu.List)

			staff.GET("/tables", ctrl.Tables.List)
			staff.PATCH("/tables/:id/status", ctrl.Tables.SetStatus)

			staff.POST("/orders", ctrl.Orders.Create)
			staff.GET("/orders", ctrl.Orders.List)
			staff.GET("/orders/kitchen", ctrl.Orders.Kitchen)
			staff.GET("/orders/:id", ctrl.Orders.Get)
			staff.POST("/orders/:id/advance", ctrl.Orders.Advance)

			staff.POST("/billing/save", ctrl.Billing.SaveOrder)
			staff.GET("/billing/saved/:posNumber", ctrl.Billing.GetSavedOrder)
			staff.POST("/billing/invoice", ctrl.Billing.GenerateInvoice)
			staff.POST("/billing/invoice/direct", ctrl.Billing.GenerateDirectInvoice)
			staff.GET("/billing/invoices", ctrl.Billing.ListInvoices)

			staff.GET("/reservations", ctrl.Reservations.List)
			staff.POST("/reservations", ctrl.Reservations.Create)
			staff.DELETE("/reservations/:id", ctrl.Reservations.Cancel)
		}

		admin := authed.Group("")
		admin.Use(middleware.RequireRole(db, models.RoleAdmin))
		{
			admin.POST("/menu", ctrl.Menu.Create)
			admin.PATCH("/menu/:id", ctrl.Menu.Update)
			admin.PATCH("/menu/:id/availability", ctrl.Menu.SetAvailability)

			admin.POST("/tables", ctrl.Tables.Create)

			admin.GET("/expenses", ctrl.Expenses.List)
			admin.POST("/expenses", ctrl.Expenses.Create)
			admin.DELETE("/expenses/:id", ctrl.Expenses.Delete)

			admin.GET("/reports/daily-sales", ctrl.Reports.DailySales)
			admin.GET("/reports/payment-split", ctrl.Reports.PaymentSplit)
			admin.GET("/reports/expenses", ctrl.Reports.ExpensesByCategory)

			admin.GET("/settings", ctrl.Settings.Get)
			admin.PUT("/settings", ctrl.Settings.Update)
		}

		superadmin := authed.Group("/superadmin")
		superadmin.Use(middleware.RequireRole(db, models.RoleSuperadmin))
		{
			superadmin.GET("/hotels", ctrl.Superadmin.ListHotels)
			superadmin.PATCH("/hotels/:id/status", ctrl.Superadmin.SetHotelStatus)
			superadmin.PATCH("/hotels/:id/package", ctrl.Superadmin.AssignPackage)
			superadmin.GET("/packages", ctrl.Superadmin.ListPackages)
			superadmin.POST("/packages", ctrl.Superadmin.CreatePackage)
			superadmin.DELETE("/packages/:id", ctrl.Superadmin.DeletePackage)
		}
	}

	return r
}
