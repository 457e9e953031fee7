package routes

import (
	"log/slog"
	"net/http"

	"invoice-dashboard/config"
	"invoice-dashboard/controllers"
	"invoice-dashboard/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the controllers mounted by SetupRouter.
type Handlers struct {
	Auth      *controllers.AuthController
	Seed      *controllers.SeedController
	Invoices  *controllers.InvoiceController
	Customers *controllers.CustomerController
	Dashboard *controllers.DashboardController
}

func SetupRouter(h Handlers, authenticator *utils.Authenticator, origins []string, logger *slog.Logger) *gin.Engine {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/seed", h.Seed.Seed)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)

		auth.Use(authenticator.Middleware())
		auth.GET("/me", h.Auth.Me)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(authenticator.Middleware())
	{
		dashboard.GET("/overview", h.Dashboard.GetOverview)
		dashboard.GET("/revenue", h.Dashboard.GetRevenue)

		invoices := dashboard.Group("/invoices")
		{
			invoices.GET("/latest", h.Dashboard.GetLatestInvoices)
			invoices.GET("", h.Invoices.GetInvoices)
			invoices.POST("", h.Invoices.CreateInvoice)
			invoices.GET("/:id", h.Invoices.GetInvoice)
			invoices.POST("/:id", h.Invoices.UpdateInvoice)
			invoices.PUT("/:id", h.Invoices.UpdateInvoice)
			invoices.DELETE("/:id", h.Invoices.DeleteInvoice)
			invoices.POST("/:id/delete", h.Invoices.DeleteInvoice)
		}

		dashboard.GET("/customers", h.Customers.GetCustomers)
	}

	return r
}
