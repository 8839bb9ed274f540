// Package httpapi exposes the settlement use cases over HTTP.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lyberate-settlement/internal/app"
)

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	ReleaseMode    bool
}

// Server routes HTTP requests to the use cases.
type Server struct {
	app    *app.App
	logger zerolog.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(a *app.App, opts Options, logger zerolog.Logger) *gin.Engine {
	if opts.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = opts.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"Content-Length"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	s := &Server{app: a, logger: logger.With().Str("component", "http").Logger()}
	s.setupRoutes(router)
	return router
}

func (s *Server) setupRoutes(router *gin.Engine) {
	router.GET("/health", s.handleHealth)

	api := router.Group("/api")

	weeks := api.Group("/weeks")
	weeks.GET("", s.handleListWeeks)
	weeks.GET("/:weekId/closing", s.handleWeeklyClosing)
	weeks.GET("/:weekId/tickets", s.handleWeekTickets)
	weeks.POST("/:weekId/tickets", s.handleGenerateWeekTickets)
	weeks.POST("/:weekId/tickets/:sellerId/:currency", s.handleGenerateTicket)
	weeks.GET("/:weekId/sales-report", s.handleSalesReport)

	tickets := api.Group("/tickets")
	tickets.POST("/:id/settle", s.handleSettleTicket)
	tickets.PUT("/:id/status", s.handleSetTicketStatus)

	api.POST("/sales", s.handleRecordSale)

	payments := api.Group("/payments")
	payments.GET("", s.handleListPayments)
	payments.POST("", s.handleSubmitPayment)
	payments.POST("/:id/approve", s.handleApprovePayment)
	payments.POST("/:id/reject", s.handleRejectPayment)

	sellers := api.Group("/sellers")
	sellers.GET("", s.handleListSellers)
	sellers.POST("", s.handleRegisterSeller)
	sellers.GET("/:id", s.handleGetSeller)
	sellers.GET("/:id/statement", s.handleVendorStatement)
	sellers.POST("/:id/agencies", s.handleAddAgency)
	sellers.POST("/:id/products", s.handleAddProduct)
	sellers.DELETE("/:id/products/:productId", s.handleRemoveProduct)
	sellers.POST("/:id/products/:productId/currencies", s.handleAddCurrency)
	sellers.DELETE("/:id/products/:productId/currencies/:currencyId", s.handleRemoveCurrency)
}

// requestLogger logs one line per request at a level that follows the response status.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
