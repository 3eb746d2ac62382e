package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bizdata/business-api/docs"
	"github.com/bizdata/business-api/internal/api/handler"
	"github.com/bizdata/business-api/internal/api/middleware"
	"github.com/bizdata/business-api/internal/auth"
	"github.com/bizdata/business-api/internal/core/ports"
	"github.com/bizdata/business-api/internal/core/service"
	"github.com/bizdata/business-api/internal/infrastructure/config"
	mongodb "github.com/bizdata/business-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bizdata/business-api/internal/infrastructure/db/redis"
	"github.com/bizdata/business-api/internal/infrastructure/pdf"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. Every request passes through the Authenticate filter and
// the Authorize policy before reaching a business handler; rdb and
// mailer are the only optional collaborators (rdb may be nil in tests).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, mailer ports.EmailSender, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	e.Use(echoprometheus.NewMiddleware("business_api"))
	e.Use(middleware.Authenticate(codec))
	e.Use(middleware.Authorize(middleware.DefaultPublicPrefixes, middleware.DefaultRules))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, codec)
	companyService := service.NewCompanyService(companyRepo)
	productService := service.NewProductService(productRepo, companyRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	clientService := service.NewClientService(clientRepo)
	orderService := service.NewOrderService(orderRepo, clientRepo, productRepo)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	// --- Auth routes (public by policy) ---
	authHandler := handler.NewAuthHandler(authService, throttle, codec.TTL())
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Company routes ---
	companyHandler := handler.NewCompanyHandler(companyService)
	e.GET("/api/companies", companyHandler.List)
	e.GET("/api/companies/:nit", companyHandler.Get)
	e.POST("/api/companies", companyHandler.Create)
	e.PUT("/api/companies/:nit", companyHandler.Update)
	e.DELETE("/api/companies/:nit", companyHandler.Delete)

	// --- Product routes ---
	productHandler := handler.NewProductHandler(productService)
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)
	e.GET("/api/products/company/:nit", productHandler.ListByCompany)
	e.POST("/api/products", productHandler.Create)
	e.PUT("/api/products/:id", productHandler.Update)
	e.DELETE("/api/products/:id", productHandler.Delete)

	// --- Category routes ---
	categoryHandler := handler.NewCategoryHandler(categoryService)
	e.GET("/api/categories", categoryHandler.List)
	e.GET("/api/categories/:id", categoryHandler.Get)
	e.POST("/api/categories", categoryHandler.Create)
	e.PUT("/api/categories/:id", categoryHandler.Update)
	e.DELETE("/api/categories/:id", categoryHandler.Delete)

	// --- Client routes ---
	clientHandler := handler.NewClientHandler(clientService)
	e.GET("/api/clients", clientHandler.List)
	e.GET("/api/clients/:id", clientHandler.Get)
	e.POST("/api/clients", clientHandler.Create)
	e.PUT("/api/clients/:id", clientHandler.Update)
	e.DELETE("/api/clients/:id", clientHandler.Delete)

	// --- Order routes ---
	orderHandler := handler.NewOrderHandler(orderService)
	e.GET("/api/orders", orderHandler.List)
	e.GET("/api/orders/:id", orderHandler.Get)
	e.POST("/api/orders", orderHandler.Create)
	e.PUT("/api/orders/:id/status", orderHandler.UpdateStatus)
	e.DELETE("/api/orders/:id", orderHandler.Delete)

	// --- Inventory report ---
	inventoryService := service.NewInventoryService(companyRepo, productRepo, pdf.NewReportRenderer(), mailer)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	e.POST("/api/inventory/report/send", inventoryHandler.SendReport)

	// --- Docs, metrics, health probes (public by policy) ---
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
