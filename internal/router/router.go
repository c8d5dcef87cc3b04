package router

import (
	"time"

	"github.com/alanalzi/jalin-alam-project/internal/config"
	"github.com/alanalzi/jalin-alam-project/internal/handler"
	"github.com/alanalzi/jalin-alam-project/internal/middleware"
	"github.com/alanalzi/jalin-alam-project/internal/repository"
	"github.com/alanalzi/jalin-alam-project/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	customerSvc := service.NewCustomerService(customerRepo)
	inquirySvc := service.NewInquiryService(inquiryRepo)
	productSvc := service.NewProductService(productRepo, inquiryRepo, rdb)
	supplierSvc := service.NewSupplierService(supplierRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	inquiriesH := handler.NewInquiriesHandler(inquirySvc)
	productsH := handler.NewProductsHandler(productSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	uploadH := handler.NewUploadHandler(cfg)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.Static(cfg.UploadBaseURL, cfg.UploadDir)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — every dashboard role can read, writes require
	// admin or direktur (the roles whose menus expose the edit screens).
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	readRoles := middleware.RequireRole("admin", "direktur", "staff")
	writeRoles := middleware.RequireRole("admin", "direktur")

	api := r.Group("/api", jwtMW)
	{
		customers := api.Group("/customers")
		{
			customers.GET("", readRoles, customersH.List)
			customers.GET("/:id", readRoles, customersH.Get)
			customers.POST("", writeRoles, customersH.Create)
			customers.PUT("/:id", writeRoles, customersH.Update)
			customers.DELETE("/:id", writeRoles, customersH.Delete)
		}

		inquiries := api.Group("/inquiries")
		{
			inquiries.GET("", readRoles, inquiriesH.List)
			inquiries.GET("/:id", readRoles, inquiriesH.Get)
			inquiries.POST("", writeRoles, inquiriesH.Create)
			inquiries.PUT("/:id", writeRoles, inquiriesH.Update)
			inquiries.DELETE("/:id", writeRoles, inquiriesH.Delete)
		}

		products := api.Group("/products")
		{
			products.GET("", readRoles, productsH.List)
			products.GET("/:id", readRoles, productsH.Get)
			products.POST("", writeRoles, productsH.Create)
			products.PUT("/:id", writeRoles, productsH.Update)
			products.DELETE("/:id", writeRoles, productsH.Delete)
		}

		// The dashboard has always called this route in the singular.
		suppliers := api.Group("/supplier")
		{
			suppliers.GET("", readRoles, suppliersH.List)
			suppliers.GET("/:id", readRoles, suppliersH.Get)
			suppliers.POST("", writeRoles, suppliersH.Create)
			suppliers.PUT("/:id", writeRoles, suppliersH.Update)
			suppliers.DELETE("/:id", writeRoles, suppliersH.Delete)
		}

		api.POST("/upload", writeRoles, uploadH.Upload)

		users := api.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
