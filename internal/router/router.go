package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/abdullah9786/nawab-products/internal/cache"
	"github.com/abdullah9786/nawab-products/internal/config"
	"github.com/abdullah9786/nawab-products/internal/handler"
	"github.com/abdullah9786/nawab-products/internal/middleware"
	"github.com/abdullah9786/nawab-products/internal/pricing"
	"github.com/abdullah9786/nawab-products/internal/repository"
	"github.com/abdullah9786/nawab-products/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const adminLoginPath = "/admin/login"

// Deps are the infrastructure handles the router wires into services.
type Deps struct {
	DB     *gorm.DB
	Health handler.Pinger
	// Redis may be nil. A nil Cache degrades to a no-op and a nil Queue
	// rejects contact enquiries.
	Redis *redis.Client
	Cache cache.Cache
	Queue service.ContactQueue
}

var errQueueUnavailable = errors.New("contact queue unavailable")

type unavailableQueue struct{}

func (unavailableQueue) EnqueueContact(context.Context, interface{}) error {
	return errQueueUnavailable
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if deps.Cache == nil {
		deps.Cache = cache.Noop()
	}
	if deps.Queue == nil {
		deps.Queue = unavailableQueue{}
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	if cfg.IsProduction() {
		r.Use(middleware.CORS(cfg.SiteURL))
	} else {
		r.Use(middleware.CORS())
	}
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(deps.DB)
	categoryRepo := repository.NewCategoryRepository(deps.DB)
	adminRepo := repository.NewAdminRepository(deps.DB)

	// ── Services ─────────────────────────────────────────────────────────────
	present := service.NewPresenter(pricing.NewFormatter(cfg.CurrencySymbol, cfg.PriceLocale))
	authSvc := service.NewAuthService(adminRepo, cfg)
	productSvc := service.NewProductService(productRepo, categoryRepo, deps.Cache, present, cfg)
	categorySvc := service.NewCategoryService(categoryRepo, deps.Cache)
	storefrontSvc := service.NewStorefrontService(productRepo, categoryRepo, deps.Cache, present, cfg)
	contactSvc := service.NewContactService(deps.Queue)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	adminH := handler.NewAdminHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	storefrontH := handler.NewStorefrontHandler(storefrontSvc, cfg.SiteURL)
	contactH := handler.NewContactHandler(contactSvc)
	priceListH := handler.NewPriceListHandler(productSvc, cfg.BrandName,
		pricing.NewFormatter("Rs. ", cfg.PriceLocale))

	sessionMW := middleware.SessionAuth(authSvc)
	optionalMW := middleware.OptionalSession(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	if deps.Health != nil {
		r.GET("/health", handler.Health(deps.Health, deps.Redis))
	}
	r.GET("/sitemap.xml", storefrontH.Sitemap)

	api := r.Group("/api")
	{
		api.GET("/seed", adminH.Seed)
		api.GET("/check-admin", adminH.CheckAdmin)

		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
			auth.POST("/logout", authH.Logout)
			auth.GET("/session", sessionMW, authH.Session)
		}

		// Reads are public; a session unlocks includeInactive.
		products := api.Group("/products")
		{
			products.GET("", optionalMW, productsH.List)
			products.GET("/:slug", optionalMW, productsH.Get)
			products.POST("", sessionMW, productsH.Create)
			products.PUT("/:slug", sessionMW, productsH.Update)
			products.DELETE("/:slug", sessionMW, productsH.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", optionalMW, categoriesH.List)
			categories.GET("/:id", categoriesH.Get)
			categories.POST("", sessionMW, categoriesH.Create)
			categories.PUT("/:id", sessionMW, categoriesH.Update)
			categories.DELETE("/:id", sessionMW, categoriesH.Delete)
		}

		storefront := api.Group("/storefront")
		{
			storefront.GET("/home", storefrontH.Home)
			storefront.GET("/products", storefrontH.Products)
			storefront.GET("/products/:slug", storefrontH.Product)
		}

		api.POST("/contact", middleware.ContactRateLimiter(), contactH.Submit)

		api.GET("/admin/price-list.pdf", sessionMW, priceListH.Download)
	}

	// Admin UI build, served only to signed-in admins.
	if cfg.AdminUIDir != "" {
		admin := r.Group("/admin", middleware.PageGuard(authSvc, adminLoginPath))
		admin.StaticFS("/", http.Dir(cfg.AdminUIDir))
	}

	// Swagger UI, only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
