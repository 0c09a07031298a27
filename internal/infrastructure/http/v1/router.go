package v1

import (
	"github.com/gin-gonic/gin"

	"fiskal/internal/domain/assets"
	"fiskal/internal/domain/catalogs/account"
	"fiskal/internal/domain/catalogs/asset"
	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/catalogs/product"
	"fiskal/internal/domain/inventory"
	"fiskal/internal/domain/journal"
	"fiskal/internal/domain/nomenclature"
	"fiskal/internal/domain/saft"
	"fiskal/internal/domain/vat"
	"fiskal/internal/infrastructure/http/v1/handlers"
	"fiskal/internal/infrastructure/http/v1/middleware"
	"fiskal/internal/infrastructure/storage/postgres"
	"fiskal/internal/infrastructure/storage/postgres/catalog_repo"
	"fiskal/internal/infrastructure/storage/postgres/document_repo"
	"fiskal/internal/infrastructure/storage/postgres/nomenclature_repo"
	"fiskal/internal/infrastructure/storage/postgres/register_repo"
	"fiskal/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (used by health checks)
	Pool *postgres.Pool

	// TxManager coordinates transactions for all repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerJournalRoutes(protected, cfg)
		registerRegisterRoutes(protected, cfg)
		registerNomenclatureRoutes(protected, cfg)
		registerReportRoutes(protected, cfg)
	}

	return router
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- ORGANIZATIONS ---
	{
		repo := catalog_repo.NewOrganizationRepo(cfg.TxManager)
		service := organization.NewService(repo, cfg.TxManager)
		handler := handlers.NewOrganizationHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/organizations"), handler, "catalog:organization")
	}

	// --- ACCOUNTS ---
	{
		repo := catalog_repo.NewAccountRepo(cfg.TxManager)
		service := account.NewService(repo, cfg.TxManager)
		handler := handlers.NewAccountHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/accounts"), handler, "catalog:account")
	}

	// --- CONTRAAGENTS ---
	{
		repo := catalog_repo.NewContraagentRepo(cfg.TxManager)
		service := contraagent.NewService(repo, cfg.TxManager)
		handler := handlers.NewContraagentHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/contraagents"), handler, "catalog:contraagent")
	}

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo, cfg.TxManager)
		handler := handlers.NewProductHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/products"), handler, "catalog:product")
	}

	// --- ASSETS ---
	{
		repo := catalog_repo.NewAssetRepo(cfg.TxManager)
		service := asset.NewService(repo, cfg.TxManager)
		handler := handlers.NewAssetHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/assets"), handler, "catalog:asset")
	}
}

// registerJournalRoutes registers journal entry endpoints.
func registerJournalRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	repo := document_repo.NewJournalRepo(cfg.TxManager)
	service := journal.NewService(repo, cfg.TxManager)
	handler := handlers.NewJournalHandler(baseHandler, service)

	group := rg.Group("/journal")
	group.POST("", middleware.RequirePermission("journal:create"), handler.Create)
	group.GET("/:id", middleware.RequirePermission("journal:read"), handler.Get)
	group.PUT("/:id", middleware.RequirePermission("journal:update"), handler.Update)
	group.DELETE("/:id", middleware.RequirePermission("journal:delete"), handler.Delete)
	group.POST("/:id/post", middleware.RequirePermission("journal:post"), handler.Post)
	group.POST("/:id/unpost", middleware.RequirePermission("journal:unpost"), handler.Unpost)
}

// registerRegisterRoutes registers movement register endpoints.
func registerRegisterRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	registers := rg.Group("/registers")
	baseHandler := handlers.NewBaseHandler()

	// Stock movements and derived levels
	{
		repo := register_repo.NewStockRepo(cfg.TxManager)
		service := inventory.NewService(repo, cfg.TxManager)
		handler := handlers.NewStockHandler(baseHandler, service)

		group := registers.Group("/stock")
		group.GET("/movements", middleware.RequirePermission("register:stock:read"), handler.List)
		group.POST("/movements", middleware.RequirePermission("register:stock:create"), handler.Create)
		group.GET("/movements/:id", middleware.RequirePermission("register:stock:read"), handler.Get)
		group.DELETE("/movements/:id", middleware.RequirePermission("register:stock:delete"), handler.Delete)
		group.GET("/levels", middleware.RequirePermission("register:stock:read"), handler.Levels)
	}

	// Asset transactions
	{
		repo := register_repo.NewAssetTransactionRepo(cfg.TxManager)
		service := assets.NewService(repo, cfg.TxManager)
		handler := handlers.NewAssetTransactionHandler(baseHandler, service)

		group := registers.Group("/asset-transactions")
		group.GET("", middleware.RequirePermission("register:assets:read"), handler.List)
		group.POST("", middleware.RequirePermission("register:assets:create"), handler.Create)
		group.GET("/:id", middleware.RequirePermission("register:assets:read"), handler.Get)
		group.DELETE("/:id", middleware.RequirePermission("register:assets:delete"), handler.Delete)
	}
}

// registerNomenclatureRoutes registers reference table lookups.
func registerNomenclatureRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	repo := nomenclature_repo.NewRepo(cfg.TxManager)
	service := nomenclature.NewService(repo)
	handler := handlers.NewNomenclatureHandler(baseHandler, service)

	group := rg.Group("/nomenclature")
	group.GET("/countries/:code", handler.GetCountry)
	group.GET("/iban-formats/:country", handler.GetIBANFormat)
	group.GET("/tariff-codes/:code", handler.GetTariffCode)
	group.GET("/currencies/:code", handler.GetCurrency)
}

// registerReportRoutes registers the regulatory report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	reports := rg.Group("/reports")
	baseHandler := handlers.NewBaseHandler()

	orgRepo := catalog_repo.NewOrganizationRepo(cfg.TxManager)
	orgService := organization.NewService(orgRepo, cfg.TxManager)

	accountRepo := catalog_repo.NewAccountRepo(cfg.TxManager)
	partyRepo := catalog_repo.NewContraagentRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	assetRepo := catalog_repo.NewAssetRepo(cfg.TxManager)
	journalRepo := document_repo.NewJournalRepo(cfg.TxManager)
	stockRepo := register_repo.NewStockRepo(cfg.TxManager)
	assetTxRepo := register_repo.NewAssetTransactionRepo(cfg.TxManager)
	nomRepo := nomenclature_repo.NewRepo(cfg.TxManager)

	// Audit file
	{
		store := postgres.NewReportStore(
			cfg.TxManager,
			orgRepo, accountRepo, partyRepo, productRepo, assetRepo,
			journalRepo, stockRepo, assetTxRepo, nomRepo,
		)
		service := saft.NewService(store)
		handler := handlers.NewSaftHandler(baseHandler, service, orgService)

		reports.GET("/saft", middleware.RequirePermission("report:saft:read"), handler.Generate)
	}

	// VAT registers
	{
		service := vat.NewService(orgRepo, journalRepo, partyRepo, cfg.TxManager)
		handler := handlers.NewVATHandler(baseHandler, service, orgService)

		reports.GET("/vat-registers", middleware.RequirePermission("report:vat:read"), handler.Export)
	}
}
