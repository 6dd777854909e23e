package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledgerly/ledgerly-api/internal/application/auth"
	"github.com/ledgerly/ledgerly-api/internal/application/report"
	"github.com/ledgerly/ledgerly-api/internal/application/usecase"
	"github.com/ledgerly/ledgerly-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	SearchUC    *usecase.SearchUseCase
	InventoryUC *usecase.InventoryUseCase
	TemplateUC  *usecase.TemplateUseCase
	ReportUC    *report.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Cada grupo protegido declara el grupo
// de roles que lo puede usar; la política vive en internal/domain/access.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Configuración de la empresa del token
	settings := protected.Group("/companies", RequireRole(access.GroupSettings))
	settings.Put("/settings", companyHandler.UpdateSettings)

	// Búsqueda global: todo rol autenticado, sin grupo adicional.
	searchHandler := NewSearchHandler(deps.SearchUC)
	protected.Get("/search", searchHandler.Search)

	// Ajustes de inventario
	invGroup := protected.Group("/inventory", RequireRole(access.GroupInventoryManage))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/adjustments", inventoryHandler.AdjustStock)

	// Catálogo de plantillas
	templates := protected.Group("/templates", RequireRole(access.GroupSettings))
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id/preview", templateHandler.Preview)

	// Reportes de ventas
	reports := protected.Group("/reports", RequireRole(access.GroupReports))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/html", reportHandler.HTML)
	reports.Get("/pdf", reportHandler.PDF)
}
