package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordena-api/internal/application/auth"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
	"github.com/jhoicas/ordena-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	LocationUC    *usecase.LocationUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProductUC     *usecase.ProductUseCase
	OrderUC       *usecase.OrderUseCase
	TemplateUC    *usecase.TemplateUseCase
	UserUC        *usecase.UserUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Todas menos el login pasan por el
// middleware de auth; las escrituras administrativas llevan además la puerta
// de rol. Suppliers no tiene ruta DELETE a propósito.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(access.RoleAdmin)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", admin, companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", admin, companyHandler.Create)
	companies.Put("/:id", admin, companyHandler.Update)
	companies.Delete("/:id", admin, companyHandler.Delete)

	// Locations
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", admin, locationHandler.Create)
	locations.Put("/:id", admin, locationHandler.Update)
	locations.Delete("/:id", admin, locationHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", admin, categoryHandler.Create)
	categories.Put("/:id", admin, categoryHandler.Update)
	categories.Delete("/:id", admin, categoryHandler.Delete)

	// Subcategories
	subcategories := protected.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Get("/", subcategoryHandler.List)
	subcategories.Get("/:id", subcategoryHandler.GetByID)
	subcategories.Post("/", admin, subcategoryHandler.Create)
	subcategories.Put("/:id", admin, subcategoryHandler.Update)
	subcategories.Delete("/:id", admin, subcategoryHandler.Delete)

	// Suppliers (sin DELETE)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", admin, supplierHandler.Create)
	suppliers.Put("/:id", admin, supplierHandler.Update)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Orders (cualquier rol autenticado; el alcance lo decide la política)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/pdf", orderHandler.PDF)
	orders.Get("/:id/xml", orderHandler.XML)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Templates
	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Post("/", admin, templateHandler.Create)
	templates.Put("/:id", admin, templateHandler.Update)
	templates.Delete("/:id", admin, templateHandler.Delete)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", admin, userHandler.List)
	users.Get("/:id", admin, userHandler.GetByID)
	users.Post("/", admin, userHandler.Create)
	users.Put("/:id", admin, userHandler.Update)
	users.Delete("/:id", admin, userHandler.Delete)
}
