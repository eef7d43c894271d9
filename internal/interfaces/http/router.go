package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProductTypeUC *usecase.ProductTypeUseCase
	CreateProduct *usecase.CreateProductUseCase
	LowStockUC    *usecase.LowStockAlertUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies + reporte de alertas por empresa
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	alertHandler := NewAlertHandler(deps.LowStockUC)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/warehouses", warehouseHandler.ListByCompany)
	companies.Get("/:company_id/alerts/low-stock", alertHandler.LowStock)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.Create)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Product types (definen el umbral de alerta)
	productTypes := api.Group("/product-types")
	productTypeHandler := NewProductTypeHandler(deps.ProductTypeUC)
	productTypes.Post("/", productTypeHandler.Create)
	productTypes.Get("/", productTypeHandler.List)

	// Products (creación transaccional con stock inicial)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CreateProduct)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
}
