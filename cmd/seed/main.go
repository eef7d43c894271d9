// seed puebla la base con un conjunto de demostración: una empresa con dos
// bodegas, un proveedor, tipos de producto y productos con stock inicial, más
// entradas del log de inventario (ventas y reposiciones) para que el reporte
// de alertas de stock bajo tenga datos.
//
// Uso: go run ./cmd/seed
// Lee la conexión de DATABASE_URL (o DB_HOST/DB_PORT/... vía .env).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	companies := postgres.NewCompanyRepository(pool)
	warehouses := postgres.NewWarehouseRepository(pool)
	suppliers := postgres.NewSupplierRepository(pool)
	productTypes := postgres.NewProductTypeRepository(pool)
	products := postgres.NewProductRepository(pool)
	stock := postgres.NewStockRepository(pool)
	logs := postgres.NewInventoryLogRepository(pool)

	company := &entity.Company{Name: "Acme Distribución"}
	if err := companies.Create(ctx, company); err != nil {
		fail("empresa: %v", err)
	}

	central := &entity.Warehouse{CompanyID: company.ID, Name: "Bodega Central"}
	norte := &entity.Warehouse{CompanyID: company.ID, Name: "Bodega Norte"}
	for _, w := range []*entity.Warehouse{central, norte} {
		if err := warehouses.Create(ctx, w); err != nil {
			fail("bodega %s: %v", w.Name, err)
		}
	}

	supplier := &entity.Supplier{Name: "Importadora del Pacífico", ContactEmail: "ventas@pacifico.example"}
	if err := suppliers.Create(ctx, supplier); err != nil {
		fail("proveedor: %v", err)
	}

	bebidas := &entity.ProductType{Name: "Bebidas", LowStockThreshold: 10}
	snacks := &entity.ProductType{Name: "Snacks", LowStockThreshold: 15}
	for _, t := range []*entity.ProductType{bebidas, snacks} {
		if err := productTypes.Create(ctx, t); err != nil {
			fail("tipo %s: %v", t.Name, err)
		}
	}

	type seedProduct struct {
		sku, name string
		price     string
		typeID    int64
		warehouse *entity.Warehouse
		quantity  int
	}
	items := []seedProduct{
		{"BEB-001", "Agua mineral 600ml", "1.50", bebidas.ID, central, 5},
		{"BEB-002", "Jugo de naranja 1L", "3.20", bebidas.ID, central, 40},
		{"SNK-001", "Galletas surtidas", "2.75", snacks.ID, norte, 8},
	}

	byID := make(map[string]*entity.Product, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(item.price)
		if err != nil {
			fail("precio %s: %v", item.sku, err)
		}
		p := &entity.Product{
			CompanyID:     &company.ID,
			ProductTypeID: &item.typeID,
			SupplierID:    &supplier.ID,
			SKU:           item.sku,
			Name:          item.name,
			Price:         price,
		}
		if err := products.Create(ctx, p); err != nil {
			fail("producto %s: %v", item.sku, err)
		}
		if err := stock.Create(ctx, &entity.Stock{
			ProductID:   p.ID,
			WarehouseID: item.warehouse.ID,
			Quantity:    item.quantity,
		}); err != nil {
			fail("stock %s: %v", item.sku, err)
		}
		byID[item.sku] = p
	}

	now := time.Now().UTC()
	entries := []entity.InventoryLog{
		// BEB-001: venta reciente → debe alertar (5 <= 10 y hay ventas)
		{ProductID: byID["BEB-001"].ID, WarehouseID: central.ID, QuantityChange: -20, NewQuantity: 5, Reason: "sale", CreatedAt: now.AddDate(0, 0, -5)},
		// BEB-002: ventas pero con stock alto → no alerta
		{ProductID: byID["BEB-002"].ID, WarehouseID: central.ID, QuantityChange: -10, NewQuantity: 40, Reason: "sale order 1042", CreatedAt: now.AddDate(0, 0, -3)},
		// SNK-001: solo reposición y una venta fuera de ventana → no alerta
		{ProductID: byID["SNK-001"].ID, WarehouseID: norte.ID, QuantityChange: 30, NewQuantity: 8, Reason: "restock", CreatedAt: now.AddDate(0, 0, -2)},
		{ProductID: byID["SNK-001"].ID, WarehouseID: norte.ID, QuantityChange: -12, NewQuantity: 8, Reason: "sale", CreatedAt: now.AddDate(0, 0, -40)},
	}
	for _, e := range entries {
		entry := e
		if err := logs.Create(ctx, &entry); err != nil {
			fail("log %d: %v", e.ProductID, err)
		}
	}

	fmt.Printf("seed completado: empresa %d, %d productos\n", company.ID, len(items))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
