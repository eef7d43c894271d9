package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// CreateProductUseCase crea un producto con su stock inicial en una sola transacción.
type CreateProductUseCase struct {
	tx       TxRunner
	products repository.ProductRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(tx TxRunner, products repository.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{tx: tx, products: products}
}

// Create inserta el producto, obtiene su ID generado e inserta la fila de
// inventario inicial; ambas escrituras hacen commit juntas. Cualquier fallo
// después del insert del producto (ej. bodega inexistente) revierte todo.
//
// El SKU se verifica antes de abrir la tx para responder 409 con mensaje
// amable; el índice único de products.sku cierra la ventana entre dos creates
// concurrentes con el mismo SKU (23505 → ErrDuplicate igualmente).
//
// No se escribe entrada en inventory_logs: el log captura cambios posteriores
// a la creación, no el stock inicial.
func (uc *CreateProductUseCase) Create(ctx context.Context, in dto.CreateProductInput) (*dto.CreateProductResponse, error) {
	existing, err := uc.products.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	product := &entity.Product{
		CompanyID:     in.CompanyID,
		ProductTypeID: in.ProductTypeID,
		SupplierID:    in.SupplierID,
		SKU:           in.SKU,
		Name:          in.Name,
		Price:         in.Price,
	}

	err = uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return stockRepo.Create(ctx, &entity.Stock{
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.InitialQuantity,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Message: "Product and initial inventory created successfully.",
		Product: dto.CreatedProduct{ID: product.ID, Name: product.Name, SKU: product.SKU},
	}, nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (uc *CreateProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return &dto.ProductResponse{
		ID:            product.ID,
		CompanyID:     product.CompanyID,
		ProductTypeID: product.ProductTypeID,
		SupplierID:    product.SupplierID,
		SKU:           product.SKU,
		Name:          product.Name,
		Price:         product.Price,
	}, nil
}
