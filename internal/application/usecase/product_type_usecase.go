package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ProductTypeUseCase casos de uso para tipos de producto.
type ProductTypeUseCase struct {
	repo repository.ProductTypeRepository
}

// NewProductTypeUseCase construye el caso de uso.
func NewProductTypeUseCase(repo repository.ProductTypeRepository) *ProductTypeUseCase {
	return &ProductTypeUseCase{repo: repo}
}

// Create crea un tipo de producto. Nombre duplicado → domain.ErrDuplicate.
// Umbral ausente o no positivo usa el valor por defecto.
func (uc *ProductTypeUseCase) Create(ctx context.Context, in dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	threshold := in.LowStockThreshold
	if threshold <= 0 {
		threshold = entity.DefaultLowStockThreshold
	}
	productType := &entity.ProductType{Name: in.Name, LowStockThreshold: threshold}
	if err := uc.repo.Create(ctx, productType); err != nil {
		return nil, err
	}
	return toProductTypeResponse(productType), nil
}

// List devuelve tipos de producto con paginación.
func (uc *ProductTypeUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductTypeListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toProductTypeResponse(t))
	}
	return &dto.ProductTypeListResponse{Items: items, Total: len(items)}, nil
}

func toProductTypeResponse(t *entity.ProductType) *dto.ProductTypeResponse {
	return &dto.ProductTypeResponse{ID: t.ID, Name: t.Name, LowStockThreshold: t.LowStockThreshold}
}
