package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. El email de contacto es opcional.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{Name: in.Name, ContactEmail: in.ContactEmail}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{ID: supplier.ID, Name: supplier.Name, ContactEmail: supplier.ContactEmail}, nil
}

// List devuelve proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SupplierResponse{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail})
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}
