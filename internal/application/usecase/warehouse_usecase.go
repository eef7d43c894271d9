package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega. La FK valida la empresa al commit (domain.ErrIntegrity si no existe).
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.CompanyID == 0 {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{CompanyID: in.CompanyID, Name: in.Name}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// ListByCompany lista bodegas de una empresa con paginación.
func (uc *WarehouseUseCase) ListByCompany(ctx context.Context, companyID int64, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{ID: w.ID, CompanyID: w.CompanyID, Name: w.Name}
}
