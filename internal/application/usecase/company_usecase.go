package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// CompanyUseCase casos de uso para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{Name: in.Name}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{ID: company.ID, Name: company.Name}, nil
}

// GetByID obtiene una empresa por ID. Devuelve nil, nil si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return &dto.CompanyResponse{ID: company.ID, Name: company.Name}, nil
}

// List devuelve empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyResponse{ID: c.ID, Name: c.Name})
	}
	return &dto.CompanyListResponse{Items: items, Total: len(items)}, nil
}
