package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

// WarehouseHandler maneja las peticiones HTTP para Warehouse.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "company_id y name"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgJSONBodyRequired})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing required fields: company_id, name"})
		case errors.Is(err, domain.ErrIntegrity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Database integrity error. Does the company exist?"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgUnexpected})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany godoc
// @Summary      Listar bodegas de una empresa
// @Tags         warehouses
// @Produce      json
// @Param        id      path   int  true   "ID de la empresa"
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.WarehouseListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/warehouses [get]
func (h *WarehouseHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListByCompany(c.Context(), companyID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgUnexpected})
	}
	return c.JSON(out)
}
