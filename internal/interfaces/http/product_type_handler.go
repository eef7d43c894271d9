package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

// ProductTypeHandler maneja las peticiones HTTP para ProductType.
type ProductTypeHandler struct {
	uc *usecase.ProductTypeUseCase
}

// NewProductTypeHandler construye el handler.
func NewProductTypeHandler(uc *usecase.ProductTypeUseCase) *ProductTypeHandler {
	return &ProductTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de producto
// @Description  El nombre es único; el umbral de stock bajo por defecto es 10.
// @Tags         product-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductTypeRequest  true  "name y low_stock_threshold opcional"
// @Success      201   {object}  dto.ProductTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-types [post]
func (h *ProductTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgJSONBodyRequired})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing required fields: name"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: "Product type '" + in.Name + "' already exists.",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgUnexpected})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tipos de producto
// @Tags         product-types
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductTypeListResponse
// @Router       /api/product-types [get]
func (h *ProductTypeHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgUnexpected})
	}
	return c.JSON(out)
}
