package http

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Mensajes de error del contrato público de POST /api/products.
const (
	msgJSONBodyRequired = "Invalid request. JSON body is required."
	msgBadTypes         = "Invalid data type for price or quantity."
	msgIntegrity        = "Database integrity error. Does the warehouse exist?"
	msgUnexpected       = "An unexpected error occurred."
)

// Campos obligatorios del cuerpo, en el orden en que se reportan si faltan.
var createProductRequired = []string{"name", "sku", "price", "warehouse_id", "initial_quantity"}

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.CreateProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.CreateProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto con stock inicial
// @Description  Inserta el producto y su fila de inventario inicial en una sola
//
//	transacción; cualquier fallo revierte ambas escrituras.
//
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "name, sku, price, warehouse_id, initial_quantity (+ company_id, product_type_id, supplier_id opcionales)"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &body); err != nil || len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgJSONBodyRequired})
	}

	var missing []string
	for _, field := range createProductRequired {
		if _, ok := body[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields: " + strings.Join(missing, ", "),
		})
	}

	var in dto.CreateProductInput
	if err := json.Unmarshal(body["name"], &in.Name); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgJSONBodyRequired})
	}
	if err := json.Unmarshal(body["sku"], &in.SKU); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgJSONBodyRequired})
	}

	price, ok := parseDecimalField(body["price"])
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgBadTypes})
	}
	in.Price = price

	quantity, ok := parseIntField(body["initial_quantity"])
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgBadTypes})
	}
	in.InitialQuantity = int(quantity)

	// Un warehouse_id que ni siquiera es entero nunca referencia una bodega
	// válida: mismo mensaje que la violación de FK al commit.
	warehouseID, ok := parseIntField(body["warehouse_id"])
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgIntegrity})
	}
	in.WarehouseID = warehouseID

	// Opcionales: se pasan tal cual; el esquema los valida al commit.
	in.CompanyID = optionalIntField(body, "company_id")
	in.ProductTypeID = optionalIntField(body, "product_type_id")
	in.SupplierID = optionalIntField(body, "supplier_id")

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: "Product with SKU '" + in.SKU + "' already exists.",
			})
		case errors.Is(err, domain.ErrIntegrity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgIntegrity})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgUnexpected})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product not found"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgUnexpected})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product not found"})
	}
	return c.JSON(out)
}

// parseDecimalField acepta un número JSON o un string decimal ("19.99").
func parseDecimalField(raw json.RawMessage) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return decimal.Zero, false
		}
		s = strings.TrimSpace(str)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseIntField acepta un entero JSON o un string entero ("100"). Rechaza fracciones.
func parseIntField(raw json.RawMessage) (int64, bool) {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(str)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func optionalIntField(body map[string]json.RawMessage, field string) *int64 {
	raw, ok := body[field]
	if !ok {
		return nil
	}
	n, ok := parseIntField(raw)
	if !ok {
		return nil
	}
	return &n
}
