package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

// AlertHandler maneja el reporte de alertas de stock bajo.
type AlertHandler struct {
	uc *usecase.LowStockAlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.LowStockAlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// LowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Description  Una alerta por par (producto, bodega) con stock en o bajo el
//
//	umbral del tipo y ventas en los últimos 30 días, con proyección
//	de días hasta el agotamiento.
//
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
	}
	out, err := h.uc.GetAlerts(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgUnexpected})
	}
	return c.JSON(out)
}
