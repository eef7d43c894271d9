package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// salesWindowDays ventana de ventas recientes para la velocidad.
const salesWindowDays = 30

// LowStockAlertUseCase genera el reporte de alertas de stock bajo de una empresa,
// enriquecido con la velocidad de ventas de los últimos 30 días y la proyección
// de días hasta el agotamiento.
type LowStockAlertUseCase struct {
	companies repository.CompanyRepository
	alerts    repository.AlertRepository
}

// NewLowStockAlertUseCase construye el caso de uso.
func NewLowStockAlertUseCase(
	companies repository.CompanyRepository,
	alerts repository.AlertRepository,
) *LowStockAlertUseCase {
	return &LowStockAlertUseCase{companies: companies, alerts: alerts}
}

// GetAlerts devuelve una alerta por par (producto, bodega) con stock en o bajo
// el umbral del tipo y ventas en la ventana. Empresa inexistente → domain.ErrNotFound
// antes de ejecutar la agregación. Solo lectura.
func (uc *LowStockAlertUseCase) GetAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	since := time.Now().UTC().AddDate(0, 0, -salesWindowDays)
	rows, err := uc.alerts.LowStock(ctx, companyID, since)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlert, 0, len(rows))
	for _, row := range rows {
		alert := dto.LowStockAlert{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			SKU:           row.SKU,
			WarehouseID:   row.WarehouseID,
			WarehouseName: row.WarehouseName,
			CurrentStock:  row.CurrentStock,
			Threshold:     row.Threshold,
		}

		// Promedio diario sobre la ventana completa; la proyección trunca
		// hacia abajo (7.5 días de stock → 7).
		avgDailySales := float64(row.TotalSold) / float64(salesWindowDays)
		if avgDailySales > 0 {
			days := int(float64(row.CurrentStock) / avgDailySales)
			alert.DaysUntilStockout = &days
		}

		if row.SupplierID != nil {
			info := dto.SupplierInfo{ID: *row.SupplierID}
			if row.SupplierName != nil {
				info.Name = *row.SupplierName
			}
			if row.SupplierEmail != nil {
				info.ContactEmail = *row.SupplierEmail
			}
			alert.Supplier = &info
		}

		alerts = append(alerts, alert)
	}

	return &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}
