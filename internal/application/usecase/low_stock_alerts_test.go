package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStockAlerts_EmpresaInexistente(t *testing.T) {
	companies := newFakeCompanyRepo() // vacío
	alerts := &fakeAlertRepo{}
	uc := usecase.NewLowStockAlertUseCase(companies, alerts)

	_, err := uc.GetAlerts(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	// La agregación no se ejecuta si la empresa no existe.
	assert.Zero(t, alerts.calls)
}

func TestLowStockAlerts_SinAlertas(t *testing.T) {
	companies := newFakeCompanyRepo("Acme")
	alerts := &fakeAlertRepo{}
	uc := usecase.NewLowStockAlertUseCase(companies, alerts)

	resp, err := uc.GetAlerts(context.Background(), 1)
	require.NoError(t, err)

	// Lista vacía pero no nil: serializa como [] y no como null.
	assert.NotNil(t, resp.Alerts)
	assert.Empty(t, resp.Alerts)
	assert.Zero(t, resp.TotalAlerts)
}

func TestLowStockAlerts_VentanaDeTreintaDias(t *testing.T) {
	companies := newFakeCompanyRepo("Acme")
	alerts := &fakeAlertRepo{}
	uc := usecase.NewLowStockAlertUseCase(companies, alerts)

	before := time.Now().UTC().AddDate(0, 0, -30)
	_, err := uc.GetAlerts(context.Background(), 1)
	after := time.Now().UTC().AddDate(0, 0, -30)
	require.NoError(t, err)

	assert.Equal(t, int64(1), alerts.lastCompanyID)
	assert.False(t, alerts.lastSince.Before(before))
	assert.False(t, alerts.lastSince.After(after))
}

func TestLowStockAlerts_ProyeccionDeAgotamiento(t *testing.T) {
	supplierID := int64(9)
	supplierName := "Importadora del Pacífico"
	supplierEmail := "ventas@pacifico.example"

	companies := newFakeCompanyRepo("Acme")
	alerts := &fakeAlertRepo{rows: []repository.LowStockRow{
		{
			ProductID:     3,
			ProductName:   "Agua mineral 600ml",
			SKU:           "BEB-001",
			WarehouseID:   1,
			WarehouseName: "Bodega Central",
			CurrentStock:  5,
			Threshold:     10,
			SupplierID:    &supplierID,
			SupplierName:  &supplierName,
			SupplierEmail: &supplierEmail,
			TotalSold:     20,
		},
	}}
	uc := usecase.NewLowStockAlertUseCase(companies, alerts)

	resp, err := uc.GetAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, 1, resp.TotalAlerts)

	alert := resp.Alerts[0]
	assert.Equal(t, "BEB-001", alert.SKU)
	assert.Equal(t, 5, alert.CurrentStock)
	assert.Equal(t, 10, alert.Threshold)

	// 20 vendidos en 30 días → 0.666../día; 5 / 0.666.. = 7.5 → trunca a 7.
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, 7, *alert.DaysUntilStockout)

	require.NotNil(t, alert.Supplier)
	assert.Equal(t, int64(9), alert.Supplier.ID)
	assert.Equal(t, "Importadora del Pacífico", alert.Supplier.Name)
	assert.Equal(t, "ventas@pacifico.example", alert.Supplier.ContactEmail)
}

func TestLowStockAlerts_SinProveedor(t *testing.T) {
	companies := newFakeCompanyRepo("Acme")
	alerts := &fakeAlertRepo{rows: []repository.LowStockRow{
		{
			ProductID:     4,
			ProductName:   "Galletas surtidas",
			SKU:           "SNK-001",
			WarehouseID:   2,
			WarehouseName: "Bodega Norte",
			CurrentStock:  2,
			Threshold:     15,
			TotalSold:     60,
		},
	}}
	uc := usecase.NewLowStockAlertUseCase(companies, alerts)

	resp, err := uc.GetAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 1)

	alert := resp.Alerts[0]
	assert.Nil(t, alert.Supplier)

	// 60/30 = 2/día; 2 / 2 = 1 día.
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, 1, *alert.DaysUntilStockout)
}
