package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-suite-api/internal/application/dto"
	"github.com/jhoicas/wms-suite-api/internal/application/usecase"
	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos de lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	items []entity.InventoryItem
	err   error

	gotCompanyID   string
	gotWarehouseID string
}

func (f *fakeInventoryRepo) ListItems(_ context.Context, companyID, warehouseID string) ([]entity.InventoryItem, error) {
	f.gotCompanyID = companyID
	f.gotWarehouseID = warehouseID
	return f.items, f.err
}

type fakeSalesRepo struct {
	sales map[string][]entity.SaleRecord
	err   error

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeSalesRepo) GetSalesByItem(_ context.Context, _, _ string, start, end time.Time) (map[string][]entity.SaleRecord, error) {
	f.gotStart = start
	f.gotEnd = end
	return f.sales, f.err
}

func testItem(id string, qty, minStock float64) entity.InventoryItem {
	return entity.InventoryItem{
		ID:            id,
		SKU:           "SKU-" + id,
		Name:          "Item " + id,
		Quantity:      decimal.NewFromFloat(qty),
		MinStockLevel: decimal.NewFromFloat(minStock),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ReorderUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestReorderUseCase_CombinaSnapshotConHistorial(t *testing.T) {
	invRepo := &fakeInventoryRepo{items: []entity.InventoryItem{
		testItem("agotado", 0, 10),
		testItem("sano", 100, 10),
	}}
	salesRepo := &fakeSalesRepo{sales: map[string][]entity.SaleRecord{
		"agotado": {{ItemID: "agotado", Quantity: decimal.NewFromInt(3)}},
	}}
	uc := usecase.NewReorderUseCase(invRepo, salesRepo, usecase.ReorderDefaults{})

	report, err := uc.GenerateReport(context.Background(), "company-1", dto.ReorderRequest{WarehouseID: "wh-1"})

	require.NoError(t, err)
	assert.Equal(t, "company-1", invRepo.gotCompanyID)
	assert.Equal(t, "wh-1", invRepo.gotWarehouseID)
	assert.Equal(t, "wh-1", report.WarehouseID)

	require.Len(t, report.Recommendations, 1, "solo el item agotado genera recomendación")
	rec := report.Recommendations[0]
	assert.Equal(t, "agotado", rec.ItemID)
	assert.Equal(t, "out_of_stock", rec.Reason)
	assert.Equal(t, "critical", rec.Priority)
	assert.True(t, rec.AverageDailySales.Equal(decimal.NewFromInt(3)),
		"la velocidad debe venir del historial del repo de ventas")
}

func TestReorderUseCase_DefaultsYClampDeParametros(t *testing.T) {
	invRepo := &fakeInventoryRepo{}
	salesRepo := &fakeSalesRepo{}
	uc := usecase.NewReorderUseCase(invRepo, salesRepo, usecase.ReorderDefaults{})

	// Sin parámetros: defaults (7 días de lead time, ventana de 30).
	report, err := uc.GenerateReport(context.Background(), "c", dto.ReorderRequest{})
	require.NoError(t, err)
	assert.Equal(t, 7, report.LeadTimeDays)
	assert.Equal(t, 30, report.SalesWindowDays)

	// La ventana de historial consultada debe cubrir los 30 días.
	windowDays := int(salesRepo.gotEnd.Sub(salesRepo.gotStart).Hours() / 24)
	assert.Equal(t, 30, windowDays)

	// Valores fuera de rango se acotan.
	report, err = uc.GenerateReport(context.Background(), "c", dto.ReorderRequest{
		LeadTimeDays:    500,
		SalesWindowDays: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, 90, report.LeadTimeDays)
	assert.Equal(t, 365, report.SalesWindowDays)
}

func TestReorderUseCase_PropagaErroresDeRepositorio(t *testing.T) {
	repoErr := errors.New("conexión perdida")

	uc := usecase.NewReorderUseCase(
		&fakeInventoryRepo{err: repoErr},
		&fakeSalesRepo{},
		usecase.ReorderDefaults{},
	)
	_, err := uc.GenerateReport(context.Background(), "c", dto.ReorderRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)

	uc = usecase.NewReorderUseCase(
		&fakeInventoryRepo{},
		&fakeSalesRepo{err: repoErr},
		usecase.ReorderDefaults{},
	)
	_, err = uc.GenerateReport(context.Background(), "c", dto.ReorderRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestReorderUseCase_SinItemsDevuelveReporteVacio(t *testing.T) {
	uc := usecase.NewReorderUseCase(&fakeInventoryRepo{}, &fakeSalesRepo{}, usecase.ReorderDefaults{})

	report, err := uc.GenerateReport(context.Background(), "c", dto.ReorderRequest{})

	require.NoError(t, err)
	assert.Empty(t, report.Recommendations)
	assert.False(t, report.GeneratedAt.IsZero())
}
