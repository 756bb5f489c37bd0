package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/wms-suite-api/internal/application/dto"
	"github.com/jhoicas/wms-suite-api/internal/domain/analysis"
	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
	"github.com/jhoicas/wms-suite-api/internal/domain/repository"
)

// Límites para los parámetros de la corrida de reposición.
const (
	minLeadTimeDays    = 1
	maxLeadTimeDays    = 90
	minSalesWindowDays = 1
	maxSalesWindowDays = 365

	defaultSalesWindowDays = 30
)

// ReorderDefaults valores por defecto de la corrida (vienen de config).
type ReorderDefaults struct {
	LeadTimeDays    int
	SalesWindowDays int
}

// ReorderUseCase orquesta la corrida de reposición: combina el snapshot de
// inventario con el historial de ventas y delega el cálculo al núcleo puro.
type ReorderUseCase struct {
	invRepo   repository.InventoryRepository
	salesRepo repository.SalesHistoryRepository
	defaults  ReorderDefaults
}

// NewReorderUseCase construye el caso de uso.
func NewReorderUseCase(
	invRepo repository.InventoryRepository,
	salesRepo repository.SalesHistoryRepository,
	defaults ReorderDefaults,
) *ReorderUseCase {
	if defaults.LeadTimeDays <= 0 {
		defaults.LeadTimeDays = analysis.DefaultLeadTimeDays
	}
	if defaults.SalesWindowDays <= 0 {
		defaults.SalesWindowDays = defaultSalesWindowDays
	}
	return &ReorderUseCase{invRepo: invRepo, salesRepo: salesRepo, defaults: defaults}
}

// GenerateReport produce la lista priorizada de reposición para la empresa.
// Snapshot e historial se consultan en paralelo (llamadas independientes).
func (uc *ReorderUseCase) GenerateReport(
	ctx context.Context,
	companyID string,
	req dto.ReorderRequest,
) (*dto.ReorderReportDTO, error) {
	leadTime := clampDays(req.LeadTimeDays, uc.defaults.LeadTimeDays, minLeadTimeDays, maxLeadTimeDays)
	window := clampDays(req.SalesWindowDays, uc.defaults.SalesWindowDays, minSalesWindowDays, maxSalesWindowDays)

	now := time.Now()
	windowStart := now.AddDate(0, 0, -window)

	type itemsResult struct {
		items []entity.InventoryItem
		err   error
	}
	type salesResult struct {
		sales map[string][]entity.SaleRecord
		err   error
	}

	itemsCh := make(chan itemsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		items, err := uc.invRepo.ListItems(ctx, companyID, req.WarehouseID)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		sales, err := uc.salesRepo.GetSalesByItem(ctx, companyID, req.WarehouseID, windowStart, now)
		salesCh <- salesResult{sales, err}
	}()

	itemsRes := <-itemsCh
	salesRes := <-salesCh

	if itemsRes.err != nil {
		return nil, fmt.Errorf("reorder: snapshot de inventario: %w", itemsRes.err)
	}
	if salesRes.err != nil {
		return nil, fmt.Errorf("reorder: historial de ventas: %w", salesRes.err)
	}

	recommendations := analysis.GenerateRecommendations(itemsRes.items, salesRes.sales, leadTime, now)

	return &dto.ReorderReportDTO{
		GeneratedAt:     now,
		WarehouseID:     req.WarehouseID,
		LeadTimeDays:    leadTime,
		SalesWindowDays: window,
		Recommendations: toReorderDTOs(recommendations),
	}, nil
}

func toReorderDTOs(recs []analysis.ReorderRecommendation) []dto.ReorderRecommendationDTO {
	out := make([]dto.ReorderRecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.ReorderRecommendationDTO{
			ItemID:                r.ItemID,
			SKU:                   r.SKU,
			Name:                  r.Name,
			Reason:                string(r.Reason),
			Priority:              string(r.Priority),
			CurrentStock:          r.CurrentStock,
			RecommendedOrderQty:   r.RecommendedOrderQuantity.Round(2),
			EstimatedStockoutDate: r.EstimatedStockoutDate,
			AverageDailySales:     r.AverageDailySales.Round(2),
			DaysOfStockRemaining:  r.DaysOfStockRemaining,
			UrgencyScore:          r.UrgencyScore,
		})
	}
	return out
}

// clampDays aplica default cuando el valor pedido es cero o negativo y lo
// acota al rango permitido.
func clampDays(requested, def, min, max int) int {
	v := requested
	if v <= 0 {
		v = def
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}
