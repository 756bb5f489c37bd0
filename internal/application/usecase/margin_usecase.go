package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/wms-suite-api/internal/application/dto"
	"github.com/jhoicas/wms-suite-api/internal/domain/analysis"
	"github.com/jhoicas/wms-suite-api/internal/domain/repository"
)

// ReportCache puerto de caché para el reporte de márgenes (implementado en
// infrastructure/cache sobre Redis). El núcleo de análisis se mantiene puro;
// la caché vive solo en esta capa.
type ReportCache interface {
	GetMarginReport(ctx context.Context, key string) (*dto.MarginReportDTO, bool, error)
	SetMarginReport(ctx context.Context, key string, report *dto.MarginReportDTO, ttl time.Duration) error
}

// MarginUseCase genera el reporte de márgenes de la empresa: análisis por
// item (el peor margen primero) más el resumen de portafolio.
type MarginUseCase struct {
	invRepo  repository.InventoryRepository
	cache    ReportCache // opcional: nil desactiva la caché
	cacheTTL time.Duration
}

// NewMarginUseCase construye el caso de uso. cache puede ser nil.
func NewMarginUseCase(invRepo repository.InventoryRepository, cache ReportCache, cacheTTL time.Duration) *MarginUseCase {
	return &MarginUseCase{invRepo: invRepo, cache: cache, cacheTTL: cacheTTL}
}

// GetMarginsReport arma el reporte para la empresa (y bodega opcional).
// Con caché activa, un hit devuelve el reporte previo dentro del TTL; un miss
// recomputa desde el snapshot fresco y repobla la entrada.
func (uc *MarginUseCase) GetMarginsReport(
	ctx context.Context,
	companyID, warehouseID string,
) (*dto.MarginReportDTO, error) {
	cacheKey := fmt.Sprintf("margins:%s:%s", companyID, warehouseID)
	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetMarginReport(ctx, cacheKey); err == nil && ok {
			return cached, nil
		}
		// Errores de caché no bloquean el reporte: se recomputa.
	}

	items, err := uc.invRepo.ListItems(ctx, companyID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("margins: snapshot de inventario: %w", err)
	}

	analyses := analysis.AnalyzeProducts(items)
	summary := analysis.GenerateSummary(items, analyses)

	report := &dto.MarginReportDTO{
		GeneratedAt: time.Now(),
		WarehouseID: warehouseID,
		Summary: dto.MarginSummaryDTO{
			TotalProducts:        summary.TotalProducts,
			ProductsWithPricing:  summary.ProductsWithPricing,
			PricingCoveragePct:   summary.PricingCoverage().Round(2),
			AverageMarginPct:     summary.AverageMargin.Round(2),
			TotalInventoryValue:  summary.TotalInventoryValue.Round(2),
			TotalPotentialProfit: summary.TotalPotentialProfit.Round(2),
			NegativeMarginCount:  summary.NegativeMarginCount,
			LowMarginCount:       summary.LowMarginCount,
		},
		Analyses: toMarginAnalysisDTOs(analyses),
	}

	if uc.cache != nil {
		_ = uc.cache.SetMarginReport(ctx, cacheKey, report, uc.cacheTTL)
	}
	return report, nil
}

func toMarginAnalysisDTOs(analyses []analysis.MarginAnalysis) []dto.MarginAnalysisDTO {
	out := make([]dto.MarginAnalysisDTO, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, dto.MarginAnalysisDTO{
			ItemID:               a.ItemID,
			SKU:                  a.SKU,
			Name:                 a.Name,
			Cost:                 a.Cost,
			SellingPrice:         a.SellingPrice,
			MarginPct:            a.Margin.Round(2),
			ProfitPerUnit:        a.ProfitPerUnit,
			TotalInventoryProfit: a.TotalInventoryProfit.Round(2),
			Category:             string(a.Category),
		})
	}
	return out
}
