package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Reporte de márgenes ───────────────────────────────────────────────────────

// MarginAnalysisDTO margen derivado por item. Solo aparecen items con datos
// de precio completos (costo y precio > 0).
type MarginAnalysisDTO struct {
	ItemID               string          `json:"item_id"`
	SKU                  string          `json:"sku"`
	Name                 string          `json:"name"`
	Cost                 decimal.Decimal `json:"cost"`
	SellingPrice         decimal.Decimal `json:"selling_price"`
	MarginPct            decimal.Decimal `json:"margin_pct"` // puede ser negativo
	ProfitPerUnit        decimal.Decimal `json:"profit_per_unit"`
	TotalInventoryProfit decimal.Decimal `json:"total_inventory_profit"`
	Category             string          `json:"category"` // negative|very_low|low|good|excellent
}

// MarginSummaryDTO agregados de portafolio del reporte de márgenes.
type MarginSummaryDTO struct {
	TotalProducts        int             `json:"total_products"`
	ProductsWithPricing  int             `json:"products_with_pricing"`
	PricingCoveragePct   decimal.Decimal `json:"pricing_coverage_pct"`
	AverageMarginPct     decimal.Decimal `json:"average_margin_pct"`
	TotalInventoryValue  decimal.Decimal `json:"total_inventory_value"`  // sum(cost*qty)
	TotalPotentialProfit decimal.Decimal `json:"total_potential_profit"` // sum(profit*qty)
	NegativeMarginCount  int             `json:"negative_margin_count"`
	LowMarginCount       int             `json:"low_margin_count"` // margen en [0,20)
}

// MarginReportDTO respuesta completa de GET /api/analytics/margins.
// Los análisis van ordenados ascendente por margen (el peor primero).
type MarginReportDTO struct {
	GeneratedAt time.Time           `json:"generated_at"`
	WarehouseID string              `json:"warehouse_id,omitempty"` // vacío = stock global
	Summary     MarginSummaryDTO    `json:"summary"`
	Analyses    []MarginAnalysisDTO `json:"analyses"`
}

// ── Reposición ────────────────────────────────────────────────────────────────

// ReorderRequest parámetros para GET /api/inventory/reorder.
type ReorderRequest struct {
	WarehouseID     string `query:"warehouse_id"`      // vacío = stock global
	LeadTimeDays    int    `query:"lead_time_days"`    // default de config, clamp 1..90
	SalesWindowDays int    `query:"sales_window_days"` // ventana de historial, default 30
}

// ReorderRecommendationDTO recomendación de reposición por item.
// days_of_stock_remaining es null cuando no hay velocidad de venta conocida.
type ReorderRecommendationDTO struct {
	ItemID                string          `json:"item_id"`
	SKU                   string          `json:"sku"`
	Name                  string          `json:"name"`
	Reason                string          `json:"reason"`   // out_of_stock|below_minimum|near_stockout|high_velocity
	Priority              string          `json:"priority"` // low|medium|high|critical
	CurrentStock          decimal.Decimal `json:"current_stock"`
	RecommendedOrderQty   decimal.Decimal `json:"recommended_order_qty"`
	EstimatedStockoutDate *time.Time      `json:"estimated_stockout_date,omitempty"`
	AverageDailySales     decimal.Decimal `json:"average_daily_sales"`
	DaysOfStockRemaining  *int            `json:"days_of_stock_remaining"`
	UrgencyScore          int             `json:"urgency_score"`
}

// ReorderReportDTO respuesta completa de GET /api/inventory/reorder,
// ordenada descendente por urgency_score.
type ReorderReportDTO struct {
	GeneratedAt     time.Time                  `json:"generated_at"`
	WarehouseID     string                     `json:"warehouse_id,omitempty"`
	LeadTimeDays    int                        `json:"lead_time_days"`
	SalesWindowDays int                        `json:"sales_window_days"`
	Recommendations []ReorderRecommendationDTO `json:"recommendations"`
}

// ── Calculadora rápida ────────────────────────────────────────────────────────

// QuickCalcRequest entrada de POST /api/analytics/calculator. Cost y
// SellingPrice aceptan número o string JSON (decimal exacto); Quantity <= 0
// se ajusta a 1.
type QuickCalcRequest struct {
	Cost         decimal.Decimal `json:"cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int64           `json:"quantity"`
}

// QuickCalcResponse resultado de la calculadora rápida.
type QuickCalcResponse struct {
	Cost         decimal.Decimal `json:"cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int64           `json:"quantity"`
	Profit       decimal.Decimal `json:"profit"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
	MarkupPct    decimal.Decimal `json:"markup_pct"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	Category     string          `json:"category"`
}
