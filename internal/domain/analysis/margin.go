// Package analysis contiene el núcleo puro de analítica de inventario:
// márgenes de ganancia por item, resumen de portafolio, recomendaciones de
// reposición y la calculadora rápida. Todas las funciones son puras y
// síncronas sobre snapshots inmutables; son seguras de invocar en paralelo
// con inputs distintos. Toda la aritmética monetaria usa shopspring/decimal
// para que los umbrales exactos (0, 10, 20, 40) se evalúen sin deriva de
// punto flotante.
package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// MarginCategory clasificación fija y monotónica del porcentaje de margen.
// La clasificación es puramente numérica; el color o ícono con que se
// presenta es asunto del consumidor, nunca de este núcleo.
type MarginCategory string

const (
	CategoryNegative  MarginCategory = "negative"  // margen < 0
	CategoryVeryLow   MarginCategory = "very_low"  // [0, 10)
	CategoryLow       MarginCategory = "low"       // [10, 20)
	CategoryGood      MarginCategory = "good"      // [20, 40)
	CategoryExcellent MarginCategory = "excellent" // >= 40
)

var (
	veryLowUpper = decimal.NewFromInt(10)
	lowUpper     = decimal.NewFromInt(20)
	goodUpper    = decimal.NewFromInt(40)
)

// ClassifyMargin aplica la tabla de categorías de margen. Es la única
// implementación del bucketing; la comparten el análisis de productos y la
// calculadora rápida.
func ClassifyMargin(margin decimal.Decimal) MarginCategory {
	switch {
	case margin.IsNegative():
		return CategoryNegative
	case margin.LessThan(veryLowUpper):
		return CategoryVeryLow
	case margin.LessThan(lowUpper):
		return CategoryLow
	case margin.LessThan(goodUpper):
		return CategoryGood
	default:
		return CategoryExcellent
	}
}

// MarginAnalysis margen derivado para un item con datos de precio completos.
type MarginAnalysis struct {
	ItemID               string
	SKU                  string
	Name                 string
	Cost                 decimal.Decimal
	SellingPrice         decimal.Decimal
	Margin               decimal.Decimal // porcentaje, puede ser negativo
	ProfitPerUnit        decimal.Decimal
	TotalInventoryProfit decimal.Decimal // ProfitPerUnit * existencia actual
	Category             MarginCategory
}

// MarginSummary agregado de portafolio sobre una colección de análisis.
type MarginSummary struct {
	TotalProducts        int
	ProductsWithPricing  int
	AverageMargin        decimal.Decimal
	TotalInventoryValue  decimal.Decimal // sum(cost * quantity)
	TotalPotentialProfit decimal.Decimal // sum(TotalInventoryProfit)
	NegativeMarginCount  int
	LowMarginCount       int // margen en [0, 20)
}

// AnalyzeProducts calcula el margen por item. Los items con costo <= 0 o
// precio de venta <= 0 se excluyen del resultado (no se produce un registro
// en cero). El resultado queda ordenado ascendente por margen (el peor
// primero, para que los problemas salgan arriba en cualquier listado) con
// empates resueltos por orden de entrada (sort estable).
func AnalyzeProducts(items []entity.InventoryItem) []MarginAnalysis {
	analyses := make([]MarginAnalysis, 0, len(items))
	for _, it := range items {
		if !it.HasPricing() {
			continue
		}
		// El filtro garantiza precio > 0: la división nunca es por cero.
		profit := it.Price.Sub(it.Cost)
		margin := profit.Div(it.Price).Mul(hundred)
		analyses = append(analyses, MarginAnalysis{
			ItemID:               it.ID,
			SKU:                  it.SKU,
			Name:                 it.Name,
			Cost:                 it.Cost,
			SellingPrice:         it.Price,
			Margin:               margin,
			ProfitPerUnit:        profit,
			TotalInventoryProfit: profit.Mul(it.Quantity),
			Category:             ClassifyMargin(margin),
		})
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].Margin.LessThan(analyses[j].Margin)
	})
	return analyses
}

// GenerateSummary agrega los análisis en un resumen de portafolio.
// AverageMargin es 0 cuando no hay análisis (sin división por cero).
func GenerateSummary(items []entity.InventoryItem, analyses []MarginAnalysis) MarginSummary {
	summary := MarginSummary{
		TotalProducts:       len(items),
		ProductsWithPricing: len(analyses),
	}

	for _, it := range items {
		summary.TotalInventoryValue = summary.TotalInventoryValue.Add(it.Cost.Mul(it.Quantity))
	}

	var marginSum decimal.Decimal
	for _, a := range analyses {
		marginSum = marginSum.Add(a.Margin)
		summary.TotalPotentialProfit = summary.TotalPotentialProfit.Add(a.TotalInventoryProfit)
		switch {
		case a.Margin.IsNegative():
			summary.NegativeMarginCount++
		case a.Margin.LessThan(lowUpper):
			summary.LowMarginCount++
		}
	}
	if len(analyses) > 0 {
		summary.AverageMargin = marginSum.Div(decimal.NewFromInt(int64(len(analyses))))
	}
	return summary
}

// PricingCoverage porcentaje de productos con datos de precio completos.
// Devuelve 0 cuando el resumen no tiene productos.
func (s MarginSummary) PricingCoverage() decimal.Decimal {
	if s.TotalProducts == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.ProductsWithPricing)).
		Div(decimal.NewFromInt(int64(s.TotalProducts))).
		Mul(hundred)
}

// CalculateMargin calcula (margen, ganancia, markup) para un costo y precio.
// Con precio <= 0 devuelve todo en cero: se usa sobre entrada interactiva
// parcial y no debe fallar mientras el usuario todavía está escribiendo.
func CalculateMargin(cost, price decimal.Decimal) (margin, profit, markup decimal.Decimal) {
	if !price.IsPositive() {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}
	profit = price.Sub(cost)
	margin = profit.Div(price).Mul(hundred)
	if cost.IsPositive() {
		markup = profit.Div(cost).Mul(hundred)
	}
	return margin, profit, markup
}
