package analysis_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-suite-api/internal/domain/analysis"
	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// item construye un snapshot con cantidad, costo y precio. minStock = 0.
func item(id string, qty, cost, price float64) entity.InventoryItem {
	return entity.InventoryItem{
		ID:       id,
		SKU:      "SKU-" + id,
		Name:     "Item " + id,
		Quantity: decimal.NewFromFloat(qty),
		Cost:     decimal.NewFromFloat(cost),
		Price:    decimal.NewFromFloat(price),
	}
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests CalculateMargin — vectores exactos de la calculadora
// ──────────────────────────────────────────────────────────────────────────────

// Costo 10, precio 20: margen 50%, ganancia 10, markup 100%.
func TestCalculateMargin_CostoMitadDelPrecio(t *testing.T) {
	margin, profit, markup := analysis.CalculateMargin(dec(10), dec(20))

	assert.True(t, margin.Equal(dec(50)), "margen debe ser 50, fue %s", margin)
	assert.True(t, profit.Equal(dec(10)), "ganancia debe ser 10, fue %s", profit)
	assert.True(t, markup.Equal(dec(100)), "markup debe ser 100, fue %s", markup)
	assert.Equal(t, analysis.CategoryExcellent, analysis.ClassifyMargin(margin))
}

// Costo 20, precio 20: todo en cero; margen 0 clasifica como Very Low.
func TestCalculateMargin_CostoIgualAlPrecio(t *testing.T) {
	margin, profit, markup := analysis.CalculateMargin(dec(20), dec(20))

	assert.True(t, margin.IsZero())
	assert.True(t, profit.IsZero())
	assert.True(t, markup.IsZero())
	assert.Equal(t, analysis.CategoryVeryLow, analysis.ClassifyMargin(margin))
}

// Costo 25, precio 20: margen -25%, ganancia -5, categoría Negative.
func TestCalculateMargin_CostoMayorAlPrecio(t *testing.T) {
	margin, profit, _ := analysis.CalculateMargin(dec(25), dec(20))

	assert.True(t, margin.Equal(dec(-25)), "margen debe ser -25, fue %s", margin)
	assert.True(t, profit.Equal(dec(-5)), "ganancia debe ser -5, fue %s", profit)
	assert.Equal(t, analysis.CategoryNegative, analysis.ClassifyMargin(margin))
}

// Precio <= 0 (entrada parcial): todo en cero, sin error ni panic.
func TestCalculateMargin_PrecioNoPositivo(t *testing.T) {
	for _, price := range []decimal.Decimal{decimal.Zero, dec(-1)} {
		margin, profit, markup := analysis.CalculateMargin(dec(10), price)
		assert.True(t, margin.IsZero())
		assert.True(t, profit.IsZero())
		assert.True(t, markup.IsZero())
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ClassifyMargin — bordes exactos de la tabla
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyMargin_BordesDeCategoria(t *testing.T) {
	cases := []struct {
		margin   float64
		expected analysis.MarginCategory
	}{
		{-0.01, analysis.CategoryNegative},
		{0, analysis.CategoryVeryLow},
		{9.99, analysis.CategoryVeryLow},
		{10, analysis.CategoryLow},
		{19.99, analysis.CategoryLow},
		{20, analysis.CategoryGood},
		{39.99, analysis.CategoryGood},
		{40, analysis.CategoryExcellent},
		{95, analysis.CategoryExcellent},
	}
	for _, tc := range cases {
		got := analysis.ClassifyMargin(dec(tc.margin))
		assert.Equal(t, tc.expected, got, "margen %v", tc.margin)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AnalyzeProducts
// ──────────────────────────────────────────────────────────────────────────────

// Items sin datos de precio (costo <= 0 o precio <= 0) quedan fuera del análisis.
func TestAnalyzeProducts_ExcluyeItemsSinPrecio(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", 5, 10, 20), // válido
		item("b", 5, 0, 20),  // sin costo
		item("c", 5, 10, 0),  // sin precio
		item("d", 5, -3, 20), // costo negativo
	}

	analyses := analysis.AnalyzeProducts(items)

	require.Len(t, analyses, 1, "solo el item con precio completo entra al análisis")
	assert.Equal(t, "a", analyses[0].ItemID)
}

// El resultado va ordenado ascendente por margen (el peor primero).
func TestAnalyzeProducts_OrdenAscendentePorMargen(t *testing.T) {
	items := []entity.InventoryItem{
		item("alto", 1, 10, 50),    // margen 80
		item("negativo", 1, 25, 20), // margen -25
		item("medio", 1, 15, 20),   // margen 25
	}

	analyses := analysis.AnalyzeProducts(items)

	require.Len(t, analyses, 3)
	assert.Equal(t, "negativo", analyses[0].ItemID)
	assert.Equal(t, "medio", analyses[1].ItemID)
	assert.Equal(t, "alto", analyses[2].ItemID)
	for i := 0; i < len(analyses)-1; i++ {
		assert.True(t, analyses[i].Margin.LessThanOrEqual(analyses[i+1].Margin),
			"margen[%d] debe ser <= margen[%d]", i, i+1)
	}
}

// Empates de margen conservan el orden de entrada (sort estable).
func TestAnalyzeProducts_EmpatesConservanOrdenDeEntrada(t *testing.T) {
	items := []entity.InventoryItem{
		item("primero", 1, 10, 20),
		item("segundo", 1, 5, 10), // mismo margen 50%
	}

	analyses := analysis.AnalyzeProducts(items)

	require.Len(t, analyses, 2)
	assert.Equal(t, "primero", analyses[0].ItemID)
	assert.Equal(t, "segundo", analyses[1].ItemID)
}

func TestAnalyzeProducts_CamposDerivados(t *testing.T) {
	analyses := analysis.AnalyzeProducts([]entity.InventoryItem{item("a", 4, 10, 20)})

	require.Len(t, analyses, 1)
	a := analyses[0]
	assert.True(t, a.ProfitPerUnit.Equal(dec(10)))
	assert.True(t, a.TotalInventoryProfit.Equal(dec(40)), "ganancia total = 10 * 4 unidades")
	assert.Equal(t, analysis.CategoryExcellent, a.Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GenerateSummary
// ──────────────────────────────────────────────────────────────────────────────

// Entrada vacía: agregados en cero, sin división por cero.
func TestGenerateSummary_Vacio(t *testing.T) {
	summary := analysis.GenerateSummary(nil, nil)

	assert.Equal(t, 0, summary.TotalProducts)
	assert.Equal(t, 0, summary.ProductsWithPricing)
	assert.True(t, summary.AverageMargin.IsZero())
	assert.True(t, summary.TotalInventoryValue.IsZero())
	assert.True(t, summary.PricingCoverage().IsZero())
}

func TestGenerateSummary_Agregados(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", 4, 10, 20), // margen 50, valor 40, ganancia total 40
		item("b", 2, 25, 20), // margen -25, valor 50, ganancia total -10
		item("c", 3, 15, 20), // margen 25, valor 45
		item("d", 1, 0, 0),   // sin precio: cuenta en total, no en análisis
	}
	analyses := analysis.AnalyzeProducts(items)
	summary := analysis.GenerateSummary(items, analyses)

	assert.Equal(t, 4, summary.TotalProducts)
	assert.Equal(t, 3, summary.ProductsWithPricing)
	assert.Equal(t, 1, summary.NegativeMarginCount)
	assert.Equal(t, 0, summary.LowMarginCount, "ningún margen en [0,20)")
	assert.True(t, summary.TotalInventoryValue.Equal(dec(135)), "40+50+45, fue %s", summary.TotalInventoryValue)
	assert.True(t, summary.TotalPotentialProfit.Equal(dec(45)), "40-10+15, fue %s", summary.TotalPotentialProfit)

	// (50 - 25 + 25) / 3
	expectedAvg := dec(50).Div(dec(3))
	assert.True(t, summary.AverageMargin.Equal(expectedAvg),
		"promedio debe ser %s, fue %s", expectedAvg, summary.AverageMargin)

	assert.True(t, summary.PricingCoverage().Equal(dec(75)), "3 de 4 items con precio")
}
