package analysis_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/wms-suite-api/internal/domain/analysis"
)

func TestQuickCalculate_CalculoCompleto(t *testing.T) {
	result := analysis.QuickCalculate(dec(10), dec(20), 5)

	assert.True(t, result.Margin.Equal(dec(50)))
	assert.True(t, result.Profit.Equal(dec(10)))
	assert.True(t, result.Markup.Equal(dec(100)))
	assert.True(t, result.TotalProfit.Equal(dec(50)), "10 de ganancia * 5 unidades")
	assert.Equal(t, int64(5), result.Quantity)
	assert.Equal(t, analysis.CategoryExcellent, result.Category)
}

// Cantidad no positiva (el usuario borró el campo o escribió 0) se ajusta a 1.
func TestQuickCalculate_CantidadNoPositivaSeAjustaAUno(t *testing.T) {
	for _, qty := range []int64{0, -3} {
		result := analysis.QuickCalculate(dec(10), dec(20), qty)
		assert.Equal(t, int64(1), result.Quantity, "cantidad %d debe ajustarse a 1", qty)
		assert.True(t, result.TotalProfit.Equal(dec(10)), "ganancia total con una unidad")
	}
}

// Precio en cero (entrada a medio escribir): resultados en cero, sin panic.
func TestQuickCalculate_PrecioEnCero(t *testing.T) {
	result := analysis.QuickCalculate(dec(10), decimal.Zero, 3)

	assert.True(t, result.Margin.IsZero())
	assert.True(t, result.Profit.IsZero())
	assert.True(t, result.Markup.IsZero())
	assert.True(t, result.TotalProfit.IsZero())
	assert.Equal(t, analysis.CategoryVeryLow, result.Category, "margen 0 clasifica como Very Low")
}

// Costo en cero: markup 0 (guardia de división), margen 100%.
func TestQuickCalculate_CostoEnCero(t *testing.T) {
	result := analysis.QuickCalculate(decimal.Zero, dec(20), 1)

	assert.True(t, result.Margin.Equal(dec(100)))
	assert.True(t, result.Markup.IsZero())
	assert.Equal(t, analysis.CategoryExcellent, result.Category)
}
