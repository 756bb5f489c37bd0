package analysis

import "github.com/shopspring/decimal"

// QuickCalculation resultado de la calculadora rápida de margen. Es un valor
// plano sin comportamiento, listo para serializar o mostrar.
type QuickCalculation struct {
	Cost         decimal.Decimal
	SellingPrice decimal.Decimal
	Quantity     int64
	Profit       decimal.Decimal // por unidad
	Margin       decimal.Decimal // %
	Markup       decimal.Decimal // %
	TotalProfit  decimal.Decimal // Profit * Quantity
	Category     MarginCategory
}

// QuickCalculate calcula margen, markup y ganancia para un (costo, precio,
// cantidad). Es una función pura que el llamador re-ejecuta en cada cambio de
// entrada: precio <= 0 produce ceros en lugar de error (entrada a medio
// escribir) y cualquier cantidad no positiva se ajusta a 1 antes de calcular
// la ganancia total.
func QuickCalculate(cost, price decimal.Decimal, quantity int64) QuickCalculation {
	if quantity < 1 {
		quantity = 1
	}
	margin, profit, markup := CalculateMargin(cost, price)
	return QuickCalculation{
		Cost:         cost,
		SellingPrice: price,
		Quantity:     quantity,
		Profit:       profit,
		Margin:       margin,
		Markup:       markup,
		TotalProfit:  profit.Mul(decimal.NewFromInt(quantity)),
		Category:     ClassifyMargin(margin),
	}
}
