package usecase

import (
	"github.com/jhoicas/wms-suite-api/internal/application/dto"
	"github.com/jhoicas/wms-suite-api/internal/domain/analysis"
)

// CalculatorUseCase expone la calculadora rápida de margen. No tiene estado
// ni dependencias: cada invocación es un cálculo puro sobre la entrada.
type CalculatorUseCase struct{}

// NewCalculatorUseCase construye el caso de uso.
func NewCalculatorUseCase() *CalculatorUseCase {
	return &CalculatorUseCase{}
}

// Calculate ejecuta la calculadora sobre la entrada del usuario. Nunca
// retorna error: precio inválido produce ceros y cantidad no positiva se
// ajusta a 1 (la entrada puede estar a medio escribir).
func (uc *CalculatorUseCase) Calculate(req dto.QuickCalcRequest) dto.QuickCalcResponse {
	result := analysis.QuickCalculate(req.Cost, req.SellingPrice, req.Quantity)
	return dto.QuickCalcResponse{
		Cost:         result.Cost,
		SellingPrice: result.SellingPrice,
		Quantity:     result.Quantity,
		Profit:       result.Profit,
		MarginPct:    result.Margin.Round(2),
		MarkupPct:    result.Markup.Round(2),
		TotalProfit:  result.TotalProfit.Round(2),
		Category:     string(result.Category),
	}
}
