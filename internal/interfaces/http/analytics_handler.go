package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-suite-api/internal/application/dto"
	"github.com/jhoicas/wms-suite-api/internal/application/usecase"
)

// AnalyticsHandler maneja el reporte de márgenes y la calculadora rápida.
type AnalyticsHandler struct {
	marginUC     *usecase.MarginUseCase
	calculatorUC *usecase.CalculatorUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(marginUC *usecase.MarginUseCase, calculatorUC *usecase.CalculatorUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{marginUC: marginUC, calculatorUC: calculatorUC}
}

// GetMargins godoc
// @Summary      Reporte de márgenes de inventario
// @Description  Margen por item (el peor primero) más resumen de portafolio.
//               Items sin costo o precio quedan fuera del análisis.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Bodega; vacío = stock global"
// @Success      200  {object}  dto.MarginReportDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/margins [get]
func (h *AnalyticsHandler) GetMargins(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	report, err := h.marginUC.GetMarginsReport(c.Context(), companyID, c.Query("warehouse_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(report)
}

// QuickCalculate godoc
// @Summary      Calculadora rápida de margen
// @Description  Calcula margen, markup y ganancia para (costo, precio, cantidad).
//               Entrada parcial no falla: precio <= 0 produce ceros y cantidad
//               no positiva se ajusta a 1.
// @Tags         analytics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuickCalcRequest  true  "cost, selling_price, quantity"
// @Success      200   {object}  dto.QuickCalcResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analytics/calculator [post]
func (h *AnalyticsHandler) QuickCalculate(c *fiber.Ctx) error {
	var in dto.QuickCalcRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido: cost y selling_price deben ser numéricos",
		})
	}
	return c.JSON(h.calculatorUC.Calculate(in))
}
