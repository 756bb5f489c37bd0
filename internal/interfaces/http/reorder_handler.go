package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-suite-api/internal/application/dto"
	"github.com/jhoicas/wms-suite-api/internal/application/usecase"
)

// ReorderHandler maneja la lista priorizada de reposición.
type ReorderHandler struct {
	uc *usecase.ReorderUseCase
}

// NewReorderHandler construye el handler.
func NewReorderHandler(uc *usecase.ReorderUseCase) *ReorderHandler {
	return &ReorderHandler{uc: uc}
}

// GetRecommendations godoc
// @Summary      Lista priorizada de reposición
// @Description  Evalúa el snapshot de inventario contra el historial de ventas
//               y devuelve los items que necesitan pedido, ordenados por urgencia.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id       query  string  false  "Bodega; vacío = stock global"
// @Param        lead_time_days     query  int     false  "Días de reposición (default 7, máx 90)"
// @Param        sales_window_days  query  int     false  "Ventana de historial (default 30, máx 365)"
// @Success      200  {object}  dto.ReorderReportDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/reorder [get]
func (h *ReorderHandler) GetRecommendations(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	var req dto.ReorderRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	report, err := h.uc.GenerateReport(c.Context(), companyID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(report)
}
