package repository

import (
	"context"
	"time"

	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
)

// SalesHistoryRepository puerto de lectura del historial de ventas.
type SalesHistoryRepository interface {
	// GetSalesByItem devuelve las ventas de la empresa dentro de [start, end],
	// agrupadas por item. warehouseID vacío incluye todas las bodegas.
	// Items sin ventas en la ventana simplemente no aparecen en el mapa.
	GetSalesByItem(
		ctx context.Context,
		companyID, warehouseID string,
		start, end time.Time,
	) (map[string][]entity.SaleRecord, error)
}
