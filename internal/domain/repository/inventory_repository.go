package repository

import (
	"context"

	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
)

// InventoryRepository puerto de lectura del snapshot de inventario.
// Las implementaciones son read-only: el núcleo de análisis nunca escribe.
type InventoryRepository interface {
	// ListItems devuelve el snapshot actual de items de la empresa con su
	// existencia agregada. warehouseID vacío considera el stock global;
	// con valor, solo la existencia de esa bodega.
	ListItems(ctx context.Context, companyID, warehouseID string) ([]entity.InventoryItem, error)
}
