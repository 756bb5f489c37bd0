package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
	"github.com/jhoicas/wms-suite-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación read-only del puerto InventoryRepository sobre
// PostgreSQL. Acepta pool o tx (Querier).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de lectura de inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// ListItems devuelve el snapshot de items de la empresa con existencia
// agregada. warehouseID vacío suma el stock de todas las bodegas.
// COALESCE deja en 0 la existencia de items sin filas de stock.
func (r *InventoryRepo) ListItems(ctx context.Context, companyID, warehouseID string) ([]entity.InventoryItem, error) {
	query := `
		SELECT i.id, i.company_id, i.sku, i.name,
		       COALESCE(SUM(s.quantity), 0) AS quantity,
		       i.min_stock_level, i.cost, i.price, i.updated_at
		FROM items i
		LEFT JOIN stock s ON s.item_id = i.id AND ($2 = '' OR s.warehouse_id = $2)
		WHERE i.company_id = $1
		GROUP BY i.id, i.company_id, i.sku, i.name, i.min_stock_level, i.cost, i.price, i.updated_at
		ORDER BY i.sku`

	rows, err := r.q.Query(ctx, query, companyID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.CompanyID, &it.SKU, &it.Name,
			&it.Quantity, &it.MinStockLevel, &it.Cost, &it.Price, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
