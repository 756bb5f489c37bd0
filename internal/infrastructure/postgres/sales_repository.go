package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
	"github.com/jhoicas/wms-suite-api/internal/domain/repository"
)

var _ repository.SalesHistoryRepository = (*SalesHistoryRepo)(nil)

// SalesHistoryRepo implementación read-only del puerto SalesHistoryRepository
// sobre PostgreSQL.
type SalesHistoryRepo struct {
	q Querier
}

// NewSalesHistoryRepository construye el adaptador de historial de ventas.
func NewSalesHistoryRepository(q Querier) *SalesHistoryRepo {
	return &SalesHistoryRepo{q: q}
}

// GetSalesByItem devuelve las ventas del período agrupadas por item.
// warehouseID vacío incluye todas las bodegas.
func (r *SalesHistoryRepo) GetSalesByItem(
	ctx context.Context,
	companyID, warehouseID string,
	start, end time.Time,
) (map[string][]entity.SaleRecord, error) {
	query := `
		SELECT item_id, quantity, sold_at
		FROM sales
		WHERE company_id = $1
		  AND sold_at >= $2 AND sold_at <= $3
		  AND ($4 = '' OR warehouse_id = $4)
		ORDER BY item_id, sold_at`

	rows, err := r.q.Query(ctx, query, companyID, start, end, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("get sales history: %w", err)
	}
	defer rows.Close()

	salesByItem := make(map[string][]entity.SaleRecord)
	for rows.Next() {
		var rec entity.SaleRecord
		if err := rows.Scan(&rec.ItemID, &rec.Quantity, &rec.SoldAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		salesByItem[rec.ItemID] = append(salesByItem[rec.ItemID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return salesByItem, nil
}
