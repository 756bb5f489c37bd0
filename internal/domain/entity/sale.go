package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord es un punto del historial de ventas de un item: cantidad vendida
// en una fecha. El orden de los registros es irrelevante para el análisis
// (se agrega solo por conteo y suma).
type SaleRecord struct {
	ItemID   string
	Quantity decimal.Decimal // unidades vendidas, >= 0
	SoldAt   time.Time
}
