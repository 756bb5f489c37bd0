package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem es la vista de lectura (snapshot) de un item de bodega al
// momento de una corrida de análisis. Se construye fresco desde la base de
// datos en cada corrida y el núcleo de análisis nunca lo muta.
//
// Cost y Price en cero significan "sin datos de precio": el analizador de
// márgenes excluye esos items en lugar de producir análisis con valor cero.
type InventoryItem struct {
	ID            string
	CompanyID     string
	SKU           string // código único por empresa
	Name          string
	Quantity      decimal.Decimal // existencia actual, nunca negativa
	MinStockLevel decimal.Decimal // 0 = sin umbral configurado
	Cost          decimal.Decimal // costo unitario
	Price         decimal.Decimal // precio de venta unitario
	UpdatedAt     time.Time
}

// HasPricing indica si el item tiene datos de precio completos (costo y
// precio de venta positivos), requisito para entrar al análisis de márgenes.
func (i InventoryItem) HasPricing() bool {
	return i.Cost.IsPositive() && i.Price.IsPositive()
}
