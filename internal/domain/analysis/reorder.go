package analysis

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
)

// DefaultLeadTimeDays días asumidos entre colocar un pedido de reposición y
// recibir la mercancía, cuando el llamador no indica otro valor.
const DefaultLeadTimeDays = 7

// ReorderReason motivo por el que un item necesita reposición.
type ReorderReason string

const (
	ReasonOutOfStock   ReorderReason = "out_of_stock"
	ReasonBelowMinimum ReorderReason = "below_minimum"
	ReasonNearStockout ReorderReason = "near_stockout"
	ReasonHighVelocity ReorderReason = "high_velocity"
)

// ReorderPriority nivel de urgencia, ordenado: low < medium < high < critical.
type ReorderPriority string

const (
	PriorityLow      ReorderPriority = "low"
	PriorityMedium   ReorderPriority = "medium"
	PriorityHigh     ReorderPriority = "high"
	PriorityCritical ReorderPriority = "critical"
)

// Rank posición ordinal de la prioridad (low=1 ... critical=4).
func (p ReorderPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	default:
		return 0
	}
}

// ReorderRecommendation recomendación de reposición para un item. Se calcula
// fresca en cada corrida; este núcleo no la persiste.
//
// DaysOfStockRemaining es nil cuando no se conoce la velocidad de venta
// (sin historial): un campo opcional explícito evita que aritmética
// posterior trate "desconocido" como un número grande de días de cobertura.
type ReorderRecommendation struct {
	ItemID                   string
	SKU                      string
	Name                     string
	Reason                   ReorderReason
	Priority                 ReorderPriority
	CurrentStock             decimal.Decimal
	RecommendedOrderQuantity decimal.Decimal
	EstimatedStockoutDate    *time.Time // nil si no hay velocidad de venta
	AverageDailySales        decimal.Decimal
	DaysOfStockRemaining     *int // nil = velocidad desconocida
	UrgencyScore             int
}

var (
	two                   = decimal.NewFromInt(2)
	three                 = decimal.NewFromInt(3)
	highVelocityThreshold = decimal.NewFromInt(5) // unidades/día
)

// GenerateRecommendations evalúa cada item del snapshot contra su historial
// de ventas y produce la lista priorizada de reposición, ordenada descendente
// por UrgencyScore (empates por orden de entrada, sort estable).
//
// leadTimeDays <= 0 usa DefaultLeadTimeDays. now fija "hoy" para las fechas
// estimadas de quiebre de stock, de modo que una corrida sea reproducible.
func GenerateRecommendations(
	items []entity.InventoryItem,
	historyByItem map[string][]entity.SaleRecord,
	leadTimeDays int,
	now time.Time,
) []ReorderRecommendation {
	if leadTimeDays <= 0 {
		leadTimeDays = DefaultLeadTimeDays
	}

	recommendations := make([]ReorderRecommendation, 0, len(items))
	for _, it := range items {
		avg := AverageDailySales(historyByItem[it.ID])
		if rec, ok := evaluateItem(it, avg, leadTimeDays, now); ok {
			recommendations = append(recommendations, rec)
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].UrgencyScore > recommendations[j].UrgencyScore
	})
	return recommendations
}

// evaluateItem aplica el procedimiento de decisión por item. Las reglas se
// evalúan en este orden fijo y gana la primera que aplica:
//
//	1. sin stock  2. bajo el mínimo  3. quiebre cercano  4. alta rotación
//
// La precedencia importa: "bajo el mínimo" y "quiebre cercano" pueden
// cumplirse a la vez para el mismo item y recomiendan cantidades distintas;
// el orden de reglas (no una re-derivación) resuelve el empate.
func evaluateItem(
	it entity.InventoryItem,
	avg decimal.Decimal,
	leadTimeDays int,
	now time.Time,
) (ReorderRecommendation, bool) {
	rec := ReorderRecommendation{
		ItemID:            it.ID,
		SKU:               it.SKU,
		Name:              it.Name,
		CurrentStock:      it.Quantity,
		AverageDailySales: avg,
	}

	lead := decimal.NewFromInt(int64(leadTimeDays))

	// Días de cobertura según la velocidad actual; nil sin historial de ventas.
	var days *int
	if avg.IsPositive() {
		d := int(it.Quantity.Div(avg).IntPart())
		days = &d
	}

	switch {
	case it.Quantity.IsZero():
		rec.Reason = ReasonOutOfStock
		rec.Priority = PriorityCritical
		rec.RecommendedOrderQuantity = decimal.Max(it.MinStockLevel, avg.Mul(lead).Mul(two))
		zero := 0
		rec.DaysOfStockRemaining = &zero
		today := now
		rec.EstimatedStockoutDate = &today

	case it.MinStockLevel.IsPositive() && it.Quantity.LessThan(it.MinStockLevel):
		rec.Reason = ReasonBelowMinimum
		if days != nil {
			rec.Priority = priorityForDays(*days)
		} else {
			// Sin velocidad conocida el déficit no es urgente por sí solo.
			rec.Priority = PriorityLow
		}
		rec.DaysOfStockRemaining = days
		rec.RecommendedOrderQuantity = decimal.Max(it.MinStockLevel.Sub(it.Quantity), avg.Mul(lead))
		rec.EstimatedStockoutDate = stockoutDate(now, days)

	case days != nil && *days <= leadTimeDays:
		rec.Reason = ReasonNearStockout
		rec.Priority = priorityForDays(*days)
		rec.DaysOfStockRemaining = days
		rec.RecommendedOrderQuantity = avg.Mul(lead).Mul(two)
		rec.EstimatedStockoutDate = stockoutDate(now, days)

	case avg.GreaterThanOrEqual(highVelocityThreshold) && days != nil && *days <= leadTimeDays*2:
		rec.Reason = ReasonHighVelocity
		rec.Priority = PriorityMedium
		rec.DaysOfStockRemaining = days
		rec.RecommendedOrderQuantity = avg.Mul(lead).Mul(three)
		rec.EstimatedStockoutDate = stockoutDate(now, days)

	default:
		return ReorderRecommendation{}, false
	}

	rec.UrgencyScore = urgencyScore(rec.Priority, rec.DaysOfStockRemaining)
	return rec, true
}

// priorityForDays tabla de prioridad por días de cobertura restantes:
// 0 → critical, 1–3 → high, 4–7 → medium, 8+ → low.
func priorityForDays(days int) ReorderPriority {
	switch {
	case days <= 0:
		return PriorityCritical
	case days <= 3:
		return PriorityHigh
	case days <= 7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// urgencyScore llave de ordenamiento: rank*10 + (7 - días restantes).
// Con días desconocidos (nil) el término de días es 0: el item queda al
// frente de su banda de prioridad pero nunca salta a una banda superior.
func urgencyScore(p ReorderPriority, days *int) int {
	score := p.Rank() * 10
	if days != nil {
		score += 7 - *days
	}
	return score
}

// AverageDailySales promedio de unidades vendidas por punto de historial.
// Devuelve 0 con historial vacío; toda regla condicionada a velocidad > 0
// queda automáticamente descartada en ese caso.
func AverageDailySales(history []entity.SaleRecord) decimal.Decimal {
	if len(history) == 0 {
		return decimal.Zero
	}
	var total decimal.Decimal
	for _, h := range history {
		total = total.Add(h.Quantity)
	}
	return total.Div(decimal.NewFromInt(int64(len(history))))
}

// stockoutDate fecha estimada de quiebre: hoy + días de cobertura.
func stockoutDate(now time.Time, days *int) *time.Time {
	if days == nil {
		return nil
	}
	t := now.AddDate(0, 0, *days)
	return &t
}
