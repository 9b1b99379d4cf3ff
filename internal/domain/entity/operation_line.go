package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationLine es una línea de producto dentro de una operación.
// ActualQuantity, si está presente, prevalece sobre PlannedQuantity al procesar
// (soporta recepciones y entregas parciales sin alterar el plan original).
type OperationLine struct {
	ID              string
	OperationID     string
	ProductID       string
	PlannedQuantity decimal.Decimal
	ActualQuantity  *decimal.Decimal
	UnitPrice       *decimal.Decimal
	CreatedAt       time.Time
}

// EffectiveQuantity devuelve la cantidad a aplicar al procesar la línea:
// ActualQuantity si fue registrada, PlannedQuantity en caso contrario.
func (l *OperationLine) EffectiveQuantity() decimal.Decimal {
	if l.ActualQuantity != nil {
		return *l.ActualQuantity
	}
	return l.PlannedQuantity
}
