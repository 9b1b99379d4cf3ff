package operation

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// CanTransition valida un cambio de estado del ciclo de vida de una operación:
// draft → waiting → ready, y canceled alcanzable desde cualquier estado no terminal.
// done NO es alcanzable por aquí: solo el procesamiento lleva una operación a done.
func CanTransition(from, to string) bool {
	if entity.IsTerminalStatus(from) {
		return false
	}
	switch to {
	case entity.OperationStatusWaiting:
		return from == entity.OperationStatusDraft
	case entity.OperationStatusReady:
		return from == entity.OperationStatusWaiting
	case entity.OperationStatusCanceled:
		return true
	}
	return false
}
