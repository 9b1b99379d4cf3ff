package operation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReference genera la referencia legible de una operación (servicio de dominio):
// {3 primeras letras del tipo en mayúsculas}-{timestamp en milisegundos}-{sufijo aleatorio}.
// El sufijo evita colisiones entre operaciones del mismo tipo creadas en el mismo milisegundo.
// Ejemplo: REC-1756598400000-9F3A21B0
func NewReference(operationType string, now time.Time) string {
	prefix := strings.ToUpper(operationType)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix)
}
