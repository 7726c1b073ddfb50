package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jhoicas/oaky-desktop/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único.
// GORM traduce la mayoría a ErrDuplicatedKey; el chequeo de texto cubre las
// sentencias crudas (Exec) que no pasan por la traducción.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// storageError envuelve un fallo crudo del motor como ErrStorage con contexto.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
