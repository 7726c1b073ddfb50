package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("producto no encontrado")
	ErrDuplicate    = errors.New("ya existe un producto con ese código de barras")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrStorage      = errors.New("error de almacenamiento")
)
