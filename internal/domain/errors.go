package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrEmptyDataset  = errors.New("dataset vacío")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidOutput = errors.New("ruta de salida inválida")
)
