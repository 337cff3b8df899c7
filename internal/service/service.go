// Package service implementa la capa de dominio del marketplace.
//
// Cada operación mutante retorna la entidad persistida o uno de un conjunto
// cerrado de errores sentinela (matcheables con errors.Is): los resultados
// de negocio esperados nunca son panics ni errores genéricos. Los fallos de
// storage (red, backend caído) se propagan envueltos, distintos de todo
// sentinela, y el core no los reintenta.
//
// El orden de validación de cada operación es fijo y significativo: cuando
// varios campos son inválidos a la vez se reporta solo el primer chequeo que
// falla. Es una política determinística documentada, no un descuido.
package service

import (
	"time"

	"github.com/google/uuid"
)

// IDFunc genera IDs opacos únicos para entidades nuevas.
type IDFunc func() string

// NowFunc retorna el instante actual para estampar CreatedAt.
type NowFunc func() time.Time

func defaultID(fn IDFunc) IDFunc {
	if fn != nil {
		return fn
	}
	return uuid.NewString
}

func defaultNow(fn NowFunc) NowFunc {
	if fn != nil {
		return fn
	}
	return time.Now
}
