package domain

import (
	"context"
	"errors"
)

type Name string

// Counter é um contador nomeado num store externo.
//
// Incr soma 1 de forma atômica no store e retorna o valor já incrementado.
// Uma chave inexistente vale 0 antes do incremento.
type Counter interface {
	Incr(ctx context.Context, name Name) (int64, error)
}

var (
	// ErrStoreUnavailable cobre falha de rede, timeout e cancelamento.
	ErrStoreUnavailable = errors.New("counter store unavailable")
	// ErrStoreRejected indica que o store respondeu com erro (ex: valor não inteiro).
	ErrStoreRejected = errors.New("counter store rejected command")
)
