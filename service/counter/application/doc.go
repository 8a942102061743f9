// Package application contém o caso de uso do contador (registrar um acesso)
// sem conhecer HTTP nem Redis.
//
// Ex.: HitService.Hit(ctx) aplica o timeout do store, faz um único incremento
// e retorna o valor pós-incremento.
package application
