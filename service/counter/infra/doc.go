// Package infra contém implementações concretas do contrato domain.Counter.
//
// Exemplos:
//   - RedisCounter: INCR no Redis (go-redis/v9), atômico no servidor
//   - MemoryCounter: contador atômico em memória, útil para testes e desenvolvimento
package infra
