// Package counter é o adapter HTTP do Counter Service.
//
// GET / registra um acesso no contador externo e responde
// "Hello from <identidade>! Redis counter = <N>". Falha do store vira 5xx
// (503 quando indisponível, 500 nos demais casos); o processo segue de pé.
//
// Subpacotes:
//
//   - domain: contrato Counter e erros do store
//   - application: HitService (timeout + um único incremento)
//   - infra: RedisCounter (INCR) e MemoryCounter
package counter
