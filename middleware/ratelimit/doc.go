// Package ratelimit fornece middlewares net/http de proteção de tráfego:
// limite de taxa por cliente (429) e limite de concorrência (503).
//
// Camadas:
//
//   - domain: contratos (Limiter, LimiterStore, SlotPool)
//   - application: decisão allow/deny e acquire com timeout, sem net/http
//   - infra: token bucket por cliente e semáforo
//   - ratelimit (este pacote): extração da chave do cliente e tradução para status/headers
//
// Nos serviços os dois middlewares vêm desligados por padrão
// (RATE_ENABLED=false, CONCURRENCY_MAX=0).
package ratelimit
