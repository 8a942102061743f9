// Package clientip extrai o endereço do cliente a partir da requisição.
//
// Atrás de um proxy reverso (ex: nginx), o endereço original vem em
// X-Forwarded-For; sem proxy, o que existe é o RemoteAddr da conexão.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

const HeaderForwardedFor = "X-Forwarded-For"

// ForwardedFor retorna o valor bruto do X-Forwarded-For (pode ter vários IPs).
// Linhas repetidas do header são unidas com ", ", na ordem em que chegaram.
func ForwardedFor(r *http.Request) string {
	return strings.TrimSpace(strings.Join(r.Header.Values(HeaderForwardedFor), ", "))
}

// FirstForwarded retorna o primeiro IP do X-Forwarded-For (cliente original) ou "".
func FirstForwarded(r *http.Request) string {
	xff := ForwardedFor(r)
	if xff == "" {
		return ""
	}
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}

// RemoteHost retorna o host do RemoteAddr, sem a porta.
func RemoteHost(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	host, _, err := net.SplitHostPort(addr)
	if err == nil && host != "" {
		return host
	}
	return addr
}

// Origin é o endereço exibido ao usuário: o X-Forwarded-For completo, se houver,
// senão o endereço observado na conexão.
func Origin(r *http.Request) string {
	if xff := ForwardedFor(r); xff != "" {
		return xff
	}
	return RemoteHost(r)
}

// Key identifica o cliente para fins de rate limit.
// Ordem: header configurado, primeiro IP do XFF (se confiável), host remoto.
func Key(r *http.Request, keyHeader string, trustXFF bool) string {
	if keyHeader != "" {
		if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
			return v
		}
	}
	if trustXFF {
		if ip := FirstForwarded(r); ip != "" {
			return ip
		}
	}
	if host := RemoteHost(r); host != "" {
		return host
	}
	return "unknown"
}
