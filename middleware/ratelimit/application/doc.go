// Package application decide allow/deny e adquire vagas com timeout, sem conhecer net/http.
package application
