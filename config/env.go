package config

// Leitura de variáveis de ambiente.
//
// Os helpers estritos (getenvInt, getenvBool, ...) retornam erro quando a
// variável existe mas é inválida; são usados onde o processo deve cair na
// subida (ex.: portas). Os opcionais passam por lenient, que troca qualquer
// valor inválido pelo padrão.

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func getenvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// lenient aplica a regra "inválido => padrão" sobre um helper estrito.
func lenient[T any](get func(string, T) (T, error), k string, def T) T {
	v, err := get(k, def)
	if err != nil {
		return def
	}
	return v
}

func getenvBoolDefault(k string, def bool) bool { return lenient(getenvBool, k, def) }

func getenvFloatDefault(k string, def float64) float64 { return lenient(getenvFloat, k, def) }

func getenvIntDefault(k string, def int) int { return lenient(getenvInt, k, def) }

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	return lenient(getenvDuration, k, def)
}

// parseEnv lê k e converte com parse; vazio devolve def.
func parseEnv[T any](k string, def T, kind string, parse func(string) (T, error)) (T, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	out, err := parse(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s must be %s, got %q", k, kind, v)
	}
	return out, nil
}

func getenvInt(k string, def int) (int, error) {
	return parseEnv(k, def, "an integer", strconv.Atoi)
}

func getenvBool(k string, def bool) (bool, error) {
	return parseEnv(k, def, "a boolean", strconv.ParseBool)
}

func getenvFloat(k string, def float64) (float64, error) {
	return parseEnv(k, def, "a number", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func getenvDuration(k string, def time.Duration) (time.Duration, error) {
	return parseEnv(k, def, "a duration (ex: 2s)", time.ParseDuration)
}

func getenvPort(k string, def int) (int, error) {
	p, err := getenvInt(k, def)
	if err != nil {
		return 0, err
	}
	if p < 1 || p > 65535 {
		return 0, fmt.Errorf("%s must be between 1 and 65535, got %d", k, p)
	}
	return p, nil
}
