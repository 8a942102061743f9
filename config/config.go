// Package config resolve, uma única vez na subida, a configuração dos serviços
// a partir de variáveis de ambiente (opcionalmente de um arquivo .env).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultRedisHost      = "redis"
	DefaultRedisPort      = 6379
	DefaultCounterKey     = "hits"
	DefaultServiceName    = "Flask"
	DefaultStoreTimeout   = 2 * time.Second
	StoreRedis            = "redis"
	StoreMemory           = "memory"
	DefaultCounterPort    = 5000
	DefaultGreetingPort   = 3000
	defaultDotenvFilename = ".env"
)

// Limits agrupa a proteção opcional de tráfego (rate limit + concorrência).
type Limits struct {
	RateEnabled        bool
	RateRPS            float64
	RateBurst          int
	RateKeyHeader      string
	TrustXFF           bool
	RetryAfter         time.Duration
	AddHeaders         bool
	ConcurrencyMax     int
	ConcurrencyTimeout time.Duration
}

// Shared é a parte comum aos dois serviços.
type Shared struct {
	ListenPort     int
	LogLevel       zerolog.Level
	LogFormat      string
	MetricsEnabled bool
	Limits         Limits
}

func (s Shared) ListenAddr() string { return ":" + strconv.Itoa(s.ListenPort) }

type Counter struct {
	Shared

	// Store é "redis" (padrão) ou "memory" (desenvolvimento local, sem Redis).
	Store         string
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int
	CounterKey    string
	// KeyPrefix vai na frente do nome no Redis (ex: "demo:" => "demo:hits").
	KeyPrefix     string
	ServiceName   string
	StoreTimeout  time.Duration
}

func (c Counter) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort))
}

type Greeting struct {
	Shared
}

// LoadCounter lê a configuração do Counter Service.
func LoadCounter() (Counter, error) {
	if err := loadDotenv(); err != nil {
		return Counter{}, err
	}

	shared, err := readShared(DefaultCounterPort)
	if err != nil {
		return Counter{}, err
	}

	cfg := Counter{Shared: shared}
	cfg.Store = strings.ToLower(getenvDefault("COUNTER_STORE", StoreRedis))
	if cfg.Store != StoreRedis && cfg.Store != StoreMemory {
		return Counter{}, fmt.Errorf("COUNTER_STORE must be redis or memory, got %q", cfg.Store)
	}
	cfg.RedisHost = getenvDefault("REDIS_HOST", DefaultRedisHost)
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.CounterKey = getenvDefault("COUNTER_KEY", DefaultCounterKey)
	cfg.KeyPrefix = os.Getenv("COUNTER_KEY_PREFIX")
	cfg.ServiceName = getenvDefault("SERVICE_NAME", DefaultServiceName)

	if cfg.RedisPort, err = getenvPort("REDIS_PORT", DefaultRedisPort); err != nil {
		return Counter{}, err
	}
	if cfg.RedisDB, err = getenvInt("REDIS_DB", 0); err != nil {
		return Counter{}, err
	}
	if cfg.RedisDB < 0 {
		return Counter{}, errors.New("REDIS_DB must be >= 0")
	}
	if cfg.StoreTimeout, err = getenvDuration("STORE_TIMEOUT", DefaultStoreTimeout); err != nil {
		return Counter{}, err
	}
	if cfg.StoreTimeout <= 0 {
		return Counter{}, errors.New("STORE_TIMEOUT must be > 0")
	}
	return cfg, nil
}

// LoadGreeting lê a configuração do Greeting Service.
func LoadGreeting() (Greeting, error) {
	if err := loadDotenv(); err != nil {
		return Greeting{}, err
	}

	shared, err := readShared(DefaultGreetingPort)
	if err != nil {
		return Greeting{}, err
	}
	return Greeting{Shared: shared}, nil
}

func readShared(defaultPort int) (Shared, error) {
	var (
		s   Shared
		err error
	)

	if s.ListenPort, err = getenvPort("PORT", defaultPort); err != nil {
		return Shared{}, err
	}

	levelName := getenvDefault("LOG_LEVEL", zerolog.InfoLevel.String())
	if s.LogLevel, err = zerolog.ParseLevel(strings.ToLower(levelName)); err != nil {
		return Shared{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	s.LogFormat = strings.ToLower(getenvDefault("LOG_FORMAT", "json"))
	if s.LogFormat != "json" && s.LogFormat != "console" {
		return Shared{}, fmt.Errorf("LOG_FORMAT must be json or console, got %q", s.LogFormat)
	}
	s.MetricsEnabled = getenvBoolDefault("METRICS_ENABLED", true)

	l := &s.Limits
	l.RateEnabled = getenvBoolDefault("RATE_ENABLED", false)
	l.RateRPS = getenvFloatDefault("RATE_RPS", 10)
	l.RateBurst = getenvIntDefault("RATE_BURST", 20)
	l.RateKeyHeader = os.Getenv("RATE_KEY_HEADER")
	l.TrustXFF = getenvBoolDefault("TRUST_XFF", false)
	l.RetryAfter = getenvDurationDefault("RETRY_AFTER", 1*time.Second)
	l.AddHeaders = getenvBoolDefault("ADD_RATELIMIT_HEADERS", false)
	l.ConcurrencyMax = getenvIntDefault("CONCURRENCY_MAX", 0)
	l.ConcurrencyTimeout = getenvDurationDefault("CONCURRENCY_TIMEOUT", 0)

	if l.RateEnabled && l.RateRPS <= 0 {
		return Shared{}, errors.New("RATE_RPS must be > 0")
	}
	if l.RateEnabled && l.RateBurst <= 0 {
		return Shared{}, errors.New("RATE_BURST must be > 0")
	}
	if l.ConcurrencyMax < 0 {
		return Shared{}, errors.New("CONCURRENCY_MAX must be >= 0")
	}
	return s, nil
}

// loadDotenv carrega DOTENV_FILE (ou .env). Arquivo ausente não é erro e
// variáveis já definidas no ambiente não são sobrescritas.
func loadDotenv() error {
	name := getenvDefault("DOTENV_FILE", defaultDotenvFilename)
	if err := godotenv.Load(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}
