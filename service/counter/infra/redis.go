package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demo-services/service/counter/domain"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// DialTimeout limita a abertura de conexão. Se 0, usa o padrão do go-redis.
	DialTimeout time.Duration
}

// NewRedisClient cria o cliente do store.
//
// Retries ficam desligados: um INCR cuja resposta se perdeu pode já ter sido
// aplicado, e repetir contaria o acesso duas vezes.
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:                  opts.Addr,
		Password:              opts.Password,
		DB:                    opts.DB,
		DialTimeout:           opts.DialTimeout,
		MaxRetries:            -1,
		ContextTimeoutEnabled: true,
	})
}

// RedisCounter implementa domain.Counter com INCR.
type RedisCounter struct {
	rdb    redis.Cmdable
	prefix string
}

type RedisCounterOption func(*RedisCounter)

// WithKeyPrefix prefixa o nome do contador (ex: "demo:" => "demo:hits").
func WithKeyPrefix(prefix string) RedisCounterOption {
	return func(c *RedisCounter) { c.prefix = prefix }
}

func NewRedisCounter(rdb redis.Cmdable, opts ...RedisCounterOption) *RedisCounter {
	c := &RedisCounter{rdb: rdb}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCounter) Incr(ctx context.Context, name domain.Name) (int64, error) {
	if c == nil || c.rdb == nil {
		return 0, domain.ErrStoreUnavailable
	}
	n, err := c.rdb.Incr(ctx, c.prefix+string(name)).Result()
	if err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// Ping verifica a conexão com o store.
func (c *RedisCounter) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return domain.ErrStoreUnavailable
	}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return classify(err)
	}
	return nil
}

// classify traduz erros do go-redis para os erros do domínio.
// Resposta de erro do servidor => ErrStoreRejected; o resto (rede, timeout) => ErrStoreUnavailable.
func classify(err error) error {
	var rerr redis.Error
	if errors.As(err, &rerr) {
		return fmt.Errorf("%w: %v", domain.ErrStoreRejected, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
