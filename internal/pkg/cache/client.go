package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client define o contrato que o rate limiter espera do armazenamento de contadores.
type Client interface {
	// IncrWindow incrementa o contador da janela e devolve o total atual e o tempo restante da janela.
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	Ping(ctx context.Context) error
	Close() error
}

// fixedWindowScript incrementa e define a expiração apenas na primeira batida da janela,
// de forma atômica.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// RedisClient é a implementação concreta da interface Client, usando Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient cria o cliente Redis. A conexão é testada com PING, mas uma falha
// não impede a subida: o rate limiter deixa passar quando o Redis está fora.
func NewRedisClient(addr, password string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := &RedisClient{rdb: rdb}
	if err := c.Ping(ctx); err != nil {
		return c, fmt.Errorf("redis indisponível em %s: %w", addr, err)
	}
	return c, nil
}

func (c *RedisClient) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := fixedWindowScript.Run(ctx, c.rdb, []string{key}, window.Milliseconds()).Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("resposta inesperada do script de janela: %v", res)
	}
	count, _ := res[0].(int64)
	ttl, _ := res[1].(int64)
	if ttl < 0 {
		ttl = window.Milliseconds()
	}
	return count, time.Duration(ttl) * time.Millisecond, nil
}

func (c *RedisClient) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisClient) Close() error {
	return c.rdb.Close()
}
