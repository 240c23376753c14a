// Package cache implementa o ListCache sobre Redis, com invalidação por
// versão: cada entidade tem um contador de versão que entra na chave das
// listagens; invalidar é incrementar o contador, as chaves velhas morrem
// pelo TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seu-usuario/gestor-deposito/internal/application/ports"
	"github.com/seu-usuario/gestor-deposito/pkg/config"
	"github.com/seu-usuario/gestor-deposito/pkg/logger"
)

var _ ports.ListCache = (*RedisListCache)(nil)

// RedisListCache cache de listagens sobre Redis. Qualquer falha do Redis é
// tratada como cache miss: o cache nunca derruba uma operação.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New constrói o cache a partir da configuração. Devolve nil (cache
// desativado) quando RedisAddr está vazio; os casos de uso tratam nil como
// ausência de cache.
func New(cfg config.CacheConfig, log *logger.Logger) *RedisListCache {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	return &RedisListCache{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
		log:    log,
	}
}

// NewWithClient constrói o cache sobre um cliente já existente (testes).
func NewWithClient(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisListCache {
	return &RedisListCache{client: client, ttl: ttl, log: log}
}

// Close encerra a conexão com o Redis.
func (c *RedisListCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *RedisListCache) versionKey(entity string) string {
	return "listcache:ver:" + entity
}

func (c *RedisListCache) version(ctx context.Context, entity string) (int64, error) {
	key := c.versionKey(entity)
	ver, err := c.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		// Inicializa o contador: sem isso o primeiro INCR do Invalidate
		// também resultaria em 1 e as chaves antigas continuariam válidas.
		if err := c.client.Set(ctx, key, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

func (c *RedisListCache) buildKey(ctx context.Context, entity, key string) (string, error) {
	ver, err := c.version(ctx, entity)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("listcache:%s:v%d:%s", entity, ver, key), nil
}

// Get busca uma listagem no cache; devolve true e preenche dest no hit.
func (c *RedisListCache) Get(ctx context.Context, entity, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	full, err := c.buildKey(ctx, entity, key)
	if err != nil {
		c.warn(entity, err)
		return false
	}
	payload, err := c.client.Get(ctx, full).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.warn(entity, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.warn(entity, err)
		return false
	}
	return true
}

// Set guarda uma listagem no cache com o TTL configurado.
func (c *RedisListCache) Set(ctx context.Context, entity, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	full, err := c.buildKey(ctx, entity, key)
	if err != nil {
		c.warn(entity, err)
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.warn(entity, err)
		return
	}
	if err := c.client.Set(ctx, full, payload, c.ttl).Err(); err != nil {
		c.warn(entity, err)
	}
}

// Invalidate incrementa a versão da entidade; as listagens anteriores deixam
// de ser encontradas.
func (c *RedisListCache) Invalidate(ctx context.Context, entity string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, c.versionKey(entity)).Err(); err != nil {
		c.warn(entity, err)
	}
}

func (c *RedisListCache) warn(entity string, err error) {
	if c.log != nil {
		c.log.Warn().Err(err).Str("entity", entity).Msg("falha no cache de listagens")
	}
}
