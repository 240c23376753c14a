package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-deposito/internal/infrastructure/cache"
	"github.com/seu-usuario/gestor-deposito/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newCache(t *testing.T) (*cache.RedisListCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := cache.NewWithClient(client, 2*time.Minute, nil)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

type payload struct {
	Names []string `json:"names"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / Set
// ──────────────────────────────────────────────────────────────────────────────

// Sem nada gravado, Get é miss.
func TestGet_SemValorGravadoEhMiss(t *testing.T) {
	c, _ := newCache(t)

	var dest payload
	ok := c.Get(context.Background(), "products", "lista", &dest)

	assert.False(t, ok)
}

// Set seguido de Get devolve o valor gravado.
func TestSetGet_DevolveOValorGravado(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "products", "lista", payload{Names: []string{"Cimento 50kg", "Areia"}})

	var dest payload
	ok := c.Get(ctx, "products", "lista", &dest)

	require.True(t, ok)
	assert.Equal(t, []string{"Cimento 50kg", "Areia"}, dest.Names)
}

// Chaves diferentes não se misturam.
func TestGet_ChaveDiferenteEhMiss(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "products", "termo=cimento", payload{Names: []string{"Cimento 50kg"}})

	var dest payload
	ok := c.Get(ctx, "products", "termo=areia", &dest)

	assert.False(t, ok)
}

// Entidades diferentes não se misturam mesmo com a mesma chave.
func TestGet_EntidadeDiferenteEhMiss(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "products", "lista", payload{Names: []string{"Cimento 50kg"}})

	var dest payload
	ok := c.Get(ctx, "sales", "lista", &dest)

	assert.False(t, ok)
}

// O valor gravado expira pelo TTL.
func TestSet_ValorExpiraPeloTTL(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "products", "lista", payload{Names: []string{"Cimento 50kg"}})
	mr.FastForward(3 * time.Minute)

	var dest payload
	ok := c.Get(ctx, "products", "lista", &dest)

	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invalidate
// ──────────────────────────────────────────────────────────────────────────────

// Invalidate esconde as listagens anteriores da entidade.
func TestInvalidate_EscondeListagensAnteriores(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "products", "lista", payload{Names: []string{"Cimento 50kg"}})
	c.Invalidate(ctx, "products")

	var dest payload
	ok := c.Get(ctx, "products", "lista", &dest)

	assert.False(t, ok)
}

// Invalidate de uma entidade não afeta as demais.
func TestInvalidate_NaoAfetaOutrasEntidades(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "products", "lista", payload{Names: []string{"Cimento 50kg"}})
	c.Set(ctx, "sales", "lista", payload{Names: []string{"Venda 12345"}})
	c.Invalidate(ctx, "products")

	var dest payload
	ok := c.Get(ctx, "sales", "lista", &dest)

	require.True(t, ok)
	assert.Equal(t, []string{"Venda 12345"}, dest.Names)
}

// Depois de invalidar, um novo Set volta a funcionar na versão nova.
func TestInvalidate_SetPosteriorFuncionaNormalmente(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "products", "lista", payload{Names: []string{"Cimento 50kg"}})
	c.Invalidate(ctx, "products")
	c.Set(ctx, "products", "lista", payload{Names: []string{"Areia"}})

	var dest payload
	ok := c.Get(ctx, "products", "lista", &dest)

	require.True(t, ok)
	assert.Equal(t, []string{"Areia"}, dest.Names)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desativado / falhas
// ──────────────────────────────────────────────────────────────────────────────

// Sem endereço de Redis, New devolve nil e os métodos viram no-op seguros.
func TestNew_SemEnderecoDesativaOCache(t *testing.T) {
	c := cache.New(config.CacheConfig{RedisAddr: "", TTLSeconds: 120}, nil)

	require.Nil(t, c)

	// Métodos sobre o ponteiro nil não podem entrar em pânico.
	var dest payload
	ctx := context.Background()
	assert.False(t, c.Get(ctx, "products", "lista", &dest))
	c.Set(ctx, "products", "lista", payload{})
	c.Invalidate(ctx, "products")
	assert.NoError(t, c.Close())
}

// Redis fora do ar é tratado como miss, nunca como erro.
func TestGet_RedisForaDoArEhMiss(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "products", "lista", payload{Names: []string{"Cimento 50kg"}})
	mr.Close()

	var dest payload
	ok := c.Get(ctx, "products", "lista", &dest)

	assert.False(t, ok)
}
