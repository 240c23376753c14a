package ports

import "context"

// ListCache guarda listagens serializadas por entidade, com invalidação por
// versão: Invalidate incrementa a versão da entidade e todas as chaves
// anteriores deixam de ser encontradas (expiram pelo TTL).
// Implementações devem tratar falha de cache como cache miss, nunca como erro
// da operação.
type ListCache interface {
	Get(ctx context.Context, entity, key string, dest interface{}) bool
	Set(ctx context.Context, entity, key string, value interface{})
	Invalidate(ctx context.Context, entity string)
}
