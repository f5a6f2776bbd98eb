package rule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/cache"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

// Store источник правил, который кэширует CachedRepository
type Store interface {
	Create(ctx context.Context, rule *domain.CapacityRule) (*domain.CapacityRule, error)
	GetByID(ctx context.Context, id int64) (*domain.CapacityRule, error)
	ListByStore(ctx context.Context, storeID string) ([]*domain.CapacityRule, error)
	Update(ctx context.Context, rule *domain.CapacityRule) (*domain.CapacityRule, error)
	Delete(ctx context.Context, id int64) error
}

// CachedRepository кэширует ListByStore по магазину
//
// Запись через этот репозиторий сбрасывает кэш магазина. Внутри транзакции
// кэш не используется, чтобы проверка вместимости видела актуальные правила.
type CachedRepository struct {
	store Store
	cache *cache.Cache[string, []*domain.CapacityRule]
}

// NewCachedRepository создает кэширующий репозиторий с заданным TTL
func NewCachedRepository(store Store, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		store: store,
		cache: cache.New[string, []*domain.CapacityRule](ttl),
	}
}

// EvictExpired удаляет просроченные записи (вызывается janitor'ом)
func (r *CachedRepository) EvictExpired() int {
	return r.cache.EvictExpired()
}

func (r *CachedRepository) ListByStore(ctx context.Context, storeID string) ([]*domain.CapacityRule, error) {
	if dbmetrics.IsInTransaction(ctx) {
		return r.store.ListByStore(ctx, storeID)
	}

	if rules, ok := r.cache.Get(storeID); ok {
		return rules, nil
	}

	rules, err := r.store.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	r.cache.Set(storeID, rules)
	return rules, nil
}

func (r *CachedRepository) GetByID(ctx context.Context, id int64) (*domain.CapacityRule, error) {
	return r.store.GetByID(ctx, id)
}

func (r *CachedRepository) Create(ctx context.Context, rule *domain.CapacityRule) (*domain.CapacityRule, error) {
	created, err := r.store.Create(ctx, rule)
	if err != nil {
		return nil, err
	}
	r.cache.Delete(rule.StoreID)
	return created, nil
}

func (r *CachedRepository) Update(ctx context.Context, rule *domain.CapacityRule) (*domain.CapacityRule, error) {
	updated, err := r.store.Update(ctx, rule)
	if err != nil {
		return nil, err
	}
	r.cache.Delete(rule.StoreID)
	return updated, nil
}

func (r *CachedRepository) Delete(ctx context.Context, id int64) error {
	existing, err := r.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Delete(existing.StoreID)
	return nil
}
