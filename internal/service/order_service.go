package service

import (
	"context"
	"fmt"
	"time"

	"store-visit/internal/core/cache"
	"store-visit/internal/domain"
)

// OrderService orchestrates the order and visit lifecycle: authorization
// checks first, then persistence; repository failures propagate untouched.
type OrderService struct {
	orders domain.OrderRepository
	stores domain.StoreRepository
	visits domain.VisitRepository

	storeCache *cache.Cache
	storeTTL   time.Duration
}

func NewOrderService(orders domain.OrderRepository, stores domain.StoreRepository, visits domain.VisitRepository) *OrderService {
	return &OrderService{orders: orders, stores: stores, visits: visits}
}

// WithStoreCache enables a read-through cache in front of store listings.
func (s *OrderService) WithStoreCache(c *cache.Cache, ttl time.Duration) *OrderService {
	s.storeCache = c
	s.storeTTL = ttl
	return s
}

func (s *OrderService) CreateOrder(ctx context.Context, draft *domain.Order, actor *domain.User) (*domain.Order, error) {
	if err := accessToStore(actor, draft.StoreID); err != nil {
		return nil, err
	}
	store, err := s.stores.GetByID(ctx, draft.StoreID)
	if err != nil {
		return nil, err
	}
	if err := workerBelongs(store, draft.WorkerID); err != nil {
		return nil, err
	}

	draft.CustomerID = actor.ID
	draft.ExpiresAt = naive(draft.ExpiresAt)
	if draft.Status == "" {
		draft.Status = domain.OrderStarted
	}
	return s.orders.Create(ctx, draft)
}

func (s *OrderService) GetOrders(ctx context.Context, f domain.OrderFilter, actor *domain.User) ([]domain.Order, error) {
	return s.orders.List(ctx, f, actor)
}

func (s *OrderService) UpdateOrder(ctx context.Context, id int64, p domain.OrderPatch) (*domain.Order, error) {
	if p.Empty() {
		return nil, domain.NewError(domain.KindDataValidation, "at least one field is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		return nil, domain.NewError(domain.KindDataValidation, "unknown order status: %s", *p.Status)
	}
	if p.ExpiresAt != nil {
		t := naive(*p.ExpiresAt)
		p.ExpiresAt = &t
	}
	return s.orders.Update(ctx, id, p)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.orders.SoftDelete(ctx, id)
}

func (s *OrderService) GetStores(ctx context.Context, f domain.StoreFilter) ([]domain.Store, error) {
	if s.storeCache == nil {
		return s.stores.List(ctx, f)
	}
	return cache.GetOrLoadJSON(s.storeCache, ctx, storeCacheKey(f), s.storeTTL,
		func(ctx context.Context) ([]domain.Store, error) {
			return s.stores.List(ctx, f)
		})
}

func (s *OrderService) CreateVisit(ctx context.Context, draft *domain.Visit, actor *domain.User) (*domain.Visit, error) {
	order, err := s.orders.GetByID(ctx, draft.OrderID)
	if err != nil {
		return nil, err
	}
	if time.Now().UTC().After(order.ExpiresAt) {
		return nil, domain.NewError(domain.KindTimeIsUp, "order receipt time is over")
	}

	draft.StoreID = order.StoreID
	if err := accessToStore(actor, draft.StoreID); err != nil {
		return nil, err
	}

	existing, err := s.visits.GetByOrderID(ctx, draft.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewError(domain.KindAccessDenied, "order already completed")
	}
	if actor.ID != order.CustomerID {
		return nil, domain.NewError(domain.KindAccessDenied, "not your order")
	}

	draft.WorkerID = order.WorkerID
	draft.CustomerID = actor.ID
	return s.visits.Create(ctx, draft)
}

func (s *OrderService) GetVisits(ctx context.Context, f domain.VisitFilter) ([]domain.Visit, error) {
	return s.visits.List(ctx, f)
}

func (s *OrderService) DeleteVisit(ctx context.Context, id int64) error {
	return s.visits.SoftDelete(ctx, id)
}

// naive strips the timezone offset, keeping the wall-clock reading.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func storeCacheKey(f domain.StoreFilter) string {
	id := int64(0)
	if f.ID != nil {
		id = *f.ID
	}
	return fmt.Sprintf("stores:id=%d:title=%s:limit=%d", id, f.Title, f.Limit)
}
