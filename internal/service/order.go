package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/orderdesk/supplier-orders/internal/entities"
)

type OrderRepo interface {
	OrdersByStore(ctx context.Context, store string) ([]entities.Order, error)
}

type SupplierRepo interface {
	SupplierByEmail(ctx context.Context, email string) (entities.Supplier, error)
}

type StoreRepo interface {
	ListStores(ctx context.Context) ([]entities.Store, error)
}

type SyncTrigger interface {
	Sync(ctx context.Context) (entities.SyncResult, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger    *slog.Logger
	suppliers SupplierRepo
	orders    OrderRepo
	stores    StoreRepo
	syncer    SyncTrigger
	cache     Cache
}

func NewOrderService(logger *slog.Logger, suppliers SupplierRepo, orders OrderRepo, stores StoreRepo, syncer SyncTrigger, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		suppliers: suppliers,
		orders:    orders,
		stores:    stores,
		syncer:    syncer,
		cache:     cache,
	}
}

// resolveOwner picks the store whose orders the caller may see. An
// authenticated identity wins over the explicit parameter; the
// parameter is the fallback when the identity is absent or its lookup
// fails.
func (s *orderService) resolveOwner(ctx context.Context, identity entities.Identity, ownerParam string) (string, error) {
	if identity.Email == "" {
		if ownerParam != "" {
			return ownerParam, nil
		}
		return "", entities.ErrAuthenticationRequired
	}

	supplier, err := s.suppliers.SupplierByEmail(ctx, identity.Email)
	if err == nil {
		return supplier.StoreName, nil
	}

	if ownerParam != "" {
		s.logger.DebugContext(ctx, "supplier lookup failed, using owner parameter",
			slog.String("email", identity.Email), slog.Any("error", err))
		return ownerParam, nil
	}

	if errors.Is(err, entities.ErrSupplierNotFound) {
		return "", entities.ErrSupplierNotFound
	}
	return "", fmt.Errorf("failed to resolve supplier: %w", err)
}

// Retrieval is an explicit two-step machine: one implicit sync attempt
// on an empty first read, then terminal. Never more than one.
type retrievalState int

const (
	stateQueried retrievalState = iota
	stateSyncedOnce
)

// GetSupplierOrders returns the owner's orders, newest first. The
// returned flag reports that a sync during this call succeeded and the
// result reflects it.
func (s *orderService) GetSupplierOrders(ctx context.Context, identity entities.Identity, ownerParam string, forceSync bool) ([]entities.Order, bool, error) {
	store, err := s.resolveOwner(ctx, identity, ownerParam)
	if err != nil {
		return nil, false, err
	}

	state := stateQueried
	syncOK := false

	if forceSync {
		// An explicit sync counts as the one sync of this call.
		state = stateSyncedOnce
		if _, err := s.syncer.Sync(ctx); err != nil {
			s.logger.ErrorContext(ctx, "forced sync failed", slog.String("store", store), slog.Any("error", err))
		} else {
			syncOK = true
		}
	} else if data, ok := s.cache.Get(store); ok {
		var cached entities.OrderList
		if err := cached.Unmarshal(data); err == nil {
			return cached, false, nil
		}
		s.logger.ErrorContext(ctx, "failed to unmarshal cached orders", slog.String("store", store), slog.Any("error", err))
		s.cache.Delete(store)
	}

	for {
		orders, err := s.orders.OrdersByStore(ctx, store)
		if err != nil {
			return nil, false, fmt.Errorf("failed to query orders: %w", err)
		}

		if len(orders) > 0 {
			if data, err := entities.OrderList(orders).Marshal(); err == nil {
				s.cache.Set(store, data)
			}
			return orders, syncOK, nil
		}

		if state == stateSyncedOnce {
			// Terminal: still empty after a sync attempt is an empty
			// result, not an error.
			return []entities.Order{}, false, nil
		}

		state = stateSyncedOnce
		if _, err := s.syncer.Sync(ctx); err != nil {
			s.logger.WarnContext(ctx, "implicit sync failed", slog.String("store", store), slog.Any("error", err))
		} else {
			syncOK = true
		}
	}
}

// AdminOrders collects every active store's mirrored orders, one store
// at a time.
func (s *orderService) AdminOrders(ctx context.Context) ([]entities.Order, error) {
	stores, err := s.stores.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	all := make([]entities.Order, 0)
	for _, store := range stores {
		orders, err := s.orders.OrdersByStore(ctx, store.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to query orders for store %s: %w", store.Name, err)
		}
		all = append(all, orders...)
	}

	return all, nil
}
