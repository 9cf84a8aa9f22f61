package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/pkg/trm"
)

type SyncRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error
}

type Fetcher interface {
	FetchOrders(ctx context.Context, store entities.Store) ([]entities.Order, error)
}

type syncService struct {
	logger    *slog.Logger
	txManager trm.Manager
	stores    StoreRepo
	repo      SyncRepo
	fetcher   Fetcher
	cache     Cache
	group     singleflight.Group
}

func NewSyncService(logger *slog.Logger, txManager trm.Manager, stores StoreRepo, repo SyncRepo, fetcher Fetcher, cache Cache) *syncService {
	return &syncService{
		logger:    logger.With(slog.String("service", "sync")),
		txManager: txManager,
		stores:    stores,
		repo:      repo,
		fetcher:   fetcher,
		cache:     cache,
	}
}

// Sync mirrors every active store's current orders into the local
// store. Concurrent triggers share one run; the sync is an idempotent
// upsert keyed by order id, so overlap would only waste work.
func (s *syncService) Sync(ctx context.Context) (entities.SyncResult, error) {
	v, err, _ := s.group.Do("sync", func() (any, error) {
		return s.syncAll(ctx)
	})
	if err != nil {
		return entities.SyncResult{}, err
	}
	return v.(entities.SyncResult), nil
}

// syncAll walks stores sequentially. A store's fetch or persist failure
// lands in the result instead of aborting the run.
func (s *syncService) syncAll(ctx context.Context) (entities.SyncResult, error) {
	stores, err := s.stores.ListStores(ctx)
	if err != nil {
		return entities.SyncResult{}, fmt.Errorf("failed to list stores: %w", err)
	}

	var result entities.SyncResult
	for _, store := range stores {
		orders, err := s.fetcher.FetchOrders(ctx, store)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch orders",
				slog.String("store", store.Name), slog.Any("error", err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", store.Name, err))
			continue
		}

		result.Stores++
		for _, order := range orders {
			if err := s.saveOrder(ctx, order); err != nil {
				s.logger.ErrorContext(ctx, "failed to save order",
					slog.String("store", store.Name), slog.String("order_id", order.ID), slog.Any("error", err))
				result.Errors = append(result.Errors, fmt.Sprintf("%s/%s: %v", store.Name, order.ID, err))
				continue
			}
			result.Orders++
		}

		s.cache.Delete(store.Name)
		s.logger.InfoContext(ctx, "store synced",
			slog.String("store", store.Name), slog.Int("orders", len(orders)))
	}

	return result, nil
}

// SaveOrder persists one canonical order with its items and drops the
// store's cached list. Used by the webhook-event consumer.
func (s *syncService) SaveOrder(ctx context.Context, order entities.Order) error {
	if err := s.saveOrder(ctx, order); err != nil {
		return err
	}
	s.cache.Delete(order.StoreName)
	return nil
}

func (s *syncService) saveOrder(ctx context.Context, order entities.Order) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}
		return nil
	})
}
