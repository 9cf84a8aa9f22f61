package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/internal/service"
	mocks "github.com/orderdesk/supplier-orders/internal/service/mocks"
	txMocks "github.com/orderdesk/supplier-orders/pkg/trm/mocks"
)

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
}

func TestSyncService_Sync(t *testing.T) {
	type Mocks struct {
		stores  *mocks.MockStoreRepo
		repo    *mocks.MockSyncRepo
		fetcher *mocks.MockFetcher
		cache   *mocks.MockCache
	}

	acme := entities.Store{Name: "acme", ShopDomain: "acme.myshopify.com", AccessToken: "token-a"}
	globex := entities.Store{Name: "globex", ShopDomain: "globex.myshopify.com", AccessToken: "token-g"}

	acmeOrders := []entities.Order{
		{ID: "1001", StoreName: "acme", Items: []entities.LineItem{{ID: "i1"}}},
		{ID: "1002", StoreName: "acme"},
	}

	dbError := errors.New("db error")
	apiError := errors.New("shopify unreachable")

	testCases := []struct {
		name         string
		mockBehavior func(m Mocks)
		wantResult   entities.SyncResult
		wantErr      error
	}{
		{
			name: "mirrors every store",
			mockBehavior: func(m Mocks) {
				m.stores.EXPECT().ListStores(mock.Anything).Return([]entities.Store{acme, globex}, nil)
				m.fetcher.EXPECT().FetchOrders(mock.Anything, acme).Return(acmeOrders, nil)
				m.fetcher.EXPECT().FetchOrders(mock.Anything, globex).Return(nil, nil)
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Times(2)
				m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
				m.cache.EXPECT().Delete("acme")
				m.cache.EXPECT().Delete("globex")
			},
			wantResult: entities.SyncResult{Stores: 2, Orders: 2},
		},
		{
			name: "fetch failure skips the store",
			mockBehavior: func(m Mocks) {
				m.stores.EXPECT().ListStores(mock.Anything).Return([]entities.Store{acme, globex}, nil)
				m.fetcher.EXPECT().FetchOrders(mock.Anything, acme).Return(nil, apiError)
				m.fetcher.EXPECT().FetchOrders(mock.Anything, globex).Return(acmeOrders[:1], nil)
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				m.cache.EXPECT().Delete("globex")
			},
			wantResult: entities.SyncResult{
				Stores: 1,
				Orders: 1,
				Errors: []string{"acme: shopify unreachable"},
			},
		},
		{
			name: "persist failure is recorded per order",
			mockBehavior: func(m Mocks) {
				m.stores.EXPECT().ListStores(mock.Anything).Return([]entities.Store{acme}, nil)
				m.fetcher.EXPECT().FetchOrders(mock.Anything, acme).Return(acmeOrders, nil)
				m.repo.EXPECT().SaveOrder(mock.Anything, acmeOrders[0]).Return(dbError)
				m.repo.EXPECT().SaveOrder(mock.Anything, acmeOrders[1]).Return(nil)
				m.repo.EXPECT().SaveItems(mock.Anything, "1002", mock.Anything).Return(nil)
				m.cache.EXPECT().Delete("acme")
			},
			wantResult: entities.SyncResult{
				Stores: 1,
				Orders: 1,
				Errors: []string{"acme/1001: failed to save order: db error"},
			},
		},
		{
			name: "store listing failure aborts",
			mockBehavior: func(m Mocks) {
				m.stores.EXPECT().ListStores(mock.Anything).Return(nil, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				stores:  mocks.NewMockStoreRepo(t),
				repo:    mocks.NewMockSyncRepo(t),
				fetcher: mocks.NewMockFetcher(t),
				cache:   mocks.NewMockCache(t),
			}
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(m)

			svc := service.NewSyncService(logger, tx, m.stores, m.repo, m.fetcher, m.cache)

			result, err := svc.Sync(context.Background())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}

func TestSyncService_Sync_CoalescesConcurrentTriggers(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	repo := mocks.NewMockSyncRepo(t)
	fetcher := mocks.NewMockFetcher(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	passthroughTx(tx)

	acme := entities.Store{Name: "acme", ShopDomain: "acme.myshopify.com", AccessToken: "token-a"}

	entered := make(chan struct{})
	release := make(chan struct{})

	// Every expectation is Once: a second run would fail the mocks.
	stores.EXPECT().ListStores(mock.Anything).Once().Return([]entities.Store{acme}, nil)
	fetcher.EXPECT().FetchOrders(mock.Anything, acme).RunAndReturn(
		func(ctx context.Context, store entities.Store) ([]entities.Order, error) {
			close(entered)
			<-release
			return []entities.Order{{ID: "1001", StoreName: "acme"}}, nil
		}).Once()
	repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Once().Return(nil)
	repo.EXPECT().SaveItems(mock.Anything, "1001", mock.Anything).Once().Return(nil)
	cache.EXPECT().Delete("acme").Once()

	svc := service.NewSyncService(logger, tx, stores, repo, fetcher, cache)

	type outcome struct {
		result entities.SyncResult
		err    error
	}
	results := make(chan outcome, 2)
	for range 2 {
		go func() {
			result, err := svc.Sync(context.Background())
			results <- outcome{result, err}
		}()
	}

	<-entered
	// Let the second trigger join the in-flight run before it finishes.
	time.Sleep(50 * time.Millisecond)
	close(release)

	first := <-results
	second := <-results

	require.NoError(t, first.err)
	require.NoError(t, second.err)
	assert.Equal(t, entities.SyncResult{Stores: 1, Orders: 1}, first.result)
	assert.Equal(t, first.result, second.result)
}

func TestSyncService_SaveOrder(t *testing.T) {
	order := entities.Order{
		ID:        "1001",
		StoreName: "acme",
		Items:     []entities.LineItem{{ID: "i1", ProductName: "Widget"}},
	}

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockSyncRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockSyncRepo, cache *mocks.MockCache) {
				repo.EXPECT().SaveOrder(mock.Anything, order).Return(nil)
				repo.EXPECT().SaveItems(mock.Anything, "1001", order.Items).Return(nil)
				cache.EXPECT().Delete("acme")
			},
		},
		{
			name: "order save fails",
			mockBehavior: func(repo *mocks.MockSyncRepo, cache *mocks.MockCache) {
				repo.EXPECT().SaveOrder(mock.Anything, order).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "items save fails",
			mockBehavior: func(repo *mocks.MockSyncRepo, cache *mocks.MockCache) {
				repo.EXPECT().SaveOrder(mock.Anything, order).Return(nil)
				repo.EXPECT().SaveItems(mock.Anything, "1001", order.Items).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stores := mocks.NewMockStoreRepo(t)
			repo := mocks.NewMockSyncRepo(t)
			fetcher := mocks.NewMockFetcher(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			passthroughTx(tx)
			tc.mockBehavior(repo, cache)

			svc := service.NewSyncService(logger, tx, stores, repo, fetcher, cache)

			err := svc.SaveOrder(context.Background(), order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
