package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/internal/service"
	mocks "github.com/orderdesk/supplier-orders/internal/service/mocks"
)

func TestOrderService_GetSupplierOrders(t *testing.T) {
	type Mocks struct {
		suppliers *mocks.MockSupplierRepo
		orders    *mocks.MockOrderRepo
		syncer    *mocks.MockSyncTrigger
		cache     *mocks.MockCache
	}

	identity := entities.Identity{Email: "supplier@acme.com"}
	supplier := entities.Supplier{Email: "supplier@acme.com", StoreName: "acme"}
	acmeOrders := []entities.Order{{ID: "1001", StoreName: "acme"}, {ID: "1002", StoreName: "acme"}}

	cachedData, err := entities.OrderList(acmeOrders).Marshal()
	require.NoError(t, err)

	dbError := errors.New("db error")
	syncError := errors.New("sync error")

	testCases := []struct {
		name         string
		identity     entities.Identity
		ownerParam   string
		forceSync    bool
		mockBehavior func(m Mocks)
		wantOrders   []entities.Order
		wantSynced   bool
		wantErr      error
	}{
		{
			name:     "cache hit skips storage",
			identity: identity,
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.cache.EXPECT().Get("acme").Return(cachedData, true)
			},
			wantOrders: acmeOrders,
			wantSynced: false,
		},
		{
			name:     "orders already mirrored",
			identity: identity,
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.cache.EXPECT().Get("acme").Return(nil, false)
				m.orders.EXPECT().OrdersByStore(mock.Anything, "acme").Return(acmeOrders, nil)
				m.cache.EXPECT().Set("acme", mock.Anything)
			},
			wantOrders: acmeOrders,
			wantSynced: false,
		},
		{
			name:     "empty store syncs once then finds orders",
			identity: identity,
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.cache.EXPECT().Get("acme").Return(nil, false)
				m.orders.EXPECT().OrdersByStore(mock.Anything, "acme").Once().Return(nil, nil)
				m.syncer.EXPECT().Sync(mock.Anything).Once().Return(entities.SyncResult{Stores: 1, Orders: 2}, nil)
				m.orders.EXPECT().OrdersByStore(mock.Anything, "acme").Once().Return(acmeOrders, nil)
				m.cache.EXPECT().Set("acme", mock.Anything)
			},
			wantOrders: acmeOrders,
			wantSynced: true,
		},
		{
			name:     "still empty after sync is not an error",
			identity: identity,
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.cache.EXPECT().Get("acme").Return(nil, false)
				m.orders.EXPECT().OrdersByStore(mock.Anything, "acme").Twice().Return([]entities.Order{}, nil)
				m.syncer.EXPECT().Sync(mock.Anything).Once().Return(entities.SyncResult{}, nil)
			},
			wantOrders: []entities.Order{},
			wantSynced: false,
		},
		{
			name:     "sync failure degrades to empty result",
			identity: identity,
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.cache.EXPECT().Get("acme").Return(nil, false)
				m.orders.EXPECT().OrdersByStore(mock.Anything, "acme").Twice().Return(nil, nil)
				m.syncer.EXPECT().Sync(mock.Anything).Once().Return(entities.SyncResult{}, syncError)
			},
			wantOrders: []entities.Order{},
			wantSynced: false,
		},
		{
			name:     "corrupt cache entry falls through to storage",
			identity: identity,
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.cache.EXPECT().Get("acme").Return([]byte("not gob"), true)
				m.cache.EXPECT().Delete("acme")
				m.orders.EXPECT().OrdersByStore(mock.Anything, "acme").Return(acmeOrders, nil)
				m.cache.EXPECT().Set("acme", mock.Anything)
			},
			wantOrders: acmeOrders,
			wantSynced: false,
		},
		{
			name:      "forced sync bypasses cache",
			identity:  identity,
			forceSync: true,
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.syncer.EXPECT().Sync(mock.Anything).Once().Return(entities.SyncResult{Stores: 1, Orders: 2}, nil)
				m.orders.EXPECT().OrdersByStore(mock.Anything, "acme").Return(acmeOrders, nil)
				m.cache.EXPECT().Set("acme", mock.Anything)
			},
			wantOrders: acmeOrders,
			wantSynced: true,
		},
		{
			name:       "identity wins over owner parameter",
			identity:   identity,
			ownerParam: "other-store",
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.cache.EXPECT().Get("acme").Return(cachedData, true)
			},
			wantOrders: acmeOrders,
			wantSynced: false,
		},
		{
			name:       "owner parameter covers unknown identity",
			identity:   entities.Identity{Email: "ghost@nowhere.com"},
			ownerParam: "acme",
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "ghost@nowhere.com").
					Return(entities.Supplier{}, entities.ErrSupplierNotFound)
				m.cache.EXPECT().Get("acme").Return(cachedData, true)
			},
			wantOrders: acmeOrders,
			wantSynced: false,
		},
		{
			name:         "no identity and no parameter",
			identity:     entities.Identity{},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrAuthenticationRequired,
		},
		{
			name:     "unknown identity without parameter",
			identity: entities.Identity{Email: "ghost@nowhere.com"},
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "ghost@nowhere.com").
					Return(entities.Supplier{}, entities.ErrSupplierNotFound)
			},
			wantErr: entities.ErrSupplierNotFound,
		},
		{
			name:     "storage error surfaces",
			identity: identity,
			mockBehavior: func(m Mocks) {
				m.suppliers.EXPECT().SupplierByEmail(mock.Anything, "supplier@acme.com").Return(supplier, nil)
				m.cache.EXPECT().Get("acme").Return(nil, false)
				m.orders.EXPECT().OrdersByStore(mock.Anything, "acme").Return(nil, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				suppliers: mocks.NewMockSupplierRepo(t),
				orders:    mocks.NewMockOrderRepo(t),
				syncer:    mocks.NewMockSyncTrigger(t),
				cache:     mocks.NewMockCache(t),
			}
			stores := mocks.NewMockStoreRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(m)

			svc := service.NewOrderService(logger, m.suppliers, m.orders, stores, m.syncer, m.cache)

			orders, synced, err := svc.GetSupplierOrders(context.Background(), tc.identity, tc.ownerParam, tc.forceSync)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOrders, orders)
			assert.Equal(t, tc.wantSynced, synced)
		})
	}
}

func TestOrderService_AdminOrders(t *testing.T) {
	acme := entities.Store{Name: "acme", ShopDomain: "acme.myshopify.com"}
	globex := entities.Store{Name: "globex", ShopDomain: "globex.myshopify.com"}

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior func(orders *mocks.MockOrderRepo, stores *mocks.MockStoreRepo)
		wantOrders   []entities.Order
		wantErr      error
	}{
		{
			name: "merges stores in listing order",
			mockBehavior: func(orders *mocks.MockOrderRepo, stores *mocks.MockStoreRepo) {
				stores.EXPECT().ListStores(mock.Anything).Return([]entities.Store{acme, globex}, nil)
				orders.EXPECT().OrdersByStore(mock.Anything, "acme").
					Return([]entities.Order{{ID: "1", StoreName: "acme"}}, nil)
				orders.EXPECT().OrdersByStore(mock.Anything, "globex").
					Return([]entities.Order{{ID: "2", StoreName: "globex"}}, nil)
			},
			wantOrders: []entities.Order{
				{ID: "1", StoreName: "acme"},
				{ID: "2", StoreName: "globex"},
			},
		},
		{
			name: "no stores",
			mockBehavior: func(orders *mocks.MockOrderRepo, stores *mocks.MockStoreRepo) {
				stores.EXPECT().ListStores(mock.Anything).Return(nil, nil)
			},
			wantOrders: []entities.Order{},
		},
		{
			name: "store listing fails",
			mockBehavior: func(orders *mocks.MockOrderRepo, stores *mocks.MockStoreRepo) {
				stores.EXPECT().ListStores(mock.Anything).Return(nil, dbError)
			},
			wantErr: dbError,
		},
		{
			name: "store query fails",
			mockBehavior: func(orders *mocks.MockOrderRepo, stores *mocks.MockStoreRepo) {
				stores.EXPECT().ListStores(mock.Anything).Return([]entities.Store{acme}, nil)
				orders.EXPECT().OrdersByStore(mock.Anything, "acme").Return(nil, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			stores := mocks.NewMockStoreRepo(t)
			suppliers := mocks.NewMockSupplierRepo(t)
			syncer := mocks.NewMockSyncTrigger(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orders, stores)

			svc := service.NewOrderService(logger, suppliers, orders, stores, syncer, cache)

			got, err := svc.AdminOrders(context.Background())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOrders, got)
		})
	}
}
