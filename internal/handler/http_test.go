package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/internal/handler"
	mocks "github.com/orderdesk/supplier-orders/internal/handler/mocks"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockOrderService, *mocks.MockSyncer) {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	syncer := mocks.NewMockSyncer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	handler.NewHTTPHandler(logger, svc, syncer).Init(router)

	return router, svc, syncer
}

func TestHTTPHandler_GetOrders(t *testing.T) {
	orderDate := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:              "1001",
		Number:          "#1001",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: &entities.Address{City: "Pune"},
		Status:          entities.StatusPending,
		Amount:          decimal.RequireFromString("19.99"),
		Currency:        "USD",
		OrderDate:       orderDate,
		StoreName:       "acme",
		Items:           []entities.LineItem{},
	}

	orderJSON := `{
		"id": "1001",
		"number": "#1001",
		"customerName": "Jane Doe",
		"customerEmail": "jane@example.com",
		"shippingAddress": {"city": "Pune"},
		"status": "pending",
		"amount": 19.99,
		"currency": "USD",
		"orderDate": "2024-05-01T12:00:00Z",
		"storeName": "acme",
		"items": []
	}`

	testCases := []struct {
		name         string
		target       string
		identity     string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:     "OK",
			target:   "/orders",
			identity: "supplier@acme.com",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetSupplierOrders(mock.Anything, entities.Identity{Email: "supplier@acme.com"}, "", false).
					Return([]entities.Order{order}, false, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"orders": [` + orderJSON + `]}`,
		},
		{
			name:     "forced sync reported",
			target:   "/orders?sync=true",
			identity: "supplier@acme.com",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetSupplierOrders(mock.Anything, entities.Identity{Email: "supplier@acme.com"}, "", true).
					Return([]entities.Order{order}, true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"orders": [` + orderJSON + `], "synced": true}`,
		},
		{
			name:   "store parameter forwarded",
			target: "/orders?store=acme",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetSupplierOrders(mock.Anything, entities.Identity{}, "acme", false).
					Return([]entities.Order{}, false, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"orders": []}`,
		},
		{
			name:   "missing identity",
			target: "/orders",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetSupplierOrders(mock.Anything, entities.Identity{}, "", false).
					Return(nil, false, entities.ErrAuthenticationRequired)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error": "authentication required"}`,
		},
		{
			name:     "unknown supplier",
			target:   "/orders",
			identity: "ghost@nowhere.com",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetSupplierOrders(mock.Anything, entities.Identity{Email: "ghost@nowhere.com"}, "", false).
					Return(nil, false, entities.ErrSupplierNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "supplier not found"}`,
		},
		{
			name:     "internal error",
			target:   "/orders",
			identity: "supplier@acme.com",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetSupplierOrders(mock.Anything, mock.Anything, "", false).
					Return(nil, false, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error": "internal server error"}`,
		},
		{
			name:         "malformed identity header",
			target:       "/orders",
			identity:     "not-an-email",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, svc, _ := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.identity != "" {
				req.Header.Set("X-User-Email", tc.identity)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHTTPHandler_GetAdminOrders(t *testing.T) {
	order := entities.Order{
		ID:        "1001",
		Number:    "#1001",
		Status:    entities.StatusFulfilled,
		Amount:    decimal.RequireFromString("100.00"),
		OrderDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		StoreName: "acme",
	}

	t.Run("OK", func(t *testing.T) {
		router, svc, _ := newTestRouter(t)
		svc.EXPECT().AdminOrders(mock.Anything).Return([]entities.Order{order}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{
			"id": "1001",
			"number": "#1001",
			"customerName": "",
			"customerEmail": "",
			"shippingAddress": null,
			"status": "fulfilled",
			"amount": 100,
			"orderDate": "2024-05-01T00:00:00Z",
			"storeName": "acme",
			"items": [],
			"estimatedMargin": 15
		}]`, rec.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		router, svc, _ := newTestRouter(t)
		svc.EXPECT().AdminOrders(mock.Anything).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "internal server error"}`, rec.Body.String())
	})
}

func TestHTTPHandler_ExportOrders(t *testing.T) {
	orders := []entities.Order{
		{
			Number:       "#1001",
			CustomerName: "Jane Doe",
			Status:       entities.StatusPending,
			Amount:       decimal.RequireFromString("19.99"),
			OrderDate:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			StoreName:    "acme",
		},
		{
			Number:       "#1002",
			CustomerName: "Guest",
			Status:       entities.StatusCancelled,
			Amount:       decimal.Zero,
			OrderDate:    time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC),
			StoreName:    "globex",
		},
	}

	router, svc, _ := newTestRouter(t)
	svc.EXPECT().AdminOrders(mock.Anything).Return(orders, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders/export", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	want := "Order Number,Customer,Status,Amount,Store,Margin,Date\n" +
		"#1001,Jane Doe,pending,19.99,acme,3.00,2024-05-01\n" +
		"#1002,Guest,cancelled,0.00,globex,0.00,2024-05-02\n"
	assert.Equal(t, want, rec.Body.String())
}

func TestHTTPHandler_TriggerSync(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		router, _, syncer := newTestRouter(t)
		syncer.EXPECT().Sync(mock.Anything).
			Return(entities.SyncResult{Stores: 2, Orders: 17, Errors: []string{"globex: unreachable"}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/sync", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"stores": 2, "orders": 17, "errors": ["globex: unreachable"]}`, rec.Body.String())
	})

	t.Run("sync fails", func(t *testing.T) {
		router, _, syncer := newTestRouter(t)
		syncer.EXPECT().Sync(mock.Anything).Return(entities.SyncResult{}, errors.New("no stores table"))

		req := httptest.NewRequest(http.MethodPost, "/sync", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "internal server error"}`, rec.Body.String())
	})
}
