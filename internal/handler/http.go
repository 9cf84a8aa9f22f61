package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/pkg/utils"
)

// identityHeader carries the authenticated supplier email, set by the
// auth proxy in front of this service.
const identityHeader = "X-User-Email"

type OrderService interface {
	GetSupplierOrders(ctx context.Context, identity entities.Identity, ownerParam string, forceSync bool) ([]entities.Order, bool, error)
	AdminOrders(ctx context.Context) ([]entities.Order, error)
}

type Syncer interface {
	Sync(ctx context.Context) (entities.SyncResult, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	syncer   Syncer
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, syncer Syncer) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		syncer:   syncer,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/orders", h.GetOrders)
	r.Post("/sync", h.TriggerSync)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/orders", h.GetAdminOrders)
		r.Get("/orders/export", h.ExportOrders)
	})
}

// GetOrders returns the caller's mirrored orders, newest first. The
// store query parameter is a fallback owner for unauthenticated
// callers; sync=true forces a refresh from Shopify first.
func (h *HTTPHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity := entities.Identity{Email: r.Header.Get(identityHeader)}
	ownerParam := r.URL.Query().Get("store")
	forceSync := r.URL.Query().Get("sync") == "true"

	if identity.Email != "" {
		if err := h.validate.Var(identity.Email, "email"); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
	}

	orders, synced, err := h.orders.GetSupplierOrders(ctx, identity, ownerParam, forceSync)

	if errors.Is(err, entities.ErrAuthenticationRequired) {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if errors.Is(err, entities.ErrSupplierNotFound) {
		utils.WriteError(w, "supplier not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get orders", slog.Any("error", err), slog.String("store", ownerParam))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersResponse{Orders: OrderListEntityToJSON(orders), Synced: synced}, http.StatusOK)
}

// GetAdminOrders returns every store's orders with the projected margin
// per order.
func (h *HTTPHandler) GetAdminOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.AdminOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get admin orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]AdminOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, AdminOrderEntityToJSON(o))
	}

	utils.WriteJSON(w, out, http.StatusOK)
}

const exportHeader = "Order Number,Customer,Status,Amount,Store,Margin,Date"

// ExportOrders streams the admin order list as CSV. Fields are joined
// raw: the dashboard's spreadsheet import expects unquoted cells and
// the exported columns cannot contain commas.
func (h *HTTPHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.AdminOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to export orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var sb strings.Builder
	sb.WriteString(exportHeader + "\n")
	for _, o := range orders {
		fmt.Fprintf(&sb, "%s,%s,%s,%.2f,%s,%.2f,%s\n",
			o.Number,
			o.CustomerName,
			o.Status,
			o.Amount.InexactFloat64(),
			o.StoreName,
			EstimateMargin(o),
			o.OrderDate.Format("2006-01-02"),
		)
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(sb.String()))
}

// TriggerSync refreshes the local mirror from every active store.
func (h *HTTPHandler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	syncsTriggered.Inc()

	result, err := h.syncer.Sync(ctx)
	if err != nil {
		syncsFailed.Inc()
		h.logger.ErrorContext(ctx, "sync failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, SyncResultToJSON(result), http.StatusOK)
}
