package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/internal/normalize"
	"github.com/orderdesk/supplier-orders/pkg/trm"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var orderColumns = []string{
	"id", "order_number", "store_name",
	"customer_name", "customer_email", "customer_phone",
	"shipping_address", "billing_address",
	"status", "financial_status",
	"total_amount", "currency", "order_date",
}

var itemColumns = []string{
	"id", "order_id", "product_name", "quantity",
	"price", "product_id", "variant_id", "sku",
}

// OrdersByStore returns the store's mirrored orders joined with their
// line items, newest first.
func (r *postgresRepo) OrdersByStore(ctx context.Context, store string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"store_name": store}).
		OrderBy("order_date DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	rows := make([]normalize.StoreOrder, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, OrderToStoreShape(order, itemsMap[order.ID]))
	}

	return normalize.FromStoreRows(rows), nil
}

func (r *postgresRepo) SupplierByEmail(ctx context.Context, email string) (entities.Supplier, error) {
	query, args := r.qb.Select("id", "name", "email", "store_name", "created_at").
		From("suppliers").
		Where(sq.Eq{"email": email}).
		MustSql()

	var supplier Supplier
	err := r.getContext(ctx, &supplier, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Supplier{}, entities.ErrSupplierNotFound
	}
	if err != nil {
		return entities.Supplier{}, fmt.Errorf("failed to get supplier: %w", err)
	}

	return SupplierToEntity(supplier), nil
}

func (r *postgresRepo) ListStores(ctx context.Context) ([]entities.Store, error) {
	query, args := r.qb.Select("name", "shop_domain", "access_token", "active").
		From("stores").
		Where(sq.Eq{"active": true}).
		OrderBy("name").
		MustSql()

	var stores []Store
	if err := r.selectContext(ctx, &stores, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select stores: %w", err)
	}

	result := make([]entities.Store, 0, len(stores))
	for _, store := range stores {
		result = append(result, StoreToEntity(store))
	}
	return result, nil
}

// SaveOrder mirrors one canonical order into the store. The upsert keyed
// by order id makes repeated syncs idempotent.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID,
			nullString(o.Number),
			o.StoreName,
			nullString(o.CustomerName),
			nullString(o.CustomerEmail),
			nullString(o.CustomerPhone),
			nullString(normalize.SerializeAddress(o.ShippingAddress)),
			nullString(normalize.SerializeAddress(o.BillingAddress)),
			nullString(string(o.Status)),
			nullString(o.FinancialStatus),
			nullString(o.Amount.String()),
			nullString(o.Currency),
			o.OrderDate,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			order_number = EXCLUDED.order_number,
			customer_name = EXCLUDED.customer_name,
			customer_email = EXCLUDED.customer_email,
			customer_phone = EXCLUDED.customer_phone,
			shipping_address = EXCLUDED.shipping_address,
			billing_address = EXCLUDED.billing_address,
			status = EXCLUDED.status,
			financial_status = EXCLUDED.financial_status,
			total_amount = EXCLUDED.total_amount,
			currency = EXCLUDED.currency,
			order_date = EXCLUDED.order_date`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	// Upsert keeps re-synced items current: quantity and price can
	// change on the source between syncs.
	q := r.qb.Insert("order_items").
		Columns(itemColumns...).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			order_id = EXCLUDED.order_id,
			product_name = EXCLUDED.product_name,
			quantity = EXCLUDED.quantity,
			price = EXCLUDED.price,
			product_id = EXCLUDED.product_id,
			variant_id = EXCLUDED.variant_id,
			sku = EXCLUDED.sku`)

	for _, it := range items {
		q = q.Values(
			it.ID,
			orderID,
			nullString(it.ProductName),
			it.Quantity,
			nullString(it.Price.String()),
			nullString(it.ProductID),
			nullString(it.VariantID),
			nullString(it.SKU),
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
