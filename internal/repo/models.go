package repo

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/internal/normalize"
)

// Order mirrors the orders table. Monetary and address columns are kept
// as raw text, the shape the dashboard's store has always used; the
// normalizer owns coercion.
type Order struct {
	ID              string         `db:"id"`
	Number          sql.NullString `db:"order_number"`
	StoreName       string         `db:"store_name"`
	CustomerName    sql.NullString `db:"customer_name"`
	CustomerEmail   sql.NullString `db:"customer_email"`
	CustomerPhone   sql.NullString `db:"customer_phone"`
	ShippingAddress sql.NullString `db:"shipping_address"`
	BillingAddress  sql.NullString `db:"billing_address"`
	Status          sql.NullString `db:"status"`
	FinancialStatus sql.NullString `db:"financial_status"`
	TotalAmount     sql.NullString `db:"total_amount"`
	Currency        sql.NullString `db:"currency"`
	OrderDate       time.Time      `db:"order_date"`
}

type OrderItem struct {
	ID          string         `db:"id"`
	OrderID     string         `db:"order_id"`
	ProductName sql.NullString `db:"product_name"`
	Quantity    sql.NullInt32  `db:"quantity"`
	Price       sql.NullString `db:"price"`
	ProductID   sql.NullString `db:"product_id"`
	VariantID   sql.NullString `db:"variant_id"`
	SKU         sql.NullString `db:"sku"`
}

type Supplier struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	StoreName string    `db:"store_name"`
	CreatedAt time.Time `db:"created_at"`
}

type Store struct {
	Name        string `db:"name"`
	ShopDomain  string `db:"shop_domain"`
	AccessToken string `db:"access_token"`
	Active      bool   `db:"active"`
}

// OrderToStoreShape lifts a row pair into the local-store source shape
// of the normalizer.
func OrderToStoreShape(o Order, items []OrderItem) normalize.StoreOrder {
	row := normalize.StoreOrder{
		ID:              o.ID,
		Number:          nullStringToString(o.Number),
		CustomerName:    nullStringToString(o.CustomerName),
		CustomerEmail:   nullStringToString(o.CustomerEmail),
		CustomerPhone:   nullStringToString(o.CustomerPhone),
		ShippingAddress: nullStringToString(o.ShippingAddress),
		BillingAddress:  nullStringToString(o.BillingAddress),
		Status:          nullStringToString(o.Status),
		FinancialStatus: nullStringToString(o.FinancialStatus),
		TotalAmount:     nullStringToString(o.TotalAmount),
		Currency:        nullStringToString(o.Currency),
		OrderDate:       o.OrderDate,
		StoreName:       o.StoreName,
	}

	if len(items) > 0 {
		row.Items = make([]normalize.StoreItem, 0, len(items))
		for _, it := range items {
			row.Items = append(row.Items, normalize.StoreItem{
				ID:          it.ID,
				ProductName: nullStringToString(it.ProductName),
				Quantity:    nullInt32ToInt(it.Quantity),
				Price:       nullStringToString(it.Price),
				ProductID:   nullStringToString(it.ProductID),
				VariantID:   nullStringToString(it.VariantID),
				SKU:         nullStringToString(it.SKU),
			})
		}
	}

	return row
}

func SupplierToEntity(s Supplier) entities.Supplier {
	return entities.Supplier{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		StoreName: s.StoreName,
		CreatedAt: s.CreatedAt,
	}
}

func StoreToEntity(s Store) entities.Store {
	return entities.Store{
		Name:        s.Name,
		ShopDomain:  s.ShopDomain,
		AccessToken: s.AccessToken,
		Active:      s.Active,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}
