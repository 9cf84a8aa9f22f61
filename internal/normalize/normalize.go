// Package normalize converts the three raw order shapes the dashboard
// encounters (local store rows, Shopify Admin REST, Shopify Admin
// GraphQL) into the one canonical shape in entities. Every function here
// is pure: no I/O, and a malformed field degrades to its zero value or a
// nil address instead of failing the record or the batch.
package normalize

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdesk/supplier-orders/internal/entities"
)

const (
	placeholderName  = "Guest"
	placeholderEmail = "No email"
)

// StoreOrder is the local-store source shape. Monetary fields and
// addresses arrive as raw text, exactly as persisted.
type StoreOrder struct {
	ID              string
	Number          string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	BillingAddress  string
	Status          string
	FinancialStatus string
	TotalAmount     string
	Currency        string
	OrderDate       time.Time
	StoreName       string
	Items           []StoreItem
}

type StoreItem struct {
	ID          string
	ProductName string
	Quantity    int
	Price       string
	ProductID   string
	VariantID   string
	SKU         string
}

// FromStoreRow normalizes one local-store order.
func FromStoreRow(o StoreOrder) entities.Order {
	items := make([]entities.LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entities.LineItem{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       parseAmount(it.Price),
			ProductID:   it.ProductID,
			VariantID:   it.VariantID,
			SKU:         it.SKU,
		})
	}

	return Canonicalize(entities.Order{
		ID:              o.ID,
		Number:          o.Number,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: ParseAddress(o.ShippingAddress),
		BillingAddress:  ParseAddress(o.BillingAddress),
		Status:          mapStatus(o.Status, false),
		FinancialStatus: o.FinancialStatus,
		Amount:          parseAmount(o.TotalAmount),
		Currency:        o.Currency,
		OrderDate:       o.OrderDate,
		StoreName:       o.StoreName,
		Items:           items,
	})
}

// FromStoreRows normalizes a batch, preserving input order. One bad row
// never aborts the batch.
func FromStoreRows(rows []StoreOrder) []entities.Order {
	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, FromStoreRow(row))
	}
	return orders
}

// storeAddress mirrors the serialized address JSON the store keeps.
type storeAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// ParseAddress decodes a serialized address. Empty input, JSON null or
// any parse failure yields nil, never a partial address.
func ParseAddress(raw string) *entities.Address {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	var a *storeAddress
	if err := json.Unmarshal([]byte(s), &a); err != nil || a == nil {
		return nil
	}

	return &entities.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
		Phone:     a.Phone,
	}
}

// SerializeAddress is the inverse of ParseAddress, used when mirroring
// a fetched order into the store. A nil address serializes to "".
func SerializeAddress(a *entities.Address) string {
	if a == nil {
		return ""
	}
	data, err := json.Marshal(storeAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
		Phone:     a.Phone,
	})
	if err != nil {
		return ""
	}
	return string(data)
}

// parseAmount coerces monetary text to a decimal, defaulting to zero
// when the value is missing or malformed.
func parseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// mapStatus folds the status vocabulary of every source into the
// canonical enum. Cancellation wins over fulfillment state.
func mapStatus(fulfillment string, cancelled bool) entities.OrderStatus {
	if cancelled {
		return entities.StatusCancelled
	}
	switch strings.ToLower(strings.TrimSpace(fulfillment)) {
	case "fulfilled":
		return entities.StatusFulfilled
	case "cancelled", "canceled":
		return entities.StatusCancelled
	case "partial", "partially_fulfilled":
		return entities.StatusPartial
	default:
		return entities.StatusPending
	}
}

// Canonicalize applies the final presentation guarantees: placeholder
// customer fields so no cell renders empty, non-negative quantities and
// a non-nil item slice. Applying it twice changes nothing.
func Canonicalize(o entities.Order) entities.Order {
	if strings.TrimSpace(o.CustomerName) == "" {
		o.CustomerName = placeholderName
	}
	if strings.TrimSpace(o.CustomerEmail) == "" {
		o.CustomerEmail = placeholderEmail
	}
	if o.Status == "" {
		o.Status = entities.StatusPending
	}
	if o.Items == nil {
		o.Items = []entities.LineItem{}
	}
	for i := range o.Items {
		if o.Items[i].Quantity < 0 {
			o.Items[i].Quantity = 0
		}
	}
	return o
}
