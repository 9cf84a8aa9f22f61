package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the canonical fulfillment status shown on the dashboard.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusFulfilled OrderStatus = "fulfilled"
	StatusCancelled OrderStatus = "cancelled"
	StatusPartial   OrderStatus = "partial"
)

// Address is optional on an order. A nil address means the source either
// had none or its encoding could not be parsed.
type Address struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	Province  string
	Zip       string
	Country   string
	Phone     string
}

type LineItem struct {
	ID          string
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	ProductID   string
	VariantID   string
	SKU         string
}

// Order is the canonical, source-agnostic shape consumed by the
// presentation layer. Line items belong exclusively to their order.
type Order struct {
	ID              string
	Number          string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress *Address
	BillingAddress  *Address
	Status          OrderStatus
	FinancialStatus string
	Amount          decimal.Decimal
	Currency        string
	OrderDate       time.Time
	StoreName       string
	Items           []LineItem
}

// OrderList is the cache unit: the full, newest-first order list of one store.
type OrderList []Order

func (l OrderList) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (l *OrderList) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(l)
}

func init() {
	gob.Register(OrderList{})
	gob.Register(Order{})
	gob.Register(Address{})
	gob.Register(LineItem{})
}
