package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdesk/supplier-orders/internal/entities"
)

// Address is the optional shipping or billing address of an order. A
// null address means the source had none or its encoding was broken.
type Address struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address1  string `json:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city,omitempty"`
	Province  string `json:"province,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// LineItem is one purchased product line.
type LineItem struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductID   string  `json:"productId,omitempty"`
	VariantID   string  `json:"variantId,omitempty"`
	SKU         string  `json:"sku,omitempty"`
}

// Order is the dashboard representation of a mirrored order.
type Order struct {
	ID              string     `json:"id"`
	Number          string     `json:"number"`
	CustomerName    string     `json:"customerName"`
	CustomerEmail   string     `json:"customerEmail"`
	CustomerPhone   string     `json:"customerPhone,omitempty"`
	ShippingAddress *Address   `json:"shippingAddress"`
	BillingAddress  *Address   `json:"billingAddress,omitempty"`
	Status          string     `json:"status"`
	FinancialStatus string     `json:"financialStatus,omitempty"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency,omitempty"`
	OrderDate       time.Time  `json:"orderDate"`
	StoreName       string     `json:"storeName"`
	Items           []LineItem `json:"items"`
}

// AdminOrder adds the projected platform margin to the order.
type AdminOrder struct {
	Order
	EstimatedMargin float64 `json:"estimatedMargin"`
}

// OrdersResponse reports whether a store sync ran and succeeded during
// this request. The synced flag only appears on the wire when true.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
	Synced bool    `json:"synced,omitempty"`
}

type SyncResponse struct {
	Stores int      `json:"stores"`
	Orders int      `json:"orders"`
	Errors []string `json:"errors,omitempty"`
}

// marginRate is the flat commission estimate applied to every order.
var marginRate = decimal.NewFromFloat(0.15)

func AddressEntityToJSON(a *entities.Address) *Address {
	if a == nil {
		return nil
	}
	return &Address{
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

func LineItemEntityToJSON(i entities.LineItem) LineItem {
	return LineItem{
		ID:          i.ID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Price:       i.Price.InexactFloat64(),
		ProductID:   i.ProductID,
		VariantID:   i.VariantID,
		SKU:         i.SKU,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemEntityToJSON(it))
	}

	return Order{
		ID:              o.ID,
		Number:          o.Number,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: AddressEntityToJSON(o.ShippingAddress),
		BillingAddress:  AddressEntityToJSON(o.BillingAddress),
		Status:          string(o.Status),
		FinancialStatus: o.FinancialStatus,
		Amount:          o.Amount.InexactFloat64(),
		Currency:        o.Currency,
		OrderDate:       o.OrderDate,
		StoreName:       o.StoreName,
		Items:           items,
	}
}

func OrderListEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func AdminOrderEntityToJSON(o entities.Order) AdminOrder {
	return AdminOrder{
		Order:           OrderEntityToJSON(o),
		EstimatedMargin: EstimateMargin(o),
	}
}

// EstimateMargin projects the platform's cut of an order: a flat 15%
// of the order total, rounded to cents.
func EstimateMargin(o entities.Order) float64 {
	return o.Amount.Mul(marginRate).Round(2).InexactFloat64()
}

func SyncResultToJSON(r entities.SyncResult) SyncResponse {
	return SyncResponse{
		Stores: r.Stores,
		Orders: r.Orders,
		Errors: r.Errors,
	}
}
