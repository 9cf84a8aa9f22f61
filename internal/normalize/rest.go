package normalize

import (
	"strconv"
	"strings"
	"time"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/shopspring/decimal"

	"github.com/orderdesk/supplier-orders/internal/entities"
)

// FromREST normalizes one order in the Shopify Admin REST shape.
func FromREST(store string, o goshopify.Order) entities.Order {
	items := make([]entities.LineItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, entities.LineItem{
			ID:          strconv.FormatInt(li.ID, 10),
			ProductName: li.Title,
			Quantity:    li.Quantity,
			Price:       derefDecimal(li.Price),
			ProductID:   formatOptionalID(li.ProductID),
			VariantID:   formatOptionalID(li.VariantID),
			SKU:         li.SKU,
		})
	}

	name, email, phone := restCustomer(o)

	return Canonicalize(entities.Order{
		ID:              strconv.FormatInt(o.ID, 10),
		Number:          restOrderNumber(o),
		CustomerName:    name,
		CustomerEmail:   email,
		CustomerPhone:   phone,
		ShippingAddress: restAddress(o.ShippingAddress),
		BillingAddress:  restAddress(o.BillingAddress),
		Status:          mapStatus(string(o.FulfillmentStatus), o.CancelledAt != nil),
		FinancialStatus: string(o.FinancialStatus),
		Amount:          derefDecimal(o.TotalPrice),
		Currency:        o.Currency,
		OrderDate:       derefTime(o.CreatedAt),
		StoreName:       store,
		Items:           items,
	})
}

// FromRESTList normalizes a batch, preserving input order.
func FromRESTList(store string, raw []goshopify.Order) []entities.Order {
	orders := make([]entities.Order, 0, len(raw))
	for _, o := range raw {
		orders = append(orders, FromREST(store, o))
	}
	return orders
}

func restOrderNumber(o goshopify.Order) string {
	if o.Name != "" {
		return o.Name
	}
	if o.OrderNumber != 0 {
		return strconv.Itoa(o.OrderNumber)
	}
	return ""
}

func restCustomer(o goshopify.Order) (name, email, phone string) {
	if o.Customer != nil {
		name = strings.TrimSpace(o.Customer.FirstName + " " + o.Customer.LastName)
		email = o.Customer.Email
		phone = o.Customer.Phone
	}
	if email == "" {
		email = o.Email
	}
	if phone == "" {
		phone = o.Phone
	}
	if name == "" && o.ShippingAddress != nil {
		name = strings.TrimSpace(o.ShippingAddress.FirstName + " " + o.ShippingAddress.LastName)
	}
	return name, email, phone
}

func restAddress(a *goshopify.Address) *entities.Address {
	if a == nil {
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

func formatOptionalID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
