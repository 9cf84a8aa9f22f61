package normalize

import (
	"strings"
	"time"

	"github.com/orderdesk/supplier-orders/internal/entities"
)

// GraphQLOrder is the Shopify Admin GraphQL order node, as returned by
// the orders query in internal/shopify.
type GraphQLOrder struct {
	ID                       string           `json:"id"`
	Name                     string           `json:"name"`
	Email                    string           `json:"email"`
	Phone                    string           `json:"phone"`
	CreatedAt                string           `json:"createdAt"`
	CancelledAt              string           `json:"cancelledAt"`
	DisplayFulfillmentStatus string           `json:"displayFulfillmentStatus"`
	DisplayFinancialStatus   string           `json:"displayFinancialStatus"`
	TotalPriceSet            GraphQLMoneyBag  `json:"totalPriceSet"`
	Customer                 *GraphQLCustomer `json:"customer"`
	ShippingAddress          *GraphQLAddress  `json:"shippingAddress"`
	BillingAddress           *GraphQLAddress  `json:"billingAddress"`
	LineItems                GraphQLLineItems `json:"lineItems"`
}

type GraphQLMoneyBag struct {
	ShopMoney GraphQLMoney `json:"shopMoney"`
}

type GraphQLMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type GraphQLCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type GraphQLAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type GraphQLLineItems struct {
	Edges []struct {
		Node GraphQLLineItem `json:"node"`
	} `json:"edges"`
}

type GraphQLLineItem struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Quantity             int             `json:"quantity"`
	SKU                  string          `json:"sku"`
	Variant              *GraphQLVariant `json:"variant"`
	OriginalUnitPriceSet GraphQLMoneyBag `json:"originalUnitPriceSet"`
}

type GraphQLVariant struct {
	ID      string          `json:"id"`
	SKU     string          `json:"sku"`
	Price   string          `json:"price"`
	Product *GraphQLProduct `json:"product"`
}

type GraphQLProduct struct {
	ID string `json:"id"`
}

// FromGraphQL normalizes one order in the Shopify Admin GraphQL shape.
func FromGraphQL(store string, o GraphQLOrder) entities.Order {
	items := make([]entities.LineItem, 0, len(o.LineItems.Edges))
	for _, edge := range o.LineItems.Edges {
		items = append(items, graphqlLineItem(edge.Node))
	}

	name, email, phone := graphqlCustomer(o)

	return Canonicalize(entities.Order{
		ID:              gidTail(o.ID),
		Number:          o.Name,
		CustomerName:    name,
		CustomerEmail:   email,
		CustomerPhone:   phone,
		ShippingAddress: graphqlAddress(o.ShippingAddress),
		BillingAddress:  graphqlAddress(o.BillingAddress),
		Status:          mapStatus(o.DisplayFulfillmentStatus, o.CancelledAt != ""),
		FinancialStatus: strings.ToLower(o.DisplayFinancialStatus),
		Amount:          parseAmount(o.TotalPriceSet.ShopMoney.Amount),
		Currency:        o.TotalPriceSet.ShopMoney.CurrencyCode,
		OrderDate:       graphqlTime(o.CreatedAt),
		StoreName:       store,
		Items:           items,
	})
}

// FromGraphQLList normalizes a batch, preserving input order.
func FromGraphQLList(store string, raw []GraphQLOrder) []entities.Order {
	orders := make([]entities.Order, 0, len(raw))
	for _, o := range raw {
		orders = append(orders, FromGraphQL(store, o))
	}
	return orders
}

func graphqlLineItem(li GraphQLLineItem) entities.LineItem {
	item := entities.LineItem{
		ID:          gidTail(li.ID),
		ProductName: li.Title,
		Quantity:    li.Quantity,
		Price:       parseAmount(li.OriginalUnitPriceSet.ShopMoney.Amount),
		SKU:         li.SKU,
	}
	if li.Variant != nil {
		item.VariantID = gidTail(li.Variant.ID)
		if item.SKU == "" {
			item.SKU = li.Variant.SKU
		}
		if item.Price.IsZero() {
			item.Price = parseAmount(li.Variant.Price)
		}
		if li.Variant.Product != nil {
			item.ProductID = gidTail(li.Variant.Product.ID)
		}
	}
	return item
}

func graphqlCustomer(o GraphQLOrder) (name, email, phone string) {
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

func graphqlAddress(a *GraphQLAddress) *entities.Address {
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

// gidTail extracts the numeric tail of a Shopify GID
// (gid://shopify/Order/123 -> 123). Non-GID input passes through.
func gidTail(gid string) string {
	if idx := strings.LastIndex(gid, "/"); idx >= 0 {
		return gid[idx+1:]
	}
	return gid
}

func graphqlTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
