package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// Mirrors the Shopify REST order payload fields the consumer cares
// about. Money travels as strings, the way Shopify sends it.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type LineItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	ProductID int64  `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	SKU       string `json:"sku"`
}

type Order struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	CreatedAt         string     `json:"created_at"`
	TotalPrice        string     `json:"total_price"`
	Currency          string     `json:"currency"`
	FinancialStatus   string     `json:"financial_status"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	Customer          *Customer  `json:"customer"`
	ShippingAddress   *Address   `json:"shipping_address"`
	LineItems         []LineItem `json:"line_items"`
}

type OrderEvent struct {
	Store string `json:"store"`
	Order Order  `json:"order"`
}

var stores = []string{"acme", "globex", "initech"}

var fulfillmentStatuses = []string{"", "fulfilled", "partial"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomEvent() OrderEvent {
	orderID := rand.Int63n(9_000_000_000) + 1_000_000_000

	order := Order{
		ID:                orderID,
		Name:              fmt.Sprintf("#%d", rand.Intn(9000)+1000),
		Email:             fmt.Sprintf("buyer%d@example.com", rand.Intn(1000)),
		CreatedAt:         time.Now().Format(time.RFC3339),
		TotalPrice:        fmt.Sprintf("%d.%02d", rand.Intn(500)+10, rand.Intn(100)),
		Currency:          "USD",
		FinancialStatus:   "paid",
		FulfillmentStatus: fulfillmentStatuses[rand.Intn(len(fulfillmentStatuses))],
		Customer: &Customer{
			FirstName: "Buyer",
			LastName:  randomString(5),
			Email:     fmt.Sprintf("buyer%d@example.com", rand.Intn(1000)),
		},
		ShippingAddress: &Address{
			FirstName: "Buyer",
			LastName:  randomString(5),
			Address1:  fmt.Sprintf("%d Main St", rand.Intn(900)+1),
			City:      "City" + randomString(4),
			Province:  "Province" + randomString(3),
			Zip:       fmt.Sprintf("%05d", rand.Intn(99999)),
			Country:   "US",
		},
		LineItems: []LineItem{
			{
				ID:        rand.Int63n(9_999_999),
				Title:     "Item " + randomString(5),
				Quantity:  rand.Intn(5) + 1,
				Price:     fmt.Sprintf("%d.%02d", rand.Intn(100)+1, rand.Intn(100)),
				ProductID: rand.Int63n(999_999),
				VariantID: rand.Int63n(999_999),
				SKU:       "SKU-" + randomString(6),
			},
		},
	}

	// Occasionally drop the customer and address to exercise the
	// placeholder path.
	if rand.Intn(10) == 0 {
		order.Customer = nil
		order.Email = ""
		order.ShippingAddress = nil
	}

	return OrderEvent{
		Store: stores[rand.Intn(len(stores))],
		Order: order,
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "order-events",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := generateRandomEvent()
			data, _ := json.Marshal(event)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order event generated", event.Store, event.Order.ID)
		case <-ctx.Done():
			return
		}
	}
}
