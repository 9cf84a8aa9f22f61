package entities

import (
	"time"

	"github.com/google/uuid"
)

// Supplier links an authenticated identity to the store whose orders it owns.
type Supplier struct {
	ID        uuid.UUID
	Name      string
	Email     string
	StoreName string
	CreatedAt time.Time
}

// Store holds the Shopify credentials of one mirrored store.
type Store struct {
	Name        string
	ShopDomain  string
	AccessToken string
	Active      bool
}

// Identity is the authenticated caller, passed explicitly into each
// retrieval call. A zero Identity means no authentication was presented.
type Identity struct {
	Email string
}

// SyncResult is the payload of one global sync run. Per-store failures
// are collected here instead of aborting the run.
type SyncResult struct {
	Stores int
	Orders int
	Errors []string
}
