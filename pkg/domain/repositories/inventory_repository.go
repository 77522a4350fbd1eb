package repositories

import "github.com/vsinha/airinv/pkg/domain/entities"

// InventoryRepository provides access to the airline inventories.
//
// The availability models only read through it. Bid-price initialization,
// routing linkage and sell/cancel mutate the returned object graph in place;
// callers serving concurrent requests must serialize those per airline.
type InventoryRepository interface {
	// GetInventory returns the inventory of an airline (read)
	GetInventory(airline entities.AirlineCode) (*entities.Inventory, error)
	// GetAllInventories returns every top-level inventory in load order (read)
	GetAllInventories() ([]*entities.Inventory, error)
	// LoadInventories registers inventories, replacing those with the same airline (write)
	LoadInventories(inventories []*entities.Inventory) error
}
