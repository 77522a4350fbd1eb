package memory

import (
	"fmt"
	"sync"

	"github.com/vsinha/airinv/pkg/domain/entities"
	domainerrors "github.com/vsinha/airinv/pkg/domain/errors"
	"github.com/vsinha/airinv/pkg/domain/repositories"
)

// InventoryRepository provides in-memory inventory storage.
// The mutex guards the index only, not the object graphs it hands out.
type InventoryRepository struct {
	inventories map[entities.AirlineCode]*entities.Inventory
	order       []entities.AirlineCode
	mutex       sync.RWMutex
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		inventories: make(map[entities.AirlineCode]*entities.Inventory),
		order:       []entities.AirlineCode{},
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadInventories loads inventories into the repository
func (r *InventoryRepository) LoadInventories(inventories []*entities.Inventory) error {
	for _, inv := range inventories {
		if err := r.SaveInventory(inv); err != nil {
			return err
		}
	}
	return nil
}

// SaveInventory registers one inventory, replacing any with the same airline
func (r *InventoryRepository) SaveInventory(inv *entities.Inventory) error {
	if inv == nil {
		return fmt.Errorf("inventory cannot be nil")
	}
	if inv.Airline == "" {
		return fmt.Errorf("inventory airline code cannot be empty")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.inventories[inv.Airline]; !exists {
		r.order = append(r.order, inv.Airline)
	}
	r.inventories[inv.Airline] = inv
	return nil
}

// GetInventory returns the inventory of an airline
func (r *InventoryRepository) GetInventory(airline entities.AirlineCode) (*entities.Inventory, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	inv, exists := r.inventories[airline]
	if !exists {
		return nil, domainerrors.NewInvariantError(domainerrors.CodeInventoryNotFound,
			"inventory not found: %s", airline)
	}
	return inv, nil
}

// GetAllInventories returns all inventories in load order
func (r *InventoryRepository) GetAllInventories() ([]*entities.Inventory, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	inventories := make([]*entities.Inventory, 0, len(r.order))
	for _, airline := range r.order {
		inventories = append(inventories, r.inventories[airline])
	}
	return inventories, nil
}

// Count returns the number of top-level inventories
func (r *InventoryRepository) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.order)
}
