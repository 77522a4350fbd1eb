package memory

import (
	"testing"

	"github.com/vsinha/airinv/pkg/domain/entities"
	domainerrors "github.com/vsinha/airinv/pkg/domain/errors"
)

func mustCreateInventory(t *testing.T, airline entities.AirlineCode) *entities.Inventory {
	t.Helper()
	inv, err := entities.NewInventory(airline)
	if err != nil {
		t.Fatalf("Failed to create inventory %s: %v", airline, err)
	}
	return inv
}

func TestInventoryRepository_SaveAndGetInventory(t *testing.T) {
	repo := NewInventoryRepository()
	ba := mustCreateInventory(t, "BA")

	if err := repo.SaveInventory(ba); err != nil {
		t.Fatalf("Failed to save inventory: %v", err)
	}

	retrieved, err := repo.GetInventory("BA")
	if err != nil {
		t.Fatalf("Failed to get inventory: %v", err)
	}
	if retrieved != ba {
		t.Error("Expected the saved inventory to be returned")
	}

	_, err = repo.GetInventory("AF")
	if err == nil {
		t.Fatal("Expected error for unknown airline")
	}
	if !domainerrors.HasCode(err, domainerrors.CodeInventoryNotFound) {
		t.Errorf("Expected INVENTORY_NOT_FOUND, got %v", err)
	}
}

func TestInventoryRepository_LoadInventories(t *testing.T) {
	tests := []struct {
		name          string
		airlines      []entities.AirlineCode
		expectedOrder []entities.AirlineCode
	}{
		{
			name:          "distinct airlines keep load order",
			airlines:      []entities.AirlineCode{"SV", "BA", "AF"},
			expectedOrder: []entities.AirlineCode{"SV", "BA", "AF"},
		},
		{
			name:          "same airline replaces the previous inventory",
			airlines:      []entities.AirlineCode{"BA", "AF", "BA"},
			expectedOrder: []entities.AirlineCode{"BA", "AF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewInventoryRepository()
			var inventories []*entities.Inventory
			for _, airline := range tt.airlines {
				inventories = append(inventories, mustCreateInventory(t, airline))
			}

			if err := repo.LoadInventories(inventories); err != nil {
				t.Fatalf("Failed to load inventories: %v", err)
			}

			all, err := repo.GetAllInventories()
			if err != nil {
				t.Fatalf("Failed to list inventories: %v", err)
			}
			if len(all) != len(tt.expectedOrder) {
				t.Fatalf("Expected %d inventories, got %d", len(tt.expectedOrder), len(all))
			}
			for i, inv := range all {
				if inv.Airline != tt.expectedOrder[i] {
					t.Errorf("Position %d: expected %s, got %s", i, tt.expectedOrder[i], inv.Airline)
				}
			}
			if repo.Count() != len(tt.expectedOrder) {
				t.Errorf("Expected count %d, got %d", len(tt.expectedOrder), repo.Count())
			}
		})
	}
}

func TestInventoryRepository_RejectsInvalidInventory(t *testing.T) {
	repo := NewInventoryRepository()

	if err := repo.SaveInventory(nil); err == nil {
		t.Error("Expected error for nil inventory")
	}
	if err := repo.SaveInventory(&entities.Inventory{}); err == nil {
		t.Error("Expected error for inventory without airline code")
	}
}
