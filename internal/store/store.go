// Package store persists the console collections as serialized arrays under
// fixed keys. Backends share a single contract: a whole collection is written
// or read at once, never merged or diffed.
package store

import "encoding/json"

// Collection keys. One durable key per collection, no versioning field.
const (
	KeyMembers      = "crew_members"
	KeyTransactions = "crew_transactions"
	KeyVehicles     = "crew_vehicles"
	KeyArsenal      = "crew_arsenal"
	KeyTerritories  = "crew_territories"
	KeyMissions     = "crew_missions"
)

// Keys lists every collection key in display order.
var Keys = []string{
	KeyMembers,
	KeyTransactions,
	KeyVehicles,
	KeyArsenal,
	KeyTerritories,
	KeyMissions,
}

// Store is a synchronous key -> serialized-collection surface. It can be
// swapped for a remote backend later without touching state or page logic,
// as long as the full-collection write-through contract is preserved.
type Store interface {
	// Load returns the serialized collection for key, or nil when absent.
	Load(key string) ([]byte, error)

	// Save replaces the serialized collection for key wholesale.
	Save(key string, data []byte) error

	// Clear removes every persisted collection.
	Clear() error

	Close() error
}

// LoadCollection reads and decodes the collection stored under key. An absent
// key or unparseable payload yields an empty slice, never an error; only
// storage-layer failures are returned.
func LoadCollection[T any](s Store, key string) ([]T, error) {
	data, err := s.Load(key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveCollection serializes items and durably writes them under key,
// replacing any prior value.
func SaveCollection[T any](s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Save(key, data)
}
