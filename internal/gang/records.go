// Package gang holds the console's domain state: six collections of flat
// records, hydrated from the persistent store at start and written through on
// every mutation.
package gang

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// RecordID uniquely identifies a record within its collection.
type RecordID string

// NewRecordID returns a fresh random id. Earlier layouts derived ids from the
// creation timestamp, which could collide within the same millisecond.
func NewRecordID() RecordID {
	return RecordID(uuid.NewString())
}

// UnmarshalJSON accepts both the current string ids and the numeric
// timestamp ids of legacy payloads.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid record id %s: %w", data, err)
	}
	*id = RecordID(n.String())
	return nil
}

// Short returns a compact form of the id for table display.
func (id RecordID) Short() string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

// Default statuses assigned at creation.
const (
	TerritoryStatusControlled = "Controlled"
	MissionStatusPlanned      = "Planned"
	VehicleStateAdded         = "Ajouté"
)

type Member struct {
	ID   RecordID `json:"id"`
	Name string   `json:"name"`
	Role string   `json:"role"`
}

type Transaction struct {
	ID     RecordID `json:"id"`
	Date   string   `json:"date"`
	Desc   string   `json:"desc"`
	Amount float64  `json:"amount"`
}

type Vehicle struct {
	ID    RecordID `json:"id"`
	Model string   `json:"model"`
	State string   `json:"state"`
}

// ArsenalItem has no creation path in the console; stock arrives through
// imports or external edits of the store.
type ArsenalItem struct {
	ID   RecordID `json:"id"`
	Name string   `json:"name"`
	Qty  int      `json:"qty"`
}

type Territory struct {
	ID     RecordID `json:"id"`
	Name   string   `json:"name"`
	Status string   `json:"status"`
}

type Mission struct {
	ID     RecordID `json:"id"`
	Title  string   `json:"title"`
	Status string   `json:"status"`
}
