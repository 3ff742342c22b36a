package gang

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"crewdesk/internal/store"
)

// Validation errors reported to the user; they never change state.
var (
	ErrFieldRequired = errors.New("champ requis")
	ErrBadAmount     = errors.New("montant invalide")
)

// State owns the six collections for the lifetime of the session. Records are
// prepended on insert so each collection stays newest-first. Every mutation is
// immediately followed by a full re-save of the affected collection; a failed
// save leaves the in-memory change applied and is reported to the caller
// rather than swallowed.
type State struct {
	store  store.Store
	logger *zap.Logger

	Members      []Member
	Transactions []Transaction
	Vehicles     []Vehicle
	Arsenal      []ArsenalItem
	Territories  []Territory
	Missions     []Mission
}

// Open hydrates a State from s. Collections default to empty.
func Open(s store.Store, logger *zap.Logger) (*State, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	st := &State{store: s, logger: logger}
	if err := st.Reload(); err != nil {
		return nil, err
	}
	return st, nil
}

// Reload re-hydrates every collection from the store, discarding in-memory
// contents. Called at start and when the store reports an external change.
func (st *State) Reload() error {
	var err error
	if st.Members, err = store.LoadCollection[Member](st.store, store.KeyMembers); err != nil {
		return fmt.Errorf("reload members: %w", err)
	}
	if st.Transactions, err = store.LoadCollection[Transaction](st.store, store.KeyTransactions); err != nil {
		return fmt.Errorf("reload transactions: %w", err)
	}
	if st.Vehicles, err = store.LoadCollection[Vehicle](st.store, store.KeyVehicles); err != nil {
		return fmt.Errorf("reload vehicles: %w", err)
	}
	if st.Arsenal, err = store.LoadCollection[ArsenalItem](st.store, store.KeyArsenal); err != nil {
		return fmt.Errorf("reload arsenal: %w", err)
	}
	if st.Territories, err = store.LoadCollection[Territory](st.store, store.KeyTerritories); err != nil {
		return fmt.Errorf("reload territories: %w", err)
	}
	if st.Missions, err = store.LoadCollection[Mission](st.store, store.KeyMissions); err != nil {
		return fmt.Errorf("reload missions: %w", err)
	}
	st.logger.Debug("state hydrated",
		zap.Int("members", len(st.Members)),
		zap.Int("transactions", len(st.Transactions)),
		zap.Int("vehicles", len(st.Vehicles)),
		zap.Int("arsenal", len(st.Arsenal)),
		zap.Int("territories", len(st.Territories)),
		zap.Int("missions", len(st.Missions)),
	)
	return nil
}

// AddMember inserts a member at the front of the collection.
func (st *State) AddMember(name, role string) (*Member, error) {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	if name == "" || role == "" {
		return nil, ErrFieldRequired
	}
	m := Member{ID: NewRecordID(), Name: name, Role: role}
	st.Members = append([]Member{m}, st.Members...)
	return &m, st.save(store.KeyMembers)
}

// DeleteMember removes the member with the given id. Unknown ids are a no-op.
func (st *State) DeleteMember(id RecordID) (bool, error) {
	kept, removed := deleteByID(st.Members, id, func(m Member) RecordID { return m.ID })
	if !removed {
		return false, nil
	}
	st.Members = kept
	return true, st.save(store.KeyMembers)
}

// AddTransaction inserts a transaction. The amount must be a finite number;
// the sign carries the income/expense distinction.
func (st *State) AddTransaction(date, desc string, amount float64) (*Transaction, error) {
	date = strings.TrimSpace(date)
	desc = strings.TrimSpace(desc)
	if date == "" || desc == "" {
		return nil, ErrFieldRequired
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrBadAmount
	}
	tx := Transaction{ID: NewRecordID(), Date: date, Desc: desc, Amount: amount}
	st.Transactions = append([]Transaction{tx}, st.Transactions...)
	return &tx, st.save(store.KeyTransactions)
}

func (st *State) DeleteTransaction(id RecordID) (bool, error) {
	kept, removed := deleteByID(st.Transactions, id, func(t Transaction) RecordID { return t.ID })
	if !removed {
		return false, nil
	}
	st.Transactions = kept
	return true, st.save(store.KeyTransactions)
}

// AddVehicle inserts a vehicle with the default state.
func (st *State) AddVehicle(model string) (*Vehicle, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, ErrFieldRequired
	}
	v := Vehicle{ID: NewRecordID(), Model: model, State: VehicleStateAdded}
	st.Vehicles = append([]Vehicle{v}, st.Vehicles...)
	return &v, st.save(store.KeyVehicles)
}

func (st *State) DeleteVehicle(id RecordID) (bool, error) {
	kept, removed := deleteByID(st.Vehicles, id, func(v Vehicle) RecordID { return v.ID })
	if !removed {
		return false, nil
	}
	st.Vehicles = kept
	return true, st.save(store.KeyVehicles)
}

func (st *State) DeleteArsenalItem(id RecordID) (bool, error) {
	kept, removed := deleteByID(st.Arsenal, id, func(a ArsenalItem) RecordID { return a.ID })
	if !removed {
		return false, nil
	}
	st.Arsenal = kept
	return true, st.save(store.KeyArsenal)
}

// AddTerritory inserts a territory with the default status.
func (st *State) AddTerritory(name string) (*Territory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrFieldRequired
	}
	z := Territory{ID: NewRecordID(), Name: name, Status: TerritoryStatusControlled}
	st.Territories = append([]Territory{z}, st.Territories...)
	return &z, st.save(store.KeyTerritories)
}

func (st *State) DeleteTerritory(id RecordID) (bool, error) {
	kept, removed := deleteByID(st.Territories, id, func(z Territory) RecordID { return z.ID })
	if !removed {
		return false, nil
	}
	st.Territories = kept
	return true, st.save(store.KeyTerritories)
}

// AddMission inserts a mission with the default status.
func (st *State) AddMission(title string) (*Mission, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrFieldRequired
	}
	ms := Mission{ID: NewRecordID(), Title: title, Status: MissionStatusPlanned}
	st.Missions = append([]Mission{ms}, st.Missions...)
	return &ms, st.save(store.KeyMissions)
}

func (st *State) DeleteMission(id RecordID) (bool, error) {
	kept, removed := deleteByID(st.Missions, id, func(m Mission) RecordID { return m.ID })
	if !removed {
		return false, nil
	}
	st.Missions = kept
	return true, st.save(store.KeyMissions)
}

// ClearAll wipes the store and every in-memory collection.
func (st *State) ClearAll() error {
	if err := st.store.Clear(); err != nil {
		return err
	}
	st.Members = []Member{}
	st.Transactions = []Transaction{}
	st.Vehicles = []Vehicle{}
	st.Arsenal = []ArsenalItem{}
	st.Territories = []Territory{}
	st.Missions = []Mission{}
	st.logger.Info("all collections cleared")
	return nil
}

func (st *State) save(key string) error {
	var err error
	switch key {
	case store.KeyMembers:
		err = store.SaveCollection(st.store, key, st.Members)
	case store.KeyTransactions:
		err = store.SaveCollection(st.store, key, st.Transactions)
	case store.KeyVehicles:
		err = store.SaveCollection(st.store, key, st.Vehicles)
	case store.KeyArsenal:
		err = store.SaveCollection(st.store, key, st.Arsenal)
	case store.KeyTerritories:
		err = store.SaveCollection(st.store, key, st.Territories)
	case store.KeyMissions:
		err = store.SaveCollection(st.store, key, st.Missions)
	}
	if err != nil {
		st.logger.Error("write-through failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("sauvegarde %s: %w", key, err)
	}
	return nil
}

func deleteByID[T any](items []T, id RecordID, idOf func(T) RecordID) ([]T, bool) {
	kept := items[:0:0]
	removed := false
	for _, item := range items {
		if idOf(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if kept == nil {
		kept = []T{}
	}
	return kept, removed
}
