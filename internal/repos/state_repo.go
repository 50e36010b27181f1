package repos

import (
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"romix/internal/domain"
)

// DefaultSlot is the fixed identifier the storefront persists under.
const DefaultSlot = "romix-store"

// StateRepo saves and loads the full store state as a JSON document in
// one named slot of the store_state table.
type StateRepo struct {
	db   *sqlx.DB
	slot string
}

func NewStateRepo(db *sqlx.DB) *StateRepo { return &StateRepo{db: db, slot: DefaultSlot} }

func NewStateRepoSlot(db *sqlx.DB, slot string) *StateRepo { return &StateRepo{db: db, slot: slot} }

func (r *StateRepo) Save(st domain.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
		INSERT INTO store_state(slot, data, updated_at)
		VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, r.slot, string(b))
	return err
}

// Load returns the saved state and true, or ok=false when the slot has
// never been written.
func (r *StateRepo) Load() (domain.State, bool, error) {
	var data string
	err := r.db.Get(&data, `SELECT data FROM store_state WHERE slot = ?`, r.slot)
	if err == sql.ErrNoRows {
		return domain.State{}, false, nil
	}
	if err != nil {
		return domain.State{}, false, err
	}
	var st domain.State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return domain.State{}, false, err
	}
	return st, true, nil
}
