package postgres

import (
	"database/sql"
	"fmt"

	"lecturebot/internal/domain"
)

// StateRepo implements repository.StateRepository on PostgreSQL.
// The in-memory mapping only ever grows, so Save is an upsert of every
// entry rather than a destructive rewrite.
type StateRepo struct {
	db *sql.DB
}

// NewStateRepo creates a new state repository
func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load reads all persisted user states
func (r *StateRepo) Load() (map[int64]domain.StateLabel, error) {
	query := `SELECT user_id, state_label FROM user_states`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load user states: %w", err)
	}
	defer rows.Close()

	states := make(map[int64]domain.StateLabel)
	for rows.Next() {
		var userID int64
		var label string
		if err := rows.Scan(&userID, &label); err != nil {
			return nil, fmt.Errorf("failed to scan user state: %w", err)
		}
		states[userID] = domain.StateLabel(label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user states: %w", err)
	}

	return states, nil
}

// Save upserts every entry of the mapping within one transaction
func (r *StateRepo) Save(states map[int64]domain.StateLabel) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO user_states (user_id, state_label)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET state_label = EXCLUDED.state_label
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for userID, label := range states {
		if _, err := stmt.Exec(userID, string(label)); err != nil {
			return fmt.Errorf("failed to save state for user %d: %w", userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user states: %w", err)
	}

	return nil
}
