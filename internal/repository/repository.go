package repository

import "lecturebot/internal/domain"

// StateRepository defines persistence for the user-state mapping.
// Load is called once at startup; Save rewrites the whole mapping and
// is called by the periodic flush loop and at shutdown.
type StateRepository interface {
	Load() (map[int64]domain.StateLabel, error)
	Save(states map[int64]domain.StateLabel) error
}
