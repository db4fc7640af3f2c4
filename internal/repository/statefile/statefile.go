package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"lecturebot/internal/domain"
)

// Repo persists the user-state mapping as a JSON file.
// Keys are stringified user IDs, matching what json requires of map keys.
type Repo struct {
	path string
}

// NewRepo creates a file-backed state repository
func NewRepo(path string) *Repo {
	return &Repo{path: path}
}

// Load reads the state file; a missing file yields an empty mapping
func (r *Repo) Load() (map[int64]domain.StateLabel, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return make(map[int64]domain.StateLabel), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	states := make(map[int64]domain.StateLabel, len(raw))
	for k, v := range raw {
		userID, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q in state file: %w", k, err)
		}
		states[userID] = domain.StateLabel(v)
	}

	return states, nil
}

// Save rewrites the state file atomically (temp file + rename)
func (r *Repo) Save(states map[int64]domain.StateLabel) error {
	raw := make(map[string]string, len(states))
	for userID, label := range states {
		raw[strconv.FormatInt(userID, 10)] = string(label)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to serialize states: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".user_states-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}
