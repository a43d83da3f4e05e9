package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Fixed slot keys, one per persisted list.
const (
	KeyProjects     = "projects"
	KeyTeamProjects = "team_projects"
	KeyProfile      = "profile"
)

// SlotStore is a key-value table where each key holds one serialized value.
type SlotStore struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSlotStore(db *sql.DB, log *zap.Logger) *SlotStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlotStore{db: db, log: log}
}

// Get returns the raw value for key. ok is false when the slot is empty.
func (s *SlotStore) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SlotStore) Put(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	s.log.Debug("slot written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

// getJSON decodes the slot into v. found is false for an empty slot, in
// which case v is untouched.
func (s *SlotStore) getJSON(key string, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode slot %q: %w", key, err)
	}
	return true, nil
}

func (s *SlotStore) putJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", key, err)
	}
	return s.Put(key, raw)
}
