package repository

import (
	"database/sql"
	"errors"
	"time"
)

// Activity is one recorded change, shown as recent activity on the dashboard.
type Activity struct {
	ID        int64
	Slot      string
	Action    string
	SubjectID string
	CreatedAt time.Time
}

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Record(slot, action, subjectID string) error {
	_, err := r.db.Exec(
		"INSERT INTO activity (slot, action, subject_id, created_at) VALUES (?, ?, ?, ?)",
		slot, action, subjectID, time.Now().UTC(),
	)
	return err
}

// Recent returns up to limit entries, newest first.
func (r *ActivityRepo) Recent(limit int) ([]Activity, error) {
	rows, err := r.db.Query(`
		SELECT id, slot, action, subject_id, created_at
		FROM activity
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Slot, &a.Action, &a.SubjectID, &a.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}

// LastChange returns the time of the newest entry, or nil if there is none.
func (r *ActivityRepo) LastChange() (*time.Time, error) {
	var last time.Time
	err := r.db.QueryRow(`
		SELECT created_at FROM activity ORDER BY created_at DESC, id DESC LIMIT 1
	`).Scan(&last)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &last, nil
}

func (r *ActivityRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM activity").Scan(&count)
	return count, err
}
