package storage

import (
	"database/sql"
	"errors"
)

const lastTeamKey = "last_team"

// SetPreference stores value under key, replacing any previous value.
func (db *DB) SetPreference(key, value string) error {
	_, err := db.conn.Exec("INSERT OR REPLACE INTO preferences(key, value) VALUES (?, ?)", key, value)
	return err
}

// Preference returns the value stored under key, or "" if unset.
func (db *DB) Preference(key string) (string, error) {
	var v string
	err := db.conn.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return v, err
}

// SetLastTeam remembers the team most recently viewed.
func (db *DB) SetLastTeam(name string) error { return db.SetPreference(lastTeamKey, name) }

// LastTeam returns the team most recently viewed, or "".
func (db *DB) LastTeam() (string, error) { return db.Preference(lastTeamKey) }
