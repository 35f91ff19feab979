/*
 * movie-night is a Discord bot for browsing, discussing and tracking movies together.
 * Copyright (C) 2025  Lucas Duport
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package database

import (
	"database/sql"
	"fmt"

	"github.com/lucasduport/movie-night/pkg/utils"
	_ "github.com/mattn/go-sqlite3"
)

// DBManager handles database operations
type DBManager struct {
	db          *sql.DB
	initialized bool
}

// NewDBManager opens (and creates if needed) the SQLite database at path.
func NewDBManager(path string) (*DBManager, error) {
	utils.InfoLog("Opening SQLite database at %s", path)

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		utils.ErrorLog("Failed to connect to database: %v", err)
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	manager := &DBManager{db: db}
	if err := manager.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	manager.initialized = true
	return manager, nil
}

// IsInitialized returns whether the database is initialized
func (m *DBManager) IsInitialized() bool {
	return m != nil && m.initialized && m.db != nil
}

// Close closes the database connection
func (m *DBManager) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	utils.InfoLog("Closing database connection")
	return m.db.Close()
}

func (m *DBManager) initSchema() error {
	utils.DebugLog("Initializing database schema")

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS watchlist (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			movie_id TEXT NOT NULL,
			movie_title TEXT NOT NULL,
			movie_year TEXT,
			status TEXT NOT NULL CHECK (status IN ('watched', 'want_to_watch')),
			added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, movie_id, status)
		)`,
		`CREATE TABLE IF NOT EXISTS watch_parties (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			movie_id TEXT NOT NULL UNIQUE,
			message_id TEXT NOT NULL,
			thread_id TEXT,
			event_id TEXT,
			organized_by TEXT NOT NULL,
			organized_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			completed INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS account_links (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			discord_user_id TEXT NOT NULL UNIQUE,
			overseerr_user_id INTEGER NOT NULL,
			overseerr_username TEXT,
			plex_username TEXT,
			linked_by TEXT,
			linked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlist_movie ON watchlist(movie_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlist_user ON watchlist(user_id, status)`,
	}

	for _, stmt := range stmts {
		if _, err := m.db.Exec(stmt); err != nil {
			utils.ErrorLog("Schema initialization failed: %v", err)
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	utils.InfoLog("Database schema ready")
	return nil
}
