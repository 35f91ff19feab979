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
	"errors"
	"fmt"

	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
	"github.com/mattn/go-sqlite3"
)

// ErrPartyExists is returned when a watch party has already been organized
// for the movie. Concurrent organizers race on the movie_id UNIQUE constraint
// and every loser gets this error.
var ErrPartyExists = errors.New("watch party already exists for this movie")

// WatchPartyExists reports whether an active (not completed) party exists.
func (m *DBManager) WatchPartyExists(movieID string) (bool, error) {
	if m == nil || m.db == nil {
		return false, fmt.Errorf("database not initialized")
	}

	var count int
	err := m.db.QueryRow(
		`SELECT COUNT(*) FROM watch_parties WHERE movie_id = ? AND completed = 0`,
		movieID,
	).Scan(&count)
	if err != nil {
		utils.ErrorLog("Database error checking watch party: %v", err)
		return false, err
	}
	return count > 0, nil
}

// CreateWatchParty records a new party. Returns ErrPartyExists if one has
// already been organized for the movie.
func (m *DBManager) CreateWatchParty(movieID, messageID, organizedBy string) error {
	utils.DebugLog("Database: Creating watch party for movie %s by %s", movieID, organizedBy)
	if m == nil || m.db == nil {
		return fmt.Errorf("database not initialized")
	}

	_, err := m.db.Exec(
		`INSERT INTO watch_parties (movie_id, message_id, organized_by) VALUES (?, ?, ?)`,
		movieID, messageID, organizedBy,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrPartyExists
		}
		utils.ErrorLog("Database error creating watch party: %v", err)
		return err
	}

	utils.InfoLog("Watch party created for movie %s", movieID)
	return nil
}

// AttachPartyThread stores the coordination thread and scheduled event IDs
// once the Discord side of the party has been set up.
func (m *DBManager) AttachPartyThread(movieID, threadID, eventID string) error {
	if m == nil || m.db == nil {
		return fmt.Errorf("database not initialized")
	}

	_, err := m.db.Exec(
		`UPDATE watch_parties SET thread_id = ?, event_id = ? WHERE movie_id = ?`,
		threadID, eventID, movieID,
	)
	if err != nil {
		utils.ErrorLog("Database error attaching party thread: %v", err)
	}
	return err
}

// CompleteWatchParty marks a party as done. The movie keeps its single
// watch_parties row, so organizing another party for it stays blocked by the
// UNIQUE constraint; completion only drops it from the active set.
func (m *DBManager) CompleteWatchParty(movieID string) error {
	if m == nil || m.db == nil {
		return fmt.Errorf("database not initialized")
	}

	_, err := m.db.Exec(
		`UPDATE watch_parties SET completed = 1 WHERE movie_id = ?`,
		movieID,
	)
	if err != nil {
		utils.ErrorLog("Database error completing watch party: %v", err)
	}
	return err
}

// GetWatchParty fetches a party by movie ID, or nil when none exists.
func (m *DBManager) GetWatchParty(movieID string) (*types.WatchParty, error) {
	if m == nil || m.db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var p types.WatchParty
	err := m.db.QueryRow(`
		SELECT movie_id, message_id, COALESCE(thread_id, ''), COALESCE(event_id, ''),
		       organized_by, organized_at, completed
		FROM watch_parties WHERE movie_id = ?`,
		movieID,
	).Scan(&p.MovieID, &p.MessageID, &p.ThreadID, &p.EventID, &p.OrganizedBy, &p.OrganizedAt, &p.Completed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		utils.ErrorLog("Database error fetching watch party: %v", err)
		return nil, err
	}
	return &p, nil
}

// ActiveParties lists every party that has not been completed yet.
func (m *DBManager) ActiveParties() ([]types.WatchParty, error) {
	if m == nil || m.db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	rows, err := m.db.Query(`
		SELECT movie_id, message_id, COALESCE(thread_id, ''), COALESCE(event_id, ''),
		       organized_by, organized_at, completed
		FROM watch_parties WHERE completed = 0
		ORDER BY organized_at DESC`,
	)
	if err != nil {
		utils.ErrorLog("Database error listing watch parties: %v", err)
		return nil, err
	}
	defer rows.Close()

	var parties []types.WatchParty
	for rows.Next() {
		var p types.WatchParty
		if err := rows.Scan(&p.MovieID, &p.MessageID, &p.ThreadID, &p.EventID, &p.OrganizedBy, &p.OrganizedAt, &p.Completed); err != nil {
			return nil, err
		}
		parties = append(parties, p)
	}
	return parties, rows.Err()
}
