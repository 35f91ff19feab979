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
	"fmt"

	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// AddToWatchlist records a movie under the given status for a user. It is
// idempotent: adding an entry that already exists returns changed=false.
func (m *DBManager) AddToWatchlist(userID, movieID, title, year, status string) (bool, error) {
	utils.DebugLog("Database: Adding movie %s (%s) for user %s", movieID, status, userID)
	if m == nil || m.db == nil {
		return false, fmt.Errorf("database not initialized")
	}

	res, err := m.db.Exec(`
		INSERT OR IGNORE INTO watchlist (user_id, movie_id, movie_title, movie_year, status)
		VALUES (?, ?, ?, ?, ?)`,
		userID, movieID, title, year, status,
	)
	if err != nil {
		utils.ErrorLog("Database error adding to watchlist: %v", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// RemoveFromWatchlist drops a user's entry for a movie under the given status.
// Returns changed=false when there was nothing to remove.
func (m *DBManager) RemoveFromWatchlist(userID, movieID, status string) (bool, error) {
	utils.DebugLog("Database: Removing movie %s (%s) for user %s", movieID, status, userID)
	if m == nil || m.db == nil {
		return false, fmt.Errorf("database not initialized")
	}

	res, err := m.db.Exec(
		`DELETE FROM watchlist WHERE user_id = ? AND movie_id = ? AND status = ?`,
		userID, movieID, status,
	)
	if err != nil {
		utils.ErrorLog("Database error removing from watchlist: %v", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// IsInWatchlist reports whether the user already has the movie under status.
func (m *DBManager) IsInWatchlist(userID, movieID, status string) (bool, error) {
	if m == nil || m.db == nil {
		return false, fmt.Errorf("database not initialized")
	}

	var count int
	err := m.db.QueryRow(
		`SELECT COUNT(*) FROM watchlist WHERE user_id = ? AND movie_id = ? AND status = ?`,
		userID, movieID, status,
	).Scan(&count)
	if err != nil {
		utils.ErrorLog("Database error checking watchlist: %v", err)
		return false, err
	}
	return count > 0, nil
}

// GetUserWatchlist returns a user's entries for one status, newest first.
func (m *DBManager) GetUserWatchlist(userID, status string) ([]types.WatchlistEntry, error) {
	utils.DebugLog("Database: Fetching %s list for user %s", status, userID)
	if m == nil || m.db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	rows, err := m.db.Query(`
		SELECT user_id, movie_id, movie_title, COALESCE(movie_year, ''), status, added_at
		FROM watchlist
		WHERE user_id = ? AND status = ?
		ORDER BY added_at DESC`,
		userID, status,
	)
	if err != nil {
		utils.ErrorLog("Database error fetching watchlist: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []types.WatchlistEntry
	for rows.Next() {
		var e types.WatchlistEntry
		if err := rows.Scan(&e.UserID, &e.MovieID, &e.MovieTitle, &e.MovieYear, &e.Status, &e.AddedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByStatus returns how many users track the movie under the given status.
func (m *DBManager) CountByStatus(movieID, status string) (int, error) {
	if m == nil || m.db == nil {
		return 0, fmt.Errorf("database not initialized")
	}

	var count int
	err := m.db.QueryRow(
		`SELECT COUNT(*) FROM watchlist WHERE movie_id = ? AND status = ?`,
		movieID, status,
	).Scan(&count)
	if err != nil {
		utils.ErrorLog("Database error counting watchlist: %v", err)
		return 0, err
	}
	return count, nil
}

// UsersWantingToWatch lists the user IDs that have the movie on their
// want-to-watch list, in the order they added it.
func (m *DBManager) UsersWantingToWatch(movieID string) ([]string, error) {
	if m == nil || m.db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	rows, err := m.db.Query(`
		SELECT user_id FROM watchlist
		WHERE movie_id = ? AND status = ?
		ORDER BY added_at ASC`,
		movieID, types.StatusWantToWatch,
	)
	if err != nil {
		utils.ErrorLog("Database error listing interested users: %v", err)
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		users = append(users, id)
	}
	return users, rows.Err()
}
