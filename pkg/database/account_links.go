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

	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// LinkAccount maps a Discord user to an Overseerr user. Re-linking an
// already-linked Discord user replaces the previous mapping.
func (m *DBManager) LinkAccount(discordUserID string, overseerrUserID int, overseerrUsername, plexUsername, linkedBy string) error {
	utils.DebugLog("Database: Linking Discord user %s to Overseerr user %d (%s)", discordUserID, overseerrUserID, overseerrUsername)
	if m == nil || m.db == nil {
		return fmt.Errorf("database not initialized")
	}

	_, err := m.db.Exec(`
		INSERT OR REPLACE INTO account_links
			(discord_user_id, overseerr_user_id, overseerr_username, plex_username, linked_by)
		VALUES (?, ?, ?, ?, ?)`,
		discordUserID, overseerrUserID, overseerrUsername, plexUsername, linkedBy,
	)
	if err != nil {
		utils.ErrorLog("Database error linking account: %v", err)
		return err
	}

	utils.InfoLog("Linked Discord user %s to Overseerr user %s", discordUserID, overseerrUsername)
	return nil
}

// GetAccountLink returns a Discord user's Overseerr link, or nil when the
// user has never been linked.
func (m *DBManager) GetAccountLink(discordUserID string) (*types.AccountLink, error) {
	if m == nil || m.db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var link types.AccountLink
	err := m.db.QueryRow(`
		SELECT discord_user_id, overseerr_user_id, COALESCE(overseerr_username, ''),
		       COALESCE(plex_username, ''), COALESCE(linked_by, ''), linked_at
		FROM account_links WHERE discord_user_id = ?`,
		discordUserID,
	).Scan(&link.DiscordUserID, &link.OverseerrUserID, &link.OverseerrUsername, &link.PlexUsername, &link.LinkedBy, &link.LinkedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		utils.ErrorLog("Database error fetching account link: %v", err)
		return nil, err
	}
	return &link, nil
}

// UnlinkAccount removes a Discord user's Overseerr link. Returns changed=false
// when the user was not linked.
func (m *DBManager) UnlinkAccount(discordUserID string) (bool, error) {
	utils.DebugLog("Database: Unlinking Discord user %s", discordUserID)
	if m == nil || m.db == nil {
		return false, fmt.Errorf("database not initialized")
	}

	res, err := m.db.Exec(`DELETE FROM account_links WHERE discord_user_id = ?`, discordUserID)
	if err != nil {
		utils.ErrorLog("Database error unlinking account: %v", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListAccountLinks returns every Discord-to-Overseerr mapping.
func (m *DBManager) ListAccountLinks() ([]types.AccountLink, error) {
	if m == nil || m.db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	rows, err := m.db.Query(`
		SELECT discord_user_id, overseerr_user_id, COALESCE(overseerr_username, ''),
		       COALESCE(plex_username, ''), COALESCE(linked_by, ''), linked_at
		FROM account_links ORDER BY linked_at ASC`,
	)
	if err != nil {
		utils.ErrorLog("Database error listing account links: %v", err)
		return nil, err
	}
	defer rows.Close()

	var links []types.AccountLink
	for rows.Next() {
		var link types.AccountLink
		if err := rows.Scan(&link.DiscordUserID, &link.OverseerrUserID, &link.OverseerrUsername, &link.PlexUsername, &link.LinkedBy, &link.LinkedAt); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}
