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

package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// Entries shown per list before collapsing to a "...and N more" line.
const watchlistDisplayLimit = 10

// handleMyWatchlist shows the caller their watched movies and watchlist,
// visible only to them.
func (b *Bot) handleMyWatchlist(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := b.interactionUserID(i)

	watched, err := b.db.GetUserWatchlist(userID, types.StatusWatched)
	if err != nil {
		utils.ErrorLog("Failed to load watched list for %s: %v", userID, err)
		b.replyEphemeral(s, i, b.msg.WatchlistError)
		return
	}
	wanted, err := b.db.GetUserWatchlist(userID, types.StatusWantToWatch)
	if err != nil {
		utils.ErrorLog("Failed to load watchlist for %s: %v", userID, err)
		b.replyEphemeral(s, i, b.msg.WatchlistError)
		return
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: b.msg.WatchedHeader, Value: b.formatEntries(watched, b.msg.NoWatchedMovies)},
		{Name: b.msg.WatchlistHeader, Value: b.formatEntries(wanted, b.msg.NoWatchlistMovies)},
	}

	b.replyEmbedEphemeral(s, i, colorInfo, b.msg.WatchlistTitle(b.interactionDisplayName(i)), "", fields...)
}

func (b *Bot) formatEntries(entries []types.WatchlistEntry, emptyMsg string) string {
	if len(entries) == 0 {
		return emptyMsg
	}

	var lines []string
	for idx, e := range entries {
		if idx == watchlistDisplayLimit {
			lines = append(lines, b.msg.MoreEntries(len(entries)-watchlistDisplayLimit))
			break
		}
		line := "• " + e.MovieTitle
		if e.MovieYear != "" {
			line = fmt.Sprintf("• %s (%s)", e.MovieTitle, e.MovieYear)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
