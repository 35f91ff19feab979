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

package types

import "time"

// Watchlist statuses. A user may hold both for the same movie at once.
const (
	StatusWatched     = "watched"
	StatusWantToWatch = "want_to_watch"
)

// SearchResult is one entry from a movie title search, used for autocomplete.
type SearchResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// MovieDetails carries everything the bot renders for a movie post.
type MovieDetails struct {
	ID         int
	Title      string
	Year       string
	Rating     string
	Plot       string
	Genres     string
	GenreIDs   []int
	Cast       string
	Director   string
	Runtime    string
	PosterURL  string
	TrailerURL string
	TMDBURL    string
	IMDBURL    string
}

// AvailabilityStatus is what the media-request service knows about a title.
// All-false is also the degraded value for "service unreachable".
type AvailabilityStatus struct {
	Available  bool
	Requested  bool
	Processing bool
}

// RequestResult is the outcome of a media request submission.
type RequestResult struct {
	Success   bool
	RequestID int
	Error     string
}

// MediaRequest is one request row from the media-request service.
type MediaRequest struct {
	ID            int
	RequestStatus int // 1=pending approval, 2=approved, 3=declined
	MediaStatus   int // 3=processing, 4=partially available, 5=available
	Is4K          bool
	TMDBID        int
	Title         string
}

// WatchlistEntry is one row of the watchlist table.
type WatchlistEntry struct {
	UserID     string
	MovieID    string
	MovieTitle string
	MovieYear  string
	Status     string
	AddedAt    time.Time
}

// WatchParty is one row of the watch_parties table. ThreadID and EventID
// are empty until the organizer flow attaches them.
type WatchParty struct {
	MovieID     string
	MessageID   string
	ThreadID    string
	EventID     string
	OrganizedBy string
	OrganizedAt time.Time
	Completed   bool
}

// AccountLink maps a Discord user to a media-request service account.
type AccountLink struct {
	DiscordUserID     string
	OverseerrUserID   int
	OverseerrUsername string
	PlexUsername      string
	LinkedBy          string
	LinkedAt          time.Time
}

// APIResponse is the envelope for all internal API replies.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
