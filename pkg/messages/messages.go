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

// Package messages holds every user-facing string the bot sends, per language.
// The catalog is selected once at startup; adding a language means adding one
// constructor and wiring it into ForLanguage.
package messages

import "fmt"

// Catalog is one language's worth of bot text. Plain strings are exported;
// parameterized messages are exposed as methods over unexported templates.
type Catalog struct {
	Lang string

	// Slash command descriptions
	CommandMovieDesc        string
	CommandMovieTitleOption string
	CommandWatchlistDesc    string
	CommandRequestDesc      string
	CommandRequestTitle     string
	CommandMyRequestsDesc   string

	// /movie
	MovieChannelNotFound string
	MovieNotFound        string
	MovieCreationError   string
	movieCreated         string // title, url

	// Movie embed labels
	EmbedReleaseYear     string
	EmbedRating          string
	EmbedRuntime         string
	EmbedCast            string
	EmbedDirector        string
	EmbedGenres          string
	EmbedTrailer         string
	EmbedFooterDefault   string
	EmbedFooterAvailable string
	EmbedFooterPending   string

	// /mywatchlist
	watchlistTitle    string // username
	WatchedHeader     string
	NoWatchedMovies   string
	WatchlistHeader   string
	NoWatchlistMovies string
	moreEntries       string // count
	WatchlistError    string

	// Delete flow
	DeleteOnlyAuthor   string
	DeleteConfirmation string
	DeleteCancelled    string
	DeletingPost       string
	DeleteError        string

	// Watched / watchlist buttons
	markedAsWatchedOne      string
	markedAsWatchedMany     string
	removedFromWatchedOne   string
	removedFromWatchedMany  string
	addedToWatchlistOne     string
	addedToWatchlistMany    string
	removedFromListOne      string
	removedFromListMany     string
	WatchedError            string
	thresholdReachedOne     string // count
	thresholdReachedMany    string // count

	// Watch party
	WatchPartyAlreadyExists string
	WatchPartyError         string
	WatchPartyEventLocation string
	watchPartyEventName     string // title
	watchPartyCreated       string // event url
	watchPartyCoordination  string // title
	watchPartyEventDesc     string // count, thread id

	// Button labels
	ButtonWatched       string
	ButtonWantToWatch   string
	ButtonDelete        string
	ButtonIMDB          string
	ButtonConfirmDelete string
	ButtonCancelDelete  string
	ButtonRequest       string
	ButtonPending       string
	ButtonAvailable     string
	buttonWatchParty    string // count

	// Press-tracker strikes
	firstStrike  string // display name
	secondStrike string // display name

	// /bully
	BullyNoPermission string
	BullyNoTarget     string
	BullyDisabled     string
	BullyStatusNone   string
	BullyStatusTitle  string
	BullyNoCooldown   string
	bullyEnabled      string // tag, id
	bullyStatusActive string // id
	bullyCooldown     string // id, minutes
	bullyReset        string // id
	bullyNothing      string // id

	// Overseerr
	NotLinked            string
	NotConfigured        string
	AlreadyAvailable     string
	AlreadyRequested     string
	CancelSuccess        string
	LinkFailed           string
	UnlinkFailed         string
	NoRequests           string
	NoLinks              string
	notLinkedUser        string // tag
	alreadyLinked        string // tag, overseerr user
	linkSuccess          string // tag, overseerr user
	unlinkSuccess        string // tag
	overseerrUserMissing string // identifier
	requestSuccess       string // title
	requestSuccess4K     string // title
	requestFailed        string // error
	cancelFailed         string // error
	connectionSuccess    string // version
	connectionFailed     string // error
	linkedAccounts       string // count

	// /myrequests
	MyRequestsTitle string
	OverseerrTitle  string
	linkedAs        string // username
	pendingCount    string // count
	approvedCount   string // count
	availableCount  string // count
	showingCount    string // shown, total

	// Request modal
	ModalTitle         string
	QualityLabel       string
	QualityPlaceholder string
	modalTitleMovie    string // title

	GenericError string
}

// ForLanguage returns the catalog for lang, falling back to English.
func ForLanguage(lang string) *Catalog {
	switch lang {
	case "el":
		return greek()
	default:
		return english()
	}
}

func (c *Catalog) MovieCreated(title, url string) string {
	return fmt.Sprintf(c.movieCreated, title, url)
}

func (c *Catalog) WatchlistTitle(username string) string {
	return fmt.Sprintf(c.watchlistTitle, username)
}

func (c *Catalog) MoreEntries(count int) string {
	return fmt.Sprintf(c.moreEntries, count)
}

func (c *Catalog) MarkedAsWatched(count int) string {
	if count == 1 {
		return fmt.Sprintf(c.markedAsWatchedOne, count)
	}
	return fmt.Sprintf(c.markedAsWatchedMany, count)
}

func (c *Catalog) RemovedFromWatched(count int) string {
	if count == 1 {
		return fmt.Sprintf(c.removedFromWatchedOne, count)
	}
	return fmt.Sprintf(c.removedFromWatchedMany, count)
}

func (c *Catalog) AddedToWatchlist(count int) string {
	if count == 1 {
		return fmt.Sprintf(c.addedToWatchlistOne, count)
	}
	return fmt.Sprintf(c.addedToWatchlistMany, count)
}

func (c *Catalog) RemovedFromWatchlist(count int) string {
	if count == 1 {
		return fmt.Sprintf(c.removedFromListOne, count)
	}
	return fmt.Sprintf(c.removedFromListMany, count)
}

func (c *Catalog) ThresholdReached(count int) string {
	if count == 1 {
		return fmt.Sprintf(c.thresholdReachedOne, count)
	}
	return fmt.Sprintf(c.thresholdReachedMany, count)
}

func (c *Catalog) WatchPartyEventName(title string) string {
	return fmt.Sprintf(c.watchPartyEventName, title)
}

func (c *Catalog) WatchPartyCreated(eventURL string) string {
	return fmt.Sprintf(c.watchPartyCreated, eventURL)
}

func (c *Catalog) WatchPartyCoordination(title string) string {
	return fmt.Sprintf(c.watchPartyCoordination, title)
}

func (c *Catalog) WatchPartyEventDescription(count int, threadID string) string {
	return fmt.Sprintf(c.watchPartyEventDesc, count, threadID)
}

func (c *Catalog) ButtonWatchParty(count int) string {
	return fmt.Sprintf(c.buttonWatchParty, count)
}

func (c *Catalog) FirstStrike(displayName string) string {
	return fmt.Sprintf(c.firstStrike, displayName)
}

func (c *Catalog) SecondStrike(displayName string) string {
	return fmt.Sprintf(c.secondStrike, displayName)
}

func (c *Catalog) BullyEnabled(tag, userID string) string {
	return fmt.Sprintf(c.bullyEnabled, tag, userID)
}

func (c *Catalog) BullyStatusActive(userID string) string {
	return fmt.Sprintf(c.bullyStatusActive, userID)
}

func (c *Catalog) BullyCooldownStatus(userID string, minutes int) string {
	return fmt.Sprintf(c.bullyCooldown, userID, minutes)
}

func (c *Catalog) BullyCooldownReset(userID string) string {
	return fmt.Sprintf(c.bullyReset, userID)
}

func (c *Catalog) BullyNothingToReset(userID string) string {
	return fmt.Sprintf(c.bullyNothing, userID)
}

func (c *Catalog) NotLinkedUser(tag string) string {
	return fmt.Sprintf(c.notLinkedUser, tag)
}

func (c *Catalog) AlreadyLinked(tag, overseerrUser string) string {
	return fmt.Sprintf(c.alreadyLinked, tag, overseerrUser)
}

func (c *Catalog) LinkSuccess(tag, overseerrUser string) string {
	return fmt.Sprintf(c.linkSuccess, tag, overseerrUser)
}

func (c *Catalog) UnlinkSuccess(tag string) string {
	return fmt.Sprintf(c.unlinkSuccess, tag)
}

func (c *Catalog) OverseerrUserNotFound(identifier string) string {
	return fmt.Sprintf(c.overseerrUserMissing, identifier)
}

func (c *Catalog) RequestSuccess(title string, is4k bool) string {
	if is4k {
		return fmt.Sprintf(c.requestSuccess4K, title)
	}
	return fmt.Sprintf(c.requestSuccess, title)
}

func (c *Catalog) RequestFailed(errMsg string) string {
	return fmt.Sprintf(c.requestFailed, errMsg)
}

func (c *Catalog) CancelFailed(errMsg string) string {
	return fmt.Sprintf(c.cancelFailed, errMsg)
}

func (c *Catalog) ConnectionSuccess(version string) string {
	return fmt.Sprintf(c.connectionSuccess, version)
}

func (c *Catalog) ConnectionFailed(errMsg string) string {
	return fmt.Sprintf(c.connectionFailed, errMsg)
}

func (c *Catalog) LinkedAccounts(count int) string {
	return fmt.Sprintf(c.linkedAccounts, count)
}

func (c *Catalog) LinkedAs(username string) string {
	return fmt.Sprintf(c.linkedAs, username)
}

func (c *Catalog) PendingStatus(count int) string {
	return fmt.Sprintf(c.pendingCount, count)
}

func (c *Catalog) ApprovedStatus(count int) string {
	return fmt.Sprintf(c.approvedCount, count)
}

func (c *Catalog) AvailableStatus(count int) string {
	return fmt.Sprintf(c.availableCount, count)
}

func (c *Catalog) ShowingCount(shown, total int) string {
	return fmt.Sprintf(c.showingCount, shown, total)
}

func (c *Catalog) ModalTitleWithMovie(title string) string {
	return fmt.Sprintf(c.modalTitleMovie, title)
}
