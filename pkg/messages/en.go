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

package messages

func english() *Catalog {
	return &Catalog{
		Lang: "en",

		CommandMovieDesc:        "Create a movie discussion post",
		CommandMovieTitleOption: "Movie title to search for",
		CommandWatchlistDesc:    "Show your watched movies and watchlist",
		CommandRequestDesc:      "Request a movie on the media server",
		CommandRequestTitle:     "Movie title to request",
		CommandMyRequestsDesc:   "Show your pending media requests",

		MovieChannelNotFound: "❌ Movie forum channel not found. Check the bot configuration.",
		MovieNotFound:        "❌ No movie found with that title. Try a different search.",
		MovieCreationError:   "❌ Something went wrong while creating the movie post.",
		movieCreated:         "✅ Created discussion for **%s**!\n%s",

		EmbedReleaseYear:     "Release Year",
		EmbedRating:          "Rating",
		EmbedRuntime:         "Runtime",
		EmbedCast:            "Cast",
		EmbedDirector:        "Director",
		EmbedGenres:          "Genres",
		EmbedTrailer:         "Trailer",
		EmbedFooterDefault:   "Press a button below to track this movie",
		EmbedFooterAvailable: "Already available on Plex",
		EmbedFooterPending:   "A request for this movie is pending",

		watchlistTitle:    "🎬 %s's movies",
		WatchedHeader:     "✅ Watched",
		NoWatchedMovies:   "_No watched movies yet._",
		WatchlistHeader:   "📋 Want to watch",
		NoWatchlistMovies: "_Nothing on the watchlist yet._",
		moreEntries:       "_...and %d more_",
		WatchlistError:    "❌ Could not load your watchlist. Try again later.",

		DeleteOnlyAuthor:   "❌ Only the person who created this post can delete it.",
		DeleteConfirmation: "⚠️ Are you sure you want to delete this movie post? This cannot be undone.",
		DeleteCancelled:    "👍 Deletion cancelled.",
		DeletingPost:       "🗑️ Deleting post...",
		DeleteError:        "❌ Could not delete the post.",

		markedAsWatchedOne:     "✅ Marked as watched! (%d person has watched this)",
		markedAsWatchedMany:    "✅ Marked as watched! (%d people have watched this)",
		removedFromWatchedOne:  "↩️ Removed from watched. (%d person has watched this)",
		removedFromWatchedMany: "↩️ Removed from watched. (%d people have watched this)",
		addedToWatchlistOne:    "📋 Added to your watchlist! (%d person wants to watch this)",
		addedToWatchlistMany:   "📋 Added to your watchlist! (%d people want to watch this)",
		removedFromListOne:     "↩️ Removed from your watchlist. (%d person wants to watch this)",
		removedFromListMany:    "↩️ Removed from your watchlist. (%d people want to watch this)",
		WatchedError:           "❌ Could not update your watchlist. Try again later.",
		thresholdReachedOne:    "🎉 %d person wants to watch this movie! Time to organize a watch party?",
		thresholdReachedMany:   "🎉 %d people want to watch this movie! Time to organize a watch party?",

		WatchPartyAlreadyExists: "📅 A watch party is already organized for this movie!",
		WatchPartyError:         "❌ Could not organize the watch party.",
		WatchPartyEventLocation: "Living room / voice channel",
		watchPartyEventName:     "🎬 Movie Night: %s",
		watchPartyCreated:       "🎉 Watch party organized! A server event has been created:\n%s",
		watchPartyCoordination:  "📅 **Watch party for %s!**\nDiscuss here to pick a date and time that works for everyone.",
		watchPartyEventDesc:     "%d people want to watch this movie! Coordinate in the thread: <#%s>",

		ButtonWatched:       "Watched",
		ButtonWantToWatch:   "Want to watch",
		ButtonDelete:        "Delete",
		ButtonIMDB:          "IMDB",
		ButtonConfirmDelete: "Yes, delete it",
		ButtonCancelDelete:  "Cancel",
		ButtonRequest:       "Request on Plex",
		ButtonPending:       "Request Pending",
		ButtonAvailable:     "Available on Plex",
		buttonWatchParty:    "Organize watch party (%d interested)",

		firstStrike:  "Everyone, %s is trying to touch me.",
		secondStrike: "%s still trying to press my buttons.",

		BullyNoPermission: "❌ You need administrator permissions to use this command.",
		BullyNoTarget:     "There is no active bully target.",
		BullyDisabled:     "Bully mode disabled.",
		BullyStatusNone:   "Bully mode is off.",
		BullyStatusTitle:  "🔔 Bully mode",
		BullyNoCooldown:   "The target is not in cooldown.",
		bullyEnabled:      "Bully mode enabled for %s (%s).",
		bullyStatusActive: "Bully mode is active for <@%s>.",
		bullyCooldown:     "<@%s> is in cooldown for %d more minutes.",
		bullyReset:        "Cooldown reset for <@%s>. The fun starts over.",
		bullyNothing:      "<@%s> has no cooldown to reset.",

		NotLinked:            "❌ Your Discord account is not linked to Overseerr. Ask an admin to link it.",
		NotConfigured:        "❌ Overseerr integration is not configured.",
		AlreadyAvailable:     "✅ This movie is already available on Plex!",
		AlreadyRequested:     "⏳ This movie has already been requested.",
		CancelSuccess:        "✅ Request cancelled.",
		LinkFailed:           "❌ Could not link the accounts.",
		UnlinkFailed:         "❌ Could not unlink the account.",
		NoRequests:           "You have no media requests.",
		NoLinks:              "No Discord accounts are linked to Overseerr.",
		notLinkedUser:        "❌ %s is not linked to an Overseerr account.",
		alreadyLinked:        "⚠️ %s is already linked to Overseerr user **%s**.",
		linkSuccess:          "✅ Linked %s to Overseerr user **%s**.",
		unlinkSuccess:        "✅ Unlinked %s from Overseerr.",
		overseerrUserMissing: "❌ No Overseerr user found matching **%s**.",
		requestSuccess:       "✅ Requested **%s**! You will be notified when it is available.",
		requestSuccess4K:     "✅ Requested **%s** in 4K! You will be notified when it is available.",
		requestFailed:        "❌ Request failed: %s",
		cancelFailed:         "❌ Could not cancel the request: %s",
		connectionSuccess:    "✅ Connected to Overseerr (version %s).",
		connectionFailed:     "❌ Could not reach Overseerr: %s",
		linkedAccounts:       "🔗 %d linked account(s):",

		MyRequestsTitle: "📬 Your media requests",
		OverseerrTitle:  "🎬 Overseerr",
		linkedAs:        "Linked as **%s**",
		pendingCount:    "⏳ Pending: %d",
		approvedCount:   "✅ Approved: %d",
		availableCount:  "📺 Available: %d",
		showingCount:    "Showing %d of %d requests",

		ModalTitle:         "Request a movie",
		QualityLabel:       "Quality (HD or 4K)",
		QualityPlaceholder: "HD",
		modalTitleMovie:    "Request: %s",

		GenericError: "❌ Something went wrong. Try again later.",
	}
}
