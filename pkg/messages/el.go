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

func greek() *Catalog {
	return &Catalog{
		Lang: "el",

		CommandMovieDesc:        "Δημιούργησε μια συζήτηση για ταινία",
		CommandMovieTitleOption: "Τίτλος ταινίας για αναζήτηση",
		CommandWatchlistDesc:    "Δες τις ταινίες που έχεις δει και τη λίστα σου",
		CommandRequestDesc:      "Ζήτησε μια ταινία στον media server",
		CommandRequestTitle:     "Τίτλος ταινίας για αίτημα",
		CommandMyRequestsDesc:   "Δες τα εκκρεμή αιτήματά σου",

		MovieChannelNotFound: "❌ Δεν βρέθηκε το forum channel ταινιών. Έλεγξε τη ρύθμιση του bot.",
		MovieNotFound:        "❌ Δεν βρέθηκε ταινία με αυτόν τον τίτλο. Δοκίμασε άλλη αναζήτηση.",
		MovieCreationError:   "❌ Κάτι πήγε στραβά κατά τη δημιουργία του post.",
		movieCreated:         "✅ Δημιουργήθηκε συζήτηση για **%s**!\n%s",

		EmbedReleaseYear:     "Έτος κυκλοφορίας",
		EmbedRating:          "Βαθμολογία",
		EmbedRuntime:         "Διάρκεια",
		EmbedCast:            "Ηθοποιοί",
		EmbedDirector:        "Σκηνοθέτης",
		EmbedGenres:          "Είδη",
		EmbedTrailer:         "Trailer",
		EmbedFooterDefault:   "Πάτησε ένα κουμπί για να παρακολουθήσεις την ταινία",
		EmbedFooterAvailable: "Ήδη διαθέσιμη στο Plex",
		EmbedFooterPending:   "Υπάρχει εκκρεμές αίτημα για αυτή την ταινία",

		watchlistTitle:    "🎬 Οι ταινίες του/της %s",
		WatchedHeader:     "✅ Έχω δει",
		NoWatchedMovies:   "_Καμία ταινία ακόμα._",
		WatchlistHeader:   "📋 Θέλω να δω",
		NoWatchlistMovies: "_Τίποτα στη λίστα ακόμα._",
		moreEntries:       "_...και %d ακόμα_",
		WatchlistError:    "❌ Δεν μπόρεσα να φορτώσω τη λίστα σου. Δοκίμασε αργότερα.",

		DeleteOnlyAuthor:   "❌ Μόνο το άτομο που δημιούργησε το post μπορεί να το διαγράψει.",
		DeleteConfirmation: "⚠️ Σίγουρα θες να διαγράψεις αυτό το post; Δεν υπάρχει επιστροφή.",
		DeleteCancelled:    "👍 Η διαγραφή ακυρώθηκε.",
		DeletingPost:       "🗑️ Διαγραφή post...",
		DeleteError:        "❌ Δεν μπόρεσα να διαγράψω το post.",

		markedAsWatchedOne:     "✅ Σημειώθηκε ως ειδωμένη! (%d άτομο την έχει δει)",
		markedAsWatchedMany:    "✅ Σημειώθηκε ως ειδωμένη! (%d άτομα την έχουν δει)",
		removedFromWatchedOne:  "↩️ Αφαιρέθηκε από τις ειδωμένες. (%d άτομο την έχει δει)",
		removedFromWatchedMany: "↩️ Αφαιρέθηκε από τις ειδωμένες. (%d άτομα την έχουν δει)",
		addedToWatchlistOne:    "📋 Προστέθηκε στη λίστα σου! (%d άτομο θέλει να τη δει)",
		addedToWatchlistMany:   "📋 Προστέθηκε στη λίστα σου! (%d άτομα θέλουν να τη δουν)",
		removedFromListOne:     "↩️ Αφαιρέθηκε από τη λίστα σου. (%d άτομο θέλει να τη δει)",
		removedFromListMany:    "↩️ Αφαιρέθηκε από τη λίστα σου. (%d άτομα θέλουν να τη δουν)",
		WatchedError:           "❌ Δεν μπόρεσα να ενημερώσω τη λίστα σου. Δοκίμασε αργότερα.",
		thresholdReachedOne:    "🎉 %d άτομο θέλει να δει αυτή την ταινία! Ώρα για watch party;",
		thresholdReachedMany:   "🎉 %d άτομα θέλουν να δουν αυτή την ταινία! Ώρα για watch party;",

		WatchPartyAlreadyExists: "📅 Έχει ήδη οργανωθεί watch party για αυτή την ταινία!",
		WatchPartyError:         "❌ Δεν μπόρεσα να οργανώσω το watch party.",
		WatchPartyEventLocation: "Σαλόνι / voice channel",
		watchPartyEventName:     "🎬 Βραδιά ταινίας: %s",
		watchPartyCreated:       "🎉 Το watch party οργανώθηκε! Δημιουργήθηκε event στον server:\n%s",
		watchPartyCoordination:  "📅 **Watch party για το %s!**\nΣυζητήστε εδώ για να βρείτε μέρα και ώρα που βολεύει όλους.",
		watchPartyEventDesc:     "%d άτομα θέλουν να δουν αυτή την ταινία! Συντονιστείτε στο thread: <#%s>",

		ButtonWatched:       "Την είδα",
		ButtonWantToWatch:   "Θέλω να τη δω",
		ButtonDelete:        "Διαγραφή",
		ButtonIMDB:          "IMDB",
		ButtonConfirmDelete: "Ναι, διάγραψέ το",
		ButtonCancelDelete:  "Ακύρωση",
		ButtonRequest:       "Αίτημα στο Plex",
		ButtonPending:       "Εκκρεμές αίτημα",
		ButtonAvailable:     "Διαθέσιμη στο Plex",
		buttonWatchParty:    "Οργάνωσε watch party (%d ενδιαφέρονται)",

		firstStrike:  "Παιδιά, ο/η %s προσπαθεί να με αγγίξει.",
		secondStrike: "Ο/Η %s ακόμα προσπαθεί να πατήσει τα κουμπιά μου.",

		BullyNoPermission: "❌ Χρειάζεσαι δικαιώματα διαχειριστή για αυτή την εντολή.",
		BullyNoTarget:     "Δεν υπάρχει ενεργός στόχος.",
		BullyDisabled:     "Το bully mode απενεργοποιήθηκε.",
		BullyStatusNone:   "Το bully mode είναι κλειστό.",
		BullyStatusTitle:  "🔔 Bully mode",
		BullyNoCooldown:   "Ο στόχος δεν είναι σε cooldown.",
		bullyEnabled:      "Το bully mode ενεργοποιήθηκε για %s (%s).",
		bullyStatusActive: "Το bully mode είναι ενεργό για <@%s>.",
		bullyCooldown:     "Ο/Η <@%s> είναι σε cooldown για %d λεπτά ακόμα.",
		bullyReset:        "Το cooldown μηδενίστηκε για <@%s>. Η πλάκα ξαναρχίζει.",
		bullyNothing:      "Ο/Η <@%s> δεν έχει cooldown για μηδενισμό.",

		NotLinked:            "❌ Ο λογαριασμός σου στο Discord δεν είναι συνδεδεμένος με το Overseerr. Ζήτα από admin να τον συνδέσει.",
		NotConfigured:        "❌ Η ενσωμάτωση με το Overseerr δεν έχει ρυθμιστεί.",
		AlreadyAvailable:     "✅ Αυτή η ταινία είναι ήδη διαθέσιμη στο Plex!",
		AlreadyRequested:     "⏳ Αυτή η ταινία έχει ήδη ζητηθεί.",
		CancelSuccess:        "✅ Το αίτημα ακυρώθηκε.",
		LinkFailed:           "❌ Δεν μπόρεσα να συνδέσω τους λογαριασμούς.",
		UnlinkFailed:         "❌ Δεν μπόρεσα να αποσυνδέσω τον λογαριασμό.",
		NoRequests:           "Δεν έχεις αιτήματα.",
		NoLinks:              "Κανένας λογαριασμός Discord δεν είναι συνδεδεμένος με το Overseerr.",
		notLinkedUser:        "❌ Ο/Η %s δεν είναι συνδεδεμένος/η με λογαριασμό Overseerr.",
		alreadyLinked:        "⚠️ Ο/Η %s είναι ήδη συνδεδεμένος/η με τον χρήστη Overseerr **%s**.",
		linkSuccess:          "✅ Συνδέθηκε ο/η %s με τον χρήστη Overseerr **%s**.",
		unlinkSuccess:        "✅ Αποσυνδέθηκε ο/η %s από το Overseerr.",
		overseerrUserMissing: "❌ Δεν βρέθηκε χρήστης Overseerr που να ταιριάζει με **%s**.",
		requestSuccess:       "✅ Ζητήθηκε η **%s**! Θα ειδοποιηθείς όταν είναι διαθέσιμη.",
		requestSuccess4K:     "✅ Ζητήθηκε η **%s** σε 4K! Θα ειδοποιηθείς όταν είναι διαθέσιμη.",
		requestFailed:        "❌ Το αίτημα απέτυχε: %s",
		cancelFailed:         "❌ Δεν μπόρεσα να ακυρώσω το αίτημα: %s",
		connectionSuccess:    "✅ Συνδέθηκα με το Overseerr (έκδοση %s).",
		connectionFailed:     "❌ Δεν μπόρεσα να επικοινωνήσω με το Overseerr: %s",
		linkedAccounts:       "🔗 %d συνδεδεμένος/οι λογαριασμός/οί:",

		MyRequestsTitle: "📬 Τα αιτήματά σου",
		OverseerrTitle:  "🎬 Overseerr",
		linkedAs:        "Συνδεδεμένος/η ως **%s**",
		pendingCount:    "⏳ Σε εκκρεμότητα: %d",
		approvedCount:   "✅ Εγκεκριμένα: %d",
		availableCount:  "📺 Διαθέσιμα: %d",
		showingCount:    "Εμφανίζονται %d από %d αιτήματα",

		ModalTitle:         "Αίτημα ταινίας",
		QualityLabel:       "Ποιότητα (HD ή 4K)",
		QualityPlaceholder: "HD",
		modalTitleMovie:    "Αίτημα: %s",

		GenericError: "❌ Κάτι πήγε στραβά. Δοκίμασε αργότερα.",
	}
}
