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
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/buttons"
	"github.com/lucasduport/movie-night/pkg/messages"
	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// handleComponent routes button presses by custom ID prefix. Every tracked
// control goes through the press tracker first; a blocked press turns into a
// public call-out instead of the action.
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	userID := b.interactionUserID(i)
	utils.DebugLog("Component %s pressed by %s", customID, userID)

	action := strings.SplitN(customID, "_", 2)[0]
	switch {
	case strings.HasPrefix(customID, "confirm_delete_"), strings.HasPrefix(customID, "cancel_delete_"):
		b.handleDeleteDecision(s, i, customID)
		return
	case strings.HasPrefix(customID, "watch_party_"):
		action = "watch_party"
	}

	if strike := b.tracker.Evaluate(userID, action, customID, b.interactionDisplayName(i)); strike != "" {
		b.replyPublic(s, i, strike)
		return
	}

	switch {
	case strings.HasPrefix(customID, "watched_"):
		authorID, movieID := splitOwnership(customID, "watched_")
		b.handleListToggle(s, i, authorID, movieID, types.StatusWatched)
	case strings.HasPrefix(customID, "watchlist_"):
		authorID, movieID := splitOwnership(customID, "watchlist_")
		b.handleListToggle(s, i, authorID, movieID, types.StatusWantToWatch)
	case strings.HasPrefix(customID, "delete_"):
		b.handleDeleteRequest(s, i, strings.TrimPrefix(customID, "delete_"))
	case strings.HasPrefix(customID, "watch_party_"):
		b.handleWatchParty(s, i, strings.TrimPrefix(customID, "watch_party_"))
	case strings.HasPrefix(customID, "request_"):
		b.handleRequestButton(s, i, strings.TrimPrefix(customID, "request_"))
	default:
		// Stale controls from older message layouts still need an ack,
		// or Discord shows "interaction failed" to the presser.
		utils.WarnLog("Unknown component custom ID: %s", customID)
		b.deferUpdate(s, i)
	}
}

// splitOwnership parses "<prefix><authorID>_<movieID>".
func splitOwnership(customID, prefix string) (authorID, movieID string) {
	rest := strings.TrimPrefix(customID, prefix)
	parts := strings.SplitN(rest, "_", 2)
	if len(parts) != 2 {
		return rest, ""
	}
	return parts[0], parts[1]
}

// handleListToggle flips the presser's entry on one of the two lists and
// reconciles the post's controls.
func (b *Bot) handleListToggle(s *discordgo.Session, i *discordgo.InteractionCreate, authorID, movieID, status string) {
	userID := b.interactionUserID(i)
	title, year := movieFromMessage(i.Message, b.msg)

	onList, err := b.db.IsInWatchlist(userID, movieID, status)
	if err != nil {
		utils.ErrorLog("Toggle lookup failed: %v", err)
		b.replyEphemeral(s, i, b.msg.WatchedError)
		return
	}

	if onList {
		_, err = b.db.RemoveFromWatchlist(userID, movieID, status)
	} else {
		_, err = b.db.AddToWatchlist(userID, movieID, title, year, status)
	}
	if err != nil {
		utils.ErrorLog("Toggle update failed: %v", err)
		b.replyEphemeral(s, i, b.msg.WatchedError)
		return
	}

	count, err := b.db.CountByStatus(movieID, status)
	if err != nil {
		utils.ErrorLog("Count lookup failed: %v", err)
		b.replyEphemeral(s, i, b.msg.WatchedError)
		return
	}

	var reply string
	switch {
	case status == types.StatusWatched && !onList:
		reply = b.msg.MarkedAsWatched(count)
	case status == types.StatusWatched:
		reply = b.msg.RemovedFromWatched(count)
	case !onList:
		reply = b.msg.AddedToWatchlist(count)
	default:
		reply = b.msg.RemovedFromWatchlist(count)
	}
	b.replyEphemeral(s, i, reply)

	if status == types.StatusWantToWatch {
		b.reconcilePost(s, i.Message, authorID, movieID)
		if !onList && count == b.cfg.WatchPartyThreshold {
			b.announceThreshold(i.ChannelID, movieID, count)
		}
	}
}

// reconcilePost recomputes a post's controls from current state and edits the
// message in place.
func (b *Bot) reconcilePost(s *discordgo.Session, m *discordgo.Message, authorID, movieID string) {
	interest, err := b.db.CountByStatus(movieID, types.StatusWantToWatch)
	if err != nil {
		utils.ErrorLog("Reconcile: interest count failed: %v", err)
		return
	}
	partyExists, err := b.db.WatchPartyExists(movieID)
	if err != nil {
		utils.ErrorLog("Reconcile: party lookup failed: %v", err)
		return
	}

	var availability *types.AvailabilityStatus
	if id, err := strconv.Atoi(movieID); err == nil {
		availability = b.lookupAvailability(id)
	}

	specs := buttons.Reconcile(buttons.Inputs{
		MovieID:            movieID,
		AuthorID:           authorID,
		ExternalLinkURL:    linkURLFromMessage(m),
		InterestCount:      interest,
		PartyExists:        partyExists,
		Threshold:          b.cfg.WatchPartyThreshold,
		RequestIntegration: b.cfg.OverseerrConfigured(),
		Availability:       availability,
	}, b.msg)

	components := renderControls(specs)
	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         m.ID,
		Channel:    m.ChannelID,
		Components: &components,
	})
	if err != nil {
		utils.ErrorLog("Reconcile: message edit failed: %v", err)
	}
}

// announceThreshold posts a public nudge in the thread mentioning everyone
// interested, the moment the party threshold is reached.
func (b *Bot) announceThreshold(channelID, movieID string, count int) {
	users, err := b.db.UsersWantingToWatch(movieID)
	if err != nil {
		utils.ErrorLog("Threshold announce: user list failed: %v", err)
		return
	}
	mentions := make([]string, 0, len(users))
	for _, u := range users {
		mentions = append(mentions, "<@"+u+">")
	}

	b.info(channelID, strings.Join(mentions, " "), b.msg.ThresholdReached(count))
}

// handleDeleteRequest asks the author to confirm; everyone else is turned
// away.
func (b *Bot) handleDeleteRequest(s *discordgo.Session, i *discordgo.InteractionCreate, authorID string) {
	if !b.isSameUser(authorID, i) {
		b.replyEphemeral(s, i, b.msg.DeleteOnlyAuthor)
		return
	}

	userID := b.interactionUserID(i)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: b.msg.DeleteConfirmation,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: b.msg.ButtonConfirmDelete, Style: discordgo.DangerButton, CustomID: "confirm_delete_" + userID},
					discordgo.Button{Label: b.msg.ButtonCancelDelete, Style: discordgo.SecondaryButton, CustomID: "cancel_delete_" + userID},
				}},
			},
		},
	})
	if err != nil {
		utils.ErrorLog("Failed to send delete confirmation: %v", err)
	}
}

// handleDeleteDecision runs on the confirmation's own buttons, which live in
// an ephemeral message only the author can see.
func (b *Bot) handleDeleteDecision(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	confirm := strings.HasPrefix(customID, "confirm_delete_")
	expected := strings.TrimPrefix(strings.TrimPrefix(customID, "confirm_delete_"), "cancel_delete_")
	if !b.isSameUser(expected, i) {
		b.replyEphemeral(s, i, b.msg.DeleteOnlyAuthor)
		return
	}

	content := b.msg.DeleteCancelled
	if confirm {
		content = b.msg.DeletingPost
	}
	empty := []discordgo.MessageComponent{}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{Content: content, Components: empty},
	})
	if err != nil {
		utils.ErrorLog("Failed to update delete confirmation: %v", err)
	}

	if !confirm {
		return
	}

	// Deleting the thread removes the post and every reply with it.
	if _, err := s.ChannelDelete(i.ChannelID); err != nil {
		utils.ErrorLog("Failed to delete movie thread %s: %v", i.ChannelID, err)
		_, _ = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: b.msg.DeleteError,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
	} else {
		utils.InfoLog("Movie thread %s deleted by its author", i.ChannelID)
	}
}

// movieFromMessage pulls the title and year back out of the post's embed.
func movieFromMessage(m *discordgo.Message, msg *messages.Catalog) (title, year string) {
	if m == nil || len(m.Embeds) == 0 {
		return "", ""
	}
	embed := m.Embeds[0]
	title = embed.Title
	for _, f := range embed.Fields {
		if f.Name == msg.EmbedReleaseYear {
			year = f.Value
			break
		}
	}
	return title, year
}

// linkURLFromMessage finds the external link button's URL on the post, if any.
func linkURLFromMessage(m *discordgo.Message) string {
	if m == nil {
		return ""
	}
	for _, row := range m.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range ar.Components {
			if btn, ok := c.(*discordgo.Button); ok && btn.URL != "" {
				return btn.URL
			}
		}
	}
	return ""
}
