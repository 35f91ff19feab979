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
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/buttons"
	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// handleMovie creates a forum post for a movie: TMDB metadata embed, genre
// tags and the tracking controls.
func (b *Bot) handleMovie(s *discordgo.Session, i *discordgo.InteractionCreate) {
	title := optString(i, "title")
	userID := b.interactionUserID(i)

	// Metadata fetch plus forum post can exceed the 3s interaction window.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		utils.ErrorLog("Failed to defer /movie response: %v", err)
		return
	}

	details, err := b.resolveMovie(title)
	if err != nil || details == nil {
		b.editDeferred(s, i, b.msg.MovieNotFound)
		return
	}

	forum, err := s.Channel(b.cfg.ForumChannelID)
	if err != nil || forum.Type != discordgo.ChannelTypeGuildForum {
		utils.ErrorLog("Movie forum channel %s missing or not a forum: %v", b.cfg.ForumChannelID, err)
		b.editDeferred(s, i, b.msg.MovieChannelNotFound)
		return
	}

	availability := b.lookupAvailability(details.ID)

	specs := buttons.Reconcile(buttons.Inputs{
		MovieID:            strconv.Itoa(details.ID),
		AuthorID:           userID,
		ExternalLinkURL:    details.IMDBURL,
		Threshold:          b.cfg.WatchPartyThreshold,
		RequestIntegration: b.cfg.OverseerrConfigured(),
		Availability:       availability,
	}, b.msg)

	postName := details.Title
	if details.Year != "" {
		postName = fmt.Sprintf("%s (%s)", details.Title, details.Year)
	}

	thread, err := s.ForumThreadStartComplex(b.cfg.ForumChannelID, &discordgo.ThreadStart{
		Name:        utils.TrimTo(postName, 100),
		AppliedTags: matchForumTags(forum, details),
	}, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{b.movieEmbed(details, availability)},
		Components: renderControls(specs),
	})
	if err != nil {
		utils.ErrorLog("Failed to create movie post: %v", err)
		b.editDeferred(s, i, b.msg.MovieCreationError)
		return
	}

	// The starter message shares the thread's ID.
	for _, emoji := range []string{"👍", "👎"} {
		if err := s.MessageReactionAdd(thread.ID, thread.ID, emoji); err != nil {
			utils.WarnLog("Failed to add %s reaction: %v", emoji, err)
		}
	}

	utils.InfoLog("Movie post created: %s (thread %s) by %s", details.Title, thread.ID, userID)
	b.editDeferred(s, i, b.msg.MovieCreated(details.Title, threadURL(thread)))
}

// resolveMovie accepts either a TMDB ID (from an autocomplete pick) or free
// text, which goes through search first.
func (b *Bot) resolveMovie(title string) (*types.MovieDetails, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(title)); err == nil {
		return b.tmdb.GetMovieDetails(id)
	}

	results, err := b.tmdb.SearchMovies(title, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return b.tmdb.GetMovieDetails(results[0].ID)
}

// lookupAvailability asks Overseerr about the movie, degrading to "unknown"
// when the integration is off or unreachable.
func (b *Bot) lookupAvailability(tmdbID int) *types.AvailabilityStatus {
	if !b.cfg.OverseerrConfigured() {
		return nil
	}
	status, err := b.osr.GetAvailability(tmdbID)
	if err != nil {
		utils.WarnLog("Availability lookup failed for movie %d: %v", tmdbID, err)
		return &types.AvailabilityStatus{}
	}
	return &status
}

// movieEmbed renders the metadata card that opens every movie post.
func (b *Bot) movieEmbed(d *types.MovieDetails, availability *types.AvailabilityStatus) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       d.Title,
		URL:         d.TMDBURL,
		Description: utils.TrimTo(d.Plot, 2000),
		Color:       colorInfo,
	}
	if d.PosterURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: d.PosterURL}
	}

	addField := func(name, value string, inline bool) {
		if value != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline})
		}
	}
	addField(b.msg.EmbedReleaseYear, d.Year, true)
	addField(b.msg.EmbedRating, d.Rating, true)
	addField(b.msg.EmbedRuntime, d.Runtime, true)
	addField(b.msg.EmbedDirector, d.Director, true)
	addField(b.msg.EmbedCast, d.Cast, false)
	addField(b.msg.EmbedGenres, d.Genres, false)
	if d.TrailerURL != "" {
		addField(b.msg.EmbedTrailer, d.TrailerURL, false)
	}

	footer := b.msg.EmbedFooterDefault
	if availability != nil {
		switch {
		case availability.Available:
			footer = b.msg.EmbedFooterAvailable
		case availability.Requested || availability.Processing:
			footer = b.msg.EmbedFooterPending
		}
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}

	return embed
}

// matchForumTags picks up to five forum tags whose names match the movie's
// genres.
func matchForumTags(forum *discordgo.Channel, d *types.MovieDetails) []string {
	genres := make(map[string]bool)
	for _, g := range strings.Split(d.Genres, ",") {
		genres[strings.ToLower(strings.TrimSpace(g))] = true
	}

	var tags []string
	for _, tag := range forum.AvailableTags {
		if genres[strings.ToLower(tag.Name)] {
			tags = append(tags, tag.ID)
			if len(tags) == 5 {
				break
			}
		}
	}
	return tags
}

func threadURL(thread *discordgo.Channel) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s", thread.GuildID, thread.ID)
}

// editDeferred replaces the deferred "thinking" state with a final message.
func (b *Bot) editDeferred(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
	if err != nil {
		utils.ErrorLog("Failed to edit deferred response: %v", err)
	}
}
