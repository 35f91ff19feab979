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
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/database"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// handleWatchParty organizes a watch party: one per movie, ever. The winner
// of a concurrent race is decided by the database, everyone else is told a
// party already exists.
func (b *Bot) handleWatchParty(s *discordgo.Session, i *discordgo.InteractionCreate, movieID string) {
	userID := b.interactionUserID(i)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		utils.ErrorLog("Failed to defer watch party response: %v", err)
		return
	}

	// The insert is the authoritative existence check.
	err = b.db.CreateWatchParty(movieID, i.Message.ID, userID)
	if err == database.ErrPartyExists {
		b.editDeferred(s, i, b.msg.WatchPartyAlreadyExists)
		return
	}
	if err != nil {
		utils.ErrorLog("Failed to create watch party: %v", err)
		b.editDeferred(s, i, b.msg.WatchPartyError)
		return
	}

	title, _ := movieFromMessage(i.Message, b.msg)
	interested, err := b.db.UsersWantingToWatch(movieID)
	if err != nil {
		utils.WarnLog("Could not list interested users: %v", err)
	}
	mentions := make([]string, 0, len(interested))
	for _, u := range interested {
		mentions = append(mentions, "<@"+u+">")
	}

	// Coordination happens in the movie's own thread.
	b.success(i.ChannelID, strings.Join(mentions, " "), b.msg.WatchPartyCoordination(title))

	eventID, eventURL := b.createPlaceholderEvent(s, i.GuildID, i.ChannelID, title, len(interested))

	if err := b.db.AttachPartyThread(movieID, i.ChannelID, eventID); err != nil {
		utils.WarnLog("Could not attach party thread: %v", err)
	}

	// The organize button disappears now that the party exists.
	authorID := authorFromComponents(i.Message)
	b.reconcilePost(s, i.Message, authorID, movieID)

	utils.InfoLog("Watch party organized for movie %s by %s", movieID, userID)
	if eventURL != "" {
		b.editDeferred(s, i, b.msg.WatchPartyCreated(eventURL))
	} else {
		b.editDeferred(s, i, b.msg.WatchPartyCreated(""))
	}
}

// createPlaceholderEvent schedules a server event a week out so the party
// shows up in the guild's event list; the date gets refined in the thread.
func (b *Bot) createPlaceholderEvent(s *discordgo.Session, guildID, threadID, title string, interested int) (eventID, eventURL string) {
	start := time.Now().Add(b.cfg.PlaceholderEventTime)
	end := start.Add(b.cfg.EventDuration)

	event, err := s.GuildScheduledEventCreate(guildID, &discordgo.GuildScheduledEventParams{
		Name:               b.msg.WatchPartyEventName(title),
		Description:        b.msg.WatchPartyEventDescription(interested, threadID),
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: b.msg.WatchPartyEventLocation},
	})
	if err != nil {
		utils.ErrorLog("Failed to create scheduled event: %v", err)
		return "", ""
	}
	return event.ID, fmt.Sprintf("https://discord.com/events/%s/%s", guildID, event.ID)
}

// authorFromComponents recovers the post author's ID from the delete
// button's custom ID.
func authorFromComponents(m *discordgo.Message) string {
	if m == nil {
		return ""
	}
	for _, row := range m.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range ar.Components {
			if btn, ok := c.(*discordgo.Button); ok && strings.HasPrefix(btn.CustomID, "delete_") {
				return strings.TrimPrefix(btn.CustomID, "delete_")
			}
		}
	}
	return ""
}
