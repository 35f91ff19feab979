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
	"github.com/lucasduport/movie-night/pkg/utils"
)

// command definitions
func (b *Bot) commandSpecs() []*discordgo.ApplicationCommand {
	specs := []*discordgo.ApplicationCommand{
		{
			Name:        "movie",
			Description: b.msg.CommandMovieDesc,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: b.msg.CommandMovieTitleOption, Required: true, Autocomplete: true},
			},
		},
		{
			Name:        "mywatchlist",
			Description: b.msg.CommandWatchlistDesc,
		},
		{
			Name:        "bully",
			Description: "Manage the button-press gag target (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "set", Description: "Pick the target",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "Who to bully", Required: true},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "remove", Description: "Disable the gag"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "status", Description: "Show the current target"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "cd", Description: "Show the target's cooldown"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "cdreset", Description: "Reset the target's cooldown"},
			},
		},
	}

	if b.cfg.OverseerrConfigured() {
		specs = append(specs,
			&discordgo.ApplicationCommand{
				Name:        "request",
				Description: b.msg.CommandRequestDesc,
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: b.msg.CommandRequestTitle, Required: true, Autocomplete: true},
				},
			},
			&discordgo.ApplicationCommand{
				Name:        "myrequests",
				Description: b.msg.CommandMyRequestsDesc,
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionInteger, Name: "cancel", Description: "ID of a request to cancel", Required: false},
				},
			},
			&discordgo.ApplicationCommand{
				Name:        "overseerr",
				Description: "Manage Overseerr account links (admin only)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type: discordgo.ApplicationCommandOptionSubCommand, Name: "link", Description: "Link a Discord user to an Overseerr account",
						Options: []*discordgo.ApplicationCommandOption{
							{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "Discord user", Required: true},
							{Type: discordgo.ApplicationCommandOptionString, Name: "identifier", Description: "Overseerr display name, Plex username or email", Required: true},
						},
					},
					{
						Type: discordgo.ApplicationCommandOptionSubCommand, Name: "unlink", Description: "Remove a user's link",
						Options: []*discordgo.ApplicationCommandOption{
							{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "Discord user", Required: true},
						},
					},
					{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "status", Description: "Check the Overseerr connection"},
					{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "List all linked accounts"},
				},
			},
		)
	}

	return specs
}

// registerSlashCommands registers commands globally or in a dev guild.
func (b *Bot) registerSlashCommands() error {
	if b.session == nil {
		return fmt.Errorf("session not initialized")
	}
	if b.session.State == nil || b.session.State.User == nil {
		return fmt.Errorf("session user not ready")
	}
	appID := b.session.State.User.ID
	guildID := b.devGuildID
	// With no explicit dev guild and exactly one guild joined, scope there
	// for fast iteration.
	if guildID == "" && len(b.session.State.Guilds) == 1 {
		guildID = b.session.State.Guilds[0].ID
		b.devGuildID = guildID
		utils.InfoLog("Slash commands: auto-using guild %s for development registration", guildID)
	}

	cmds, err := b.session.ApplicationCommandBulkOverwrite(appID, guildID, b.commandSpecs())
	if err != nil {
		return fmt.Errorf("bulk overwrite: %w", err)
	}
	b.registeredCommands = cmds

	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	scope := "global"
	if guildID != "" {
		scope = "guild:" + guildID
	}
	utils.InfoLog("Slash commands registered (%s): %v", scope, names)
	return nil
}

// unregisterSlashCommands removes commands from the dev guild. Global
// deletions propagate slowly, so those are left in place.
func (b *Bot) unregisterSlashCommands() error {
	if b.session == nil || len(b.registeredCommands) == 0 || b.devGuildID == "" {
		return nil
	}
	if b.session.State == nil || b.session.State.User == nil {
		return nil
	}
	appID := b.session.State.User.ID
	for _, cmd := range b.registeredCommands {
		_ = b.session.ApplicationCommandDelete(appID, b.devGuildID, cmd.ID)
	}
	b.registeredCommands = nil
	return nil
}

// handleApplicationCommand routes slash commands to their handlers.
func (b *Bot) handleApplicationCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	utils.DebugLog("Slash command /%s from %s", name, b.interactionUserID(i))

	switch name {
	case "movie":
		b.handleMovie(s, i)
	case "mywatchlist":
		b.handleMyWatchlist(s, i)
	case "request":
		b.handleRequestCommand(s, i)
	case "myrequests":
		b.handleMyRequests(s, i)
	case "bully":
		b.handleBully(s, i)
	case "overseerr":
		b.handleOverseerr(s, i)
	}
}

// handleAutocomplete serves TMDB title suggestions for /movie and /request.
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "movie" && data.Name != "request" {
		return
	}

	var query string
	for _, opt := range data.Options {
		if opt.Name == "title" && opt.Focused {
			query = opt.StringValue()
		}
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	if len(strings.TrimSpace(query)) >= 2 {
		results, err := b.tmdb.SearchMovies(query, 25)
		if err != nil {
			utils.WarnLog("Autocomplete search failed: %v", err)
		}
		for _, r := range results {
			label := r.Title
			if len(r.ReleaseDate) >= 4 {
				label = fmt.Sprintf("%s (%s)", r.Title, r.ReleaseDate[:4])
			}
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  utils.TrimTo(label, 100),
				Value: fmt.Sprintf("%d", r.ID),
			})
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		utils.ErrorLog("Failed to send autocomplete choices: %v", err)
	}
}
