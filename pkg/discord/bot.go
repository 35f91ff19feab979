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
	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/bullying"
	"github.com/lucasduport/movie-night/pkg/config"
	"github.com/lucasduport/movie-night/pkg/database"
	"github.com/lucasduport/movie-night/pkg/messages"
	"github.com/lucasduport/movie-night/pkg/overseerr"
	"github.com/lucasduport/movie-night/pkg/tmdb"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// NewBot builds the bot and wires its interaction handlers. The session is
// not opened until Start.
func NewBot(cfg *config.AppConfig, db *database.DBManager, tmdbClient *tmdb.Client, osrClient *overseerr.Client, tracker *bullying.Tracker, msg *messages.Catalog) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken.String())
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		session:    dg,
		cfg:        cfg,
		db:         db,
		tmdb:       tmdbClient,
		osr:        osrClient,
		tracker:    tracker,
		msg:        msg,
		devGuildID: cfg.DevGuildID,
	}

	dg.AddHandler(bot.handleInteractionCreate)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		if s != nil && s.State != nil && s.State.User != nil {
			utils.InfoLog("Discord ready: %s (%s)", s.State.User.Username, s.State.User.ID)
		}
	})

	dg.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildMessageReactions

	return bot, nil
}

// Start opens the gateway connection and registers slash commands.
func (b *Bot) Start() error {
	utils.InfoLog("Starting Discord bot")
	if err := b.session.Open(); err != nil {
		return err
	}
	if err := b.registerSlashCommands(); err != nil {
		utils.ErrorLog("Failed to register slash commands: %v", err)
	}
	if b.devGuildID == "" {
		utils.WarnLog("Slash commands registered globally; this can take up to an hour to appear. Set DISCORD_DEV_GUILD_ID for instant registration during development.")
	}
	return nil
}

// Stop unregisters dev-guild commands and closes the session.
func (b *Bot) Stop() {
	utils.InfoLog("Stopping Discord bot")
	if err := b.unregisterSlashCommands(); err != nil {
		utils.WarnLog("Failed to unregister slash commands: %v", err)
	}
	b.session.Close()
}

// handleInteractionCreate fans interactions out by type.
func (b *Bot) handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleApplicationCommand(s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	case discordgo.InteractionModalSubmit:
		b.handleModalSubmit(s, i)
	}
}
