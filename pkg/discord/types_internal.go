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
)

// Bot is the Discord side of movie-night.
type Bot struct {
	session *discordgo.Session
	cfg     *config.AppConfig
	db      *database.DBManager
	tmdb    *tmdb.Client
	osr     *overseerr.Client
	tracker *bullying.Tracker
	msg     *messages.Catalog

	devGuildID         string
	registeredCommands []*discordgo.ApplicationCommand
}
