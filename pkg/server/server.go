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

package server

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lucasduport/movie-night/pkg/bullying"
	"github.com/lucasduport/movie-night/pkg/config"
	"github.com/lucasduport/movie-night/pkg/database"
	"github.com/lucasduport/movie-night/pkg/discord"
	"github.com/lucasduport/movie-night/pkg/messages"
	"github.com/lucasduport/movie-night/pkg/overseerr"
	"github.com/lucasduport/movie-night/pkg/tmdb"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// Config holds every component the server runs: the bot, its storage and the
// internal HTTP API used by dashboards and ops tooling.
type Config struct {
	*config.AppConfig

	db         *database.DBManager
	tracker    *bullying.Tracker
	discordBot *discord.Bot
}

// NewServer wires the database, metadata clients, press tracker and bot.
func NewServer(cfg *config.AppConfig) (*Config, error) {
	utils.InfoLog("Bootstrap: movie-night is starting")

	db, err := database.NewDBManager(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	msg := messages.ForLanguage(cfg.Language)
	utils.InfoLog("Bootstrap: message catalog language %s", msg.Lang)

	tracker := bullying.NewTracker(cfg.BullyCooldown, msg)

	tmdbClient := tmdb.NewClient(cfg.TMDBAPIKey.String(), cfg.TMDBImageBaseURL)

	var osrClient *overseerr.Client
	if cfg.OverseerrConfigured() {
		osrClient = overseerr.NewClient(cfg.OverseerrURL, cfg.OverseerrAPIKey.String())
		utils.InfoLog("Bootstrap: Overseerr integration enabled (%s)", cfg.OverseerrURL)
	} else {
		osrClient = overseerr.NewClient("", "")
		utils.InfoLog("Bootstrap: Overseerr integration disabled")
	}

	bot, err := discord.NewBot(cfg, db, tmdbClient, osrClient, tracker, msg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	return &Config{
		AppConfig:  cfg,
		db:         db,
		tracker:    tracker,
		discordBot: bot,
	}, nil
}

// Serve starts the Discord bot, then blocks serving the internal API.
func (c *Config) Serve() error {
	if c.db != nil && c.db.IsInitialized() {
		utils.InfoLog("Bootstrap: database ready at %s", c.DBPath)
	}

	if err := c.discordBot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}
	defer c.discordBot.Stop()
	defer c.db.Close()

	router := gin.Default()
	router.Use(cors.Default())
	c.setupInternalAPI(router)

	if c.HostConfig.Hostname != "" {
		scheme := "http"
		if c.HTTPS {
			scheme = "https"
		}
		utils.InfoLog("[movie-night] Internal API at %s://%s:%d/api/internal", scheme, c.HostConfig.Hostname, c.HostConfig.Port)
	}
	utils.InfoLog("[movie-night] Server is ready and listening on :%d", c.HostConfig.Port)
	return router.Run(fmt.Sprintf(":%d", c.HostConfig.Port))
}
