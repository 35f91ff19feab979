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

package config

import "time"

// CredentialString is a string holding a secret. It exists so that config
// dumps and accidental %v formatting don't leak tokens.
type CredentialString string

// String returns the raw credential value.
func (c CredentialString) String() string {
	return string(c)
}

// MarshalJSON masks the credential in any JSON output.
func (c CredentialString) MarshalJSON() ([]byte, error) {
	return []byte(`"*****"`), nil
}

// HostConfiguration for the HTTP API endpoint.
type HostConfiguration struct {
	Hostname string
	Port     int
}

// AppConfig is the full runtime configuration assembled in cmd/root.go.
type AppConfig struct {
	HostConfig *HostConfiguration
	HTTPS      bool

	// Discord
	DiscordToken   CredentialString
	DevGuildID     string
	ForumChannelID string

	// TMDB metadata provider
	TMDBAPIKey       CredentialString
	TMDBImageBaseURL string

	// Overseerr media-request service (optional)
	OverseerrURL    string
	OverseerrAPIKey CredentialString

	// Storage
	DBPath string

	// Watch parties
	WatchPartyThreshold  int
	PlaceholderEventTime time.Duration
	EventDuration        time.Duration

	// Press-tracker cooldown window
	BullyCooldown time.Duration

	// Message catalog language ("en", "el")
	Language string
}

// OverseerrConfigured reports whether the media-request integration is active.
func (c *AppConfig) OverseerrConfigured() bool {
	return c.OverseerrURL != "" && c.OverseerrAPIKey != ""
}
