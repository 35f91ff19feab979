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

// Package buttons computes which controls a movie post carries. Discord
// allows at most five buttons per action row, so controls are ranked and the
// lowest-priority one (organize watch party) is the only control that can be
// dropped. The computation is pure; rendering to Discord components happens
// elsewhere.
package buttons

import (
	"github.com/lucasduport/movie-night/pkg/messages"
	"github.com/lucasduport/movie-night/pkg/types"
)

// MaxControls is Discord's per-row button limit.
const MaxControls = 5

// Role identifies what a control does, and decides its visual style when
// rendered.
type Role string

const (
	RoleWatched   Role = "watched"
	RoleWatchlist Role = "watchlist"
	RoleDelete    Role = "delete"
	RoleLink      Role = "link"
	RoleRequest   Role = "request"
	RolePending   Role = "pending"
	RoleAvailable Role = "available"
	RoleParty     Role = "party"
)

// Spec describes one control on a movie post.
type Spec struct {
	Role     Role
	Label    string
	Emoji    string
	Disabled bool
	CustomID string
	URL      string
}

// Inputs is everything the current state of a post contributes to its
// controls.
type Inputs struct {
	MovieID            string
	AuthorID           string
	ExternalLinkURL    string
	InterestCount      int
	PartyExists        bool
	Threshold          int
	RequestIntegration bool
	Availability       *types.AvailabilityStatus
}

// Reconcile computes the full control set for a post, in presentation order.
// The watched, want-to-watch and delete controls always appear. The external
// link and the availability control follow when present. The organize-party
// control comes last and is the only one ever dropped for the row limit.
func Reconcile(in Inputs, msg *messages.Catalog) []Spec {
	specs := []Spec{
		{
			Role:     RoleWatched,
			Label:    msg.ButtonWatched,
			Emoji:    "✅",
			CustomID: "watched_" + in.AuthorID + "_" + in.MovieID,
		},
		{
			Role:     RoleWatchlist,
			Label:    msg.ButtonWantToWatch,
			Emoji:    "📋",
			CustomID: "watchlist_" + in.AuthorID + "_" + in.MovieID,
		},
		{
			Role:     RoleDelete,
			Label:    msg.ButtonDelete,
			Emoji:    "🗑️",
			CustomID: "delete_" + in.AuthorID,
		},
	}

	if in.ExternalLinkURL != "" {
		specs = append(specs, Spec{
			Role:  RoleLink,
			Label: msg.ButtonIMDB,
			URL:   in.ExternalLinkURL,
		})
	}

	if availability := availabilityControl(in, msg); availability != nil {
		specs = append(specs, *availability)
	}

	if in.InterestCount >= in.Threshold && !in.PartyExists && len(specs) < MaxControls {
		specs = append(specs, Spec{
			Role:     RoleParty,
			Label:    msg.ButtonWatchParty(in.InterestCount),
			Emoji:    "🎉",
			CustomID: "watch_party_" + in.MovieID,
		})
	}

	return specs
}

func availabilityControl(in Inputs, msg *messages.Catalog) *Spec {
	if !in.RequestIntegration || in.Availability == nil {
		return nil
	}

	switch {
	case in.Availability.Available:
		return &Spec{
			Role:     RoleAvailable,
			Label:    msg.ButtonAvailable,
			Emoji:    "📺",
			Disabled: true,
			CustomID: "available_" + in.MovieID,
		}
	case in.Availability.Requested || in.Availability.Processing:
		return &Spec{
			Role:     RolePending,
			Label:    msg.ButtonPending,
			Emoji:    "⏳",
			Disabled: true,
			CustomID: "pending_" + in.MovieID,
		}
	default:
		return &Spec{
			Role:     RoleRequest,
			Label:    msg.ButtonRequest,
			Emoji:    "📥",
			CustomID: "request_" + in.MovieID,
		}
	}
}
