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
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/buttons"
	"github.com/lucasduport/movie-night/pkg/messages"
	"github.com/lucasduport/movie-night/pkg/types"
)

func TestSplitOwnership(t *testing.T) {
	tests := []struct {
		customID   string
		prefix     string
		wantAuthor string
		wantMovie  string
	}{
		{"watched_12345_603", "watched_", "12345", "603"},
		{"watchlist_999_27205", "watchlist_", "999", "27205"},
		{"watched_12345", "watched_", "12345", ""},
	}
	for _, tt := range tests {
		author, movie := splitOwnership(tt.customID, tt.prefix)
		if author != tt.wantAuthor || movie != tt.wantMovie {
			t.Errorf("splitOwnership(%q) = (%q, %q), want (%q, %q)",
				tt.customID, author, movie, tt.wantAuthor, tt.wantMovie)
		}
	}
}

func TestRenderControls(t *testing.T) {
	msg := messages.ForLanguage("en")
	specs := buttons.Reconcile(buttons.Inputs{
		MovieID: "603", AuthorID: "u1", Threshold: 3,
		ExternalLinkURL:    "https://www.imdb.com/title/tt0133093",
		RequestIntegration: true,
		Availability:       &types.AvailabilityStatus{Available: true},
	}, msg)

	components := renderControls(specs)
	if len(components) != 1 {
		t.Fatalf("expected a single action row, got %d", len(components))
	}
	row, ok := components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("expected ActionsRow, got %T", components[0])
	}
	if len(row.Components) != len(specs) {
		t.Fatalf("row has %d buttons, want %d", len(row.Components), len(specs))
	}

	for idx, c := range row.Components {
		btn, ok := c.(discordgo.Button)
		if !ok {
			t.Fatalf("component %d is %T, not Button", idx, c)
		}
		spec := specs[idx]
		if btn.Label != spec.Label || btn.Disabled != spec.Disabled {
			t.Errorf("button %d: got label=%q disabled=%v, want %q/%v", idx, btn.Label, btn.Disabled, spec.Label, spec.Disabled)
		}
		if spec.Role == buttons.RoleLink {
			if btn.Style != discordgo.LinkButton || btn.URL == "" || btn.CustomID != "" {
				t.Errorf("link button rendered wrong: %+v", btn)
			}
		}
	}
}

func TestMovieFromMessage(t *testing.T) {
	msg := messages.ForLanguage("en")
	m := &discordgo.Message{Embeds: []*discordgo.MessageEmbed{{
		Title: "The Matrix",
		Fields: []*discordgo.MessageEmbedField{
			{Name: msg.EmbedRating, Value: "8.2/10"},
			{Name: msg.EmbedReleaseYear, Value: "1999"},
		},
	}}}

	title, year := movieFromMessage(m, msg)
	if title != "The Matrix" || year != "1999" {
		t.Errorf("got (%q, %q), want (The Matrix, 1999)", title, year)
	}

	title, year = movieFromMessage(nil, msg)
	if title != "" || year != "" {
		t.Error("nil message should yield empty values")
	}
}

func TestLinkAndAuthorFromComponents(t *testing.T) {
	m := &discordgo.Message{Components: []discordgo.MessageComponent{
		&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			&discordgo.Button{CustomID: "watched_u1_603"},
			&discordgo.Button{CustomID: "delete_u1"},
			&discordgo.Button{URL: "https://www.imdb.com/title/tt0133093", Style: discordgo.LinkButton},
		}},
	}}

	if got := linkURLFromMessage(m); got != "https://www.imdb.com/title/tt0133093" {
		t.Errorf("linkURLFromMessage = %q", got)
	}
	if got := authorFromComponents(m); got != "u1" {
		t.Errorf("authorFromComponents = %q, want u1", got)
	}
	if linkURLFromMessage(nil) != "" || authorFromComponents(nil) != "" {
		t.Error("nil message should yield empty values")
	}
}

func TestStyledEmbed(t *testing.T) {
	e := styledEmbed(colorWarn, "heads up")
	if e.Color != colorWarn {
		t.Errorf("Color = %#x, want %#x", e.Color, colorWarn)
	}
	if e.Description != "heads up" {
		t.Errorf("Description = %q", e.Description)
	}
	if e.Title != "" {
		t.Errorf("announcement embeds carry no title, got %q", e.Title)
	}
	if _, err := time.Parse(time.RFC3339, e.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC3339: %v", e.Timestamp, err)
	}
}
