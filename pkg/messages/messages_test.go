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

package messages

import (
	"strings"
	"testing"
)

func TestForLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{"english", "en", "en"},
		{"greek", "el", "el"},
		{"unknown falls back to english", "fr", "en"},
		{"empty falls back to english", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ForLanguage(tt.lang)
			if c.Lang != tt.want {
				t.Errorf("ForLanguage(%q).Lang = %q, want %q", tt.lang, c.Lang, tt.want)
			}
		})
	}
}

func TestPluralization(t *testing.T) {
	c := ForLanguage("en")

	one := c.AddedToWatchlist(1)
	if !strings.Contains(one, "1 person wants") {
		t.Errorf("AddedToWatchlist(1) = %q, want singular form", one)
	}
	many := c.AddedToWatchlist(3)
	if !strings.Contains(many, "3 people want") {
		t.Errorf("AddedToWatchlist(3) = %q, want plural form", many)
	}
}

func TestAnnouncementTemplates(t *testing.T) {
	for _, lang := range []string{"en", "el"} {
		c := ForLanguage(lang)

		one := c.ThresholdReached(1)
		if !strings.Contains(one, "1") || strings.Contains(one, "%!") {
			t.Errorf("%s: ThresholdReached(1) = %q", lang, one)
		}
		many := c.ThresholdReached(3)
		if !strings.Contains(many, "3") || strings.Contains(many, "%!") {
			t.Errorf("%s: ThresholdReached(3) = %q", lang, many)
		}

		coord := c.WatchPartyCoordination("Dune")
		if !strings.Contains(coord, "Dune") || strings.Contains(coord, "%!") {
			t.Errorf("%s: WatchPartyCoordination = %q", lang, coord)
		}
	}
}

func TestStrikeMessagesIncludeName(t *testing.T) {
	for _, lang := range []string{"en", "el"} {
		c := ForLanguage(lang)
		if !strings.Contains(c.FirstStrike("nikos"), "nikos") {
			t.Errorf("%s: FirstStrike missing display name", lang)
		}
		if !strings.Contains(c.SecondStrike("nikos"), "nikos") {
			t.Errorf("%s: SecondStrike missing display name", lang)
		}
	}
}

func TestRequestSuccessQuality(t *testing.T) {
	c := ForLanguage("en")
	if got := c.RequestSuccess("Dune", true); !strings.Contains(got, "4K") {
		t.Errorf("RequestSuccess 4k = %q, want 4K mention", got)
	}
	if got := c.RequestSuccess("Dune", false); strings.Contains(got, "4K") {
		t.Errorf("RequestSuccess HD = %q, should not mention 4K", got)
	}
}
