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

package database

import (
	"testing"

	"github.com/lucasduport/movie-night/pkg/types"
)

func newTestDB(t *testing.T) *DBManager {
	t.Helper()
	m, err := NewDBManager(":memory:")
	if err != nil {
		t.Fatalf("NewDBManager: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestAddToWatchlistIdempotent(t *testing.T) {
	m := newTestDB(t)

	changed, err := m.AddToWatchlist("user1", "603", "The Matrix", "1999", types.StatusWantToWatch)
	if err != nil {
		t.Fatalf("AddToWatchlist: %v", err)
	}
	if !changed {
		t.Error("first add should report changed=true")
	}

	changed, err = m.AddToWatchlist("user1", "603", "The Matrix", "1999", types.StatusWantToWatch)
	if err != nil {
		t.Fatalf("AddToWatchlist (repeat): %v", err)
	}
	if changed {
		t.Error("duplicate add should report changed=false")
	}

	count, err := m.CountByStatus("603", types.StatusWantToWatch)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestRemoveFromWatchlist(t *testing.T) {
	m := newTestDB(t)

	changed, err := m.RemoveFromWatchlist("user1", "603", types.StatusWatched)
	if err != nil {
		t.Fatalf("RemoveFromWatchlist: %v", err)
	}
	if changed {
		t.Error("removing a missing entry should report changed=false")
	}

	if _, err := m.AddToWatchlist("user1", "603", "The Matrix", "1999", types.StatusWatched); err != nil {
		t.Fatalf("AddToWatchlist: %v", err)
	}
	changed, err = m.RemoveFromWatchlist("user1", "603", types.StatusWatched)
	if err != nil {
		t.Fatalf("RemoveFromWatchlist: %v", err)
	}
	if !changed {
		t.Error("removing an existing entry should report changed=true")
	}
}

func TestStatusesAreIndependent(t *testing.T) {
	m := newTestDB(t)

	if _, err := m.AddToWatchlist("user1", "603", "The Matrix", "1999", types.StatusWatched); err != nil {
		t.Fatalf("AddToWatchlist: %v", err)
	}
	if _, err := m.AddToWatchlist("user1", "603", "The Matrix", "1999", types.StatusWantToWatch); err != nil {
		t.Fatalf("AddToWatchlist: %v", err)
	}

	for _, status := range []string{types.StatusWatched, types.StatusWantToWatch} {
		in, err := m.IsInWatchlist("user1", "603", status)
		if err != nil {
			t.Fatalf("IsInWatchlist(%s): %v", status, err)
		}
		if !in {
			t.Errorf("expected entry under %s", status)
		}
	}
}

func TestUsersWantingToWatch(t *testing.T) {
	m := newTestDB(t)

	for _, user := range []string{"a", "b", "c"} {
		if _, err := m.AddToWatchlist(user, "27205", "Inception", "2010", types.StatusWantToWatch); err != nil {
			t.Fatalf("AddToWatchlist(%s): %v", user, err)
		}
	}
	if _, err := m.AddToWatchlist("d", "27205", "Inception", "2010", types.StatusWatched); err != nil {
		t.Fatalf("AddToWatchlist: %v", err)
	}

	users, err := m.UsersWantingToWatch("27205")
	if err != nil {
		t.Fatalf("UsersWantingToWatch: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("got %d interested users, want 3", len(users))
	}
}

func TestGetUserWatchlist(t *testing.T) {
	m := newTestDB(t)

	if _, err := m.AddToWatchlist("user1", "603", "The Matrix", "1999", types.StatusWantToWatch); err != nil {
		t.Fatalf("AddToWatchlist: %v", err)
	}

	entries, err := m.GetUserWatchlist("user1", types.StatusWantToWatch)
	if err != nil {
		t.Fatalf("GetUserWatchlist: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].MovieTitle != "The Matrix" || entries[0].MovieYear != "1999" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestCreateWatchPartyConflict(t *testing.T) {
	m := newTestDB(t)

	if err := m.CreateWatchParty("603", "msg1", "user1"); err != nil {
		t.Fatalf("CreateWatchParty: %v", err)
	}

	err := m.CreateWatchParty("603", "msg2", "user2")
	if err != ErrPartyExists {
		t.Errorf("second CreateWatchParty = %v, want ErrPartyExists", err)
	}

	exists, err := m.WatchPartyExists("603")
	if err != nil {
		t.Fatalf("WatchPartyExists: %v", err)
	}
	if !exists {
		t.Error("expected an active party")
	}
}

func TestCompleteWatchParty(t *testing.T) {
	m := newTestDB(t)

	if err := m.CreateWatchParty("603", "msg1", "user1"); err != nil {
		t.Fatalf("CreateWatchParty: %v", err)
	}
	if err := m.AttachPartyThread("603", "thread1", "event1"); err != nil {
		t.Fatalf("AttachPartyThread: %v", err)
	}
	if err := m.CompleteWatchParty("603"); err != nil {
		t.Fatalf("CompleteWatchParty: %v", err)
	}

	exists, err := m.WatchPartyExists("603")
	if err != nil {
		t.Fatalf("WatchPartyExists: %v", err)
	}
	if exists {
		t.Error("completed party should not count as active")
	}

	p, err := m.GetWatchParty("603")
	if err != nil {
		t.Fatalf("GetWatchParty: %v", err)
	}
	if p == nil || !p.Completed || p.ThreadID != "thread1" || p.EventID != "event1" {
		t.Errorf("unexpected party: %+v", p)
	}

	// The movie keeps its row after completion; re-organizing stays blocked.
	if err := m.CreateWatchParty("603", "msg2", "user2"); err != ErrPartyExists {
		t.Errorf("CreateWatchParty after completion = %v, want ErrPartyExists", err)
	}
}

func TestAccountLinkRoundtrip(t *testing.T) {
	m := newTestDB(t)

	link, err := m.GetAccountLink("discord1")
	if err != nil {
		t.Fatalf("GetAccountLink: %v", err)
	}
	if link != nil {
		t.Fatalf("expected nil link for unknown user, got %+v", link)
	}

	if err := m.LinkAccount("discord1", 42, "alice", "alice_plex", "admin1"); err != nil {
		t.Fatalf("LinkAccount: %v", err)
	}

	link, err = m.GetAccountLink("discord1")
	if err != nil {
		t.Fatalf("GetAccountLink: %v", err)
	}
	if link == nil {
		t.Fatal("expected a link")
	}
	if link.OverseerrUserID != 42 || link.OverseerrUsername != "alice" {
		t.Errorf("unexpected link: %+v", link)
	}

	// Re-link replaces the previous mapping.
	if err := m.LinkAccount("discord1", 43, "bob", "", "admin1"); err != nil {
		t.Fatalf("LinkAccount (replace): %v", err)
	}
	link, _ = m.GetAccountLink("discord1")
	if link.OverseerrUserID != 43 {
		t.Errorf("OverseerrUserID = %d, want 43 after replace", link.OverseerrUserID)
	}

	links, err := m.ListAccountLinks()
	if err != nil {
		t.Fatalf("ListAccountLinks: %v", err)
	}
	if len(links) != 1 {
		t.Errorf("got %d links, want 1", len(links))
	}

	changed, err := m.UnlinkAccount("discord1")
	if err != nil {
		t.Fatalf("UnlinkAccount: %v", err)
	}
	if !changed {
		t.Error("unlink should report changed=true")
	}
	changed, _ = m.UnlinkAccount("discord1")
	if changed {
		t.Error("second unlink should report changed=false")
	}
}
