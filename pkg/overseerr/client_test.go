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

package overseerr

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetAvailabilityMapping(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		httpStatus     int
		wantAvailable  bool
		wantRequested  bool
		wantProcessing bool
	}{
		{"available", `{"mediaInfo":{"status":5}}`, 200, true, false, false},
		{"partially available", `{"mediaInfo":{"status":4}}`, 200, true, false, false},
		{"processing", `{"mediaInfo":{"status":3}}`, 200, false, true, true},
		{"pending", `{"mediaInfo":{"status":2}}`, 200, false, true, false},
		{"never requested", `{"id":603}`, 200, false, false, false},
		{"unknown to overseerr", `{"message":"not found"}`, 404, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("X-Api-Key"); got != "secret" {
					t.Errorf("X-Api-Key = %q", got)
				}
				w.WriteHeader(tt.httpStatus)
				fmt.Fprint(w, tt.response)
			}))
			defer server.Close()

			c := NewClient(server.URL, "secret")
			got, err := c.GetAvailability(603)
			if err != nil {
				t.Fatalf("GetAvailability: %v", err)
			}
			if got.Available != tt.wantAvailable || got.Requested != tt.wantRequested || got.Processing != tt.wantProcessing {
				t.Errorf("got %+v, want available=%v requested=%v processing=%v",
					got, tt.wantAvailable, tt.wantRequested, tt.wantProcessing)
			}
		})
	}
}

func TestGetAvailabilityTransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "secret")
	got, err := c.GetAvailability(603)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if got.Available || got.Requested || got.Processing {
		t.Errorf("status should be all false on error, got %+v", got)
	}
}

func TestRequestMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/request" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":17}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret")
	res, err := c.RequestMovie(603, 42, false)
	if err != nil {
		t.Fatalf("RequestMovie: %v", err)
	}
	if !res.Success || res.RequestID != 17 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestRequestMovieRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"Request for this media already exists."}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret")
	res, err := c.RequestMovie(603, 42, true)
	if err != nil {
		t.Fatalf("RequestMovie: %v", err)
	}
	if res.Success {
		t.Error("expected Success=false")
	}
	if res.Error != "Request for this media already exists." {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestGetUserRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("requestedBy"); got != "42" {
			t.Errorf("requestedBy = %q", got)
		}
		fmt.Fprint(w, `{"results":[
			{"id":1,"status":1,"is4k":false,"media":{"tmdbId":603,"status":3}},
			{"id":2,"status":2,"is4k":true,"media":{"tmdbId":27205,"status":5}}
		]}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret")
	requests, err := c.GetUserRequests(42)
	if err != nil {
		t.Fatalf("GetUserRequests: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("got %d requests, want 2", len(requests))
	}
	if requests[0].RequestStatus != 1 || requests[0].MediaStatus != 3 || requests[0].TMDBID != 603 {
		t.Errorf("unexpected first request: %+v", requests[0])
	}
	if !requests[1].Is4K || requests[1].MediaStatus != MediaStatusAvailable {
		t.Errorf("unexpected second request: %+v", requests[1])
	}
}

func TestFindUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[
			{"id":1,"displayName":"Alice","plexUsername":"alice_plex","email":"alice@example.com"},
			{"id":2,"displayName":"Bob","plexUsername":"bobby","email":"bob@example.com"}
		]}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret")

	tests := []struct {
		identifier string
		wantID     int
	}{
		{"alice", 1},
		{"BOBBY", 2},
		{"bob@example.com", 2},
	}
	for _, tt := range tests {
		u, err := c.FindUser(tt.identifier)
		if err != nil {
			t.Fatalf("FindUser(%q): %v", tt.identifier, err)
		}
		if u == nil || u.ID != tt.wantID {
			t.Errorf("FindUser(%q) = %+v, want ID %d", tt.identifier, u, tt.wantID)
		}
	}

	u, err := c.FindUser("nobody")
	if err != nil {
		t.Fatalf("FindUser(nobody): %v", err)
	}
	if u != nil {
		t.Errorf("expected nil for unknown user, got %+v", u)
	}
}

func TestConfigured(t *testing.T) {
	if NewClient("", "").Configured() {
		t.Error("empty client should not be configured")
	}
	if !NewClient("http://localhost:5055", "key").Configured() {
		t.Error("client with URL and key should be configured")
	}
}
