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

package tmdb

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "the matrix" {
			t.Errorf("query = %q, want %q", got, "the matrix")
		}
		fmt.Fprint(w, `{"results":[
			{"id":603,"title":"The Matrix","release_date":"1999-03-30"},
			{"id":604,"title":"The Matrix Reloaded","release_date":"2003-05-15"},
			{"id":605,"title":"The Matrix Revolutions","release_date":"2003-11-05"}
		]}`)
	}))
	defer server.Close()

	c := NewClient("test-key", "https://image.tmdb.org/t/p/w500")
	c.SetBaseURL(server.URL)

	results, err := c.SearchMovies("the matrix", 2)
	if err != nil {
		t.Fatalf("SearchMovies: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (limit)", len(results))
	}
	if results[0].ID != 603 || results[0].Title != "The Matrix" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
}

func TestGetMovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("append_to_response"); got != "credits,videos,external_ids" {
			t.Errorf("append_to_response = %q", got)
		}
		fmt.Fprint(w, `{
			"id": 603,
			"title": "The Matrix",
			"overview": "A computer hacker learns the truth.",
			"release_date": "1999-03-30",
			"vote_average": 8.2,
			"runtime": 136,
			"poster_path": "/poster.jpg",
			"genres": [{"id":28,"name":"Action"},{"id":878,"name":"Science Fiction"}],
			"credits": {
				"cast": [{"name":"Keanu Reeves"},{"name":"Laurence Fishburne"},{"name":"Carrie-Anne Moss"},
				         {"name":"Hugo Weaving"},{"name":"Gloria Foster"},{"name":"Joe Pantoliano"}],
				"crew": [{"name":"Lana Wachowski","job":"Director"},{"name":"Bill Pope","job":"Director of Photography"}]
			},
			"videos": {"results":[
				{"key":"abc","site":"YouTube","type":"Teaser"},
				{"key":"vKQi3bBA1y8","site":"YouTube","type":"Trailer"}
			]},
			"external_ids": {"imdb_id":"tt0133093"}
		}`)
	}))
	defer server.Close()

	c := NewClient("test-key", "https://image.tmdb.org/t/p/w500/")
	c.SetBaseURL(server.URL)

	d, err := c.GetMovieDetails(603)
	if err != nil {
		t.Fatalf("GetMovieDetails: %v", err)
	}

	if d.Year != "1999" {
		t.Errorf("Year = %q, want 1999", d.Year)
	}
	if d.Rating != "8.2/10" {
		t.Errorf("Rating = %q", d.Rating)
	}
	if d.Runtime != "2h 16min" {
		t.Errorf("Runtime = %q", d.Runtime)
	}
	if d.Cast != "Keanu Reeves, Laurence Fishburne, Carrie-Anne Moss, Hugo Weaving, Gloria Foster" {
		t.Errorf("Cast = %q, want top five only", d.Cast)
	}
	if d.Director != "Lana Wachowski" {
		t.Errorf("Director = %q", d.Director)
	}
	if d.TrailerURL != "https://www.youtube.com/watch?v=vKQi3bBA1y8" {
		t.Errorf("TrailerURL = %q", d.TrailerURL)
	}
	if d.IMDBURL != "https://www.imdb.com/title/tt0133093" {
		t.Errorf("IMDBURL = %q", d.IMDBURL)
	}
	if d.PosterURL != "https://image.tmdb.org/t/p/w500/poster.jpg" {
		t.Errorf("PosterURL = %q", d.PosterURL)
	}
	if d.Genres != "Action, Science Fiction" {
		t.Errorf("Genres = %q", d.Genres)
	}
	if len(d.GenreIDs) != 2 {
		t.Errorf("GenreIDs = %v", d.GenreIDs)
	}
}

func TestGetMovieDetailsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewClient("bad-key", "")
	c.SetBaseURL(server.URL)

	if _, err := c.GetMovieDetails(603); err == nil {
		t.Error("expected an error on HTTP 401")
	}
}
