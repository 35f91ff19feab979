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

// Package tmdb is a minimal client for The Movie Database API, covering
// movie search and the detail lookup the bot needs to build a forum post.
package tmdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Client talks to the TMDB v3 API.
type Client struct {
	baseURL      string
	apiKey       string
	imageBaseURL string
	httpClient   *http.Client
}

// NewClient builds a TMDB client. imageBaseURL is prepended to poster paths.
func NewClient(apiKey, imageBaseURL string) *Client {
	return &Client{
		baseURL:      defaultBaseURL,
		apiKey:       apiKey,
		imageBaseURL: strings.TrimSuffix(imageBaseURL, "/"),
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimSuffix(base, "/")
}

type searchResponse struct {
	Results []types.SearchResult `json:"results"`
}

// SearchMovies returns up to limit matches for the query, ordered by TMDB
// relevance.
func (c *Client) SearchMovies(query string, limit int) ([]types.SearchResult, error) {
	utils.DebugLog("TMDB: searching for %q", query)

	endpoint := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s&include_adult=false",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	var parsed searchResponse
	if err := c.getJSON(endpoint, &parsed); err != nil {
		return nil, fmt.Errorf("tmdb search failed: %w", err)
	}

	results := parsed.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

type detailsResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Runtime     int     `json:"runtime"`
	PosterPath  string  `json:"poster_path"`
	Genres      []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	Credits struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
		Crew []struct {
			Name string `json:"name"`
			Job  string `json:"job"`
		} `json:"crew"`
	} `json:"credits"`
	Videos struct {
		Results []struct {
			Key  string `json:"key"`
			Site string `json:"site"`
			Type string `json:"type"`
		} `json:"results"`
	} `json:"videos"`
	ExternalIDs struct {
		IMDBID string `json:"imdb_id"`
	} `json:"external_ids"`
}

// GetMovieDetails fetches a movie with credits, videos and external IDs in a
// single call and flattens it into the fields the forum post renders.
func (c *Client) GetMovieDetails(movieID int) (*types.MovieDetails, error) {
	utils.DebugLog("TMDB: fetching details for movie %d", movieID)

	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s&append_to_response=credits,videos,external_ids",
		c.baseURL, movieID, url.QueryEscape(c.apiKey))

	var parsed detailsResponse
	if err := c.getJSON(endpoint, &parsed); err != nil {
		return nil, fmt.Errorf("tmdb details failed: %w", err)
	}

	details := &types.MovieDetails{
		ID:      parsed.ID,
		Title:   parsed.Title,
		Plot:    parsed.Overview,
		TMDBURL: fmt.Sprintf("https://www.themoviedb.org/movie/%d", parsed.ID),
	}

	if len(parsed.ReleaseDate) >= 4 {
		details.Year = parsed.ReleaseDate[:4]
	}
	if parsed.VoteAverage > 0 {
		details.Rating = fmt.Sprintf("%.1f/10", parsed.VoteAverage)
	}
	if parsed.Runtime > 0 {
		details.Runtime = fmt.Sprintf("%dh %dmin", parsed.Runtime/60, parsed.Runtime%60)
	}
	if parsed.PosterPath != "" && c.imageBaseURL != "" {
		details.PosterURL = c.imageBaseURL + parsed.PosterPath
	}

	var genres []string
	for _, g := range parsed.Genres {
		genres = append(genres, g.Name)
		details.GenreIDs = append(details.GenreIDs, g.ID)
	}
	details.Genres = strings.Join(genres, ", ")

	var cast []string
	for i, member := range parsed.Credits.Cast {
		if i >= 5 {
			break
		}
		cast = append(cast, member.Name)
	}
	details.Cast = strings.Join(cast, ", ")

	for _, member := range parsed.Credits.Crew {
		if member.Job == "Director" {
			details.Director = member.Name
			break
		}
	}

	for _, v := range parsed.Videos.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			details.TrailerURL = "https://www.youtube.com/watch?v=" + v.Key
			break
		}
	}

	if parsed.ExternalIDs.IMDBID != "" {
		details.IMDBURL = "https://www.imdb.com/title/" + parsed.ExternalIDs.IMDBID
	}

	return details, nil
}

func (c *Client) getJSON(endpoint string, out interface{}) error {
	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		utils.ErrorLog("TMDB request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
