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

// Package overseerr is a client for the Overseerr request-management API.
// Overseerr responses vary in shape (mediaInfo may be absent entirely), so
// lookups go through jsonparser instead of rigid struct decoding.
package overseerr

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// Media status values as reported by Overseerr.
const (
	MediaStatusPending    = 2
	MediaStatusProcessing = 3
	MediaStatusPartial    = 4
	MediaStatusAvailable  = 5
)

// User is an Overseerr account, as returned by the user listing.
type User struct {
	ID           int
	Username     string
	PlexUsername string
	Email        string
}

// Client talks to an Overseerr instance.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an Overseerr client for the given base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the client has both a URL and an API key.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

// Status checks connectivity and returns the Overseerr version.
func (c *Client) Status() (string, error) {
	body, status, err := c.do(http.MethodGet, "/api/v1/status", nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", status)
	}
	version, _ := jsonparser.GetString(body, "version")
	return version, nil
}

// GetAvailability reports whether a movie is available, requested or being
// processed. A movie Overseerr has never seen (404, or no mediaInfo) comes
// back with every flag false and no error.
func (c *Client) GetAvailability(tmdbID int) (types.AvailabilityStatus, error) {
	var result types.AvailabilityStatus

	body, status, err := c.do(http.MethodGet, fmt.Sprintf("/api/v1/movie/%d", tmdbID), nil)
	if err != nil {
		utils.WarnLog("Overseerr availability check failed: %v", err)
		return result, err
	}
	if status == http.StatusNotFound {
		return result, nil
	}
	if status != http.StatusOK {
		return result, fmt.Errorf("unexpected status %d", status)
	}

	mediaStatus, err := jsonparser.GetInt(body, "mediaInfo", "status")
	if err != nil {
		// No mediaInfo means the movie was never requested.
		return result, nil
	}

	switch mediaStatus {
	case MediaStatusAvailable, MediaStatusPartial:
		result.Available = true
	case MediaStatusProcessing:
		result.Requested = true
		result.Processing = true
	case MediaStatusPending:
		result.Requested = true
	}
	return result, nil
}

// RequestMovie files a movie request on behalf of an Overseerr user.
func (c *Client) RequestMovie(tmdbID, overseerrUserID int, is4k bool) (*types.RequestResult, error) {
	utils.DebugLog("Overseerr: requesting movie %d for user %d (4k=%v)", tmdbID, overseerrUserID, is4k)

	payload := fmt.Sprintf(`{"mediaType":"movie","mediaId":%d,"is4k":%v,"userId":%d}`,
		tmdbID, is4k, overseerrUserID)

	body, status, err := c.do(http.MethodPost, "/api/v1/request", []byte(payload))
	if err != nil {
		return nil, err
	}

	if status != http.StatusCreated && status != http.StatusOK {
		message, _ := jsonparser.GetString(body, "message")
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", status)
		}
		return &types.RequestResult{Success: false, Error: message}, nil
	}

	id, _ := jsonparser.GetInt(body, "id")
	utils.InfoLog("Overseerr request %d created for movie %d", id, tmdbID)
	return &types.RequestResult{Success: true, RequestID: int(id)}, nil
}

// GetUserRequests lists a user's movie requests, newest first. Titles are not
// populated; Overseerr only returns TMDB IDs.
func (c *Client) GetUserRequests(overseerrUserID int) ([]types.MediaRequest, error) {
	path := fmt.Sprintf("/api/v1/request?take=50&sort=added&requestedBy=%d", overseerrUserID)
	body, status, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", status)
	}

	var requests []types.MediaRequest
	_, err = jsonparser.ArrayEach(body, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		var r types.MediaRequest
		id, _ := jsonparser.GetInt(value, "id")
		reqStatus, _ := jsonparser.GetInt(value, "status")
		mediaStatus, _ := jsonparser.GetInt(value, "media", "status")
		tmdbID, _ := jsonparser.GetInt(value, "media", "tmdbId")
		is4k, _ := jsonparser.GetBoolean(value, "is4k")

		r.ID = int(id)
		r.RequestStatus = int(reqStatus)
		r.MediaStatus = int(mediaStatus)
		r.TMDBID = int(tmdbID)
		r.Is4K = is4k
		requests = append(requests, r)
	}, "results")
	if err != nil {
		return nil, fmt.Errorf("failed to parse requests: %w", err)
	}
	return requests, nil
}

// CancelRequest deletes a request by ID.
func (c *Client) CancelRequest(requestID int) error {
	_, status, err := c.do(http.MethodDelete, fmt.Sprintf("/api/v1/request/%d", requestID), nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent && status != http.StatusOK {
		return fmt.Errorf("unexpected status %d", status)
	}
	return nil
}

// FindUser looks up an Overseerr account by display name, Plex username or
// email, case-insensitively. Returns nil when nobody matches.
func (c *Client) FindUser(identifier string) (*User, error) {
	body, status, err := c.do(http.MethodGet, "/api/v1/user?take=100", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", status)
	}

	needle := strings.ToLower(identifier)
	var found *User
	_, err = jsonparser.ArrayEach(body, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		if found != nil {
			return
		}
		id, _ := jsonparser.GetInt(value, "id")
		displayName, _ := jsonparser.GetString(value, "displayName")
		plexUsername, _ := jsonparser.GetString(value, "plexUsername")
		email, _ := jsonparser.GetString(value, "email")

		if strings.ToLower(displayName) == needle ||
			strings.ToLower(plexUsername) == needle ||
			strings.ToLower(email) == needle {
			found = &User{
				ID:           int(id),
				Username:     displayName,
				PlexUsername: plexUsername,
				Email:        email,
			}
		}
	}, "results")
	if err != nil {
		return nil, fmt.Errorf("failed to parse users: %w", err)
	}
	return found, nil
}

func (c *Client) do(method, path string, payload []byte) ([]byte, int, error) {
	endpoint := c.baseURL + path
	if _, err := url.Parse(endpoint); err != nil {
		return nil, 0, fmt.Errorf("invalid overseerr URL: %w", err)
	}

	var reqBody *bytes.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, endpoint, reqBody)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.ErrorLog("Overseerr request failed: %v", err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
