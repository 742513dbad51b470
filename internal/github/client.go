package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

const acceptHeader = "application/vnd.github.v3+json"

// RawUser is the GitHub API user shape, untouched by normalization.
type RawUser struct {
	Login           string `json:"login"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	AvatarURL       string `json:"avatar_url"`
	Location        string `json:"location"`
	Blog            string `json:"blog"`
	Email           string `json:"email"`
	TwitterUsername string `json:"twitter_username"`
	PublicRepos     int    `json:"public_repos"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	CreatedAt       string `json:"created_at"`
}

// RawRepo is the GitHub API repository shape, untouched by normalization.
type RawRepo struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	HTMLURL         string   `json:"html_url"`
	Homepage        string   `json:"homepage"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Language        string   `json:"language"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
	Topics          []string `json:"topics"`
	Fork            bool     `json:"fork"`
}

// Client fetches user and repository data from the GitHub REST API.
// Concurrent requests for the same URL are collapsed into a single call;
// the dedup entry is cleared once that call settles, so later requests
// issue fresh network calls. The client itself never caches.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	group      singleflight.Group
}

// NewClient creates a GitHub client. An empty baseURL selects the public API;
// an empty token sends unauthenticated requests.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchUser fetches the raw profile for username.
func (c *Client) FetchUser(ctx context.Context, username string) (*RawUser, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username)), username)
	if err != nil {
		return nil, err
	}

	var user RawUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user %q: %w", username, err)
	}
	return &user, nil
}

// FetchRepos fetches up to perPage public repositories for username,
// most recently updated first. perPage defaults to 100 (the API maximum).
func (c *Client) FetchRepos(ctx context.Context, username string) ([]RawRepo, error) {
	return c.FetchReposPage(ctx, username, 100)
}

// FetchReposPage is FetchRepos with an explicit page size.
func (c *Client) FetchReposPage(ctx context.Context, username string, perPage int) ([]RawRepo, error) {
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", c.baseURL, url.PathEscape(username), perPage)
	body, err := c.get(ctx, endpoint, username)
	if err != nil {
		return nil, err
	}

	var repos []RawRepo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("unmarshal repos for %q: %w", username, err)
	}
	return repos, nil
}

// get issues a deduplicated GET for the given URL and maps error responses
// onto the typed taxonomy.
func (c *Client) get(ctx context.Context, requestURL, username string) ([]byte, error) {
	v, err, _ := c.group.Do(requestURL, func() (any, error) {
		return c.doGet(ctx, requestURL, username)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) doGet(ctx context.Context, requestURL, username string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &NetworkError{Err: err}
		}
		return body, nil
	}

	switch resp.StatusCode {
	case http.StatusForbidden:
		return nil, &RateLimitError{ResetAt: parseRateLimitReset(resp.Header)}
	case http.StatusNotFound:
		return nil, &NotFoundError{Username: username}
	default:
		return nil, &APIError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}
}

// parseRateLimitReset reads the X-RateLimit-Reset header (unix seconds).
// A missing or malformed header yields the zero time.
func parseRateLimitReset(h http.Header) time.Time {
	raw := h.Get("X-RateLimit-Reset")
	if raw == "" {
		return time.Time{}
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}
