// Package service implements the portfolio use cases on top of the GitHub
// client, the cache, and the merge logic.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"devcanvas/internal/cache"
	"devcanvas/internal/github"
	"devcanvas/internal/normalize"
	"devcanvas/internal/portfolio"
	"devcanvas/internal/resume"
)

// GitHubClient is the fetch surface the service needs.
type GitHubClient interface {
	FetchUser(ctx context.Context, username string) (*github.RawUser, error)
	FetchRepos(ctx context.Context, username string) ([]github.RawRepo, error)
}

// GitHubView is the normalized, derived view of one GitHub account.
type GitHubView struct {
	User     normalize.User    `json:"user"`
	Repos    []normalize.Repo  `json:"repos"`
	TopRepos []normalize.Repo  `json:"topRepos"`
	Skills   []normalize.Skill `json:"skills"`
}

// Service executes portfolio operations.
type Service struct {
	github GitHubClient
	cache  cache.Store
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a Service. A zero ttl falls back to the cache default.
func New(gh GitHubClient, store cache.Store, ttl time.Duration, logger *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{github: gh, cache: store, ttl: ttl, logger: logger}
}

// GitHubData returns the normalized view for username, consulting the cache
// first and fetching user and repos concurrently on a miss. Ranking and skill
// derivation always run on the returned repos, cached or fresh.
func (s *Service) GitHubData(ctx context.Context, username string) (*GitHubView, error) {
	user, repos, ok := s.fromCache(ctx, username)
	if !ok {
		var err error
		user, repos, err = s.fetch(ctx, username)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, cache.Key(username, "user"), user, s.ttl)
		s.cache.Set(ctx, cache.Key(username, "repos"), repos, s.ttl)
	}

	return &GitHubView{
		User:     user,
		Repos:    repos,
		TopRepos: normalize.RankRepos(repos, normalize.DefaultTopRepoLimit),
		Skills:   normalize.DeriveSkills(repos),
	}, nil
}

// BuildPortfolio merges GitHub data with an optional resume record and
// applies any share-link overrides on top.
func (s *Service) BuildPortfolio(ctx context.Context, username string, res *resume.ResumeData, templateID string, ov *portfolio.Overrides) (*portfolio.PortfolioData, error) {
	view, err := s.GitHubData(ctx, username)
	if err != nil {
		return nil, err
	}
	data := portfolio.Merge(view.User, res, view.TopRepos, view.Skills, templateID)
	data = portfolio.ApplyOverrides(data, ov)
	return &data, nil
}

// Refresh drops the cached entries for username and refetches.
func (s *Service) Refresh(ctx context.Context, username string) (*GitHubView, error) {
	s.cache.Delete(ctx, cache.Key(username, "user"))
	s.cache.Delete(ctx, cache.Key(username, "repos"))
	return s.GitHubData(ctx, username)
}

// fromCache returns both cached halves, treating a miss on either as a miss
// on the pair so a view is never assembled from mixed generations.
func (s *Service) fromCache(ctx context.Context, username string) (normalize.User, []normalize.Repo, bool) {
	rawUser, ok := s.cache.Get(ctx, cache.Key(username, "user"))
	if !ok {
		return normalize.User{}, nil, false
	}
	rawRepos, ok := s.cache.Get(ctx, cache.Key(username, "repos"))
	if !ok {
		return normalize.User{}, nil, false
	}

	var user normalize.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return normalize.User{}, nil, false
	}
	var repos []normalize.Repo
	if err := json.Unmarshal(rawRepos, &repos); err != nil {
		return normalize.User{}, nil, false
	}
	return user, repos, true
}

// fetch retrieves user and repos concurrently, failing on the first error.
func (s *Service) fetch(ctx context.Context, username string) (normalize.User, []normalize.Repo, error) {
	var (
		rawUser  *github.RawUser
		rawRepos []github.RawRepo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.github.FetchUser(gctx, username)
		if err != nil {
			return err
		}
		rawUser = u
		return nil
	})
	g.Go(func() error {
		r, err := s.github.FetchRepos(gctx, username)
		if err != nil {
			return err
		}
		rawRepos = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return normalize.User{}, nil, err
	}

	s.logger.Debug("fetched github data", "username", username, "repos", len(rawRepos))
	return normalize.NormalizeUser(*rawUser), normalize.NormalizeRepos(rawRepos), nil
}
