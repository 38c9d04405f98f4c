// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying client and its authentication.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/aokumura/commitlens/internal/domain"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// Sentinel errors for the setup-phase calls. They are the user-visible
// error taxonomy; callers match them with errors.Is.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid access token")
	ErrRateLimited  = errors.New("rate limited by GitHub")
)

// ErrNoCommits signals that a repository has no listable commits
// (GitHub answers 404 for unknown and 409 for empty repositories).
// It ends pagination for that repository and is not a failure.
var ErrNoCommits = errors.New("no commits")

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// FetchUser loads the profile for a username. Returns
	// ErrUserNotFound, ErrInvalidToken or ErrRateLimited for the
	// corresponding API responses.
	FetchUser(ctx context.Context, username string) (*domain.User, error)
	// FetchRepositories lists up to 100 of the user's repositories.
	FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error)
	// ListCommits fetches one page of authored timestamps for commits in
	// [since, until]. Returns ErrNoCommits when the repository has
	// nothing to list.
	ListCommits(ctx context.Context, owner, repo string, since, until time.Time, page, perPage int) ([]time.Time, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway builds a gateway whose HTTP client carries the token
// as a bearer header and waits out GitHub's secondary rate limits.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

func (g *GitHubGateway) FetchUser(ctx context.Context, username string) (*domain.User, error) {
	g.logger.Printf("Fetching profile for %s...", username)
	user, resp, err := g.client.Users.Get(ctx, username)
	if err != nil {
		return nil, mapUserError(resp, err)
	}
	return &domain.User{
		Login:     user.GetLogin(),
		CreatedAt: user.GetCreatedAt().Time,
	}, nil
}

// mapUserError translates a failed profile request into the sentinel
// taxonomy shown to the user.
func mapUserError(resp *github.Response, err error) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return ErrRateLimited
	}
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrUserNotFound
		case http.StatusUnauthorized:
			return ErrInvalidToken
		case http.StatusForbidden:
			return ErrRateLimited
		}
	}
	return fmt.Errorf("failed to fetch user: %w", err)
}

func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Printf("Fetching repositories for %s...", username)
	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	repos, _, err := g.client.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}
	result := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, domain.Repository{
			ID:      r.GetID(),
			Name:    r.GetName(),
			HTMLURL: r.GetHTMLURL(),
		})
	}
	return result, nil
}

func (g *GitHubGateway) ListCommits(ctx context.Context, owner, repo string, since, until time.Time, page, perPage int) ([]time.Time, error) {
	opts := &github.CommitsListOptions{
		Since:       since,
		Until:       until,
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}
	commits, resp, err := g.client.Repositories.ListCommits(ctx, owner, repo, opts)
	if err != nil {
		// 404: repository gone or inaccessible. 409: repository is empty.
		if resp != nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusConflict) {
			return nil, ErrNoCommits
		}
		return nil, fmt.Errorf("failed to list commits for %s/%s page %d: %w", owner, repo, page, err)
	}
	authored := make([]time.Time, 0, len(commits))
	for _, c := range commits {
		authored = append(authored, c.GetCommit().GetAuthor().GetDate().Time)
	}
	return authored, nil
}
