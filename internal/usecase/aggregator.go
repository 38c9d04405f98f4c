// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aokumura/commitlens/internal/domain"
	"github.com/aokumura/commitlens/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// Documented processing ceilings. Input beyond them is silently
// skipped, not an error.
const (
	// RepositoryCap is the maximum number of repositories queried per run.
	RepositoryCap = 25
	// PageCap is the maximum number of commit pages fetched per repository.
	PageCap = 5
	// PageSize is the number of commits requested per page.
	PageSize = 100
)

// Aggregator folds a user's commits into monthly buckets for one year.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	now     func() time.Time
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Lookup is the setup phase of a run: it fetches the user profile and
// the repository list concurrently. Any failure here aborts the whole
// run and carries the user-visible error taxonomy from the gateway.
func (a *Aggregator) Lookup(ctx context.Context, username string) (*domain.User, []domain.Repository, error) {
	a.logger.Printf("Usecase: Looking up %s...", username)

	var user *domain.User
	var repos []domain.Repository

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		user, err = a.fetcher.FetchUser(egCtx, username)
		return err
	})
	eg.Go(func() error {
		var err error
		repos, err = a.fetcher.FetchRepositories(egCtx, username)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return user, repos, nil
}

// Aggregate counts the user's commits for the target year into twelve
// monthly buckets. At most RepositoryCap repositories are queried, at
// most PageCap pages of PageSize commits each per repository. A failing
// repository never fails the run: pagination for it stops, a warning is
// logged, and the remaining repositories are still processed. The
// result is always a full 12-bucket sequence.
//
// Requests are issued strictly one at a time, across repositories and
// across pages.
func (a *Aggregator) Aggregate(ctx context.Context, username string, year int, repos []domain.Repository) (*domain.YearActivity, error) {
	activity := domain.NewYearActivity(year)
	if len(repos) == 0 {
		return activity, nil
	}

	since, until := domain.CommitWindow(year, a.now())

	if len(repos) > RepositoryCap {
		repos = repos[:RepositoryCap]
	}

	for _, repo := range repos {
		if err := a.aggregateRepo(ctx, activity, username, repo.Name, since, until); err != nil {
			if ctx.Err() != nil {
				return activity, ctx.Err()
			}
			a.logger.Printf("Warning: skipping rest of %s: %v", repo.Name, err)
		}
	}

	a.logger.Printf("Usecase: Aggregated %d commits for %s in %d.", activity.Total(), username, year)
	return activity, nil
}

// aggregateRepo pages through one repository's commits until a short
// page or the page cap. An ErrNoCommits answer is normal end-of-data;
// any other error is returned for the caller to log.
func (a *Aggregator) aggregateRepo(ctx context.Context, activity *domain.YearActivity, username, repo string, since, until time.Time) error {
	for page := 1; page <= PageCap; page++ {
		authored, err := a.fetcher.ListCommits(ctx, username, repo, since, until, page, PageSize)
		if err != nil {
			if errors.Is(err, gateway.ErrNoCommits) {
				return nil
			}
			return err
		}
		for _, at := range authored {
			activity.Add(at)
		}
		if len(authored) < PageSize {
			return nil
		}
	}
	return nil
}
