// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"
	"time"

	"github.com/naka-gawa/github-portfolio/internal/domain"
	"github.com/naka-gawa/github-portfolio/internal/gateway"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLimit is the workload ceiling: only the first repositories of the listing are loaded.
	DefaultLimit = 55
	// DefaultBatchSize is the number of README fetches in flight at once.
	DefaultBatchSize = 5
	// DefaultBatchPause separates consecutive batches so the API is not hit in bursts.
	DefaultBatchPause = 150 * time.Millisecond
)

// Loader is the use case for loading the portfolio's project cards.
// It orchestrates the listing, the README fetches and the card derivation.
type Loader struct {
	fetcher   gateway.Fetcher
	logger    *log.Logger
	limit     int
	batchSize int
	pause     time.Duration
	progress  func(done, total int)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLimit caps how many repositories of the listing are turned into cards.
func WithLimit(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.limit = n
		}
	}
}

// WithBatchSize sets how many repositories are processed concurrently.
func WithBatchSize(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.batchSize = n
		}
	}
}

// WithBatchPause sets the pause between two batches.
func WithBatchPause(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d >= 0 {
			l.pause = d
		}
	}
}

// WithProgress registers a callback invoked after every batch with the
// number of cards built so far and the total to build.
func WithProgress(fn func(done, total int)) LoaderOption {
	return func(l *Loader) {
		l.progress = fn
	}
}

// NewLoader creates a new Loader instance.
func NewLoader(fetcher gateway.Fetcher, logger *log.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher:   fetcher,
		logger:    logger,
		limit:     DefaultLimit,
		batchSize: DefaultBatchSize,
		pause:     DefaultBatchPause,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds the project cards of owner in listing order.
// A listing failure aborts the whole load and no cards are returned.
// README failures only degrade the affected card's description.
func (l *Loader) Load(ctx context.Context, owner string) ([]domain.ProjectCard, error) {
	l.logger.Println("Usecase: Starting project loading...")

	repos, err := l.fetcher.FetchRepositories(ctx, owner)
	if err != nil {
		l.logger.Printf("Usecase: Listing failed: %v\n", err)
		return nil, err
	}
	if len(repos) > l.limit {
		repos = repos[:l.limit]
	}

	l.logger.Printf("[2/2] Fetching READMEs of %d repositories in batches of %d...\n", len(repos), l.batchSize)
	projects := make([]domain.ProjectCard, 0, len(repos))
	for start := 0; start < len(repos); start += l.batchSize {
		if start > 0 {
			if err := l.wait(ctx); err != nil {
				return nil, err
			}
		}
		end := min(start+l.batchSize, len(repos))
		batch, err := l.loadBatch(ctx, owner, repos[start:end])
		if err != nil {
			return nil, err
		}
		projects = append(projects, batch...)
		l.logger.Printf("  Loaded %d/%d projects\n", len(projects), len(repos))
		if l.progress != nil {
			l.progress(len(projects), len(repos))
		}
	}

	l.logger.Println("Usecase: Project loading complete.")
	return projects, nil
}

// loadBatch fetches the READMEs of one batch concurrently. Each goroutine
// writes only its own slot, so the batch keeps its input order whatever
// the completion order is.
func (l *Loader) loadBatch(ctx context.Context, owner string, batch []domain.RepositorySummary) ([]domain.ProjectCard, error) {
	cards := make([]domain.ProjectCard, len(batch))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, repo := range batch {
		eg.Go(func() error {
			readme, _ := l.fetcher.FetchReadme(egCtx, owner, repo.Name)
			cards[i] = domain.NewProjectCard(repo, readme)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

func (l *Loader) wait(ctx context.Context) error {
	if l.pause <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(l.pause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
