// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit/github_primary_ratelimit"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit/github_secondary_ratelimit"
	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-portfolio/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Default paging of the repository listing: 100 per page, at most 5 pages.
const (
	DefaultPerPage  = 100
	DefaultMaxPages = 5
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchRepositories(ctx context.Context, owner string) ([]domain.RepositorySummary, error)
	// FetchReadme never returns an error; ok is false when the README is unavailable.
	FetchReadme(ctx context.Context, owner, repo string) (readme string, ok bool)
}

// Options configures a GitHubGateway.
type Options struct {
	// Token is an optional static token. Empty means unauthenticated.
	Token string
	// BaseURL overrides the REST API root (GitHub Enterprise, tests).
	// The GraphQL endpoint is resolved as BaseURL + "graphql".
	BaseURL  string
	PerPage  int
	MaxPages int
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	perPage       int
	maxPages      int
	logger        *log.Logger
}

// viewerQuery resolves the identity behind the configured token.
type viewerQuery struct {
	Viewer struct {
		Login githubv4.String
		Name  githubv4.String
	}
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(opts Options, logger *log.Logger) (*GitHubGateway, error) {
	rateLimiter := newRateLimiter(logger)
	httpClient := &http.Client{Transport: rateLimiter}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient.Transport = &oauth2.Transport{
			Base:   rateLimiter,
			Source: ts,
		}
	}

	restClient := github.NewClient(httpClient)
	graphqlClient := githubv4.NewClient(httpClient)
	if opts.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", opts.BaseURL, err)
		}
		restClient.BaseURL = baseURL
		graphqlClient = githubv4.NewEnterpriseClient(baseURL.String()+"graphql", httpClient)
	}

	gw := &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		perPage:       opts.PerPage,
		maxPages:      opts.MaxPages,
		logger:        logger,
	}
	if gw.perPage <= 0 {
		gw.perPage = DefaultPerPage
	}
	if gw.maxPages <= 0 {
		gw.maxPages = DefaultMaxPages
	}
	return gw, nil
}

// newRateLimiter refuses requests while a primary rate limit is active and
// reports secondary limits without sleeping on them.
func newRateLimiter(logger *log.Logger) http.RoundTripper {
	return github_ratelimit.New(http.DefaultTransport,
		github_primary_ratelimit.WithLimitDetectedCallback(func(cb *github_primary_ratelimit.CallbackContext) {
			logger.Printf("  Primary rate limit reached (%s), resets at %v.\n", cb.Category, cb.ResetTime)
		}),
		github_primary_ratelimit.WithRequestPreventedCallback(func(cb *github_primary_ratelimit.CallbackContext) {
			logger.Printf("  Request to %s prevented by the active rate limit.\n", cb.Request.URL.Path)
		}),
		// A zero single-sleep limit; WithNoSleep in v2.0.2 drops its option.
		github_secondary_ratelimit.WithSingleSleepLimit(0, func(cb *github_secondary_ratelimit.CallbackContext) {
			logger.Printf("  Secondary rate limit reached, resets at %v.\n", cb.ResetTime)
		}),
	)
}

// FetchRepositories lists the owner's repositories, most recently updated first.
// Paging stops at the first short page or after maxPages requests; the page
// cap is never enforced by truncation.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, owner string) ([]domain.RepositorySummary, error) {
	g.logger.Printf("[1/2] Fetching repositories of %s using REST API...\n", owner)
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: g.perPage, Page: 1},
	}
	var repos []domain.RepositorySummary
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, owner, opts)
		if err != nil {
			return nil, listError(resp, err)
		}
		for _, repo := range page {
			repos = append(repos, toRepositorySummary(repo))
		}
		if len(page) < g.perPage || opts.Page >= g.maxPages {
			break
		}
		opts.Page++
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed fetching %d repositories.\n", len(repos))
	return repos, nil
}

// listError maps a failed listing call onto the domain error kinds.
// Requests refused by the rate limiter carry the limiter's 403 response.
func listError(resp *github.Response, err error) error {
	var status int
	var limitErr *github_primary_ratelimit.RateLimitReachedError
	switch {
	case errors.As(err, &limitErr) && limitErr.Response != nil:
		status = limitErr.Response.StatusCode
	case resp != nil && resp.Response != nil:
		status = resp.StatusCode
	default:
		return fmt.Errorf("failed to list repositories with REST API: %w", err)
	}
	switch {
	case status == http.StatusForbidden:
		return &domain.RateLimitedError{}
	case status >= 200 && status < 300:
		return fmt.Errorf("failed to decode repository listing: %w", err)
	default:
		return &domain.FetchFailedError{StatusCode: status}
	}
}

func toRepositorySummary(repo *github.Repository) domain.RepositorySummary {
	return domain.RepositorySummary{
		Name:        repo.GetName(),
		Description: repo.Description,
		Language:    repo.Language,
		HTMLURL:     repo.GetHTMLURL(),
	}
}

// FetchReadme returns the decoded README of a repository. Any failure,
// including transport errors, is logged and reported as ok == false.
func (g *GitHubGateway) FetchReadme(ctx context.Context, owner, repo string) (string, bool) {
	req, err := g.restClient.NewRequest(http.MethodGet, fmt.Sprintf("repos/%v/%v/readme", owner, repo), nil)
	if err != nil {
		g.logger.Printf("  README unavailable for %s: %v\n", repo, err)
		return "", false
	}
	var body bytes.Buffer
	resp, err := g.restClient.Do(ctx, req, &body)
	if err != nil {
		g.logger.Printf("  README unavailable for %s: %v\n", repo, err)
		return "", false
	}
	readme, ok := decodeReadme(resp.Header.Get("Content-Type"), body.Bytes())
	if !ok {
		g.logger.Printf("  README of %s has an unsupported payload.\n", repo)
	}
	return readme, ok
}

// decodeReadme accepts either the JSON contents object with base64 content
// or a plain-text body.
func decodeReadme(contentType string, body []byte) (string, bool) {
	var content github.RepositoryContent
	if err := json.Unmarshal(body, &content); err == nil &&
		content.GetEncoding() == "base64" && content.Content != nil && *content.Content != "" {
		// The API wraps base64 at 60 columns.
		stripped := strings.ReplaceAll(*content.Content, "\n", "")
		content.Content = &stripped
		decoded, err := content.GetContent()
		if err != nil {
			return "", false
		}
		return decoded, true
	}
	if strings.Contains(contentType, "text/plain") {
		return string(body), true
	}
	return "", false
}

// Viewer returns the login and display name of the token owner.
func (g *GitHubGateway) Viewer(ctx context.Context) (login, name string, err error) {
	var q viewerQuery
	if err := g.graphqlClient.Query(ctx, &q, nil); err != nil {
		return "", "", fmt.Errorf("failed to execute GraphQL viewer query: %w", err)
	}
	return string(q.Viewer.Login), string(q.Viewer.Name), nil
}
