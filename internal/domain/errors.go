package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed listing errors.
var (
	ErrRateLimited = errors.New("rate limited")
	ErrFetchFailed = errors.New("fetch failed")
)

// RateLimitedError is returned when the repository listing answers HTTP 403.
type RateLimitedError struct{}

func (e *RateLimitedError) Error() string {
	return "Limite de requisições da API GitHub atingido. Considere adicionar um token válido (GITHUB_TOKEN)."
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

// FetchFailedError is returned for any other non-success status of the repository listing.
type FetchFailedError struct {
	StatusCode int
}

func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("Erro HTTP %d ao buscar os repositórios do GitHub.", e.StatusCode)
}

func (e *FetchFailedError) Is(target error) bool {
	return target == ErrFetchFailed
}
