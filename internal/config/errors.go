package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	ErrNoOwner          = errors.New("no owner specified: set owner in the config or use --owner")
	ErrInvalidPerPage   = errors.New("invalid per_page: must be between 1 and 100")
	ErrInvalidMaxPages  = errors.New("invalid max_pages: must be positive")
	ErrInvalidLimit     = errors.New("invalid limit: must be positive")
	ErrInvalidBatchSize = errors.New("invalid batch_size: must be positive")
	ErrInvalidPause     = errors.New("invalid batch_pause: must be non-negative")
)
