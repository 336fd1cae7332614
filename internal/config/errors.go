package config

import "errors"

var (
	ErrInvalidMaxTenders = errors.New("invalid max tenders: must be non-negative")
	ErrInvalidEngine     = errors.New("invalid browser engine: must be rod, chromedp or static")
	ErrInvalidTimeout    = errors.New("invalid timeout: must be positive")
	ErrInvalidBaseURL    = errors.New("invalid base url: must be an absolute http(s) url")
	ErrInvalidBudget     = errors.New("invalid retry/restart budget: must be positive")
	ErrInvalidPageDelay  = errors.New("invalid page delay: min must not exceed max")
)
