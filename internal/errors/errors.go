package gerr

import "errors"

var (
	ErrPublisherRequired = errors.New("publisher id is required")
	ErrReportFailed      = errors.New("failed to build dashboard report")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
)
