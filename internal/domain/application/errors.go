package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrReviewerRequired    = errors.New("reviewer identity is required")
)
