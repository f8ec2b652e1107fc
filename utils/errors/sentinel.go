package errors

import (
	"errors"
)

// Sentinel errors shared across layers. These are base errors meant to be
// matched with errors.Is().
var (
	// ErrNoFeedSource means every candidate source, including the search
	// aggregator fallback, failed to yield a parseable feed.
	ErrNoFeedSource = errors.New("no feed source available")

	// ErrChannelNotFound means a channel query could not be resolved to a
	// channel id or legacy user reference.
	ErrChannelNotFound = errors.New("channel not found")

	ErrInvalidInput    = errors.New("invalid input")
	ErrUpstreamFailure = errors.New("upstream request failed")
)

// IsNoFeedSource checks whether an error represents total source exhaustion.
func IsNoFeedSource(err error) bool {
	return errors.Is(err, ErrNoFeedSource)
}

// IsChannelNotFound checks whether an error represents an unresolvable
// channel reference.
func IsChannelNotFound(err error) bool {
	return errors.Is(err, ErrChannelNotFound)
}

// IsValidationError checks whether an error represents invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
