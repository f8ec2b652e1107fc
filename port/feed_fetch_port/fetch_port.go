package feed_fetch_port

import (
	"antena/domain"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_port.go -destination=../../mocks/mock_feed_fetch_port.go -package=mocks

// FetchFeedPort tries candidate sources in order and returns the records of
// the first source that yields a parseable, non-empty feed. Exhaustion of
// every candidate is the only error condition.
type FetchFeedPort interface {
	FetchFirst(ctx context.Context, sources []domain.FeedSource) ([]*domain.FeedItem, error)
}
