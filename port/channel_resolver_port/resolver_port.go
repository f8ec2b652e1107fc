package channel_resolver_port

import (
	"antena/domain"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=resolver_port.go -destination=../../mocks/mock_channel_resolver_port.go -package=mocks

// ResolveChannelPort turns a user-supplied channel reference (bare id, URL,
// or @handle) into a resolved ChannelRef. Unresolvable references yield
// errors.ErrChannelNotFound so callers can answer with an empty result.
type ResolveChannelPort interface {
	Resolve(ctx context.Context, query string) (*domain.ChannelRef, error)
}
