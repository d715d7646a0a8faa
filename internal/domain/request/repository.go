package request

import "context"

type Repository interface {
	FetchRequestByID(ctx context.Context, id UUID) (*Request, error)
	FetchRequests(ctx context.Context, f Filter) (Requests, error)
	CreateRequest(ctx context.Context, r Request) (*Request, error)
	UpdateRequest(ctx context.Context, r Request) (*Request, error)

	// Snapshot maintenance, see the cascade propagator.
	ReplaceClientEmail(ctx context.Context, clientID UUID, oldEmail, newEmail string) (int64, error)
	ReplaceProviderEmail(ctx context.Context, oldEmail, newEmail string) (int64, error)
	ReplaceClientName(ctx context.Context, clientID UUID, email, name string) (int64, error)
	ReplaceProviderName(ctx context.Context, email, name string) (int64, error)
}
