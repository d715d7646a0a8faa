package provider

import "context"

type Repository interface {
	// FetchOwnershipCandidates returns rows whose user_id equals ownerID or
	// whose normalised user_email equals email, oldest first.
	FetchOwnershipCandidates(ctx context.Context, ownerID UUID, email string) (Providers, error)
	FetchProviderByID(ctx context.Context, id UUID) (*Provider, error)
	FetchProviders(ctx context.Context, f Filter) (Providers, error)
	UpdateOwnership(ctx context.Context, id, ownerID UUID, email string) error
	CreateProvider(ctx context.Context, p Provider) (*Provider, error)
	SaveProvider(ctx context.Context, p Provider) (*Provider, error)
	ReassignOwnerEmail(ctx context.Context, ownerID UUID, oldEmail, newEmail string) (int64, error)
	SetActiveByOwner(ctx context.Context, ownerID UUID, email string, active bool) (int64, error)
	RefreshCategoryName(ctx context.Context, categoryID UUID, name string) (int64, error)
	CountByCategory(ctx context.Context, categoryID UUID) (int, error)
	DeleteByOwner(ctx context.Context, ownerID UUID) (int64, error)
}
