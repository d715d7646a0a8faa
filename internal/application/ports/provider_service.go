package ports

import (
	"context"

	"servija-api/internal/domain/provider"
)

type ProviderService interface {
	FindProviders(ctx context.Context, f provider.Filter) (provider.Providers, error)
	FindProviderByID(ctx context.Context, id provider.UUID) (*provider.Provider, error)
	ModerateProvider(ctx context.Context, id provider.UUID, m provider.Moderation) (*provider.Provider, error)
}
