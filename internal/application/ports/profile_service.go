package ports

import (
	"context"

	"servija-api/internal/domain/profile"
	"servija-api/internal/domain/user"
)

type ProfileService interface {
	GetProviderProfile(ctx context.Context, userID user.UUID) (*profile.Profile, error)
	MergeProfile(ctx context.Context, userID user.UUID, patch profile.Patch) (*profile.Profile, error)
}
