package ports

import (
	"context"

	"servija-api/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, in user.Registration) (*user.Session, error)
	Login(ctx context.Context, email, password string) (*user.Session, error)
	// CurrentUser returns the signed-in Identity, or an Unauthorized error
	// when it vanished or may no longer sign in.
	CurrentUser(ctx context.Context, id user.UUID) (*user.User, error)
	UpdateMe(ctx context.Context, id user.UUID, patch user.Patch) (*user.User, error)
}
