package ports

import (
	"context"

	"servija-api/internal/domain/user"
)

type UserService interface {
	FindUsers(ctx context.Context) (user.Users, error)
	AdminUpdateUser(ctx context.Context, actor *user.User, id user.UUID, patch user.AdminPatch) (*user.User, error)
	DeleteUser(ctx context.Context, actor *user.User, id user.UUID) error
}
