package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id UUID) (*User, error)
	// FetchUserByIDForUpdate locks the row until the surrounding transaction ends.
	FetchUserByIDForUpdate(ctx context.Context, id UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	EmailTakenByOther(ctx context.Context, email string, id UUID) (bool, error)
	FetchUsers(ctx context.Context) (Users, error)
	CreateUser(ctx context.Context, u User) (*User, error)
	UpdateUser(ctx context.Context, u User) (*User, error)
	CountAdmins(ctx context.Context) (int, error)
	DeleteUser(ctx context.Context, id UUID) (bool, error)
}
