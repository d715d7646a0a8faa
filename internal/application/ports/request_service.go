package ports

import (
	"context"

	"servija-api/internal/domain/request"
	"servija-api/internal/domain/user"
)

type RequestService interface {
	FindRequests(ctx context.Context, actor *user.User, f request.Filter) (request.Requests, error)
	FindRequestByID(ctx context.Context, actor *user.User, id request.UUID) (*request.Request, error)
	CreateRequest(ctx context.Context, actor *user.User, d request.Draft) (*request.Request, error)
	UpdateRequest(ctx context.Context, actor *user.User, id request.UUID, patch request.Patch) (*request.Request, error)
}
