package ports

import (
	"context"

	"github.com/google/uuid"
)

type CategoryNameCache interface {
	Get(ctx context.Context, id uuid.UUID) (string, bool)
	Put(ctx context.Context, id uuid.UUID, name string)
	Invalidate(ctx context.Context, id uuid.UUID)
}
