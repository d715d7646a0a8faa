package ports

import (
	"context"

	"servija-api/internal/domain/category"
)

type CategoryNameResolver interface {
	ResolveName(ctx context.Context, id category.UUID) (string, error)
}

type CategoryService interface {
	CategoryNameResolver
	FindCategories(ctx context.Context, active *bool) (category.Categories, error)
	CreateCategory(ctx context.Context, patch category.Patch) (*category.Category, error)
	UpdateCategory(ctx context.Context, id category.UUID, patch category.Patch) (*category.Category, error)
	DeleteCategory(ctx context.Context, id category.UUID) error
}
