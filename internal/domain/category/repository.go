package category

import "context"

type Repository interface {
	FetchCategoryByID(ctx context.Context, id UUID) (*Category, error)
	FetchCategories(ctx context.Context, active *bool) (Categories, error)
	CreateCategory(ctx context.Context, c Category) (*Category, error)
	UpdateCategory(ctx context.Context, c Category) (*Category, error)
	DeleteCategory(ctx context.Context, id UUID) (bool, error)
}
