package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"servija-api/internal/domain/category"
	"servija-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) category.Repository {
	return &Repository{db: db}
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	m := new(Category)
	if err := row.Scan(&m.ID, &m.Nome, &m.Icone, &m.Ativo, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}

	return &category.Category{
		ID:        m.ID,
		Name:      m.Nome,
		Icon:      m.Icone,
		Active:    m.Ativo,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r *Repository) FetchCategoryByID(ctx context.Context, id category.UUID) (*category.Category, error) {
	c, err := scanCategory(postgres.Conn(ctx, r.db).QueryRow(ctx, SelectCategoryByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch category: %w", err)
	}

	return c, nil
}

func (r *Repository) FetchCategories(ctx context.Context, active *bool) (category.Categories, error) {
	rows, err := postgres.Conn(ctx, r.db).Query(ctx, SelectCategories, active)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	defer rows.Close()

	var cs category.Categories
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cs = append(cs, c)
	}

	return cs, rows.Err()
}

func (r *Repository) CreateCategory(ctx context.Context, c category.Category) (*category.Category, error) {
	out, err := scanCategory(postgres.Conn(ctx, r.db).QueryRow(ctx, InsertCategory, c.Name, c.Icon, c.Active))
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	return out, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, c category.Category) (*category.Category, error) {
	out, err := scanCategory(postgres.Conn(ctx, r.db).QueryRow(ctx, UpdateCategoryByID, c.Name, c.Icon, c.Active, c.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	return out, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id category.UUID) (bool, error) {
	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, DeleteCategoryByID, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
