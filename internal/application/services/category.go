package services

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"servija-api/internal/application/apperr"
	"servija-api/internal/application/ports"
	"servija-api/internal/domain/category"
	"servija-api/internal/domain/provider"
	"servija-api/internal/infrastructure/metrics"
)

const msgCategoryNotFound = "category not found"

type CategoryService struct {
	tx         ports.Transactor
	categories category.Repository
	providers  provider.Repository
	cache      ports.CategoryNameCache
	log        *zap.Logger
	mCounter   *prometheus.CounterVec
}

func NewCategoryService(
	tx ports.Transactor,
	categories category.Repository,
	providers provider.Repository,
	cache ports.CategoryNameCache,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.CategoryService {
	return &CategoryService{
		tx:         tx,
		categories: categories,
		providers:  providers,
		cache:      cache,
		log:        logger,
		mCounter:   mCounter,
	}
}

func (cs *CategoryService) FindCategories(ctx context.Context, active *bool) (category.Categories, error) {
	return cs.categories.FetchCategories(ctx, active)
}

// ResolveName returns the authoritative name of a category.
func (cs *CategoryService) ResolveName(ctx context.Context, id category.UUID) (string, error) {
	if name, ok := cs.cache.Get(ctx, id); ok {
		cs.mCounter.WithLabelValues(metrics.CategoryCacheHitTotal).Inc()
		return name, nil
	}
	cs.mCounter.WithLabelValues(metrics.CategoryCacheMissTotal).Inc()

	c, err := cs.categories.FetchCategoryByID(ctx, id)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", apperr.NotFound(msgCategoryNotFound)
	}
	cs.cache.Put(ctx, id, c.Name)

	return c.Name, nil
}

func (cs *CategoryService) CreateCategory(ctx context.Context, patch category.Patch) (*category.Category, error) {
	name := strings.TrimSpace(patch.Name.V)
	if !patch.Name.Present || patch.Name.Null || name == "" {
		return nil, apperr.Validation("category name is required")
	}

	icon := category.DefaultIcon
	if v, ok := patch.Icon.Get(); ok && strings.TrimSpace(v) != "" {
		icon = strings.TrimSpace(v)
	}
	active := true
	if v, ok := patch.Active.Get(); ok {
		active = v
	}

	return cs.categories.CreateCategory(ctx, category.Category{Name: name, Icon: &icon, Active: active})
}

// UpdateCategory applies the patch. A rename is copied onto every provider
// of the category in the same transaction.
func (cs *CategoryService) UpdateCategory(ctx context.Context, id category.UUID, patch category.Patch) (*category.Category, error) {
	if patch.IsEmpty() {
		return nil, apperr.Validation(msgNoValidField)
	}

	var (
		updated *category.Category
		renamed bool
	)
	err := cs.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := cs.categories.FetchCategoryByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound(msgCategoryNotFound)
		}

		next := *existing
		if patch.Name.Present {
			name := strings.TrimSpace(patch.Name.V)
			if patch.Name.Null || name == "" {
				return apperr.Validation("category name is required")
			}
			next.Name = name
		}
		setString(&next.Icon, patch.Icon)
		if patch.Active.Present {
			active, ok := patch.Active.Get()
			if !ok {
				return apperr.Validation(`invalid "ativo" value`)
			}
			next.Active = active
		}

		if updated, err = cs.categories.UpdateCategory(ctx, next); err != nil {
			return err
		}
		if updated == nil {
			return apperr.NotFound(msgCategoryNotFound)
		}

		if updated.Name != existing.Name {
			renamed = true
			n, err := cs.providers.RefreshCategoryName(ctx, id, updated.Name)
			if err != nil {
				return err
			}
			cs.log.Info("category renamed",
				zap.String("category_id", id.String()),
				zap.Int64("providers", n),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if renamed {
		cs.cache.Invalidate(ctx, id)
	}

	return updated, nil
}

func (cs *CategoryService) DeleteCategory(ctx context.Context, id category.UUID) error {
	err := cs.tx.WithinTx(ctx, func(ctx context.Context) error {
		n, err := cs.providers.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.Conflict("category is in use by providers", nil)
		}

		ok, err := cs.categories.DeleteCategory(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound(msgCategoryNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cs.cache.Invalidate(ctx, id)
	return nil
}
