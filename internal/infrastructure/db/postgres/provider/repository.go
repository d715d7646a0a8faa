package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) provider.Repository {
	return &Repository{db: db}
}

func scanProvider(row pgx.Row) (*Provider, error) {
	p := new(Provider)
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.UserEmail,
		&p.Nome,
		&p.CPF,
		&p.BirthDate,
		&p.Telefone,
		&p.NomeEmpresa,
		&p.CNPJ,
		&p.TipoEmpresa,
		&p.CategoriaID,
		&p.CategoriaNome,
		&p.Descricao,
		&p.Servicos,
		&p.ValorHora,
		&p.PrecoBase,
		&p.TempoMedioAtendimento,
		&p.DiasDisponiveis,
		&p.HorariosDisponiveis,
		&p.Rua,
		&p.Numero,
		&p.Complemento,
		&p.Bairro,
		&p.Cidade,
		&p.Estado,
		&p.CEP,
		&p.RaioAtendimento,
		&p.Foto,
		&p.FotoFacial,
		&p.FotoDocumento,
		&p.LogoEmpresa,
		&p.FotosTrabalhos,
		&p.Avaliacao,
		&p.Destaque,
		&p.StatusAprovacao,
		&p.Ativo,
		&p.Latitude,
		&p.Longitude,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*provider.Provider, error) {
	m, err := scanProvider(postgres.Conn(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(m)
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (provider.Providers, error) {
	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch providers: %w", err)
	}
	defer rows.Close()

	var ps Providers
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ps)
}

func (r *Repository) FetchOwnershipCandidates(ctx context.Context, ownerID provider.UUID, email string) (provider.Providers, error) {
	return r.fetchMany(ctx, SelectOwnershipCandidates, ownerID, user.NormalizeEmail(email))
}

func (r *Repository) FetchProviderByID(ctx context.Context, id provider.UUID) (*provider.Provider, error) {
	return r.fetchOne(ctx, SelectProviderByID, id)
}

func (r *Repository) FetchProviders(ctx context.Context, f provider.Filter) (provider.Providers, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.CategoryID != nil {
		add("categoria_id = $%d", *f.CategoryID)
	}
	if f.UserID != nil {
		add("user_id = $%d", *f.UserID)
	}
	if f.UserEmail != nil {
		add("LOWER(TRIM(user_email)) = $%d", user.NormalizeEmail(*f.UserEmail))
	}
	if f.Active != nil {
		add("ativo = $%d", *f.Active)
	}
	if f.Featured != nil {
		add("destaque = $%d", *f.Featured)
	}

	query := SelectProviders
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY destaque DESC, created_date DESC"

	return r.fetchMany(ctx, query, args...)
}

func (r *Repository) UpdateOwnership(ctx context.Context, id, ownerID provider.UUID, email string) error {
	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, UpdateOwnership, ownerID, user.NormalizeEmail(email), id)
	if err != nil {
		if postgres.IsPgUniqueViolation(err, postgres.ConstraintProviderOwner) {
			return provider.ErrOwnerAlreadyHasProfile
		}
		return fmt.Errorf("update provider ownership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update provider ownership: %s: %w", id, pgx.ErrNoRows)
	}

	return nil
}

func (r *Repository) CreateProvider(ctx context.Context, req provider.Provider) (*provider.Provider, error) {
	args, err := writeArgs(req)
	if err != nil {
		return nil, err
	}

	m, err := scanProvider(postgres.Conn(ctx, r.db).QueryRow(ctx, InsertProvider, args...))
	if err != nil {
		if postgres.IsPgUniqueViolation(err, postgres.ConstraintProviderOwner) {
			return nil, provider.ErrOwnerAlreadyHasProfile
		}
		return nil, fmt.Errorf("insert provider: %w", err)
	}

	return fromDBModel(m)
}

func (r *Repository) SaveProvider(ctx context.Context, req provider.Provider) (*provider.Provider, error) {
	args, err := writeArgs(req)
	if err != nil {
		return nil, err
	}
	args = append(args, req.ID)

	m, err := scanProvider(postgres.Conn(ctx, r.db).QueryRow(ctx, UpdateProviderByID, args...))
	if err != nil {
		if postgres.IsPgUniqueViolation(err, postgres.ConstraintProviderOwner) {
			return nil, provider.ErrOwnerAlreadyHasProfile
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update provider: %w", err)
	}

	return fromDBModel(m)
}

func (r *Repository) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) ReassignOwnerEmail(ctx context.Context, ownerID provider.UUID, oldEmail, newEmail string) (int64, error) {
	return r.exec(ctx, "reassign provider email", ReassignOwnerEmail,
		user.NormalizeEmail(newEmail), ownerID, user.NormalizeEmail(oldEmail))
}

func (r *Repository) SetActiveByOwner(ctx context.Context, ownerID provider.UUID, email string, active bool) (int64, error) {
	return r.exec(ctx, "set provider active", SetActiveByOwner, active, ownerID, user.NormalizeEmail(email))
}

func (r *Repository) RefreshCategoryName(ctx context.Context, categoryID provider.UUID, name string) (int64, error) {
	return r.exec(ctx, "refresh category name", RefreshCategoryName, name, categoryID)
}

func (r *Repository) CountByCategory(ctx context.Context, categoryID provider.UUID) (int, error) {
	var n int
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, CountByCategory, categoryID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count providers by category: %w", err)
	}

	return n, nil
}

func (r *Repository) DeleteByOwner(ctx context.Context, ownerID provider.UUID) (int64, error) {
	return r.exec(ctx, "delete provider", DeleteByOwner, ownerID)
}
