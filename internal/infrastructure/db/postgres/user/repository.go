package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.Avatar,
		&u.Tipo,
		&u.Telefone,
		&u.CPF,
		&u.CNPJ,
		&u.NomeEmpresa,
		&u.Ativo,
		&u.BirthDate,
		&u.Rua,
		&u.Numero,
		&u.Complemento,
		&u.Bairro,
		&u.Cidade,
		&u.Estado,
		&u.CEP,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*user.User, error) {
	u, err := scanUser(postgres.Conn(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := postgres.Conn(ctx, r.db).Query(ctx, SelectUsers)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, id)
}

func (r *Repository) FetchUserByIDForUpdate(ctx context.Context, id user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByIDForUpdate, id)
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, user.NormalizeEmail(email))
}

func (r *Repository) EmailTakenByOther(ctx context.Context, email string, id user.UUID) (bool, error) {
	var taken bool
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, SelectEmailTakenByOther, user.NormalizeEmail(email), id).Scan(&taken); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}

	return taken, nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	args, err := writeArgs(req)
	if err != nil {
		return nil, err
	}
	args = append(args, req.PasswordHash)

	u, err := scanUser(postgres.Conn(ctx, r.db).QueryRow(ctx, InsertUser, args...))
	if err != nil {
		if postgres.IsPgUniqueViolation(err, postgres.ConstraintUsersEmail) {
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	args, err := writeArgs(req)
	if err != nil {
		return nil, err
	}
	args = append(args, req.ID)

	u, err := scanUser(postgres.Conn(ctx, r.db).QueryRow(ctx, UpdateUserByID, args...))
	if err != nil {
		if postgres.IsPgUniqueViolation(err, postgres.ConstraintUsersEmail) {
			return nil, user.ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) CountAdmins(ctx context.Context) (int, error) {
	var n int
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, CountAdmins).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}

	return n, nil
}

func (r *Repository) DeleteUser(ctx context.Context, id user.UUID) (bool, error) {
	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, DeleteUserByID, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
