package request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"servija-api/internal/domain/request"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) request.Repository {
	return &Repository{db: db}
}

func scanRequest(row pgx.Row) (*request.Request, error) {
	m := new(Request)
	err := row.Scan(
		&m.ID,
		&m.ClienteID,
		&m.ClienteEmail,
		&m.ClienteNome,
		&m.PrestadorID,
		&m.PrestadorEmail,
		&m.PrestadorNome,
		&m.CategoriaNome,
		&m.Descricao,
		&m.PrecoProposto,
		&m.PrecoAcordado,
		&m.Status,
		&m.RespostaPrestador,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &request.Request{
		ID:             m.ID,
		ClientID:       m.ClienteID,
		ClientEmail:    m.ClienteEmail,
		ClientName:     m.ClienteNome,
		ProviderID:     m.PrestadorID,
		ProviderEmail:  m.PrestadorEmail,
		ProviderName:   m.PrestadorNome,
		CategoryName:   m.CategoriaNome,
		Description:    m.Descricao,
		ProposedPrice:  m.PrecoProposto,
		AgreedPrice:    m.PrecoAcordado,
		Status:         request.Status(m.Status),
		ProviderAnswer: m.RespostaPrestador,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

func (r *Repository) FetchRequestByID(ctx context.Context, id request.UUID) (*request.Request, error) {
	out, err := scanRequest(postgres.Conn(ctx, r.db).QueryRow(ctx, SelectRequestByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch request: %w", err)
	}

	return out, nil
}

func (r *Repository) FetchRequests(ctx context.Context, f request.Filter) (request.Requests, error) {
	var (
		where []string
		args  []any
	)
	if f.ClientEmail != nil {
		args = append(args, user.NormalizeEmail(*f.ClientEmail))
		where = append(where, fmt.Sprintf("LOWER(TRIM(cliente_email)) = $%d", len(args)))
	}
	if f.ProviderEmail != nil {
		args = append(args, user.NormalizeEmail(*f.ProviderEmail))
		where = append(where, fmt.Sprintf("LOWER(TRIM(prestador_email)) = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Participant != nil {
		args = append(args, user.NormalizeEmail(*f.Participant))
		n := len(args)
		where = append(where, fmt.Sprintf("(LOWER(TRIM(cliente_email)) = $%d OR LOWER(TRIM(prestador_email)) = $%d)", n, n))
	}

	query := SelectRequests
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_date DESC"

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch requests: %w", err)
	}
	defer rows.Close()

	var out request.Requests
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, req)
	}

	return out, rows.Err()
}

func (r *Repository) CreateRequest(ctx context.Context, req request.Request) (*request.Request, error) {
	out, err := scanRequest(postgres.Conn(ctx, r.db).QueryRow(ctx, InsertRequest,
		req.ClientID,
		req.ClientEmail,
		req.ClientName,
		req.ProviderID,
		req.ProviderEmail,
		req.ProviderName,
		req.CategoryName,
		req.Description,
		req.ProposedPrice,
		req.AgreedPrice,
		string(req.Status),
		req.ProviderAnswer,
	))
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	return out, nil
}

func (r *Repository) UpdateRequest(ctx context.Context, req request.Request) (*request.Request, error) {
	out, err := scanRequest(postgres.Conn(ctx, r.db).QueryRow(ctx, UpdateRequestByID,
		req.ProposedPrice, req.AgreedPrice, string(req.Status), req.ProviderAnswer, req.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update request: %w", err)
	}

	return out, nil
}

func (r *Repository) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) ReplaceClientEmail(ctx context.Context, clientID request.UUID, oldEmail, newEmail string) (int64, error) {
	return r.exec(ctx, "replace client email", ReplaceClientEmail,
		user.NormalizeEmail(newEmail), clientID, user.NormalizeEmail(oldEmail))
}

func (r *Repository) ReplaceProviderEmail(ctx context.Context, oldEmail, newEmail string) (int64, error) {
	return r.exec(ctx, "replace provider email", ReplaceProviderEmail,
		user.NormalizeEmail(newEmail), user.NormalizeEmail(oldEmail))
}

func (r *Repository) ReplaceClientName(ctx context.Context, clientID request.UUID, email, name string) (int64, error) {
	return r.exec(ctx, "replace client name", ReplaceClientName, name, clientID, user.NormalizeEmail(email))
}

func (r *Repository) ReplaceProviderName(ctx context.Context, email, name string) (int64, error) {
	return r.exec(ctx, "replace provider name", ReplaceProviderName, name, user.NormalizeEmail(email))
}
