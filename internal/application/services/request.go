package services

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"servija-api/internal/application/apperr"
	"servija-api/internal/application/ports"
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/request"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
)

const (
	msgRequestNotFound = "request not found"
	msgNoPermission    = "no permission for this request"
)

type RequestService struct {
	requests  request.Repository
	providers provider.Repository
	log       *zap.Logger
	mCounter  *prometheus.CounterVec
}

func NewRequestService(
	requests request.Repository,
	providers provider.Repository,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.RequestService {
	return &RequestService{
		requests:  requests,
		providers: providers,
		log:       logger,
		mCounter:  mCounter,
	}
}

// FindRequests lists requests. Non-admins only see requests they take part
// in and may not filter on somebody else's email.
func (rs *RequestService) FindRequests(ctx context.Context, actor *user.User, f request.Filter) (request.Requests, error) {
	if f.Status != nil && !request.ValidStatus(string(*f.Status)) {
		return nil, apperr.Validation("invalid status")
	}
	if !actor.IsAdmin() {
		own := user.NormalizeEmail(actor.Email)
		if f.ClientEmail != nil && user.NormalizeEmail(*f.ClientEmail) != own {
			return nil, apperr.Forbidden("no permission for this query")
		}
		if f.ProviderEmail != nil && user.NormalizeEmail(*f.ProviderEmail) != own {
			return nil, apperr.Forbidden("no permission for this query")
		}
		if f.ClientEmail == nil && f.ProviderEmail == nil {
			f.Participant = &own
		}
	}

	return rs.requests.FetchRequests(ctx, f)
}

func (rs *RequestService) FindRequestByID(ctx context.Context, actor *user.User, id request.UUID) (*request.Request, error) {
	r, err := rs.requests.FetchRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound(msgRequestNotFound)
	}
	if !participates(actor, r) {
		return nil, apperr.Forbidden(msgNoPermission)
	}
	return r, nil
}

// CreateRequest snapshots the client and provider contact data as they are
// now. The cascade keeps the snapshot current afterwards.
func (rs *RequestService) CreateRequest(ctx context.Context, actor *user.User, d request.Draft) (*request.Request, error) {
	description := strings.TrimSpace(d.Description)
	if d.ProviderID == (request.UUID{}) || description == "" {
		return nil, apperr.Validation("provider and description are required")
	}
	status := request.StatusOpen
	if d.Status != nil && strings.TrimSpace(*d.Status) != "" {
		if !request.ValidStatus(*d.Status) {
			return nil, apperr.Validation("invalid status")
		}
		status = request.Status(*d.Status)
	}

	p, err := rs.providers.FetchProviderByID(ctx, d.ProviderID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound(msgProviderNotFound)
	}

	proposed := d.ProposedPrice
	if proposed == nil {
		proposed = p.BasePrice
	}
	clientID := actor.ID
	clientName := actor.FullName
	providerName := p.Name

	created, err := rs.requests.CreateRequest(ctx, request.Request{
		ClientID:       &clientID,
		ClientEmail:    user.NormalizeEmail(actor.Email),
		ClientName:     &clientName,
		ProviderID:     p.ID,
		ProviderEmail:  p.UserEmail,
		ProviderName:   &providerName,
		CategoryName:   p.CategoryName,
		Description:    description,
		ProposedPrice:  proposed,
		AgreedPrice:    d.AgreedPrice,
		Status:         status,
		ProviderAnswer: nonEmpty(d.ProviderAnswer),
	})
	if err != nil {
		return nil, err
	}

	rs.mCounter.WithLabelValues(metrics.RequestCreatedTotal).Inc()
	return created, nil
}

func (rs *RequestService) UpdateRequest(
	ctx context.Context,
	actor *user.User,
	id request.UUID,
	patch request.Patch,
) (*request.Request, error) {
	r, err := rs.FindRequestByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperr.Validation(msgNoValidField)
	}

	next := *r
	if patch.Status.Present {
		s, ok := patch.Status.Get()
		if !ok || !request.ValidStatus(s) {
			return nil, apperr.Validation("invalid status")
		}
		next.Status = request.Status(s)
	}
	if patch.ProposedPrice.Present {
		next.ProposedPrice = patch.ProposedPrice.Ptr()
	}
	if patch.AgreedPrice.Present {
		next.AgreedPrice = patch.AgreedPrice.Ptr()
	}
	setString(&next.ProviderAnswer, patch.ProviderAnswer)

	updated, err := rs.requests.UpdateRequest(ctx, next)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound(msgRequestNotFound)
	}
	return updated, nil
}

func participates(actor *user.User, r *request.Request) bool {
	if actor.IsAdmin() {
		return true
	}
	own := user.NormalizeEmail(actor.Email)
	if (r.ClientID != nil && *r.ClientID == actor.ID) || user.NormalizeEmail(r.ClientEmail) == own {
		return true
	}
	return r.ProviderEmail != nil && user.NormalizeEmail(*r.ProviderEmail) == own
}
