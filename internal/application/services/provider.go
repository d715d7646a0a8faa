package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"servija-api/internal/application/apperr"
	"servija-api/internal/application/ports"
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
	"servija-api/internal/infrastructure/mq"
)

const msgProviderNotFound = "provider not found"

type ProviderService struct {
	tx        ports.Transactor
	providers provider.Repository
	users     user.Repository
	mq        ports.EventPublisher
	log       *zap.Logger
	mCounter  *prometheus.CounterVec
}

func NewProviderService(
	tx ports.Transactor,
	providers provider.Repository,
	users user.Repository,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.ProviderService {
	return &ProviderService{
		tx:        tx,
		providers: providers,
		users:     users,
		mq:        mq,
		log:       logger,
		mCounter:  mCounter,
	}
}

func (ps *ProviderService) FindProviders(ctx context.Context, f provider.Filter) (provider.Providers, error) {
	return ps.providers.FetchProviders(ctx, f)
}

func (ps *ProviderService) FindProviderByID(ctx context.Context, id provider.UUID) (*provider.Provider, error) {
	p, err := ps.providers.FetchProviderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound(msgProviderNotFound)
	}
	return p, nil
}

// ModerateProvider applies the admin-curated fields. A change of the active
// flag is mirrored onto the owning Identity.
func (ps *ProviderService) ModerateProvider(ctx context.Context, id provider.UUID, m provider.Moderation) (*provider.Provider, error) {
	if m.IsEmpty() {
		return nil, apperr.Validation(msgNoValidField)
	}

	var saved *provider.Provider
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := ps.providers.FetchProviderByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound(msgProviderNotFound)
		}

		next := *existing
		if m.ApprovalStatus.Present {
			s, ok := m.ApprovalStatus.Get()
			if !ok || !provider.ValidApprovalStatus(s) {
				return apperr.Validation("invalid approval status")
			}
			next.ApprovalStatus = provider.ApprovalStatus(s)
		}
		if m.Featured.Present {
			v, ok := m.Featured.Get()
			if !ok {
				return apperr.Validation(`invalid "destaque" value`)
			}
			next.Featured = v
		}
		if m.Rating.Present {
			v, ok := m.Rating.Get()
			if !ok || v < 1 || v > 5 {
				return apperr.Validation("rating must be between 1 and 5")
			}
			next.Rating = v
		}
		if m.Active.Present {
			v, ok := m.Active.Get()
			if !ok {
				return apperr.Validation(`invalid "ativo" value`)
			}
			next.Active = v
		}

		if saved, err = ps.providers.SaveProvider(ctx, next); err != nil {
			return err
		}
		if saved == nil {
			return apperr.NotFound(msgProviderNotFound)
		}

		if m.Active.Present && existing.UserID != nil {
			return ps.mirrorOwnerActive(ctx, *existing.UserID, saved.Active)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ownerID := user.UUID{}
	if saved.UserID != nil {
		ownerID = *saved.UserID
	}
	eventType, counter := mq.ProviderUpdated, metrics.ProviderUpdatedTotal
	if !saved.Active {
		eventType, counter = mq.ProviderDeactivated, metrics.ProviderDeactivated
	}
	ps.mCounter.WithLabelValues(counter).Inc()
	publish(ps.mq, ps.mCounter, providerEventOf(eventType, ownerID, saved))

	return saved, nil
}

func (ps *ProviderService) mirrorOwnerActive(ctx context.Context, ownerID user.UUID, active bool) error {
	owner, err := ps.users.FetchUserByIDForUpdate(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner == nil || owner.Active == active {
		return nil
	}
	owner.Active = active
	_, err = saveIdentity(ctx, ps.users, *owner)
	return err
}
