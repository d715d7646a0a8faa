package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/request"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
)

// Propagator refreshes the denormalised owner email and name held by
// provider profiles and request snapshots. It must run inside the same
// transaction as the Identity update.
type Propagator struct {
	providers provider.Repository
	requests  request.Repository
	log       *zap.Logger
	mCounter  *prometheus.CounterVec
}

func NewPropagator(
	providers provider.Repository,
	requests request.Repository,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) *Propagator {
	return &Propagator{
		providers: providers,
		requests:  requests,
		log:       logger,
		mCounter:  mCounter,
	}
}

// Propagate compares the Identity before and after an update and rewrites
// every copy of the changed email or name.
func (p *Propagator) Propagate(ctx context.Context, before, after user.User) error {
	oldEmail := user.NormalizeEmail(before.Email)
	newEmail := user.NormalizeEmail(after.Email)
	emailChanged := oldEmail != newEmail
	nameChanged := normalizeName(before.FullName) != normalizeName(after.FullName)
	if !emailChanged && !nameChanged {
		return nil
	}

	var owners, clients, providers int64
	if emailChanged {
		n, err := p.providers.ReassignOwnerEmail(ctx, after.ID, oldEmail, newEmail)
		if err != nil {
			return fmt.Errorf("cascade owner email: %w", err)
		}
		owners += n

		if n, err = p.requests.ReplaceClientEmail(ctx, after.ID, oldEmail, newEmail); err != nil {
			return fmt.Errorf("cascade client email: %w", err)
		}
		clients += n

		if n, err = p.requests.ReplaceProviderEmail(ctx, oldEmail, newEmail); err != nil {
			return fmt.Errorf("cascade provider email: %w", err)
		}
		providers += n
	}

	if nameChanged {
		n, err := p.requests.ReplaceClientName(ctx, after.ID, newEmail, after.FullName)
		if err != nil {
			return fmt.Errorf("cascade client name: %w", err)
		}
		clients += n

		if n, err = p.requests.ReplaceProviderName(ctx, newEmail, after.FullName); err != nil {
			return fmt.Errorf("cascade provider name: %w", err)
		}
		providers += n
	}

	p.log.Info("identity change propagated",
		zap.String("user_id", after.ID.String()),
		zap.Bool("email_changed", emailChanged),
		zap.Bool("name_changed", nameChanged),
		zap.Int64("profiles", owners),
		zap.Int64("client_rows", clients),
		zap.Int64("provider_rows", providers),
	)
	p.mCounter.WithLabelValues(metrics.CascadeRowsTotal).Add(float64(owners + clients + providers))

	return nil
}
