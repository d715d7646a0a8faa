package services

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"servija-api/internal/application/apperr"
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
)

const msgConcurrentProfile = "provider profile was created concurrently, retry"

// Reconciler finds the provider profile an Identity owns and heals its
// owner pointer.
type Reconciler struct {
	providers provider.Repository
	log       *zap.Logger
	mCounter  *prometheus.CounterVec
}

func NewReconciler(providers provider.Repository, logger *zap.Logger, mCounter *prometheus.CounterVec) *Reconciler {
	return &Reconciler{providers: providers, log: logger, mCounter: mCounter}
}

// Reconcile returns the owned profile, or nil when there is none. The owner
// pointer of the returned row always equals (ownerID, normalised email).
func (r *Reconciler) Reconcile(ctx context.Context, ownerID user.UUID, email string) (*provider.Provider, error) {
	email = user.NormalizeEmail(email)

	candidates, err := r.providers.FetchOwnershipCandidates(ctx, ownerID, email)
	if err != nil {
		return nil, err
	}

	picked := pickOwned(candidates, ownerID, email)
	if picked == nil {
		return nil, nil
	}
	if picked.OwnedBy(ownerID, email) {
		return picked, nil
	}

	if err = r.providers.UpdateOwnership(ctx, picked.ID, ownerID, email); err != nil {
		if errors.Is(err, provider.ErrOwnerAlreadyHasProfile) {
			r.mCounter.WithLabelValues(metrics.OwnerConflictTotal).Inc()
			return nil, apperr.Conflict(msgConcurrentProfile, err)
		}
		return nil, err
	}

	r.log.Info("provider ownership healed",
		zap.String("provider_id", picked.ID.String()),
		zap.String("user_id", ownerID.String()),
	)
	r.mCounter.WithLabelValues(metrics.OwnershipHealedTotal).Inc()

	return r.providers.FetchProviderByID(ctx, picked.ID)
}

// pickOwned prefers a user_id match over an email match, then the oldest
// row, then the smallest id.
func pickOwned(candidates provider.Providers, ownerID user.UUID, email string) *provider.Provider {
	var best *provider.Provider
	bestByID := false
	for _, c := range candidates {
		byID := c.UserID != nil && *c.UserID == ownerID
		byEmail := c.UserEmail != nil && user.NormalizeEmail(*c.UserEmail) == email
		if !byID && !byEmail {
			continue
		}
		if best == nil || olderMatch(c, byID, best, bestByID) {
			best, bestByID = c, byID
		}
	}
	return best
}

func olderMatch(c *provider.Provider, cByID bool, best *provider.Provider, bestByID bool) bool {
	if cByID != bestByID {
		return cByID
	}
	if !c.CreatedAt.Equal(best.CreatedAt) {
		return c.CreatedAt.Before(best.CreatedAt)
	}
	return strings.Compare(c.ID.String(), best.ID.String()) < 0
}
