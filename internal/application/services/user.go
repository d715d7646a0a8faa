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

// UserService is the administrator's view of accounts.
type UserService struct {
	tx        ports.Transactor
	users     user.Repository
	providers provider.Repository
	mq        ports.EventPublisher
	log       *zap.Logger
	mCounter  *prometheus.CounterVec
}

func NewUserService(
	tx ports.Transactor,
	users user.Repository,
	providers provider.Repository,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		tx:        tx,
		users:     users,
		providers: providers,
		mq:        mq,
		log:       logger,
		mCounter:  mCounter,
	}
}

func (us *UserService) FindUsers(ctx context.Context) (user.Users, error) {
	return us.users.FetchUsers(ctx)
}

// AdminUpdateUser changes the account type between cliente and admin, or
// toggles a provider's active flag together with its profile.
func (us *UserService) AdminUpdateUser(
	ctx context.Context,
	actor *user.User,
	id user.UUID,
	patch user.AdminPatch,
) (*user.User, error) {
	if !patch.AccountType.Present && !patch.Active.Present {
		return nil, apperr.Validation(msgNoValidField)
	}

	var updated *user.User
	err := us.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := us.users.FetchUserByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound(msgUserNotFound)
		}

		next := *existing
		if patch.AccountType.Present {
			t, ok := user.ParseAccountType(patch.AccountType.V)
			if patch.AccountType.Null || !ok || t == user.AccountProvider {
				return apperr.Validation("invalid account type conversion")
			}
			if existing.IsProvider() {
				return apperr.Validation("only clients and admins can change account type")
			}
			if existing.IsAdmin() && t != user.AccountAdmin {
				if err = us.ensureAnotherAdmin(ctx); err != nil {
					return err
				}
			}
			next.AccountType = t
		}

		if patch.Active.Present {
			active, ok := patch.Active.Get()
			if !ok {
				return apperr.Validation(`invalid "ativo" value`)
			}
			if !existing.IsProvider() {
				return apperr.Validation("only providers can be activated or deactivated")
			}
			next.Active = active
		}

		if updated, err = saveIdentity(ctx, us.users, next); err != nil {
			return err
		}

		if patch.Active.Present {
			n, err := us.providers.SetActiveByOwner(ctx, existing.ID, existing.Email, updated.Active)
			if err != nil {
				return err
			}
			us.log.Info("provider active flag mirrored",
				zap.String("user_id", existing.ID.String()),
				zap.Bool("active", updated.Active),
				zap.Int64("profiles", n),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues(metrics.IdentityUpdatedTotal).Inc()
	publish(us.mq, us.mCounter, identityEventOf(mq.IdentityUpdated, updated))

	return updated, nil
}

// DeleteUser removes an account and the provider profile it owns. Admins
// cannot delete themselves or the last admin.
func (us *UserService) DeleteUser(ctx context.Context, actor *user.User, id user.UUID) error {
	if actor != nil && actor.ID == id {
		return apperr.Validation("you cannot delete your own account")
	}

	var deleted *user.User
	err := us.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := us.users.FetchUserByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound(msgUserNotFound)
		}
		if existing.IsAdmin() {
			if err = us.ensureAnotherAdmin(ctx); err != nil {
				return err
			}
		}

		if _, err = us.providers.DeleteByOwner(ctx, id); err != nil {
			return err
		}
		ok, err := us.users.DeleteUser(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound(msgUserNotFound)
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return err
	}

	us.mCounter.WithLabelValues(metrics.IdentityDeletedTotal).Inc()
	publish(us.mq, us.mCounter, identityEventOf(mq.IdentityDeleted, deleted))

	return nil
}

func (us *UserService) ensureAnotherAdmin(ctx context.Context) error {
	n, err := us.users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n <= 1 {
		return apperr.Validation("the last administrator cannot be removed")
	}
	return nil
}
