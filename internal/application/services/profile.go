package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"servija-api/internal/application/apperr"
	"servija-api/internal/application/ports"
	"servija-api/internal/domain/profile"
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
	"servija-api/internal/infrastructure/mq"
)

type ProfileService struct {
	tx         ports.Transactor
	users      user.Repository
	providers  provider.Repository
	categories ports.CategoryNameResolver
	reconciler *Reconciler
	propagator *Propagator
	mq         ports.EventPublisher
	log        *zap.Logger
	mCounter   *prometheus.CounterVec
}

func NewProfileService(
	tx ports.Transactor,
	users user.Repository,
	providers provider.Repository,
	categories ports.CategoryNameResolver,
	reconciler *Reconciler,
	propagator *Propagator,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.ProfileService {
	return &ProfileService{
		tx:         tx,
		users:      users,
		providers:  providers,
		categories: categories,
		reconciler: reconciler,
		propagator: propagator,
		mq:         mq,
		log:        logger,
		mCounter:   mCounter,
	}
}

// GetProviderProfile reads the caller's Identity and the profile it owns,
// healing the owner pointer on the way.
func (ps *ProfileService) GetProviderProfile(ctx context.Context, userID user.UUID) (*profile.Profile, error) {
	var out *profile.Profile
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := ps.users.FetchUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return apperr.NotFound(msgUserNotFound)
		}

		p, err := ps.reconciler.Reconcile(ctx, u.ID, u.Email)
		if err != nil {
			return err
		}
		out = &profile.Profile{User: u, Provider: p}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// MergeProfile applies an Identity patch and a provider patch atomically.
// The caller's Identity row stays locked until the transaction ends.
func (ps *ProfileService) MergeProfile(ctx context.Context, userID user.UUID, patch profile.Patch) (*profile.Profile, error) {
	if err := validateProviderPatch(patch.Provider); err != nil {
		return nil, err
	}

	var (
		out    *profile.Profile
		events []mq.Event
		counts []string
	)
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := ps.users.FetchUserByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperr.NotFound(msgUserNotFound)
		}

		updated := current
		if !patch.User.IsEmpty() {
			next, err := applyUserPatch(ctx, ps.users, *current, patch.User)
			if err != nil {
				return err
			}
			if updated, err = saveIdentity(ctx, ps.users, next); err != nil {
				return err
			}
			// owner pointers still holding the old email must follow it
			// before the profile is looked up
			if err = ps.propagator.Propagate(ctx, *current, *updated); err != nil {
				return err
			}
			events = append(events, identityEventOf(mq.IdentityUpdated, updated))
			counts = append(counts, metrics.IdentityUpdatedTotal)
		}

		owned, err := ps.reconciler.Reconcile(ctx, updated.ID, updated.Email)
		if err != nil {
			return err
		}

		var p *provider.Provider
		switch {
		case updated.IsProvider():
			created := owned == nil
			if p, err = ps.upsertProvider(ctx, updated, owned, patch.Provider); err != nil {
				return err
			}
			if created {
				events = append(events, providerEventOf(mq.ProviderCreated, updated.ID, p))
				counts = append(counts, metrics.ProviderCreatedTotal)
			} else {
				events = append(events, providerEventOf(mq.ProviderUpdated, updated.ID, p))
				counts = append(counts, metrics.ProviderUpdatedTotal)
			}
		case owned != nil:
			if p, err = ps.deactivateProvider(ctx, updated, owned); err != nil {
				return err
			}
			events = append(events, providerEventOf(mq.ProviderDeactivated, updated.ID, p))
			counts = append(counts, metrics.ProviderDeactivated)
		}

		out = &profile.Profile{User: updated, Provider: p}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, c := range counts {
		ps.mCounter.WithLabelValues(c).Inc()
	}
	publish(ps.mq, ps.mCounter, events...)

	return out, nil
}

func (ps *ProfileService) upsertProvider(
	ctx context.Context,
	u *user.User,
	existing *provider.Provider,
	pt provider.Patch,
) (*provider.Provider, error) {
	categoryID, err := chosenCategory(pt, existing)
	if err != nil {
		return nil, err
	}
	if categoryID == nil {
		return nil, apperr.Validation(msgCategoryMissing)
	}
	categoryName, err := ps.categories.ResolveName(ctx, *categoryID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Validation("category not found")
		}
		return nil, err
	}

	var existingPhone *string
	if existing != nil {
		existingPhone = &existing.Phone
	}
	phone := firstNonEmpty(u.Phone, pt.Phone.Ptr(), existingPhone)
	if phone == "" {
		return nil, apperr.Validation(msgPhoneMissing)
	}

	var p provider.Provider
	if existing != nil {
		p = *existing
	} else {
		p = provider.Provider{
			Services:       []provider.Service{},
			WorkPhotos:     []string{},
			Rating:         provider.DefaultRating,
			ApprovalStatus: provider.StatusPending,
		}
	}
	mirrorIdentity(&p, u)
	p.Phone = phone
	p.Active = true
	p.CategoryID = categoryID
	p.CategoryName = &categoryName
	pt.Apply(&p)

	if existing == nil {
		created, err := ps.providers.CreateProvider(ctx, p)
		if err != nil {
			return nil, ps.ownerConflict(err)
		}
		ps.log.Info("provider profile created",
			zap.String("provider_id", created.ID.String()),
			zap.String("user_id", u.ID.String()),
		)
		return created, nil
	}

	saved, err := ps.providers.SaveProvider(ctx, p)
	if err != nil {
		return nil, ps.ownerConflict(err)
	}
	if saved == nil {
		return nil, fmt.Errorf("provider %s vanished during merge", p.ID)
	}
	return saved, nil
}

// deactivateProvider keeps the profile data but takes it off the listing.
func (ps *ProfileService) deactivateProvider(ctx context.Context, u *user.User, existing *provider.Provider) (*provider.Provider, error) {
	p := *existing
	ownerID, email := u.ID, user.NormalizeEmail(u.Email)
	p.UserID, p.UserEmail = &ownerID, &email
	p.Name = u.FullName
	if phone := firstNonEmpty(u.Phone); phone != "" {
		p.Phone = phone
	}
	p.Active = false

	saved, err := ps.providers.SaveProvider(ctx, p)
	if err != nil {
		return nil, ps.ownerConflict(err)
	}
	if saved == nil {
		return nil, fmt.Errorf("provider %s vanished during merge", p.ID)
	}
	return saved, nil
}

func (ps *ProfileService) ownerConflict(err error) error {
	if errors.Is(err, provider.ErrOwnerAlreadyHasProfile) {
		ps.mCounter.WithLabelValues(metrics.OwnerConflictTotal).Inc()
		return apperr.Conflict(msgConcurrentProfile, err)
	}
	return err
}

// mirrorIdentity copies the fields the Identity is authoritative for.
func mirrorIdentity(p *provider.Provider, u *user.User) {
	ownerID, email := u.ID, user.NormalizeEmail(u.Email)
	p.UserID, p.UserEmail = &ownerID, &email
	if name := strings.TrimSpace(u.FullName); name != "" {
		p.Name = name
	}
	p.CPF = nonEmpty(u.CPF)
	p.CNPJ = nonEmpty(u.CNPJ)
	p.CompanyName = nonEmpty(u.CompanyName)
	p.BirthDate = nonEmpty(u.BirthDate)
	p.Street = nonEmpty(u.Address.Street)
	p.Number = nonEmpty(u.Address.Number)
	p.Complement = nonEmpty(u.Address.Complement)
	p.District = nonEmpty(u.Address.District)
	p.City = nonEmpty(u.Address.City)
	p.State = nonEmpty(u.Address.State)
	p.ZipCode = nonEmpty(u.Address.ZipCode)
}

func chosenCategory(pt provider.Patch, existing *provider.Provider) (*uuid.UUID, error) {
	if pt.CategoryID.Present {
		raw, ok := pt.CategoryID.Get()
		if !ok {
			return nil, nil
		}
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, apperr.Validation("invalid category id")
		}
		return &id, nil
	}
	if existing != nil {
		return existing.CategoryID, nil
	}
	return nil, nil
}

// validateProviderPatch checks the provider-only fields before anything is
// written.
func validateProviderPatch(pt provider.Patch) error {
	details := map[string]string{}

	if v, ok := pt.CompanyType.Get(); ok && !provider.ValidCompanyType(v) {
		details["tipo_empresa"] = "must be one of MEI, LTDA, Autônomo, Outro"
	}
	if services, ok := pt.Services.Get(); ok {
		for _, s := range services {
			if strings.TrimSpace(s.Name) == "" {
				details["servicos"] = "every service needs a name"
				break
			}
			if s.Price != nil && *s.Price < 0 {
				details["servicos"] = "service price must not be negative"
				break
			}
		}
	}
	for field, v := range map[string]interface{ Get() (float64, bool) }{
		"valor_hora":       pt.HourlyRate,
		"preco_base":       pt.BasePrice,
		"raio_atendimento": pt.Radius,
	} {
		if f, ok := v.Get(); ok && f < 0 {
			details[field] = "must not be negative"
		}
	}
	if f, ok := pt.Latitude.Get(); ok && (f < -90 || f > 90) {
		details["latitude"] = "must be between -90 and 90"
	}
	if f, ok := pt.Longitude.Get(); ok && (f < -180 || f > 180) {
		details["longitude"] = "must be between -180 and 180"
	}

	if len(details) > 0 {
		return apperr.ValidationDetails("invalid provider fields", details)
	}
	return nil
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return strings.TrimSpace(*v)
		}
	}
	return ""
}
