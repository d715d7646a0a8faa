package services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"servija-api/internal/application/apperr"
	"servija-api/internal/application/ports"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
	"servija-api/internal/infrastructure/mq"
	"servija-api/pkg/dateonly"
)

const minPasswordLen = 6

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	tx         ports.Transactor
	users      user.Repository
	tokens     ports.TokenIssuer
	propagator *Propagator
	mq         ports.EventPublisher
	log        *zap.Logger
	mCounter   *prometheus.CounterVec
}

func NewAuthService(
	tx ports.Transactor,
	users user.Repository,
	tokens ports.TokenIssuer,
	propagator *Propagator,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.AuthService {
	return &AuthService{
		tx:         tx,
		users:      users,
		tokens:     tokens,
		propagator: propagator,
		mq:         mq,
		log:        logger,
		mCounter:   mCounter,
	}
}

func (as *AuthService) Register(ctx context.Context, in user.Registration) (*user.Session, error) {
	name := normalizeName(in.FullName)
	email := user.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, apperr.Validation("full name, email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validation(msgInvalidEmail)
	}
	accountType := user.AccountClient
	if strings.TrimSpace(in.AccountType) != "" {
		t, ok := user.ParseAccountType(in.AccountType)
		if !ok || t == user.AccountAdmin {
			return nil, apperr.Validation(msgInvalidType)
		}
		accountType = t
	}
	if len(in.Password) < minPasswordLen {
		return nil, apperr.Validation("password must have at least 6 characters")
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, apperr.Validation("phone is required")
	}
	if digits(in.ZipCode) < 8 {
		return nil, apperr.Validation("zip code is required")
	}
	birth, err := dateonly.Normalize(strOr(in.BirthDate))
	if err != nil {
		return nil, apperr.Validation(msgInvalidBirth)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	zip := strings.TrimSpace(in.ZipCode)

	address := in.Address
	address.ZipCode = &zip
	created, err := as.users.CreateUser(ctx, user.User{
		Email:        email,
		FullName:     name,
		AccountType:  accountType,
		Active:       true,
		PasswordHash: &hashStr,
		Phone:        &phone,
		CPF:          nonEmpty(in.CPF),
		CNPJ:         nonEmpty(in.CNPJ),
		CompanyName:  nonEmpty(in.CompanyName),
		BirthDate:    birth,
		Address:      address,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, apperr.Conflict(msgEmailTaken, err)
		}
		return nil, err
	}

	token, err := as.issue(created)
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues(metrics.RegisterTotal).Inc()
	publish(as.mq, as.mCounter, identityEventOf(mq.IdentityRegistered, created))

	return &user.Session{Token: token, User: created}, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*user.Session, error) {
	email = user.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	u, err := as.users.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.PasswordHash == nil {
		as.mCounter.WithLabelValues(metrics.LoginFailedTotal).Inc()
		return nil, apperr.Unauthorized(ErrInvalidCredentials.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		as.mCounter.WithLabelValues(metrics.LoginFailedTotal).Inc()
		return nil, apperr.Unauthorized(ErrInvalidCredentials.Error())
	}
	if !u.CanSignIn() {
		return nil, apperr.Forbidden("provider account is inactive, contact support")
	}

	token, err := as.issue(u)
	if err != nil {
		return nil, err
	}

	return &user.Session{Token: token, User: u}, nil
}

func (as *AuthService) CurrentUser(ctx context.Context, id user.UUID) (*user.User, error) {
	u, err := as.users.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.CanSignIn() {
		return nil, apperr.Unauthorized("not authenticated")
	}

	return u, nil
}

// UpdateMe is the Identity-only update. It shares validation and the
// cascade with the profile merge but never touches the provider profile.
func (as *AuthService) UpdateMe(ctx context.Context, id user.UUID, patch user.Patch) (*user.User, error) {
	if patch.IsEmpty() {
		return nil, apperr.Validation(msgNoValidField)
	}

	var updated *user.User
	err := as.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := as.users.FetchUserByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return apperr.NotFound(msgUserNotFound)
		}

		next, err := applyUserPatch(ctx, as.users, *current, patch)
		if err != nil {
			return err
		}
		if updated, err = saveIdentity(ctx, as.users, next); err != nil {
			return err
		}

		return as.propagator.Propagate(ctx, *current, *updated)
	})
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues(metrics.IdentityUpdatedTotal).Inc()
	publish(as.mq, as.mCounter, identityEventOf(mq.IdentityUpdated, updated))

	return updated, nil
}

func (as *AuthService) issue(u *user.User) (string, error) {
	token, err := as.tokens.Issue(u.ID.String(), u.Email, string(u.AccountType), u.Role())
	if err != nil {
		as.log.Error("token signing failed", zap.Error(err))
		return "", ErrFailedToGenerateToken
	}
	return token, nil
}

func digits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
