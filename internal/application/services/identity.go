package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"servija-api/internal/application/apperr"
	"servija-api/internal/domain/user"
	"servija-api/pkg/dateonly"
	"servija-api/pkg/optional"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Shared validation messages.
const (
	msgNameRequired    = "full name is required"
	msgInvalidEmail    = "invalid email"
	msgEmailTaken      = "email already registered"
	msgInvalidType     = "invalid account type"
	msgInvalidBirth    = "invalid birth date"
	msgNoValidField    = "no valid field to update"
	msgUserNotFound    = "user not found"
	msgCategoryMissing = "select a category for a provider account"
	msgPhoneMissing    = "phone is required for a provider account"
)

func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// applyUserPatch validates p against current and returns the updated copy.
// Nothing is written.
func applyUserPatch(ctx context.Context, users user.Repository, current user.User, p user.Patch) (user.User, error) {
	next := current

	if p.FullName.Present {
		name := normalizeName(p.FullName.V)
		if p.FullName.Null || name == "" {
			return next, apperr.Validation(msgNameRequired)
		}
		next.FullName = name
	}

	if p.Email.Present {
		email := user.NormalizeEmail(p.Email.V)
		if p.Email.Null || !emailPattern.MatchString(email) {
			return next, apperr.Validation(msgInvalidEmail)
		}
		if email != user.NormalizeEmail(current.Email) {
			taken, err := users.EmailTakenByOther(ctx, email, current.ID)
			if err != nil {
				return next, err
			}
			if taken {
				return next, apperr.Conflict(msgEmailTaken, user.ErrEmailAlreadyExists)
			}
		}
		next.Email = email
	}

	if p.AccountType.Present {
		t, ok := user.ParseAccountType(p.AccountType.V)
		if p.AccountType.Null || !ok || (t == user.AccountAdmin && !current.IsAdmin()) {
			return next, apperr.Validation(msgInvalidType)
		}
		next.AccountType = t
	}

	if p.BirthDate.Present {
		d, err := dateonly.Normalize(p.BirthDate.V)
		if err != nil {
			return next, apperr.Validation(msgInvalidBirth)
		}
		next.BirthDate = d
	}

	setString(&next.Phone, p.Phone)
	setString(&next.CPF, p.CPF)
	setString(&next.CNPJ, p.CNPJ)
	setString(&next.CompanyName, p.CompanyName)
	setString(&next.Address.Street, p.Street)
	setString(&next.Address.Number, p.Number)
	setString(&next.Address.Complement, p.Complement)
	setString(&next.Address.District, p.District)
	setString(&next.Address.City, p.City)
	setString(&next.Address.State, p.State)
	setString(&next.Address.ZipCode, p.ZipCode)
	setString(&next.Avatar, p.Avatar)

	return next, nil
}

// saveIdentity writes u, mapping a lost uniqueness race to a conflict.
func saveIdentity(ctx context.Context, users user.Repository, u user.User) (*user.User, error) {
	saved, err := users.UpdateUser(ctx, u)
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, apperr.Conflict(msgEmailTaken, err)
		}
		return nil, err
	}
	if saved == nil {
		return nil, apperr.NotFound(msgUserNotFound)
	}
	return saved, nil
}

func setString(dst **string, v optional.Value[string]) {
	if v.Present {
		*dst = v.Ptr()
	}
}

func strOr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func nonEmpty(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
