package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"servija-api/internal/interface/api/rest/dto/auth"
)

var (
	ErrInvalidBool = errors.New("must be true or false")
	ErrInvalidUUID = errors.New("must be a valid UUID")
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// QueryBool parses an optional boolean filter. An empty value means no filter.
func QueryBool(raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, ErrInvalidBool
	}
	return &b, nil
}

// QueryUUID parses an optional id filter. An empty value means no filter.
func QueryUUID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	ok, id := IsUUID(raw)
	if !ok {
		return nil, ErrInvalidUUID
	}
	return &id, nil
}

// QueryString returns nil for a blank value.
func QueryString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// never trimmed, only checked for blank
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
