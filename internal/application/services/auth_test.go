package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"servija-api/internal/application/apperr"
	"servija-api/internal/domain/request"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/mq"
	"servija-api/pkg/optional"
)

func validRegistration() user.Registration {
	return user.Registration{
		FullName:    "Ana Souza",
		Email:       " Ana@Example.com ",
		Password:    "secret1",
		AccountType: "prestador",
		Phone:       "11999990000",
		ZipCode:     "01001-000",
	}
}

func TestRegister(t *testing.T) {
	h := newHarness()

	s, err := h.auth.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "token-"+s.User.ID.String(), s.Token)
	assert.Equal(t, "ana@example.com", s.User.Email)
	assert.Equal(t, user.AccountProvider, s.User.AccountType)
	assert.True(t, s.User.Active)
	assert.Equal(t, "01001-000", *s.User.Address.ZipCode)
	require.NotNil(t, s.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*s.User.PasswordHash), []byte("secret1")))
	assert.Equal(t, []string{mq.IdentityRegistered}, h.pub.types())

	_, err = h.auth.Register(context.Background(), validRegistration())
	requireKind(t, err, apperr.KindConflict, msgEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *user.Registration)
		msg    string
	}{
		{name: "missing name", mutate: func(r *user.Registration) { r.FullName = " " }, msg: "full name, email and password are required"},
		{name: "bad email", mutate: func(r *user.Registration) { r.Email = "ana" }, msg: msgInvalidEmail},
		{name: "admin sign-up", mutate: func(r *user.Registration) { r.AccountType = "admin" }, msg: msgInvalidType},
		{name: "short password", mutate: func(r *user.Registration) { r.Password = "12345" }, msg: "password must have at least 6 characters"},
		{name: "no phone", mutate: func(r *user.Registration) { r.Phone = "" }, msg: "phone is required"},
		{name: "short zip code", mutate: func(r *user.Registration) { r.ZipCode = "0100-10" }, msg: "zip code is required"},
		{name: "bad birth date", mutate: func(r *user.Registration) { r.BirthDate = strPtr("yesterday") }, msg: msgInvalidBirth},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness()
			in := validRegistration()
			tc.mutate(&in)

			_, err := h.auth.Register(context.Background(), in)
			requireKind(t, err, apperr.KindValidation, tc.msg)
			assert.Empty(t, h.store.users)
		})
	}
}

func TestRegister_DefaultsToClient(t *testing.T) {
	h := newHarness()
	in := validRegistration()
	in.AccountType = ""

	s, err := h.auth.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, user.AccountClient, s.User.AccountType)
}

func TestRegister_TokenFailure(t *testing.T) {
	h := newHarness()
	h.auth.tokens = &fakeTokens{IssueFunc: func(string, string, string, string) (string, error) {
		return "", errors.New("boom")
	}}

	_, err := h.auth.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, ErrFailedToGenerateToken)
}

func seedWithPassword(h *harness, email, password string, t user.AccountType, active bool) *user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return h.store.addUser(user.User{
		Email:        email,
		FullName:     "Ana",
		AccountType:  t,
		Active:       active,
		PasswordHash: strPtr(string(hash)),
	})
}

func TestLogin(t *testing.T) {
	h := newHarness()
	seedWithPassword(h, "ana@example.com", "secret1", user.AccountClient, true)
	seedWithPassword(h, "off@example.com", "secret1", user.AccountProvider, false)
	seedWithPassword(h, "offclient@example.com", "secret1", user.AccountClient, false)

	tests := []struct {
		name     string
		email    string
		password string
		kind     apperr.Kind
	}{
		{name: "ok", email: " ANA@example.com", password: "secret1"},
		{name: "wrong password", email: "ana@example.com", password: "nope", kind: apperr.KindUnauthorized},
		{name: "unknown email", email: "who@example.com", password: "secret1", kind: apperr.KindUnauthorized},
		{name: "inactive provider", email: "off@example.com", password: "secret1", kind: apperr.KindForbidden},
		{name: "inactive flag ignored for clients", email: "offclient@example.com", password: "secret1"},
		{name: "missing password", email: "ana@example.com", kind: apperr.KindValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := h.auth.Login(context.Background(), tc.email, tc.password)
			if tc.kind == 0 {
				require.NoError(t, err)
				assert.NotEmpty(t, s.Token)
				return
			}
			requireKind(t, err, tc.kind, "")
		})
	}
}

func TestCurrentUser(t *testing.T) {
	h := newHarness()
	ok := seedClient(h, "ana@example.com")
	off := seedWithPassword(h, "off@example.com", "secret1", user.AccountProvider, false)

	u, err := h.auth.CurrentUser(context.Background(), ok.ID)
	require.NoError(t, err)
	assert.Equal(t, ok.ID, u.ID)

	_, err = h.auth.CurrentUser(context.Background(), off.ID)
	requireKind(t, err, apperr.KindUnauthorized, "")

	_, err = h.auth.CurrentUser(context.Background(), uuid.New())
	requireKind(t, err, apperr.KindUnauthorized, "")
}

func TestUpdateMe(t *testing.T) {
	h := newHarness()
	u := seedClient(h, "ana@example.com")
	r := h.store.addRequest(request.Request{ClientID: uuidPtr(u.ID), ClientEmail: u.Email, ProviderID: uuid.New()})

	_, err := h.auth.UpdateMe(context.Background(), u.ID, user.Patch{})
	requireKind(t, err, apperr.KindValidation, msgNoValidField)

	got, err := h.auth.UpdateMe(context.Background(), u.ID, user.Patch{
		Email: optional.Of("ana.souza@example.com"),
		Phone: optional.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "ana.souza@example.com", got.Email)
	assert.Nil(t, got.Phone)
	assert.Equal(t, "10", *got.Address.Number)
	assert.Equal(t, "ana.souza@example.com", h.store.requests[r.ID].ClientEmail)
	assert.Equal(t, []string{mq.IdentityUpdated}, h.pub.types())
}
