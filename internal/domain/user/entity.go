package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	UUID        = uuid.UUID
	AccountType string

	Address struct {
		Street     *string
		Number     *string
		Complement *string
		District   *string
		City       *string
		State      *string
		ZipCode    *string
	}

	User struct {
		ID           UUID
		Email        string
		FullName     string
		AccountType  AccountType
		Active       bool
		PasswordHash *string

		Phone       *string
		CPF         *string
		CNPJ        *string
		CompanyName *string
		// BirthDate is a YYYY-MM-DD token.
		BirthDate *string
		Address   Address
		Avatar    *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

const (
	AccountClient   AccountType = "cliente"
	AccountProvider AccountType = "prestador"
	AccountAdmin    AccountType = "admin"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ParseAccountType accepts the stored values and the english aliases.
func ParseAccountType(raw string) (AccountType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cliente", "client":
		return AccountClient, true
	case "prestador", "provider":
		return AccountProvider, true
	case "admin":
		return AccountAdmin, true
	}
	return "", false
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) IsAdmin() bool    { return u.AccountType == AccountAdmin }
func (u *User) IsProvider() bool { return u.AccountType == AccountProvider }

func (u *User) Role() string {
	if u.IsAdmin() {
		return RoleAdmin
	}
	return RoleUser
}

// CanSignIn is false only for deactivated providers.
func (u *User) CanSignIn() bool {
	return u.Active || !u.IsProvider()
}
