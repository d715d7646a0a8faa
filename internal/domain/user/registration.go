package user

import "servija-api/pkg/optional"

type (
	// Registration is a self sign-up. AccountType is the raw input value.
	Registration struct {
		FullName    string
		Email       string
		Password    string
		AccountType string
		Phone       string
		ZipCode     string

		CPF         *string
		CNPJ        *string
		CompanyName *string
		BirthDate   *string
		Address     Address
	}

	Session struct {
		Token string
		User  *User
	}

	// AdminPatch is what an administrator may change on another account.
	AdminPatch struct {
		AccountType optional.Value[string]
		Active      optional.Value[bool]
	}
)
