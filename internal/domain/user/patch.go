package user

import "servija-api/pkg/optional"

// Patch is a partial Identity update. Absent fields are left untouched,
// null fields are cleared.
type Patch struct {
	FullName    optional.Value[string]
	Email       optional.Value[string]
	Phone       optional.Value[string]
	CPF         optional.Value[string]
	CNPJ        optional.Value[string]
	CompanyName optional.Value[string]
	BirthDate   optional.Value[string]
	Street      optional.Value[string]
	Number      optional.Value[string]
	Complement  optional.Value[string]
	District    optional.Value[string]
	City        optional.Value[string]
	State       optional.Value[string]
	ZipCode     optional.Value[string]
	AccountType optional.Value[string]
	Avatar      optional.Value[string]
}

func (p Patch) IsEmpty() bool {
	for _, f := range []optional.Value[string]{
		p.FullName, p.Email, p.Phone, p.CPF, p.CNPJ, p.CompanyName, p.BirthDate,
		p.Street, p.Number, p.Complement, p.District, p.City, p.State, p.ZipCode,
		p.AccountType, p.Avatar,
	} {
		if f.Present {
			return false
		}
	}
	return true
}
