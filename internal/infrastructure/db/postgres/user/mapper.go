package user

import (
	domain "servija-api/internal/domain/user"
	"servija-api/pkg/dateonly"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Email:        model.Email,
		FullName:     model.FullName,
		AccountType:  domain.AccountType(model.Tipo),
		Active:       model.Ativo,
		PasswordHash: model.PasswordHash,
		Phone:        model.Telefone,
		CPF:          model.CPF,
		CNPJ:         model.CNPJ,
		CompanyName:  model.NomeEmpresa,
		BirthDate:    dateonly.FromTime(model.BirthDate),
		Address: domain.Address{
			Street:     model.Rua,
			Number:     model.Numero,
			Complement: model.Complemento,
			District:   model.Bairro,
			City:       model.Cidade,
			State:      model.Estado,
			ZipCode:    model.CEP,
		},
		Avatar: model.Avatar,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}

// writeArgs lists the mutable columns in the order used by InsertUser and
// UpdateUserByID.
func writeArgs(u domain.User) ([]any, error) {
	birth, err := dateonly.ToTime(u.BirthDate)
	if err != nil {
		return nil, err
	}

	return []any{
		u.FullName,
		domain.NormalizeEmail(u.Email),
		u.Avatar,
		string(u.AccountType),
		u.Phone,
		u.CPF,
		u.CNPJ,
		u.CompanyName,
		u.Active,
		birth,
		u.Address.Street,
		u.Address.Number,
		u.Address.Complement,
		u.Address.District,
		u.Address.City,
		u.Address.State,
		u.Address.ZipCode,
	}, nil
}
