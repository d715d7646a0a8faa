package user

import (
	"servija-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		ID:             uDomain.ID,
		Email:          uDomain.Email,
		FullName:       uDomain.FullName,
		Tipo:           string(uDomain.AccountType),
		Role:           uDomain.Role(),
		Ativo:          uDomain.Active,
		Telefone:       uDomain.Phone,
		CPF:            uDomain.CPF,
		CNPJ:           uDomain.CNPJ,
		NomeEmpresa:    uDomain.CompanyName,
		DataNascimento: uDomain.BirthDate,
		Rua:            uDomain.Address.Street,
		Numero:         uDomain.Address.Number,
		Complemento:    uDomain.Address.Complement,
		Bairro:         uDomain.Address.District,
		Cidade:         uDomain.Address.City,
		Estado:         uDomain.Address.State,
		CEP:            uDomain.Address.ZipCode,
		Avatar:         uDomain.Avatar,
		CreatedDate:    uDomain.CreatedAt,
		UpdatedDate:    uDomain.UpdatedAt,
	}
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainPatch(r PatchRequest) user.Patch {
	return user.Patch{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Telefone,
		CPF:         r.CPF,
		CNPJ:        r.CNPJ,
		CompanyName: r.NomeEmpresa,
		BirthDate:   r.DataNascimento,
		Street:      r.Rua,
		Number:      r.Numero,
		Complement:  r.Complemento,
		District:    r.Bairro,
		City:        r.Cidade,
		State:       r.Estado,
		ZipCode:     r.CEP,
		AccountType: r.Tipo,
		Avatar:      r.Avatar,
	}
}

func ToDomainAdminPatch(r AdminPatchRequest) user.AdminPatch {
	return user.AdminPatch{
		AccountType: r.Tipo,
		Active:      r.Ativo,
	}
}
