package auth

import (
	domain "servija-api/internal/domain/user"
	"servija-api/internal/interface/api/rest/dto/user"
)

const tokenType = "Bearer"

func ToDomainRegistration(r RegisterRequest) domain.Registration {
	return domain.Registration{
		FullName:    r.FullName,
		Email:       r.Email,
		Password:    r.Password,
		AccountType: r.Tipo,
		Phone:       r.Telefone.V,
		ZipCode:     r.CEP.V,
		CPF:         r.CPF.Ptr(),
		CNPJ:        r.CNPJ.Ptr(),
		CompanyName: r.NomeEmpresa.Ptr(),
		BirthDate:   r.DataNascimento.Ptr(),
		Address: domain.Address{
			Street:     r.Rua.Ptr(),
			Number:     r.Numero.Ptr(),
			Complement: r.Complemento.Ptr(),
			District:   r.Bairro.Ptr(),
			City:       r.Cidade.Ptr(),
			State:      r.Estado.Ptr(),
			ZipCode:    r.CEP.Ptr(),
		},
	}
}

func ToResponseSession(s domain.Session) SessionResponse {
	return SessionResponse{
		AccessToken: s.Token,
		TokenType:   tokenType,
		User:        user.ToResponseUser(*s.User),
	}
}
