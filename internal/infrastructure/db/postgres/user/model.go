package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID
		FullName     string
		Email        string
		PasswordHash *string
		Avatar       *string
		Tipo         string
		Telefone     *string
		CPF          *string
		CNPJ         *string
		NomeEmpresa  *string
		Ativo        bool
		BirthDate    *time.Time
		Rua          *string
		Numero       *string
		Complemento  *string
		Bairro       *string
		Cidade       *string
		Estado       *string
		CEP          *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
