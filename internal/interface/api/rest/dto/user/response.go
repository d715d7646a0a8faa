package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID             uuid.UUID `json:"id"`
		Email          string    `json:"email"`
		FullName       string    `json:"full_name"`
		Tipo           string    `json:"tipo"`
		Role           string    `json:"role"`
		Ativo          bool      `json:"ativo"`
		Telefone       *string   `json:"telefone"`
		CPF            *string   `json:"cpf"`
		CNPJ           *string   `json:"cnpj"`
		NomeEmpresa    *string   `json:"nome_empresa"`
		DataNascimento *string   `json:"data_nascimento"`
		Rua            *string   `json:"rua"`
		Numero         *string   `json:"numero"`
		Complemento    *string   `json:"complemento"`
		Bairro         *string   `json:"bairro"`
		Cidade         *string   `json:"cidade"`
		Estado         *string   `json:"estado"`
		CEP            *string   `json:"cep"`
		Avatar         *string   `json:"avatar"`
		CreatedDate    time.Time `json:"created_date"`
		UpdatedDate    time.Time `json:"updated_date"`
	}
	Users         []User
	ResponseItems struct {
		Items Users `json:"items"`
	}
)
