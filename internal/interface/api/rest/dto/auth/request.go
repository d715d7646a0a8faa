package auth

import "servija-api/pkg/optional"

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Tipo     string `json:"tipo"`

		Telefone       optional.Value[string] `json:"telefone"`
		CEP            optional.Value[string] `json:"cep"`
		CPF            optional.Value[string] `json:"cpf"`
		CNPJ           optional.Value[string] `json:"cnpj"`
		NomeEmpresa    optional.Value[string] `json:"nome_empresa"`
		DataNascimento optional.Value[string] `json:"data_nascimento"`
		Rua            optional.Value[string] `json:"rua"`
		Numero         optional.Value[string] `json:"numero"`
		Complemento    optional.Value[string] `json:"complemento"`
		Bairro         optional.Value[string] `json:"bairro"`
		Cidade         optional.Value[string] `json:"cidade"`
		Estado         optional.Value[string] `json:"estado"`
	}
)
