package user

import "servija-api/pkg/optional"

type (
	// PatchRequest lists the Identity fields a user may change on their own
	// account. Unknown keys are ignored.
	PatchRequest struct {
		FullName       optional.Value[string] `json:"full_name"`
		Email          optional.Value[string] `json:"email"`
		Telefone       optional.Value[string] `json:"telefone"`
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
		CEP            optional.Value[string] `json:"cep"`
		Tipo           optional.Value[string] `json:"tipo"`
		Avatar         optional.Value[string] `json:"avatar"`
	}

	AdminPatchRequest struct {
		Tipo  optional.Value[string] `json:"tipo"`
		Ativo optional.Value[bool]   `json:"ativo"`
	}
)
