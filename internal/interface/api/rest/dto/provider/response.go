package provider

import (
	"time"

	"github.com/google/uuid"
)

type (
	Service struct {
		Nome  string   `json:"nome"`
		Preco *float64 `json:"preco"`
	}

	Provider struct {
		ID             uuid.UUID  `json:"id"`
		UserID         *uuid.UUID `json:"user_id"`
		UserEmail      *string    `json:"user_email"`
		Nome           string     `json:"nome"`
		CPF            *string    `json:"cpf"`
		DataNascimento *string    `json:"data_nascimento"`
		Telefone       string     `json:"telefone"`
		NomeEmpresa    *string    `json:"nome_empresa"`
		CNPJ           *string    `json:"cnpj"`
		TipoEmpresa    *string    `json:"tipo_empresa"`

		CategoriaID   *uuid.UUID `json:"categoria_id"`
		CategoriaNome *string    `json:"categoria_nome"`
		Descricao     *string    `json:"descricao"`
		Servicos      []Service  `json:"servicos"`

		ValorHora             *float64 `json:"valor_hora"`
		PrecoBase             *float64 `json:"preco_base"`
		TempoMedioAtendimento *string  `json:"tempo_medio_atendimento"`
		DiasDisponiveis       *string  `json:"dias_disponiveis"`
		HorariosDisponiveis   *string  `json:"horarios_disponiveis"`

		Rua             *string  `json:"rua"`
		Numero          *string  `json:"numero"`
		Complemento     *string  `json:"complemento"`
		Bairro          *string  `json:"bairro"`
		Cidade          *string  `json:"cidade"`
		Estado          *string  `json:"estado"`
		CEP             *string  `json:"cep"`
		RaioAtendimento *float64 `json:"raio_atendimento"`

		Foto           *string  `json:"foto"`
		FotoFacial     *string  `json:"foto_facial"`
		FotoDocumento  *string  `json:"foto_documento"`
		LogoEmpresa    *string  `json:"logo_empresa"`
		FotosTrabalhos []string `json:"fotos_trabalhos"`

		Avaliacao       float64  `json:"avaliacao"`
		Destaque        bool     `json:"destaque"`
		StatusAprovacao string   `json:"status_aprovacao"`
		Ativo           bool     `json:"ativo"`
		Latitude        *float64 `json:"latitude"`
		Longitude       *float64 `json:"longitude"`

		CreatedDate time.Time `json:"created_date"`
		UpdatedDate time.Time `json:"updated_date"`
	}
	Providers     []Provider
	ResponseItems struct {
		Items Providers `json:"items"`
	}
)
