package provider

import "servija-api/pkg/optional"

type (
	ServiceRequest struct {
		Nome  string                  `json:"nome"`
		Preco optional.Value[float64] `json:"preco"`
	}

	// PatchRequest is the provider half of a profile merge. categoria_nome is
	// accepted but never trusted, the name always comes from the category.
	PatchRequest struct {
		TipoEmpresa           optional.Value[string]           `json:"tipo_empresa"`
		Descricao             optional.Value[string]           `json:"descricao"`
		Servicos              optional.Value[[]ServiceRequest] `json:"servicos"`
		ValorHora             optional.Value[float64]          `json:"valor_hora"`
		PrecoBase             optional.Value[float64]          `json:"preco_base"`
		TempoMedioAtendimento optional.Value[string]           `json:"tempo_medio_atendimento"`
		DiasDisponiveis       optional.Value[string]           `json:"dias_disponiveis"`
		HorariosDisponiveis   optional.Value[string]           `json:"horarios_disponiveis"`
		RaioAtendimento       optional.Value[float64]          `json:"raio_atendimento"`
		Foto                  optional.Value[string]           `json:"foto"`
		FotoFacial            optional.Value[string]           `json:"foto_facial"`
		FotoDocumento         optional.Value[string]           `json:"foto_documento"`
		LogoEmpresa           optional.Value[string]           `json:"logo_empresa"`
		FotosTrabalhos        optional.Value[[]string]         `json:"fotos_trabalhos"`
		Latitude              optional.Value[float64]          `json:"latitude"`
		Longitude             optional.Value[float64]          `json:"longitude"`

		CategoriaID   optional.Value[string] `json:"categoria_id"`
		CategoriaNome optional.Value[string] `json:"categoria_nome"`
		Telefone      optional.Value[string] `json:"telefone"`
	}

	ModerationRequest struct {
		StatusAprovacao optional.Value[string]  `json:"status_aprovacao"`
		Destaque        optional.Value[bool]    `json:"destaque"`
		Ativo           optional.Value[bool]    `json:"ativo"`
		Avaliacao       optional.Value[float64] `json:"avaliacao"`
	}
)
