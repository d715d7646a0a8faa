package request

import (
	"time"

	"github.com/google/uuid"

	"servija-api/internal/domain/request"
	"servija-api/pkg/optional"
)

type (
	Request struct {
		ID                uuid.UUID  `json:"id"`
		ClienteID         *uuid.UUID `json:"cliente_id"`
		ClienteEmail      string     `json:"cliente_email"`
		ClienteNome       *string    `json:"cliente_nome"`
		PrestadorID       uuid.UUID  `json:"prestador_id"`
		PrestadorEmail    *string    `json:"prestador_email"`
		PrestadorNome     *string    `json:"prestador_nome"`
		CategoriaNome     *string    `json:"categoria_nome"`
		Descricao         string     `json:"descricao"`
		PrecoProposto     *float64   `json:"preco_proposto"`
		PrecoAcordado     *float64   `json:"preco_acordado"`
		Status            string     `json:"status"`
		RespostaPrestador *string    `json:"resposta_prestador"`
		CreatedDate       time.Time  `json:"created_date"`
		UpdatedDate       time.Time  `json:"updated_date"`
	}
	Requests      []Request
	ResponseItems struct {
		Items Requests `json:"items"`
	}

	CreateRequest struct {
		PrestadorID       string                  `json:"prestador_id"`
		Descricao         string                  `json:"descricao"`
		PrecoProposto     optional.Value[float64] `json:"preco_proposto"`
		PrecoAcordado     optional.Value[float64] `json:"preco_acordado"`
		Status            optional.Value[string]  `json:"status"`
		RespostaPrestador optional.Value[string]  `json:"resposta_prestador"`
	}

	PatchRequest struct {
		Status            optional.Value[string]  `json:"status"`
		PrecoProposto     optional.Value[float64] `json:"preco_proposto"`
		PrecoAcordado     optional.Value[float64] `json:"preco_acordado"`
		RespostaPrestador optional.Value[string]  `json:"resposta_prestador"`
	}
)

func ToResponseRequest(r request.Request) Request {
	return Request{
		ID:                r.ID,
		ClienteID:         r.ClientID,
		ClienteEmail:      r.ClientEmail,
		ClienteNome:       r.ClientName,
		PrestadorID:       r.ProviderID,
		PrestadorEmail:    r.ProviderEmail,
		PrestadorNome:     r.ProviderName,
		CategoriaNome:     r.CategoryName,
		Descricao:         r.Description,
		PrecoProposto:     r.ProposedPrice,
		PrecoAcordado:     r.AgreedPrice,
		Status:            string(r.Status),
		RespostaPrestador: r.ProviderAnswer,
		CreatedDate:       r.CreatedAt,
		UpdatedDate:       r.UpdatedAt,
	}
}

func ToResponseRequests(rsDomain request.Requests) Requests {
	rs := make(Requests, len(rsDomain))
	for idx, r := range rsDomain {
		rs[idx] = ToResponseRequest(*r)
	}

	return rs
}

// ToDomainDraft expects a prestador_id already validated as a UUID.
func ToDomainDraft(r CreateRequest, providerID uuid.UUID) request.Draft {
	return request.Draft{
		ProviderID:     providerID,
		Description:    r.Descricao,
		ProposedPrice:  r.PrecoProposto.Ptr(),
		AgreedPrice:    r.PrecoAcordado.Ptr(),
		Status:         r.Status.Ptr(),
		ProviderAnswer: r.RespostaPrestador.Ptr(),
	}
}

func ToDomainPatch(r PatchRequest) request.Patch {
	return request.Patch{
		Status:         r.Status,
		ProposedPrice:  r.PrecoProposto,
		AgreedPrice:    r.PrecoAcordado,
		ProviderAnswer: r.RespostaPrestador,
	}
}
