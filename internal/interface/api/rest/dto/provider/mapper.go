package provider

import (
	"servija-api/internal/domain/provider"
	"servija-api/pkg/optional"
)

func ToResponseProvider(p provider.Provider) Provider {
	out := Provider{
		ID:                    p.ID,
		UserID:                p.UserID,
		UserEmail:             p.UserEmail,
		Nome:                  p.Name,
		CPF:                   p.CPF,
		DataNascimento:        p.BirthDate,
		Telefone:              p.Phone,
		NomeEmpresa:           p.CompanyName,
		CNPJ:                  p.CNPJ,
		CategoriaID:           p.CategoryID,
		CategoriaNome:         p.CategoryName,
		Descricao:             p.Description,
		Servicos:              make([]Service, len(p.Services)),
		ValorHora:             p.HourlyRate,
		PrecoBase:             p.BasePrice,
		TempoMedioAtendimento: p.AverageServiceTime,
		DiasDisponiveis:       p.AvailableDays,
		HorariosDisponiveis:   p.AvailableHours,
		Rua:                   p.Street,
		Numero:                p.Number,
		Complemento:           p.Complement,
		Bairro:                p.District,
		Cidade:                p.City,
		Estado:                p.State,
		CEP:                   p.ZipCode,
		RaioAtendimento:       p.Radius,
		Foto:                  p.Photo,
		FotoFacial:            p.FacePhoto,
		FotoDocumento:         p.DocumentPhoto,
		LogoEmpresa:           p.CompanyLogo,
		FotosTrabalhos:        p.WorkPhotos,
		Avaliacao:             p.Rating,
		Destaque:              p.Featured,
		StatusAprovacao:       string(p.ApprovalStatus),
		Ativo:                 p.Active,
		Latitude:              p.Latitude,
		Longitude:             p.Longitude,
		CreatedDate:           p.CreatedAt,
		UpdatedDate:           p.UpdatedAt,
	}
	if p.CompanyType != nil {
		ct := string(*p.CompanyType)
		out.TipoEmpresa = &ct
	}
	for i, s := range p.Services {
		out.Servicos[i] = Service{Nome: s.Name, Preco: s.Price}
	}
	if out.FotosTrabalhos == nil {
		out.FotosTrabalhos = []string{}
	}

	return out
}

func ToResponseProviders(psDomain provider.Providers) Providers {
	ps := make(Providers, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponseProvider(*p)
	}

	return ps
}

// ToDomainPatch maps a missing provider object to an empty patch.
func ToDomainPatch(r *PatchRequest) provider.Patch {
	if r == nil {
		return provider.Patch{}
	}

	pt := provider.Patch{
		CompanyType:        r.TipoEmpresa,
		Description:        r.Descricao,
		HourlyRate:         r.ValorHora,
		BasePrice:          r.PrecoBase,
		AverageServiceTime: r.TempoMedioAtendimento,
		AvailableDays:      r.DiasDisponiveis,
		AvailableHours:     r.HorariosDisponiveis,
		Radius:             r.RaioAtendimento,
		Photo:              r.Foto,
		FacePhoto:          r.FotoFacial,
		DocumentPhoto:      r.FotoDocumento,
		CompanyLogo:        r.LogoEmpresa,
		WorkPhotos:         r.FotosTrabalhos,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		CategoryID:         r.CategoriaID,
		Phone:              r.Telefone,
	}
	if r.Servicos.Present {
		if r.Servicos.Null {
			pt.Services = optional.Null[[]provider.Service]()
		} else {
			services := make([]provider.Service, len(r.Servicos.V))
			for i, s := range r.Servicos.V {
				services[i] = provider.Service{Name: s.Nome, Price: s.Preco.Ptr()}
			}
			pt.Services = optional.Of(services)
		}
	}

	return pt
}

func ToDomainModeration(r ModerationRequest) provider.Moderation {
	return provider.Moderation{
		ApprovalStatus: r.StatusAprovacao,
		Featured:       r.Destaque,
		Active:         r.Ativo,
		Rating:         r.Avaliacao,
	}
}
