package provider

import (
	"encoding/json"
	"fmt"

	domain "servija-api/internal/domain/provider"
	"servija-api/pkg/dateonly"
)

func fromDBModel(m *Provider) (*domain.Provider, error) {
	p := &domain.Provider{
		ID:                 m.ID,
		UserID:             m.UserID,
		UserEmail:          m.UserEmail,
		Name:               m.Nome,
		CPF:                m.CPF,
		BirthDate:          dateonly.FromTime(m.BirthDate),
		Phone:              m.Telefone,
		CompanyName:        m.NomeEmpresa,
		CNPJ:               m.CNPJ,
		CategoryID:         m.CategoriaID,
		CategoryName:       m.CategoriaNome,
		Description:        m.Descricao,
		HourlyRate:         m.ValorHora,
		BasePrice:          m.PrecoBase,
		AverageServiceTime: m.TempoMedioAtendimento,
		AvailableDays:      m.DiasDisponiveis,
		AvailableHours:     m.HorariosDisponiveis,
		Street:             m.Rua,
		Number:             m.Numero,
		Complement:         m.Complemento,
		District:           m.Bairro,
		City:               m.Cidade,
		State:              m.Estado,
		ZipCode:            m.CEP,
		Radius:             m.RaioAtendimento,
		Photo:              m.Foto,
		FacePhoto:          m.FotoFacial,
		DocumentPhoto:      m.FotoDocumento,
		CompanyLogo:        m.LogoEmpresa,
		Rating:             m.Avaliacao,
		Featured:           m.Destaque,
		ApprovalStatus:     domain.ApprovalStatus(m.StatusAprovacao),
		Active:             m.Ativo,
		Latitude:           m.Latitude,
		Longitude:          m.Longitude,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.TipoEmpresa != nil {
		ct := domain.CompanyType(*m.TipoEmpresa)
		p.CompanyType = &ct
	}

	p.Services = []domain.Service{}
	if len(m.Servicos) > 0 {
		if err := json.Unmarshal(m.Servicos, &p.Services); err != nil {
			return nil, fmt.Errorf("decode servicos of %s: %w", m.ID, err)
		}
	}
	p.WorkPhotos = []string{}
	if len(m.FotosTrabalhos) > 0 {
		if err := json.Unmarshal(m.FotosTrabalhos, &p.WorkPhotos); err != nil {
			return nil, fmt.Errorf("decode fotos_trabalhos of %s: %w", m.ID, err)
		}
	}

	return p, nil
}

func fromDBModels(models Providers) (domain.Providers, error) {
	ps := make(domain.Providers, len(models))
	for idx, m := range models {
		p, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		ps[idx] = p
	}

	return ps, nil
}

func jsonList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// writeArgs lists the mutable columns in the order used by InsertProvider
// and UpdateProviderByID.
func writeArgs(p domain.Provider) ([]any, error) {
	birth, err := dateonly.ToTime(p.BirthDate)
	if err != nil {
		return nil, err
	}
	services, err := jsonList(p.Services)
	if err != nil {
		return nil, err
	}
	photos, err := jsonList(p.WorkPhotos)
	if err != nil {
		return nil, err
	}
	var companyType *string
	if p.CompanyType != nil {
		ct := string(*p.CompanyType)
		companyType = &ct
	}
	status := p.ApprovalStatus
	if status == "" {
		status = domain.StatusPending
	}

	return []any{
		p.UserID,
		p.UserEmail,
		p.Name,
		p.CPF,
		birth,
		p.Phone,
		p.CompanyName,
		p.CNPJ,
		companyType,
		p.CategoryID,
		p.CategoryName,
		p.Description,
		services,
		p.HourlyRate,
		p.BasePrice,
		p.AverageServiceTime,
		p.AvailableDays,
		p.AvailableHours,
		p.Street,
		p.Number,
		p.Complement,
		p.District,
		p.City,
		p.State,
		p.ZipCode,
		p.Radius,
		p.Photo,
		p.FacePhoto,
		p.DocumentPhoto,
		p.CompanyLogo,
		photos,
		p.Rating,
		p.Featured,
		string(status),
		p.Active,
		p.Latitude,
		p.Longitude,
	}, nil
}
