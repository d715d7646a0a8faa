package provider

import (
	"time"

	"github.com/google/uuid"
)

type (
	Provider struct {
		ID                    uuid.UUID
		UserID                *uuid.UUID
		UserEmail             *string
		Nome                  string
		CPF                   *string
		BirthDate             *time.Time
		Telefone              string
		NomeEmpresa           *string
		CNPJ                  *string
		TipoEmpresa           *string
		CategoriaID           *uuid.UUID
		CategoriaNome         *string
		Descricao             *string
		Servicos              []byte
		ValorHora             *float64
		PrecoBase             *float64
		TempoMedioAtendimento *string
		DiasDisponiveis       *string
		HorariosDisponiveis   *string
		Rua                   *string
		Numero                *string
		Complemento           *string
		Bairro                *string
		Cidade                *string
		Estado                *string
		CEP                   *string
		RaioAtendimento       *float64
		Foto                  *string
		FotoFacial            *string
		FotoDocumento         *string
		LogoEmpresa           *string
		FotosTrabalhos        []byte
		Avaliacao             float64
		Destaque              bool
		StatusAprovacao       string
		Ativo                 bool
		Latitude              *float64
		Longitude             *float64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Providers []*Provider
)
