package provider

import (
	"time"

	"github.com/google/uuid"

	"servija-api/internal/domain/user"
)

type (
	UUID           = uuid.UUID
	ApprovalStatus string
	CompanyType    string

	// Service is one entry of the offered services list, stored as JSON.
	Service struct {
		Name  string   `json:"nome"`
		Price *float64 `json:"preco"`
	}

	Provider struct {
		ID        UUID
		UserID    *UUID
		UserEmail *string

		Name        string
		CPF         *string
		BirthDate   *string
		Phone       string
		CompanyName *string
		CNPJ        *string
		CompanyType *CompanyType

		CategoryID   *UUID
		CategoryName *string
		Description  *string
		Services     []Service

		HourlyRate         *float64
		BasePrice          *float64
		AverageServiceTime *string
		AvailableDays      *string
		AvailableHours     *string

		Street     *string
		Number     *string
		Complement *string
		District   *string
		City       *string
		State      *string
		ZipCode    *string
		Radius     *float64

		Photo         *string
		FacePhoto     *string
		DocumentPhoto *string
		CompanyLogo   *string
		WorkPhotos    []string

		Rating         float64
		Featured       bool
		ApprovalStatus ApprovalStatus
		Active         bool
		Latitude       *float64
		Longitude      *float64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Providers []*Provider

	Filter struct {
		CategoryID *UUID
		UserID     *UUID
		UserEmail  *string
		Active     *bool
		Featured   *bool
	}
)

const (
	StatusPending  ApprovalStatus = "pendente"
	StatusApproved ApprovalStatus = "aprovado"
	StatusRejected ApprovalStatus = "reprovado"

	DefaultRating = 5.0
)

var companyTypes = map[CompanyType]struct{}{
	"MEI":      {},
	"LTDA":     {},
	"Autônomo": {},
	"Outro":    {},
}

func ValidCompanyType(t string) bool {
	_, ok := companyTypes[CompanyType(t)]
	return ok
}

// OwnedBy reports whether the owner pointer already matches id and email.
// Emails are compared normalised.
func (p *Provider) OwnedBy(id UUID, email string) bool {
	return p.UserID != nil && *p.UserID == id &&
		p.UserEmail != nil && user.NormalizeEmail(*p.UserEmail) == user.NormalizeEmail(email)
}
