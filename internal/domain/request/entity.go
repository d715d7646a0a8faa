package request

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID   = uuid.UUID
	Status string

	// Request keeps a snapshot of client and provider contact data taken at
	// creation time and refreshed when the owners change email or name.
	Request struct {
		ID             UUID
		ClientID       *UUID
		ClientEmail    string
		ClientName     *string
		ProviderID     UUID
		ProviderEmail  *string
		ProviderName   *string
		CategoryName   *string
		Description    string
		ProposedPrice  *float64
		AgreedPrice    *float64
		Status         Status
		ProviderAnswer *string
		CreatedAt      time.Time
		UpdatedAt      time.Time
	}
	Requests []*Request

	Filter struct {
		ClientEmail   *string
		ProviderEmail *string
		Status        *Status
		// Participant restricts results to rows where the email is the
		// client or the provider.
		Participant *string
	}
)

const (
	StatusOpen      Status = "aberto"
	StatusAccepted  Status = "aceito"
	StatusDone      Status = "concluido"
	StatusCancelled Status = "cancelado"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusOpen, StatusAccepted, StatusDone, StatusCancelled:
		return true
	}
	return false
}
