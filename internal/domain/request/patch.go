package request

import "servija-api/pkg/optional"

type (
	// Draft is a new request as posted by a client.
	Draft struct {
		ProviderID     UUID
		Description    string
		ProposedPrice  *float64
		AgreedPrice    *float64
		Status         *string
		ProviderAnswer *string
	}

	Patch struct {
		Status         optional.Value[string]
		ProposedPrice  optional.Value[float64]
		AgreedPrice    optional.Value[float64]
		ProviderAnswer optional.Value[string]
	}
)

func (p Patch) IsEmpty() bool {
	return !p.Status.Present && !p.ProposedPrice.Present && !p.AgreedPrice.Present && !p.ProviderAnswer.Present
}
