package provider

import "servija-api/pkg/optional"

// Moderation holds the fields only administrators curate.
type Moderation struct {
	ApprovalStatus optional.Value[string]
	Featured       optional.Value[bool]
	Active         optional.Value[bool]
	Rating         optional.Value[float64]
}

func (m Moderation) IsEmpty() bool {
	return !m.ApprovalStatus.Present && !m.Featured.Present && !m.Active.Present && !m.Rating.Present
}

func ValidApprovalStatus(s string) bool {
	switch ApprovalStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
