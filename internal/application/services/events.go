package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"servija-api/internal/application/ports"
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
	"servija-api/internal/infrastructure/mq"
)

type (
	identityEvent struct {
		Email       string `json:"email"`
		FullName    string `json:"full_name"`
		AccountType string `json:"tipo"`
		Active      bool   `json:"ativo"`
	}
	providerEvent struct {
		ProviderID     string `json:"provider_id"`
		UserEmail      string `json:"user_email"`
		CategoryID     string `json:"categoria_id,omitempty"`
		ApprovalStatus string `json:"status_aprovacao"`
		Active         bool   `json:"ativo"`
	}
)

func identityEventOf(eventType string, u *user.User) mq.Event {
	return mq.NewEvent(eventType, u.ID.String(), identityEvent{
		Email:       u.Email,
		FullName:    u.FullName,
		AccountType: string(u.AccountType),
		Active:      u.Active,
	})
}

func providerEventOf(eventType string, ownerID user.UUID, p *provider.Provider) mq.Event {
	payload := providerEvent{
		ProviderID:     p.ID.String(),
		UserEmail:      strOr(p.UserEmail),
		ApprovalStatus: string(p.ApprovalStatus),
		Active:         p.Active,
	}
	if p.CategoryID != nil {
		payload.CategoryID = p.CategoryID.String()
	}
	return mq.NewEvent(eventType, ownerID.String(), payload)
}

// publish hands events to the broker after the transaction committed.
// Dropped events are only counted.
func publish(pub ports.EventPublisher, mCounter *prometheus.CounterVec, events ...mq.Event) {
	if pub == nil {
		return
	}
	for _, e := range events {
		if !pub.Emit(e) {
			mCounter.WithLabelValues(metrics.EventDroppedTotal).Inc()
		}
	}
}
