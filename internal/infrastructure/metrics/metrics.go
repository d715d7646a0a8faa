package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter names used with WithLabelValues across the services.
const (
	RegisterTotal          = "user_registered_total"
	LoginFailedTotal       = "login_failed_total"
	IdentityUpdatedTotal   = "identity_updated_total"
	IdentityDeletedTotal   = "identity_deleted_total"
	ProviderCreatedTotal   = "provider_created_total"
	ProviderUpdatedTotal   = "provider_updated_total"
	ProviderDeactivated    = "provider_deactivated_total"
	OwnershipHealedTotal   = "ownership_healed_total"
	OwnerConflictTotal     = "provider_owner_conflict_total"
	CascadeRowsTotal       = "cascade_rows_total"
	CategoryCacheHitTotal  = "category_cache_hit_total"
	CategoryCacheMissTotal = "category_cache_miss_total"
	RequestCreatedTotal    = "request_created_total"
	EventDroppedTotal      = "event_dropped_total"
	RateLimitedTotal       = "rate_limited_total"
	RequestsTotal          = "app_requests_total"
)

func NewCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "servija",
			Name:      "general_counters",
		},
		[]string{"result"})
}
