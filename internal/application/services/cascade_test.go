package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servija-api/internal/domain/request"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
)

func TestPropagate(t *testing.T) {
	id := uuid.New()
	before := user.User{ID: id, Email: "ana@example.com", FullName: "Ana"}

	tests := []struct {
		name       string
		after      user.User
		wantClient string
		wantName   string
		wantRows   float64
	}{
		{
			name:       "nothing changed",
			after:      user.User{ID: id, Email: " ANA@example.com", FullName: " Ana "},
			wantClient: "ana@example.com",
			wantName:   "Ana",
		},
		{
			name:       "email changed",
			after:      user.User{ID: id, Email: "ana.s@example.com", FullName: "Ana"},
			wantClient: "ana.s@example.com",
			wantName:   "Ana",
			wantRows:   2,
		},
		{
			name:       "name changed",
			after:      user.User{ID: id, Email: "ana@example.com", FullName: "Ana Souza"},
			wantClient: "ana@example.com",
			wantName:   "Ana Souza",
			wantRows:   2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness()
			r := h.store.addRequest(request.Request{
				ClientID:    uuidPtr(id),
				ClientEmail: "ana@example.com",
				ClientName:  strPtr("Ana"),
				ProviderID:  uuid.New(),
			})
			// client and provider of the same request at once
			mirror := h.store.addRequest(request.Request{
				ClientEmail:   "zed@example.com",
				ProviderID:    uuid.New(),
				ProviderEmail: strPtr("ana@example.com"),
				ProviderName:  strPtr("Ana"),
			})

			p := NewPropagator(h.store, h.store, nopLog(), h.counter)
			require.NoError(t, p.Propagate(context.Background(), before, tc.after))

			assert.Equal(t, tc.wantClient, h.store.requests[r.ID].ClientEmail)
			assert.Equal(t, tc.wantName, *h.store.requests[r.ID].ClientName)
			assert.Equal(t, tc.wantClient, *h.store.requests[mirror.ID].ProviderEmail)
			assert.Equal(t, tc.wantName, *h.store.requests[mirror.ID].ProviderName)
			assert.Equal(t, tc.wantRows, testutil.ToFloat64(h.counter.WithLabelValues(metrics.CascadeRowsTotal)))
		})
	}
}
