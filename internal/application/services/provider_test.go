package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servija-api/internal/application/apperr"
	"servija-api/internal/domain/provider"
	"servija-api/internal/infrastructure/mq"
	"servija-api/pkg/optional"
)

func TestFindProviders(t *testing.T) {
	h := newHarness()
	cat := h.store.addCategory("Pintor")
	_, p := seedProvider(h, "ana@example.com", cat.ID)
	h.store.addProvider(provider.Provider{Name: "off", Phone: "1"})

	active := true
	got, err := h.providers.FindProviders(context.Background(), provider.Filter{Active: &active, CategoryID: uuidPtr(cat.ID)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p.ID, got[0].ID)

	one, err := h.providers.FindProviderByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", one.Name)

	_, err = h.providers.FindProviderByID(context.Background(), uuid.New())
	requireKind(t, err, apperr.KindNotFound, msgProviderNotFound)
}

func TestModerateProvider(t *testing.T) {
	h := newHarness()
	cat := h.store.addCategory("Pintor")
	u, p := seedProvider(h, "ana@example.com", cat.ID)

	got, err := h.providers.ModerateProvider(context.Background(), p.ID, provider.Moderation{
		ApprovalStatus: optional.Of("aprovado"),
		Featured:       optional.Of(true),
		Rating:         optional.Of(4.0),
	})
	require.NoError(t, err)
	assert.Equal(t, provider.StatusApproved, got.ApprovalStatus)
	assert.True(t, got.Featured)
	assert.Equal(t, 4.0, got.Rating)
	assert.True(t, h.store.users[u.ID].Active)

	got, err = h.providers.ModerateProvider(context.Background(), p.ID, provider.Moderation{Active: optional.Of(false)})
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.False(t, h.store.users[u.ID].Active)
	assert.Equal(t, []string{mq.ProviderUpdated, mq.ProviderDeactivated}, h.pub.types())
}

func TestModerateProvider_Validation(t *testing.T) {
	h := newHarness()
	cat := h.store.addCategory("Pintor")
	_, p := seedProvider(h, "ana@example.com", cat.ID)

	tests := []struct {
		name string
		m    provider.Moderation
		kind apperr.Kind
	}{
		{name: "empty", m: provider.Moderation{}, kind: apperr.KindValidation},
		{name: "bad status", m: provider.Moderation{ApprovalStatus: optional.Of("talvez")}, kind: apperr.KindValidation},
		{name: "rating out of range", m: provider.Moderation{Rating: optional.Of(7.0)}, kind: apperr.KindValidation},
		{name: "null featured", m: provider.Moderation{Featured: optional.Null[bool]()}, kind: apperr.KindValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.providers.ModerateProvider(context.Background(), p.ID, tc.m)
			requireKind(t, err, tc.kind, "")
			assert.Equal(t, provider.StatusApproved, h.store.providers[p.ID].ApprovalStatus)
		})
	}

	_, err := h.providers.ModerateProvider(context.Background(), uuid.New(), provider.Moderation{Featured: optional.Of(true)})
	requireKind(t, err, apperr.KindNotFound, msgProviderNotFound)
}
