// Package profile groups an Identity with the provider profile it owns.
package profile

import (
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/user"
)

type (
	Profile struct {
		User     *user.User
		Provider *provider.Provider
	}

	// Patch is the combined Identity + provider update.
	Patch struct {
		User     user.Patch
		Provider provider.Patch
	}
)
