package profile

import (
	"servija-api/internal/domain/profile"
	"servija-api/internal/interface/api/rest/dto/provider"
	"servija-api/internal/interface/api/rest/dto/user"
)

type (
	// MergeRequest accepts the provider half under "provider" or the legacy
	// "prestador" key. "provider" wins when both are sent.
	MergeRequest struct {
		User      user.PatchRequest      `json:"user"`
		Provider  *provider.PatchRequest `json:"provider"`
		Prestador *provider.PatchRequest `json:"prestador"`
	}

	Response struct {
		User     user.User          `json:"user"`
		Provider *provider.Provider `json:"provider"`
	}
)

func ToDomainPatch(r MergeRequest) profile.Patch {
	pr := r.Provider
	if pr == nil {
		pr = r.Prestador
	}

	return profile.Patch{
		User:     user.ToDomainPatch(r.User),
		Provider: provider.ToDomainPatch(pr),
	}
}

func ToResponse(p profile.Profile) Response {
	out := Response{User: user.ToResponseUser(*p.User)}
	if p.Provider != nil {
		pr := provider.ToResponseProvider(*p.Provider)
		out.Provider = &pr
	}

	return out
}
