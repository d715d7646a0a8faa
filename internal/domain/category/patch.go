package category

import "servija-api/pkg/optional"

type Patch struct {
	Name   optional.Value[string]
	Icon   optional.Value[string]
	Active optional.Value[bool]
}

func (p Patch) IsEmpty() bool {
	return !p.Name.Present && !p.Icon.Present && !p.Active.Present
}
