package provider

import "servija-api/pkg/optional"

// Patch carries the provider-only fields of a profile update. Services and
// WorkPhotos replace the stored lists wholesale.
type Patch struct {
	CompanyType        optional.Value[string]
	Description        optional.Value[string]
	Services           optional.Value[[]Service]
	HourlyRate         optional.Value[float64]
	BasePrice          optional.Value[float64]
	AverageServiceTime optional.Value[string]
	AvailableDays      optional.Value[string]
	AvailableHours     optional.Value[string]
	Radius             optional.Value[float64]
	Photo              optional.Value[string]
	FacePhoto          optional.Value[string]
	DocumentPhoto      optional.Value[string]
	CompanyLogo        optional.Value[string]
	WorkPhotos         optional.Value[[]string]
	Latitude           optional.Value[float64]
	Longitude          optional.Value[float64]

	CategoryID optional.Value[string]
	Phone      optional.Value[string]
}

// Apply writes the present provider-only fields onto p.
func (pt Patch) Apply(p *Provider) {
	if pt.CompanyType.Present {
		if v := pt.CompanyType.Ptr(); v != nil {
			ct := CompanyType(*v)
			p.CompanyType = &ct
		} else {
			p.CompanyType = nil
		}
	}
	setString(&p.Description, pt.Description)
	setString(&p.AverageServiceTime, pt.AverageServiceTime)
	setString(&p.AvailableDays, pt.AvailableDays)
	setString(&p.AvailableHours, pt.AvailableHours)
	setString(&p.Photo, pt.Photo)
	setString(&p.FacePhoto, pt.FacePhoto)
	setString(&p.DocumentPhoto, pt.DocumentPhoto)
	setString(&p.CompanyLogo, pt.CompanyLogo)
	setFloat(&p.HourlyRate, pt.HourlyRate)
	setFloat(&p.BasePrice, pt.BasePrice)
	setFloat(&p.Radius, pt.Radius)
	setFloat(&p.Latitude, pt.Latitude)
	setFloat(&p.Longitude, pt.Longitude)

	if pt.Services.Present {
		p.Services = nonNil(pt.Services.V)
	}
	if pt.WorkPhotos.Present {
		p.WorkPhotos = nonNil(pt.WorkPhotos.V)
	}
}

func setString(dst **string, v optional.Value[string]) {
	if v.Present {
		*dst = v.Ptr()
	}
}

func setFloat(dst **float64, v optional.Value[float64]) {
	if v.Present {
		*dst = v.Ptr()
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
