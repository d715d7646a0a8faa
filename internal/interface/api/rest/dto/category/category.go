package category

import (
	"time"

	"github.com/google/uuid"

	"servija-api/internal/domain/category"
	"servija-api/pkg/optional"
)

type (
	Category struct {
		ID          uuid.UUID `json:"id"`
		Nome        string    `json:"nome"`
		Icone       *string   `json:"icone"`
		Ativo       bool      `json:"ativo"`
		CreatedDate time.Time `json:"created_date"`
		UpdatedDate time.Time `json:"updated_date"`
	}
	Categories    []Category
	ResponseItems struct {
		Items Categories `json:"items"`
	}

	Request struct {
		Nome  optional.Value[string] `json:"nome"`
		Icone optional.Value[string] `json:"icone"`
		Ativo optional.Value[bool]   `json:"ativo"`
	}
)

func ToResponseCategory(c category.Category) Category {
	return Category{
		ID:          c.ID,
		Nome:        c.Name,
		Icone:       c.Icon,
		Ativo:       c.Active,
		CreatedDate: c.CreatedAt,
		UpdatedDate: c.UpdatedAt,
	}
}

func ToResponseCategories(csDomain category.Categories) Categories {
	cs := make(Categories, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseCategory(*c)
	}

	return cs
}

func ToDomainPatch(r Request) category.Patch {
	return category.Patch{
		Name:   r.Nome,
		Icon:   r.Icone,
		Active: r.Ativo,
	}
}
