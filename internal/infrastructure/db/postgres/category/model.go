package category

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID
	Nome      string
	Icone     *string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
