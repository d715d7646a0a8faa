package category

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID     = uuid.UUID
	Category struct {
		ID        UUID
		Name      string
		Icon      *string
		Active    bool
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Categories []*Category
)

const DefaultIcon = "User"
