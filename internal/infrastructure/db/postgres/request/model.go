package request

import (
	"time"

	"github.com/google/uuid"
)

type Request struct {
	ID                uuid.UUID
	ClienteID         *uuid.UUID
	ClienteEmail      string
	ClienteNome       *string
	PrestadorID       uuid.UUID
	PrestadorEmail    *string
	PrestadorNome     *string
	CategoriaNome     *string
	Descricao         string
	PrecoProposto     *float64
	PrecoAcordado     *float64
	Status            string
	RespostaPrestador *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
