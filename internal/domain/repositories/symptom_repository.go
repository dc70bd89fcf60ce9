package repositories

import (
	"context"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
)

// SymptomRepository define a interface para persistência de sintomas
type SymptomRepository interface {
	Create(ctx context.Context, symptom *entities.Symptom) error
}
