package repositories

import (
	"context"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
)

// MedicalSheetRepository define a interface para persistência de fichas médicas
type MedicalSheetRepository interface {
	// FindByUser retorna nil quando o usuário não tem ficha
	FindByUser(ctx context.Context, userEmail string) (*entities.MedicalSheet, error)
	Create(ctx context.Context, sheet *entities.MedicalSheet) error
	// Update atualiza a ficha existente do usuário
	Update(ctx context.Context, sheet *entities.MedicalSheet) error
}
