package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
)

// SymptomRepository implementa repositories.SymptomRepository
type SymptomRepository struct {
	db *gorm.DB
}

// NewSymptomRepository cria um novo SymptomRepository
func NewSymptomRepository(db *gorm.DB) repositories.SymptomRepository {
	return &SymptomRepository{db: db}
}

func (r *SymptomRepository) Create(ctx context.Context, symptom *entities.Symptom) error {
	model := &SymptomModel{
		UserEmail:      symptom.UserEmail,
		WellBeingScore: symptom.WellBeingScore,
		SymptomScore:   symptom.SymptomScore,
		RiskAlert:      symptom.RiskAlert,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	symptom.ID = model.ID
	symptom.RecordedAt = model.RecordedAt
	return nil
}
