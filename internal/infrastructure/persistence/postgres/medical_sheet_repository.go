package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
)

// MedicalSheetRepository implementa repositories.MedicalSheetRepository
type MedicalSheetRepository struct {
	db *gorm.DB
}

// NewMedicalSheetRepository cria um novo MedicalSheetRepository
func NewMedicalSheetRepository(db *gorm.DB) repositories.MedicalSheetRepository {
	return &MedicalSheetRepository{db: db}
}

func (r *MedicalSheetRepository) FindByUser(ctx context.Context, userEmail string) (*entities.MedicalSheet, error) {
	var model MedicalSheetModel

	if err := getDB(ctx, r.db).Where("usuario_email = ?", userEmail).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *MedicalSheetRepository) Create(ctx context.Context, sheet *entities.MedicalSheet) error {
	model := &MedicalSheetModel{
		UserEmail:            sheet.UserEmail,
		Allergies:            &sheet.Allergies,
		ContinuousMedication: &sheet.ContinuousMedication,
		Comorbidities:        &sheet.Comorbidities,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	sheet.ID = model.ID
	return nil
}

func (r *MedicalSheetRepository) Update(ctx context.Context, sheet *entities.MedicalSheet) error {
	return getDB(ctx, r.db).Model(&MedicalSheetModel{}).
		Where("usuario_email = ?", sheet.UserEmail).
		Updates(map[string]any{
			"alergias":                sheet.Allergies,
			"medicacao_uso_continuo":  sheet.ContinuousMedication,
			"comorbidade":             sheet.Comorbidities,
			"data_ultima_atualizacao": time.Now(),
		}).Error
}

func (r *MedicalSheetRepository) toEntity(model *MedicalSheetModel) *entities.MedicalSheet {
	sheet := &entities.MedicalSheet{
		ID:        model.ID,
		UserEmail: model.UserEmail,
		UpdatedAt: model.UpdatedAt,
	}
	if model.Allergies != nil {
		sheet.Allergies = *model.Allergies
	}
	if model.ContinuousMedication != nil {
		sheet.ContinuousMedication = *model.ContinuousMedication
	}
	if model.Comorbidities != nil {
		sheet.Comorbidities = *model.Comorbidities
	}
	return sheet
}
