package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
)

// AdherenceRepository implementa repositories.AdherenceRepository
type AdherenceRepository struct {
	db *gorm.DB
}

// NewAdherenceRepository cria um novo AdherenceRepository
func NewAdherenceRepository(db *gorm.DB) repositories.AdherenceRepository {
	return &AdherenceRepository{db: db}
}

func (r *AdherenceRepository) Create(ctx context.Context, adherence *entities.Adherence) error {
	model := &AdherenceModel{
		ItemID:     adherence.ItemID,
		ExecutedAt: adherence.ExecutedAt,
		DoseTaken:  adherence.DoseTaken,
		Compliant:  adherence.Compliant,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	adherence.ID = model.ID
	return nil
}

func (r *AdherenceRepository) ExistsInWindow(ctx context.Context, itemID int, start, end time.Time) (bool, error) {
	var count int64

	err := getDB(ctx, r.db).Model(&AdherenceModel{}).
		Where("id_item = ? AND data_execucao >= ? AND data_execucao <= ?", itemID, start, end).
		Count(&count).Error

	return count > 0, err
}

func (r *AdherenceRepository) ExistsPositiveInWindow(ctx context.Context, itemID int, start, end time.Time) (bool, error) {
	var count int64

	err := getDB(ctx, r.db).Model(&AdherenceModel{}).
		Where("id_item = ? AND data_execucao >= ? AND data_execucao <= ? AND status_conformidade = ?",
			itemID, start, end, true).
		Count(&count).Error

	return count > 0, err
}

func (r *AdherenceRepository) DeleteInWindow(ctx context.Context, itemID int, start, end time.Time) error {
	return getDB(ctx, r.db).
		Where("id_item = ? AND data_execucao >= ? AND data_execucao <= ?", itemID, start, end).
		Delete(&AdherenceModel{}).Error
}

func (r *AdherenceRepository) DeleteByItem(ctx context.Context, itemID int) error {
	return getDB(ctx, r.db).Where("id_item = ?", itemID).Delete(&AdherenceModel{}).Error
}
