package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
)

// RoutineRepository implementa repositories.RoutineRepository
type RoutineRepository struct {
	db *gorm.DB
}

// NewRoutineRepository cria um novo RoutineRepository
func NewRoutineRepository(db *gorm.DB) repositories.RoutineRepository {
	return &RoutineRepository{db: db}
}

func (r *RoutineRepository) FindActiveByUser(ctx context.Context, userEmail string) (*entities.Routine, error) {
	var model RoutineModel

	err := getDB(ctx, r.db).
		Where("usuario_email = ? AND status = ?", userEmail, string(entities.RoutineStatusActive)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toRoutineEntity(&model), nil
}

func (r *RoutineRepository) Create(ctx context.Context, routine *entities.Routine) error {
	model := &RoutineModel{
		UserEmail: routine.UserEmail,
		Name:      routine.Name,
		StartDate: routine.StartDate,
		EndDate:   routine.EndDate,
		Status:    string(routine.Status),
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	routine.ID = model.ID
	return nil
}

func (r *RoutineRepository) CreateItem(ctx context.Context, item *entities.CareItem) error {
	model := &CareItemModel{
		RoutineID:    item.RoutineID,
		Name:         item.Name,
		Medication:   item.Medication,
		Dose:         item.Dose,
		ScheduleTime: item.ScheduleTime,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	item.ID = model.ID
	return nil
}

func (r *RoutineRepository) FindItemByID(ctx context.Context, itemID int) (*entities.CareItem, error) {
	var model CareItemModel

	if err := getDB(ctx, r.db).Where("id_item = ?", itemID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toItemEntity(&model), nil
}

// ListActiveItems junta item_cuidado com rotina_cuidado e ordena pela
// string livre de horário (ordenação lexicográfica, não cronológica)
func (r *RoutineRepository) ListActiveItems(ctx context.Context, userEmail string) ([]*entities.CareItem, error) {
	var models []*CareItemModel

	err := getDB(ctx, r.db).Model(&CareItemModel{}).
		Joins("INNER JOIN rotina_cuidado ON rotina_cuidado.id_rotina = item_cuidado.id_rotina").
		Where("rotina_cuidado.usuario_email = ? AND rotina_cuidado.status = ?",
			userEmail, string(entities.RoutineStatusActive)).
		Order("item_cuidado.frequencia_horario").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.CareItem, 0, len(models))
	for _, model := range models {
		items = append(items, r.toItemEntity(model))
	}
	return items, nil
}

func (r *RoutineRepository) DeleteItem(ctx context.Context, itemID int) error {
	return getDB(ctx, r.db).Where("id_item = ?", itemID).Delete(&CareItemModel{}).Error
}

// Conversores
func (r *RoutineRepository) toRoutineEntity(model *RoutineModel) *entities.Routine {
	return &entities.Routine{
		ID:        model.ID,
		UserEmail: model.UserEmail,
		Name:      model.Name,
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		Status:    entities.RoutineStatus(model.Status),
	}
}

func (r *RoutineRepository) toItemEntity(model *CareItemModel) *entities.CareItem {
	return &entities.CareItem{
		ID:           model.ID,
		RoutineID:    model.RoutineID,
		Name:         model.Name,
		Medication:   model.Medication,
		Dose:         model.Dose,
		ScheduleTime: model.ScheduleTime,
	}
}
