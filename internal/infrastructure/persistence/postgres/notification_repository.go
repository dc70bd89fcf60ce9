package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
)

// NotificationRepository implementa repositories.NotificationRepository
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository cria um novo NotificationRepository
func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userEmail string) (*entities.NotificationConfig, error) {
	var model NotificationModel

	if err := getDB(ctx, r.db).Where("usuario_email = ?", userEmail).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *NotificationRepository) Create(ctx context.Context, config *entities.NotificationConfig) error {
	sound := string(config.Sound)
	model := &NotificationModel{
		UserEmail: config.UserEmail,
		Channel:   config.Channel,
		Sound:     &sound,
		Enabled:   config.Enabled,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	config.ID = model.ID
	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, config *entities.NotificationConfig) error {
	return getDB(ctx, r.db).Model(&NotificationModel{}).
		Where("usuario_email = ?", config.UserEmail).
		Updates(map[string]any{
			"som":           string(config.Sound),
			"status_alerta": config.Enabled,
		}).Error
}

func (r *NotificationRepository) toEntity(model *NotificationModel) *entities.NotificationConfig {
	config := &entities.NotificationConfig{
		ID:        model.ID,
		UserEmail: model.UserEmail,
		Channel:   model.Channel,
		Enabled:   model.Enabled,
	}
	if model.Sound != nil {
		config.Sound = entities.SoundMode(*model.Sound)
	}
	return config
}
