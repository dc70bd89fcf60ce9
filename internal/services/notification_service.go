package services

import (
	"context"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
	"github.com/rafabene/cuidar-backend/internal/domain/valueobjects"
)

// NotificationService contém a lógica de configuração de notificações
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	uow              ports.UnitOfWork
	logger           ports.Logger
}

// NewNotificationService cria um novo NotificationService
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		uow:              uow,
		logger:           logger,
	}
}

// GetConfig retorna a configuração do usuário (email normalizado),
// criando a configuração padrão quando não existe. A leitura tem efeito
// colateral de escrita; os clientes contam com a linha criada.
func (s *NotificationService) GetConfig(ctx context.Context, email string) (*entities.NotificationConfig, error) {
	normalized := valueobjects.NewEmail(email)

	var config *entities.NotificationConfig
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.notificationRepo.FindByUser(txCtx, normalized.String())
		if err != nil {
			return err
		}

		if existing != nil {
			config = existing
			return nil
		}

		config = entities.DefaultNotificationConfig(normalized.String())
		return s.notificationRepo.Create(txCtx, config)
	})
	if err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig faz upsert por verificação de existência, na mesma transação.
// O email é usado como veio no payload.
func (s *NotificationService) SaveConfig(ctx context.Context, userEmail string, enabled, sound bool) error {
	config := &entities.NotificationConfig{
		UserEmail: userEmail,
		Channel:   entities.NotificationChannel,
		Sound:     entities.SoundModeFromBool(sound),
		Enabled:   enabled,
	}

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.notificationRepo.FindByUser(txCtx, userEmail)
		if err != nil {
			return err
		}

		if existing != nil {
			return s.notificationRepo.Update(txCtx, config)
		}
		return s.notificationRepo.Create(txCtx, config)
	})
}
