package repositories

import (
	"context"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
)

// NotificationRepository define a interface para persistência de configurações
// de notificação
type NotificationRepository interface {
	// FindByUser retorna nil quando o usuário não tem configuração
	FindByUser(ctx context.Context, userEmail string) (*entities.NotificationConfig, error)
	Create(ctx context.Context, config *entities.NotificationConfig) error
	// Update atualiza a configuração existente do usuário
	Update(ctx context.Context, config *entities.NotificationConfig) error
}
