package dto

import "github.com/rafabene/cuidar-backend/internal/domain/entities"

// NotificationConfigPayload representa a configuração de notificações na
// API. O som é boolean externamente (PADRAO = true, SILENCIOSO = false),
// embora internamente seja um enum string.
type NotificationConfigPayload struct {
	UserEmail string `json:"emailUsuario" binding:"required"`
	Enabled   bool   `json:"ativo"`
	Sound     bool   `json:"som"`
}

// ToNotificationConfigPayload converte a entidade para a resposta da API
func ToNotificationConfigPayload(config *entities.NotificationConfig) NotificationConfigPayload {
	return NotificationConfigPayload{
		UserEmail: config.UserEmail,
		Enabled:   config.Enabled,
		Sound:     config.Sound.Bool(),
	}
}
