package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/handlers/dto"
	"github.com/rafabene/cuidar-backend/internal/services"
)

// NotificationHandler lida com requisições HTTP de configuração de
// notificações
type NotificationHandler struct {
	notificationService *services.NotificationService
	logger              ports.Logger
}

// NewNotificationHandler cria um novo NotificationHandler
func NewNotificationHandler(notificationService *services.NotificationService, logger ports.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// GetConfig retorna a configuração do usuário, criando a padrão quando
// não existe (GET com efeito colateral de escrita)
func (h *NotificationHandler) GetConfig(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "email.required"))
		return
	}

	config, err := h.notificationService.GetConfig(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "error.internal"))
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationConfigPayload(config))
}

// SaveConfig grava a configuração (upsert)
func (h *NotificationHandler) SaveConfig(c *gin.Context) {
	var req dto.NotificationConfigPayload

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("save notification config: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	if err := h.notificationService.SaveConfig(c.Request.Context(), req.UserEmail, req.Enabled, req.Sound); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "notification.save_error"))
		return
	}

	c.JSON(http.StatusOK, dto.Status(c, true, "notification.saved"))
}
