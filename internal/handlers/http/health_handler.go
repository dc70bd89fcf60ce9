package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/handlers/dto"
	"github.com/rafabene/cuidar-backend/internal/services"
)

// HealthHandler lida com requisições HTTP de sintomas e ficha médica
type HealthHandler struct {
	healthService *services.HealthService
	logger        ports.Logger
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(healthService *services.HealthService, logger ports.Logger) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		logger:        logger,
	}
}

// RecordSymptom registra bem-estar e sintomas do dia
func (h *HealthHandler) RecordSymptom(c *gin.Context) {
	var req dto.SymptomRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("record symptom: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	if err := h.healthService.RecordSymptom(c.Request.Context(), req.UserEmail, req.WellBeing, req.SymptomScore); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "symptom.save_error"))
		return
	}

	c.JSON(http.StatusCreated, dto.Status(c, true, "symptom.recorded"))
}

// GetSheet retorna a ficha médica do usuário, ou uma ficha vazia
func (h *HealthHandler) GetSheet(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "email.required"))
		return
	}

	sheet, err := h.healthService.GetSheet(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "sheet.fetch_error"))
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicalSheetPayload(sheet))
}

// SaveSheet grava a ficha médica (upsert)
func (h *HealthHandler) SaveSheet(c *gin.Context) {
	var req dto.MedicalSheetPayload

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("save sheet: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	if err := h.healthService.SaveSheet(c.Request.Context(), req.ToMedicalSheetEntity()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "sheet.save_error"))
		return
	}

	c.JSON(http.StatusOK, dto.Status(c, true, "sheet.saved"))
}
