package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/handlers/dto"
	"github.com/rafabene/cuidar-backend/internal/services"
)

// Formato da data recebida em /rotina/status
const dateLayout = "2006-01-02"

// RoutineHandler lida com requisições HTTP de rotinas e aderência
type RoutineHandler struct {
	routineService *services.RoutineService
	logger         ports.Logger
}

// NewRoutineHandler cria um novo RoutineHandler
func NewRoutineHandler(routineService *services.RoutineService, logger ports.Logger) *RoutineHandler {
	return &RoutineHandler{
		routineService: routineService,
		logger:         logger,
	}
}

// HomeSummary retorna o resumo do dia: itens ativos, progresso e nome
func (h *RoutineHandler) HomeSummary(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "email.required"))
		return
	}

	summary, err := h.routineService.HomeSummary(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("home summary failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "error.generic"))
		return
	}

	c.JSON(http.StatusOK, dto.ToHomeSummaryResponse(summary))
}

// CreateItem cadastra um item na rotina ativa do usuário
func (h *RoutineHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create item: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	err := h.routineService.CreateItem(c.Request.Context(), services.CreateItemInput{
		UserEmail:    req.UserEmail,
		Title:        req.Title,
		ScheduleTime: req.ScheduleTime,
		Dose:         req.Dose,
		Description:  req.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "error.generic"))
		return
	}

	c.JSON(http.StatusCreated, dto.Status(c, true, "routine.saved"))
}

// SetAdherenceStatus marca ou desmarca a execução de um item em um dia
func (h *RoutineHandler) SetAdherenceStatus(c *gin.Context) {
	var req dto.AdherenceStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("adherence status: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	day, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	if err := h.routineService.SetAdherenceStatus(c.Request.Context(), req.ItemID, req.Done, day); err != nil {
		h.logger.Error("adherence status failed", "item_id", req.ItemID, "error", err)
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "error.generic"))
		return
	}

	c.JSON(http.StatusOK, dto.Status(c, true, "routine.updated"))
}

// DeleteItem remove um item e todas as suas aderências
func (h *RoutineHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "routine.invalid_id"))
		return
	}

	if err := h.routineService.DeleteItem(c.Request.Context(), id); err != nil {
		h.logger.Error("delete item failed", "item_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "error.generic"))
		return
	}

	c.JSON(http.StatusOK, dto.Status(c, true, "routine.deleted"))
}
