package dto

import (
	"github.com/rafabene/cuidar-backend/internal/services"
)

// CreateItemRequest representa a criação de um item de cuidado
type CreateItemRequest struct {
	UserEmail    string  `json:"emailUsuario" binding:"required"`
	Title        string  `json:"titulo" binding:"required"`
	ScheduleTime string  `json:"horario" binding:"required"`
	Dose         *string `json:"dose"`
	Description  *string `json:"descricao"`
}

// RoutineItemResponse representa um item na resposta da home
type RoutineItemResponse struct {
	ID           int     `json:"id"`
	Title        string  `json:"titulo"`
	ScheduleTime string  `json:"horario"`
	Dose         *string `json:"dose"`
	Done         bool    `json:"feita"`
}

// HomeSummaryResponse representa o resumo diário da home
type HomeSummaryResponse struct {
	Progress float32               `json:"progresso"`
	Tasks    []RoutineItemResponse `json:"tarefas"`
	UserName string                `json:"nomeUsuario"`
}

// ToHomeSummaryResponse converte o resumo do serviço para a resposta da API
func ToHomeSummaryResponse(summary *services.HomeSummary) HomeSummaryResponse {
	tasks := make([]RoutineItemResponse, 0, len(summary.Items))
	for _, homeItem := range summary.Items {
		tasks = append(tasks, RoutineItemResponse{
			ID:           homeItem.Item.ID,
			Title:        homeItem.Item.Name,
			ScheduleTime: homeItem.Item.ScheduleTime,
			Dose:         homeItem.Item.Dose,
			Done:         homeItem.Done,
		})
	}

	return HomeSummaryResponse{
		Progress: summary.Progress,
		Tasks:    tasks,
		UserName: summary.UserName,
	}
}

// AdherenceStatusRequest representa a marcação/desmarcação de um item
type AdherenceStatusRequest struct {
	ItemID int    `json:"idItem" binding:"required"`
	Done   bool   `json:"feito"`
	Date   string `json:"data" binding:"required"` // formato "yyyy-MM-dd"
}
