package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	User         *UserHandler
	Routine      *RoutineHandler
	Health       *HealthHandler
	Notification *NotificationHandler
}

// RegisterRoutes registra todas as rotas da API. Compartilhado entre o
// main e os testes de handler, para que ambos usem o mesmo wiring.
func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Cuidar API v1.0")
	})

	// Conta
	router.POST("/login", h.User.Login)
	router.POST("/cadastro", h.User.Register)
	router.GET("/perfil", h.User.GetProfile)
	router.PUT("/perfil", h.User.UpdateProfile)
	router.PUT("/usuario/senha", h.User.ChangePassword)
	router.DELETE("/usuario", h.User.DeleteAccount)

	// Rotina e aderência
	router.GET("/home", h.Routine.HomeSummary)
	router.POST("/rotina", h.Routine.CreateItem)
	router.POST("/rotina/status", h.Routine.SetAdherenceStatus)
	router.DELETE("/rotina/:id", h.Routine.DeleteItem)

	// Sintomas e ficha médica
	router.POST("/sintomas", h.Health.RecordSymptom)
	router.GET("/ficha", h.Health.GetSheet)
	router.POST("/ficha", h.Health.SaveSheet)

	// Notificações
	router.GET("/notificacao", h.Notification.GetConfig)
	router.POST("/notificacao", h.Notification.SaveConfig)
}
