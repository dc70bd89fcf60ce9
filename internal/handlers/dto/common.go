package dto

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// StatusResponse é o corpo de resposta padrão da API: uma mensagem
// legível e um boolean de sucesso. Todos os erros e confirmações usam
// este formato; não há códigos de erro estruturados.
type StatusResponse struct {
	Message  string  `json:"mensagem"`
	Success  bool    `json:"sucesso"`
	UserName *string `json:"nomeUsuario,omitempty"`
}

// Status cria uma resposta traduzindo a chave da mensagem para o idioma
// da requisição
func Status(c *gin.Context, success bool, messageKey string, params ...map[string]interface{}) StatusResponse {
	return StatusResponse{
		Message: T(c, messageKey, params...),
		Success: success,
	}
}

// StatusWithName cria uma resposta de sucesso com o nome do usuário
func StatusWithName(c *gin.Context, messageKey, userName string) StatusResponse {
	return StatusResponse{
		Message:  T(c, messageKey),
		Success:  true,
		UserName: &userName,
	}
}

// BindingErrorFields extrai os campos que falharam na validação do bind,
// para log. A resposta ao cliente permanece a mensagem genérica.
func BindingErrorFields(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field())
	}
	return fields
}
