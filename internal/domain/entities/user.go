package entities

import (
	"time"

	"github.com/rafabene/cuidar-backend/internal/domain/valueobjects"
)

// DefaultUserName é o nome exibido no login quando o usuário não tem nome cadastrado
const DefaultUserName = "Usuário"

// DefaultPatientName é o nome exibido na home quando o usuário não tem nome cadastrado
const DefaultPatientName = "Paciente"

// User representa um usuário do sistema, identificado pelo email.
// A senha é comparada em texto puro por igualdade; não há hashing.
type User struct {
	Email        valueobjects.Email
	Password     string
	Name         *string
	Phone        *string
	IsCompanion  bool
	RegisteredAt time.Time
}

// DisplayName retorna o nome do usuário ou o fallback informado
func (u *User) DisplayName(fallback string) string {
	if u == nil || u.Name == nil || *u.Name == "" {
		return fallback
	}
	return *u.Name
}
