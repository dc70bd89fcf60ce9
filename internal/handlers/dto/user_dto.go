package dto

import "github.com/rafabene/cuidar-backend/internal/domain/entities"

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

// RegisterRequest representa a requisição de cadastro
type RegisterRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
	Phone    string `json:"telefone" binding:"required"`
}

// ProfileResponse representa o perfil do usuário
type ProfileResponse struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}

// ToProfileResponse converte a entidade User para ProfileResponse,
// com strings vazias no lugar de campos ausentes
func ToProfileResponse(user *entities.User) ProfileResponse {
	response := ProfileResponse{Email: user.Email.String()}
	if user.Name != nil {
		response.Name = *user.Name
	}
	if user.Phone != nil {
		response.Phone = *user.Phone
	}
	return response
}

// UpdateProfileRequest representa a atualização de nome e telefone
type UpdateProfileRequest struct {
	LookupEmail string `json:"emailBusca" binding:"required"`
	NewName     string `json:"novoNome"`
	NewPhone    string `json:"novoTelefone"`
}

// ChangePasswordRequest representa a troca de senha
type ChangePasswordRequest struct {
	Email string `json:"email" binding:"required"`
	// Sem binding required: a senha vazia cai na regra de tamanho
	// mínimo, que responde com a mensagem específica
	NewPassword string `json:"novaSenha"`
}
