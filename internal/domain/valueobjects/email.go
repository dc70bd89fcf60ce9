package valueobjects

import "strings"

// Email é um value object que garante a normalização de emails.
// A normalização é apenas trim + lowercase: o sistema aceita qualquer
// string como email e a usa como chave do usuário.
type Email struct {
	value string
}

// NewEmail cria um novo Email normalizado (trim + lowercase)
func NewEmail(email string) Email {
	return Email{value: strings.ToLower(strings.TrimSpace(email))}
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// IsEmpty verifica se o email está vazio
func (e Email) IsEmpty() bool {
	return e.value == ""
}
