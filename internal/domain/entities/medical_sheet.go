package entities

import "time"

// MedicalSheet é a ficha médica de um usuário: alergias, medicações de uso
// contínuo e comorbidades em texto livre. Uma por usuário, por convenção
// da aplicação (verificação de existência, sem constraint no banco).
type MedicalSheet struct {
	ID                   int
	UserEmail            string
	Allergies            string
	ContinuousMedication string
	Comorbidities        string
	UpdatedAt            time.Time
}

// EmptyMedicalSheet retorna a ficha vazia usada como placeholder quando o
// usuário ainda não preencheu a sua (o GET nunca responde 404)
func EmptyMedicalSheet(userEmail string) *MedicalSheet {
	return &MedicalSheet{UserEmail: userEmail}
}
