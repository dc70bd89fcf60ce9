package dto

import "github.com/rafabene/cuidar-backend/internal/domain/entities"

// SymptomRequest representa o registro diário de bem-estar e sintomas
// (escalas 0-10; o valor 0 é válido, por isso sem binding required)
type SymptomRequest struct {
	UserEmail    string `json:"emailUsuario" binding:"required"`
	WellBeing    int    `json:"bemEstar"`
	SymptomScore int    `json:"sintomas"`
}

// MedicalSheetPayload representa a ficha médica na API, tanto na leitura
// quanto na gravação
type MedicalSheetPayload struct {
	UserEmail            string `json:"emailUsuario" binding:"required"`
	Allergies            string `json:"alergias"`
	ContinuousMedication string `json:"medicacoes"`
	Comorbidities        string `json:"comorbidades"`
}

// ToMedicalSheetPayload converte a entidade para a resposta da API
func ToMedicalSheetPayload(sheet *entities.MedicalSheet) MedicalSheetPayload {
	return MedicalSheetPayload{
		UserEmail:            sheet.UserEmail,
		Allergies:            sheet.Allergies,
		ContinuousMedication: sheet.ContinuousMedication,
		Comorbidities:        sheet.Comorbidities,
	}
}

// ToMedicalSheetEntity converte o payload para a entidade de domínio
func (p *MedicalSheetPayload) ToMedicalSheetEntity() *entities.MedicalSheet {
	return &entities.MedicalSheet{
		UserEmail:            p.UserEmail,
		Allergies:            p.Allergies,
		ContinuousMedication: p.ContinuousMedication,
		Comorbidities:        p.Comorbidities,
	}
}
