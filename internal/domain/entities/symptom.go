package entities

import "time"

// Limiares do alerta de risco derivado dos registros de sintomas
const (
	riskSymptomThreshold   = 7
	riskWellBeingThreshold = 3
)

// Symptom é um registro diário de bem-estar e sintomas (escalas EVA 0-10)
// com um alerta de risco derivado
type Symptom struct {
	ID             int
	UserEmail      string
	RecordedAt     time.Time
	WellBeingScore int
	SymptomScore   int
	RiskAlert      bool
}

// NewSymptom cria um registro de sintomas calculando o alerta de risco
func NewSymptom(userEmail string, wellBeing, symptoms int) *Symptom {
	return &Symptom{
		UserEmail:      userEmail,
		WellBeingScore: wellBeing,
		SymptomScore:   symptoms,
		RiskAlert:      ComputeRiskAlert(wellBeing, symptoms),
	}
}

// ComputeRiskAlert calcula o alerta: sintomas >= 7 OU bem-estar <= 3
func ComputeRiskAlert(wellBeing, symptoms int) bool {
	return symptoms >= riskSymptomThreshold || wellBeing <= riskWellBeingThreshold
}
