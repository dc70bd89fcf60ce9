package entities

import "time"

// Adherence é o registro de que um item de cuidado foi executado em um dia.
// Por convenção da aplicação existe no máximo um registro positivo por
// item/dia (verificado antes do insert, sem constraint no banco).
type Adherence struct {
	ID         int
	ItemID     int
	ExecutedAt time.Time
	DoseTaken  *string
	Compliant  *bool
}

// NewPositiveAdherence cria um registro positivo para o item, combinando
// a data informada com a hora local atual e copiando a dose prescrita
func NewPositiveAdherence(itemID int, day time.Time, dose *string) *Adherence {
	now := time.Now()
	compliant := true
	return &Adherence{
		ItemID:     itemID,
		ExecutedAt: time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.Local),
		DoseTaken:  dose,
		Compliant:  &compliant,
	}
}

// DayWindow retorna o intervalo [00:00:00, 23:59:59] do dia informado,
// no fuso horário local do servidor
func DayWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.Local)
	return start, end
}
