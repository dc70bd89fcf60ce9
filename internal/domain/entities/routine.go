package entities

import "time"

// RoutineStatus representa o status de uma rotina de cuidado
type RoutineStatus string

const (
	RoutineStatusActive RoutineStatus = "ATIVO"
)

// DefaultRoutineName é o nome da rotina criada automaticamente quando o
// usuário cadastra um item sem ter rotina ativa
const DefaultRoutineName = "Rotina"

// Routine é um contêiner nomeado de itens de cuidado de um usuário.
// Por convenção da aplicação (não imposta pelo banco) existe no máximo
// uma rotina ATIVA por usuário.
type Routine struct {
	ID        int
	UserEmail string
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	Status    RoutineStatus
}

// NewActiveRoutine cria a rotina padrão iniciando hoje
func NewActiveRoutine(userEmail string) *Routine {
	return &Routine{
		UserEmail: userEmail,
		Name:      DefaultRoutineName,
		StartDate: time.Now(),
		Status:    RoutineStatusActive,
	}
}

// CareItem é uma tarefa rastreável (medicação/atividade) dentro de uma rotina.
// ScheduleTime é uma string livre de horário; a ordenação da home é
// lexicográfica sobre essa string, não cronológica.
type CareItem struct {
	ID           int
	RoutineID    int
	Name         string
	Medication   *string
	Dose         *string
	ScheduleTime string
}
