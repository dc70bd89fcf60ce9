package services

import (
	"context"
	"time"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
	"github.com/rafabene/cuidar-backend/internal/domain/valueobjects"
)

// RoutineService contém a lógica de rotinas, itens de cuidado e aderência
type RoutineService struct {
	routineRepo   repositories.RoutineRepository
	adherenceRepo repositories.AdherenceRepository
	userRepo      repositories.UserRepository
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewRoutineService cria um novo RoutineService
func NewRoutineService(
	routineRepo repositories.RoutineRepository,
	adherenceRepo repositories.AdherenceRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *RoutineService {
	return &RoutineService{
		routineRepo:   routineRepo,
		adherenceRepo: adherenceRepo,
		userRepo:      userRepo,
		uow:           uow,
		logger:        logger,
	}
}

// HomeItem é um item da home com o status de execução do dia
type HomeItem struct {
	Item *entities.CareItem
	Done bool
}

// HomeSummary é o resumo diário: itens ativos, progresso e nome de exibição
type HomeSummary struct {
	Items    []HomeItem
	Progress float32
	UserName string
}

// HomeSummary monta o resumo do dia para o usuário: itens das rotinas
// ATIVAS ordenados pela string de horário, cada um marcado como feito se
// existe aderência positiva na janela de hoje. Progresso = feitos/total
// (0 quando não há itens). Nome cai para "Paciente" quando o usuário não
// existe ou não tem nome.
func (s *RoutineService) HomeSummary(ctx context.Context, email string) (*HomeSummary, error) {
	normalized := valueobjects.NewEmail(email)
	start, end := entities.DayWindow(time.Now())

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	userName := user.DisplayName(entities.DefaultPatientName)

	items, err := s.routineRepo.ListActiveItems(ctx, normalized.String())
	if err != nil {
		return nil, err
	}

	summary := &HomeSummary{
		Items:    make([]HomeItem, 0, len(items)),
		UserName: userName,
	}

	done := 0
	for _, item := range items {
		positive, err := s.adherenceRepo.ExistsPositiveInWindow(ctx, item.ID, start, end)
		if err != nil {
			return nil, err
		}
		if positive {
			done++
		}
		summary.Items = append(summary.Items, HomeItem{Item: item, Done: positive})
	}

	if len(items) > 0 {
		summary.Progress = float32(done) / float32(len(items))
	}

	return summary, nil
}

// CreateItemInput representa os dados para criar um item de cuidado
type CreateItemInput struct {
	UserEmail    string
	Title        string
	ScheduleTime string
	Dose         *string
	Description  *string
}

// CreateItem insere um item na rotina ATIVA do usuário, criando a rotina
// padrão "Rotina" quando não existe nenhuma ativa. O email é usado como
// veio no payload, sem normalização nesta rota.
func (s *RoutineService) CreateItem(ctx context.Context, input CreateItemInput) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		routine, err := s.routineRepo.FindActiveByUser(txCtx, input.UserEmail)
		if err != nil {
			return err
		}

		if routine == nil {
			routine = entities.NewActiveRoutine(input.UserEmail)
			if err := s.routineRepo.Create(txCtx, routine); err != nil {
				return err
			}
			s.logger.Info("active routine created", "email", input.UserEmail, "routine_id", routine.ID)
		}

		item := &entities.CareItem{
			RoutineID:    routine.ID,
			Name:         input.Title,
			Medication:   input.Description,
			Dose:         input.Dose,
			ScheduleTime: input.ScheduleTime,
		}

		return s.routineRepo.CreateItem(txCtx, item)
	})
}

// SetAdherenceStatus marca ou desmarca a execução do item no dia informado.
// Marcar: se já existe qualquer registro na janela do dia, é no-op; senão
// insere um registro positivo com a dose prescrita do item. Desmarcar:
// remove todos os registros do item na janela (a verificação e o insert
// não são atômicos entre requisições concorrentes; o pior caso é uma
// linha duplicada).
func (s *RoutineService) SetAdherenceStatus(ctx context.Context, itemID int, done bool, day time.Time) error {
	start, end := entities.DayWindow(day)

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if !done {
			return s.adherenceRepo.DeleteInWindow(txCtx, itemID, start, end)
		}

		exists, err := s.adherenceRepo.ExistsInWindow(txCtx, itemID, start, end)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		var dose *string
		item, err := s.routineRepo.FindItemByID(txCtx, itemID)
		if err != nil {
			return err
		}
		if item != nil {
			dose = item.Dose
		}

		return s.adherenceRepo.Create(txCtx, entities.NewPositiveAdherence(itemID, day, dose))
	})
}

// DeleteItem remove o item e todas as suas aderências na mesma transação.
// Remover um item inexistente é sucesso (zero linhas afetadas).
func (s *RoutineService) DeleteItem(ctx context.Context, itemID int) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.adherenceRepo.DeleteByItem(txCtx, itemID); err != nil {
			return err
		}
		return s.routineRepo.DeleteItem(txCtx, itemID)
	})
}
