package services

import (
	"context"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
	"github.com/rafabene/cuidar-backend/internal/domain/valueobjects"
)

// HealthService contém a lógica de sintomas e ficha médica
type HealthService struct {
	symptomRepo repositories.SymptomRepository
	sheetRepo   repositories.MedicalSheetRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewHealthService cria um novo HealthService
func NewHealthService(
	symptomRepo repositories.SymptomRepository,
	sheetRepo repositories.MedicalSheetRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *HealthService {
	return &HealthService{
		symptomRepo: symptomRepo,
		sheetRepo:   sheetRepo,
		uow:         uow,
		logger:      logger,
	}
}

// RecordSymptom registra bem-estar e sintomas calculando o alerta de risco
func (s *HealthService) RecordSymptom(ctx context.Context, userEmail string, wellBeing, symptoms int) error {
	symptom := entities.NewSymptom(userEmail, wellBeing, symptoms)

	if symptom.RiskAlert {
		s.logger.Warn("symptom record with risk alert",
			"email", userEmail,
			"well_being", wellBeing,
			"symptoms", symptoms,
		)
	}

	return s.symptomRepo.Create(ctx, symptom)
}

// GetSheet retorna a ficha médica do usuário (email normalizado) ou uma
// ficha vazia como placeholder; nunca "não encontrado"
func (s *HealthService) GetSheet(ctx context.Context, email string) (*entities.MedicalSheet, error) {
	normalized := valueobjects.NewEmail(email)

	sheet, err := s.sheetRepo.FindByUser(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return entities.EmptyMedicalSheet(normalized.String()), nil
	}

	return sheet, nil
}

// SaveSheet faz upsert por verificação de existência, na mesma transação.
// O email é usado como veio no payload.
func (s *HealthService) SaveSheet(ctx context.Context, sheet *entities.MedicalSheet) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.sheetRepo.FindByUser(txCtx, sheet.UserEmail)
		if err != nil {
			return err
		}

		if existing != nil {
			return s.sheetRepo.Update(txCtx, sheet)
		}
		return s.sheetRepo.Create(txCtx, sheet)
	})
}
