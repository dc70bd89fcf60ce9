package services

import (
	"context"
	"unicode/utf8"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/errors"
	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
	"github.com/rafabene/cuidar-backend/internal/domain/valueobjects"
)

// Tamanho mínimo da nova senha na troca de senha
const minPasswordLength = 8

// UserService contém a lógica de negócio para contas de usuário
type UserService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

// Login autentica por igualdade exata de email normalizado + senha.
// Retorna ErrInvalidCredentials quando não há combinação.
func (s *UserService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	normalized := valueobjects.NewEmail(email)

	user, err := s.userRepo.FindByCredentials(ctx, normalized.String(), password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}

// RegisterInput representa os dados para criar uma conta
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Register cria uma nova conta. Retorna ErrEmailAlreadyExists quando o
// email normalizado já está cadastrado (verificação + insert na mesma
// transação).
func (s *UserService) Register(ctx context.Context, input RegisterInput) error {
	normalized := valueobjects.NewEmail(input.Email)

	s.logger.Info("registering user", "email", normalized.String())

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.FindByEmail(txCtx, normalized.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailAlreadyExists
		}

		name := input.Name
		phone := input.Phone
		user := &entities.User{
			Email:    normalized,
			Password: input.Password,
			Name:     &name,
			Phone:    &phone,
		}

		return s.userRepo.Create(txCtx, user)
	})
}

// GetProfile busca o perfil pelo email normalizado.
// Retorna ErrUserNotFound quando não existe.
func (s *UserService) GetProfile(ctx context.Context, email string) (*entities.User, error) {
	normalized := valueobjects.NewEmail(email)

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	return user, nil
}

// UpdateProfile atualiza nome e telefone do usuário com o email informado.
// Não verifica existência: atualizar zero linhas é sucesso. O email de
// busca é usado como veio no payload, sem normalização.
func (s *UserService) UpdateProfile(ctx context.Context, email, name, phone string) error {
	return s.userRepo.UpdateProfile(ctx, email, name, phone)
}

// ChangePassword troca a senha sem verificar a atual. Retorna
// ErrPasswordTooShort quando a nova senha tem menos de 8 caracteres.
func (s *UserService) ChangePassword(ctx context.Context, email, newPassword string) error {
	if utf8.RuneCountInString(newPassword) < minPasswordLength {
		return errors.ErrPasswordTooShort
	}

	return s.userRepo.UpdatePassword(ctx, email, newPassword)
}

// DeleteAccount remove a conta pelo email normalizado. Retorna
// ErrUserNotFound quando nenhuma linha foi removida.
func (s *UserService) DeleteAccount(ctx context.Context, email string) error {
	normalized := valueobjects.NewEmail(email)

	deleted, err := s.userRepo.DeleteByEmail(ctx, normalized.String())
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.ErrUserNotFound
	}

	s.logger.Info("account deleted", "email", normalized.String())
	return nil
}
