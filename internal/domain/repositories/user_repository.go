package repositories

import (
	"context"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	// FindByEmail retorna nil (sem erro) quando o usuário não existe
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// FindByCredentials retorna nil quando não há usuário com email+senha exatos
	FindByCredentials(ctx context.Context, email, password string) (*entities.User, error)
	// UpdateProfile atualiza nome e telefone; não verifica existência
	UpdateProfile(ctx context.Context, email, name, phone string) error
	// UpdatePassword troca a senha; não verifica existência
	UpdatePassword(ctx context.Context, email, password string) error
	// DeleteByEmail remove o usuário e retorna quantas linhas foram removidas
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
