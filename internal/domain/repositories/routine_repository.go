package repositories

import (
	"context"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
)

// RoutineRepository define a interface para persistência de rotinas e itens
type RoutineRepository interface {
	// FindActiveByUser retorna a rotina ATIVA do usuário, ou nil
	FindActiveByUser(ctx context.Context, userEmail string) (*entities.Routine, error)
	Create(ctx context.Context, routine *entities.Routine) error
	CreateItem(ctx context.Context, item *entities.CareItem) error
	// FindItemByID retorna nil quando o item não existe
	FindItemByID(ctx context.Context, itemID int) (*entities.CareItem, error)
	// ListActiveItems retorna os itens das rotinas ATIVAS do usuário,
	// ordenados lexicograficamente pela string de horário
	ListActiveItems(ctx context.Context, userEmail string) ([]*entities.CareItem, error)
	DeleteItem(ctx context.Context, itemID int) error
}
