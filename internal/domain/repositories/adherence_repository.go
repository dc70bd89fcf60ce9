package repositories

import (
	"context"
	"time"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
)

// AdherenceRepository define a interface para persistência de aderências
type AdherenceRepository interface {
	Create(ctx context.Context, adherence *entities.Adherence) error
	// ExistsInWindow verifica se há qualquer registro do item no intervalo
	ExistsInWindow(ctx context.Context, itemID int, start, end time.Time) (bool, error)
	// ExistsPositiveInWindow verifica se há registro com conformidade true
	ExistsPositiveInWindow(ctx context.Context, itemID int, start, end time.Time) (bool, error)
	// DeleteInWindow remove todos os registros do item no intervalo
	DeleteInWindow(ctx context.Context, itemID int, start, end time.Time) error
	// DeleteByItem remove todos os registros do item
	DeleteByItem(ctx context.Context, itemID int) error
}
