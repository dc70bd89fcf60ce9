package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// Cada handler executa todas as suas instruções em uma única unidade atômica.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
