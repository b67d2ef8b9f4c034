package components

import (
	"fmt"
	"log/slog"

	"raffle-engine/internal/infra/memstore"
	sqlc "raffle-engine/internal/infra/sqlc/generated"
	"raffle-engine/internal/infra/uow"
	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewUnitOfWork,
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

// NewUnitOfWork picks the store backing every command and query.
func NewUnitOfWork(cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		if pool == nil {
			return nil, fmt.Errorf("store driver %q needs a database pool", cfg.Store.Driver)
		}
		return uow.NewPostgresUoW(pool, q, logger), nil
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return memstore.NewStore(logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
