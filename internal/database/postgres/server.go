package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

const serverColumns = `server_id, name, slug, server_type, language, is_active, display_order, created_at`

// ServerRepository implements repository.Servers for PostgreSQL
type ServerRepository struct {
	pool *pgxpool.Pool
}

// NewServerRepository creates a new ServerRepository
func NewServerRepository(pool *pgxpool.Pool) repository.Servers {
	return &ServerRepository{pool: pool}
}

func scanServer(row pgx.Row) (*domain.Server, error) {
	var s domain.Server
	if err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Type, &s.Language, &s.IsActive, &s.DisplayOrder, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetServer returns nil when the server does not exist
func (r *ServerRepository) GetServer(ctx context.Context, serverID int) (*domain.Server, error) {
	s, err := scanServer(r.pool.QueryRow(ctx, `SELECT `+serverColumns+` FROM servers WHERE server_id = $1`, serverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetServer, err)
	}
	return s, nil
}

// ListActiveServers returns active servers in display order
func (r *ServerRepository) ListActiveServers(ctx context.Context) ([]domain.Server, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+serverColumns+` FROM servers WHERE is_active ORDER BY display_order, server_id`)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListServers, err)
	}
	defer rows.Close()

	servers := []domain.Server{}
	for rows.Next() {
		s, err := scanServer(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		servers = append(servers, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListServers, err)
	}
	return servers, nil
}

// UpsertServer inserts or updates a server matched on its slug
func (r *ServerRepository) UpsertServer(ctx context.Context, server *domain.Server) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO servers (name, slug, server_type, language, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			server_type = EXCLUDED.server_type,
			language = EXCLUDED.language,
			is_active = EXCLUDED.is_active,
			display_order = EXCLUDED.display_order
		RETURNING server_id`,
		server.Name, server.Slug, server.Type, server.Language, server.IsActive, server.DisplayOrder,
	).Scan(&id)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToUpsertServer, err)
	}
	server.ID = id
	return id, nil
}
