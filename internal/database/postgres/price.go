package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

const priceColumns = `price_id, item_id, server_id, price, status, report_count, submitted_by, updated_at`

// PriceRepository implements repository.Prices for PostgreSQL
type PriceRepository struct {
	pool *pgxpool.Pool
}

// NewPriceRepository creates a new PriceRepository
func NewPriceRepository(pool *pgxpool.Pool) repository.Prices {
	return &PriceRepository{pool: pool}
}

func scanPrice(row pgx.Row) (*domain.Price, error) {
	var (
		p           domain.Price
		status      string
		submittedBy pgtype.Text
	)
	if err := row.Scan(&p.ID, &p.ItemID, &p.ServerID, &p.Price, &status, &p.ReportCount, &submittedBy, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = domain.PriceStatus(status)
	p.SubmittedBy = textToPtr(submittedBy)
	return &p, nil
}

// GetCurrentPrice returns the most recent approved price, or nil when none exists
func (r *PriceRepository) GetCurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error) {
	p, err := scanPrice(r.pool.QueryRow(ctx, `
		SELECT `+priceColumns+` FROM item_prices
		WHERE item_id = $1 AND server_id = $2 AND status = $3
		ORDER BY updated_at DESC LIMIT 1`,
		itemID, serverID, string(domain.PriceStatusApproved)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetPrice, err)
	}
	return p, nil
}

// ListCurrentPrices returns every approved price on a server
func (r *PriceRepository) ListCurrentPrices(ctx context.Context, serverID int) ([]domain.Price, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+priceColumns+` FROM item_prices
		WHERE server_id = $1 AND status = $2
		ORDER BY item_id, updated_at DESC`,
		serverID, string(domain.PriceStatusApproved))
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListPrices, err)
	}
	defer rows.Close()

	var prices []domain.Price
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		prices = append(prices, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListPrices, err)
	}
	return prices, nil
}

// GetPriceHistory returns the newest history rows first
func (r *PriceRepository) GetPriceHistory(ctx context.Context, itemID, serverID, limit int) ([]domain.PriceHistory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT history_id, item_id, server_id, price, submitted_by, created_at
		FROM price_histories
		WHERE item_id = $1 AND server_id = $2
		ORDER BY created_at DESC, history_id DESC
		LIMIT $3`,
		itemID, serverID, limit)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetHistory, err)
	}
	defer rows.Close()

	history := []domain.PriceHistory{}
	for rows.Next() {
		var (
			h           domain.PriceHistory
			submittedBy pgtype.Text
		)
		if err := rows.Scan(&h.ID, &h.ItemID, &h.ServerID, &h.Price, &submittedBy, &h.CreatedAt); err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		h.SubmittedBy = textToPtr(submittedBy)
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToGetHistory, err)
	}
	return history, nil
}

// BeginTx starts a price write transaction
func (r *PriceRepository) BeginTx(ctx context.Context) (repository.PriceTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &priceTx{tx: tx}, nil
}

type priceTx struct {
	tx pgx.Tx
}

func (t *priceTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *priceTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// UpsertPrice replaces the current price for (server, item) and clears its reports
func (t *priceTx) UpsertPrice(ctx context.Context, price *domain.Price) error {
	status := price.Status
	if status == "" {
		status = domain.PriceStatusApproved
	}
	err := t.tx.QueryRow(ctx, `
		INSERT INTO item_prices (item_id, server_id, price, status, report_count, submitted_by, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, NOW())
		ON CONFLICT (server_id, item_id) DO UPDATE SET
			price = EXCLUDED.price,
			status = EXCLUDED.status,
			report_count = 0,
			submitted_by = EXCLUDED.submitted_by,
			updated_at = NOW()
		RETURNING price_id, updated_at`,
		price.ItemID, price.ServerID, price.Price, string(status), ptrToText(price.SubmittedBy),
	).Scan(&price.ID, &price.UpdatedAt)
	if err != nil {
		return wrapErr(ErrMsgFailedToUpsertPrice, err)
	}
	price.Status = status
	price.ReportCount = 0
	return nil
}

func (t *priceTx) InsertPriceHistory(ctx context.Context, history *domain.PriceHistory) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO price_histories (item_id, server_id, price, submitted_by)
		VALUES ($1, $2, $3, $4)
		RETURNING history_id, created_at`,
		history.ItemID, history.ServerID, history.Price, ptrToText(history.SubmittedBy),
	).Scan(&history.ID, &history.CreatedAt)
	if err != nil {
		return wrapErr(ErrMsgFailedToInsertHistory, err)
	}
	return nil
}
