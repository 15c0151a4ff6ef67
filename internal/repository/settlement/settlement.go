package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	settlementservice "marketplace/internal/service/settlement"
)

const settlementColumns = `id, order_id, logistics_id, amount, fee, net, plan_id, currency, status, created_at, completed_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, stl entities.Settlement) (*entities.Settlement, error) {
	query := `
		INSERT INTO settlements (order_id, logistics_id, amount, fee, net, plan_id, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + settlementColumns

	settlementDB, err := scanSettlement(r.querier.QueryRow(
		ctx,
		query,
		stl.OrderID,
		stl.LogisticsID,
		stl.Amount,
		stl.Fee,
		stl.Net,
		stl.PlanID.String(),
		stl.Currency,
		stl.Status.String(),
	))
	if err != nil {
		// order_id уникален: расчёт по заказу создаётся ровно один раз
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, settlementservice.ErrAlreadySettled
		}
		return nil, fmt.Errorf("unexpected settlement repository create error: %w", err)
	}

	return ToDomain(settlementDB), nil
}

func (r *Repository) MarkCompleted(ctx context.Context, settlementID int64) error {
	query := `
		UPDATE settlements
		SET status = 'completed',
		    completed_at = NOW()
		WHERE id = $1 AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, settlementID)
	if err != nil {
		return fmt.Errorf("unexpected settlement repository complete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return settlementservice.ErrNotFound
	}

	return nil
}

func (r *Repository) ListPending(ctx context.Context) ([]entities.Settlement, error) {
	query := `
		SELECT ` + settlementColumns + `
		FROM settlements
		WHERE status = 'pending'
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository list error: %w", err)
	}
	defer rows.Close()

	settlements := make([]entities.Settlement, 0, 8)
	for rows.Next() {
		settlementDB, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected settlement repository scan error: %w", err)
		}
		settlements = append(settlements, *ToDomain(settlementDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected settlement repository rows error: %w", err)
	}

	return settlements, nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements WHERE order_id = $1`

	settlementDB, err := scanSettlement(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlementservice.ErrNotFound
		}
		return nil, fmt.Errorf("unexpected settlement repository get error: %w", err)
	}

	return ToDomain(settlementDB), nil
}

func scanSettlement(row pgx.Row) (*SettlementDB, error) {
	var s SettlementDB
	err := row.Scan(
		&s.ID,
		&s.OrderID,
		&s.LogisticsID,
		&s.Amount,
		&s.Fee,
		&s.Net,
		&s.PlanID,
		&s.Currency,
		&s.Status,
		&s.CreatedAt,
		&s.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
