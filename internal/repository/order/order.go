package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	orderservice "marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, business_id, business_name, logistics_id, logistics_name,
		pickup_address, pickup_lat, pickup_lng, dropoff_address, dropoff_lat, dropoff_lng,
		item_description, price, currency, status, plan_at_acceptance, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, order entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (
			id, business_id, business_name,
			pickup_address, pickup_lat, pickup_lng,
			dropoff_address, dropoff_lat, dropoff_lng,
			item_description, price, currency, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		order.ID,
		order.BusinessID,
		order.BusinessName,
		order.PickupAddress,
		order.PickupLat,
		order.PickupLng,
		order.DropoffAddress,
		order.DropoffLat,
		order.DropoffLng,
		order.ItemDescription,
		order.Price,
		order.Currency,
		order.Status.String(),
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("order id collision: %w", err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) ListByBusiness(ctx context.Context, businessID string) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE business_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, businessID)
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = 'pending_acceptance' AND logistics_id IS NULL
		ORDER BY created_at DESC`

	return r.list(ctx, query)
}

func (r *Repository) ListByLogistics(ctx context.Context, logisticsID string) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE logistics_id = $1
		ORDER BY updated_at DESC`

	return r.list(ctx, query, logisticsID)
}

// AcceptPending — compare-and-swap: строка обновляется только пока заказ
// свободен, конкурентный проигравший получает ноль строк.
func (r *Repository) AcceptPending(ctx context.Context, orderID string, logisticsID, logisticsName string, plan entities.PlanID) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET logistics_id = $2,
		    logistics_name = $3,
		    plan_at_acceptance = $4,
		    status = 'pending_payment',
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending_acceptance'
		  AND logistics_id IS NULL
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, logisticsID, logisticsName, plan.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, orderID)
		}
		return nil, fmt.Errorf("unexpected order repository accept error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) Transition(ctx context.Context, orderID string, from, to entities.OrderStatusType, clearLogistics bool) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", to.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if clearLogistics {
		builder = builder.
			Set("logistics_id", nil).
			Set("logistics_name", nil).
			Set("plan_at_acceptance", nil)
	}

	builder = builder.
		Where(sq.Eq{"id": orderID, "status": from.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, orderID)
		}
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// classifyMiss различает исходы несработавшего CAS: заказа нет вовсе или
// его состояние уже изменил конкурент.
func (r *Repository) classifyMiss(ctx context.Context, orderID string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository lookup error: %w", err)
	}
	if !exists {
		return orderservice.ErrOrderNotFound
	}
	return orderservice.ErrOrderNotAvailable
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, 8)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.BusinessID,
		&o.BusinessName,
		&o.LogisticsID,
		&o.LogisticsName,
		&o.PickupAddress,
		&o.PickupLat,
		&o.PickupLng,
		&o.DropoffAddress,
		&o.DropoffLat,
		&o.DropoffLng,
		&o.ItemDescription,
		&o.Price,
		&o.Currency,
		&o.Status,
		&o.PlanAtAcceptance,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
