package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/domain/order"
	pawmart_errors "pawmart/pkg/errors"
)

type orderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) exec(tx DBTX) DBTX {
	if tx != nil {
		return tx
	}
	return r.db
}

const orderColumns = `id, user_id, total_price, status, payment_status, payment_intent_id, stripe_session_id, shipping_address, paid_at, refunded_at, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...interface{}) error }) (order.Order, error) {
	var o order.Order
	var paymentIntentID, stripeSessionID, shipping sql.NullString
	var paidAt, refundedAt sql.NullTime
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.TotalPrice,
		&o.Status,
		&o.PaymentStatus,
		&paymentIntentID,
		&stripeSessionID,
		&shipping,
		&paidAt,
		&refundedAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return order.Order{}, err
	}
	if paymentIntentID.Valid {
		o.PaymentIntentID = &paymentIntentID.String
	}
	if stripeSessionID.Valid {
		o.StripeSessionID = &stripeSessionID.String
	}
	o.ShippingAddress = shipping.String
	if paidAt.Valid {
		t := paidAt.Time
		o.PaidAt = &t
	}
	if refundedAt.Valid {
		t := refundedAt.Time
		o.RefundedAt = &t
	}
	return o, nil
}

// Create inserts the order row and its line items. Caller is expected to run
// this inside the reservation transaction.
func (r *orderRepository) Create(ctx context.Context, tx DBTX, o *order.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	execDB := r.exec(tx)
	_, err := execDB.ExecContext(ctx, `
        INSERT INTO orders (id, user_id, total_price, status, payment_status, payment_intent_id, stripe_session_id, shipping_address, paid_at, refunded_at, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `,
		o.ID,
		o.UserID,
		o.TotalPrice,
		o.Status,
		o.PaymentStatus,
		o.PaymentIntentID,
		o.StripeSessionID,
		nullString(o.ShippingAddress),
		o.PaidAt,
		o.RefundedAt,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	for i := range o.Items {
		it := &o.Items[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.OrderID = o.ID
		it.CreatedAt = now
		_, err := execDB.ExecContext(ctx, `
            INSERT INTO order_items (id, order_id, pet_id, price, created_at)
            VALUES ($1,$2,$3,$4,$5)
        `, it.ID, it.OrderID, it.PetID, it.Price, it.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, tx DBTX, id uuid.UUID) (order.Order, error) {
	row := r.exec(tx).QueryRowContext(ctx, `
        SELECT `+orderColumns+` FROM orders WHERE id = $1
    `, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, pawmart_errors.ErrNotFound
	}
	if err != nil {
		return order.Order{}, err
	}
	o.Items, err = r.GetItems(ctx, tx, o.ID)
	return o, err
}

func (r *orderRepository) GetByPaymentIntentID(ctx context.Context, tx DBTX, paymentIntentID string) (order.Order, error) {
	row := r.exec(tx).QueryRowContext(ctx, `
        SELECT `+orderColumns+` FROM orders WHERE payment_intent_id = $1
    `, paymentIntentID)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, pawmart_errors.ErrNotFound
	}
	if err != nil {
		return order.Order{}, err
	}
	o.Items, err = r.GetItems(ctx, tx, o.ID)
	return o, err
}

func (r *orderRepository) GetItems(ctx context.Context, tx DBTX, orderID uuid.UUID) ([]order.OrderItem, error) {
	rows, err := r.exec(tx).QueryContext(ctx, `
        SELECT id, order_id, pet_id, price, created_at
        FROM order_items
        WHERE order_id = $1
        ORDER BY created_at ASC, id ASC
    `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []order.OrderItem
	for rows.Next() {
		var it order.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.PetID, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *orderRepository) SetStripeSession(ctx context.Context, tx DBTX, orderID uuid.UUID, sessionID string) error {
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE orders SET stripe_session_id = $1, updated_at = $2 WHERE id = $3
    `, sessionID, time.Now(), orderID)
	if err != nil {
		return err
	}
	return requireAffected(res, pawmart_errors.ErrNotFound)
}

func (r *orderRepository) MarkPaid(ctx context.Context, tx DBTX, orderID uuid.UUID, paymentIntentID string, paidAt time.Time) error {
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE orders
        SET status = $1, payment_status = $2, payment_intent_id = $3, paid_at = $4, updated_at = $5
        WHERE id = $6
    `, order.StatusConfirmed, order.PaymentPaid, paymentIntentID, paidAt, time.Now(), orderID)
	if err != nil {
		return err
	}
	return requireAffected(res, pawmart_errors.ErrNotFound)
}

func (r *orderRepository) MarkPaymentFailed(ctx context.Context, tx DBTX, orderID uuid.UUID) error {
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE orders SET status = $1, payment_status = $2, updated_at = $3 WHERE id = $4
    `, order.StatusCancelled, order.PaymentFailed, time.Now(), orderID)
	if err != nil {
		return err
	}
	return requireAffected(res, pawmart_errors.ErrNotFound)
}

func (r *orderRepository) MarkRefunded(ctx context.Context, tx DBTX, orderID uuid.UUID, refundedAt time.Time) error {
	res, err := r.exec(tx).ExecContext(ctx, `
        UPDATE orders
        SET status = $1, payment_status = $2, refunded_at = $3, updated_at = $4
        WHERE id = $5
    `, order.StatusRefunded, order.PaymentRefunded, refundedAt, time.Now(), orderID)
	if err != nil {
		return err
	}
	return requireAffected(res, pawmart_errors.ErrNotFound)
}
