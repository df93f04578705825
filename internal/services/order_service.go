package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pawmart/internal/domain/order"
	"pawmart/internal/payments"
	"pawmart/internal/redis"
	"pawmart/internal/repository"
	pawmart_errors "pawmart/pkg/errors"
	"pawmart/pkg/logger"
)

// OrderItemInput is one caller-supplied line. The line price is trusted as-is
// at creation time; there is no server-side re-pricing.
type OrderItemInput struct {
	PetID uuid.UUID
	Price decimal.Decimal
}

// PaymentSession is the result of a checkout-session creation.
type PaymentSession struct {
	SessionID string    `json:"session_id"`
	URL       string    `json:"url"`
	OrderID   uuid.UUID `json:"order_id"`
}

type OrderService struct {
	tx      repository.TxRunner
	orders  repository.OrderRepository
	pets    repository.PetRepository
	users   repository.UserRepository
	gateway payments.Gateway
	cache   *redis.CacheStore
	logger  *logger.Logger
}

func NewOrderService(
	tx repository.TxRunner,
	orders repository.OrderRepository,
	pets repository.PetRepository,
	users repository.UserRepository,
	gateway payments.Gateway,
	cache *redis.CacheStore,
	l *logger.Logger,
) *OrderService {
	return &OrderService{
		tx:      tx,
		orders:  orders,
		pets:    pets,
		users:   users,
		gateway: gateway,
		cache:   cache,
		logger:  l,
	}
}

// CreateOrder reserves every referenced pet and records the order in one
// transaction. Pets move available → pending without a claimant; ownership is
// assigned only when payment completes.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, items []OrderItemInput, shippingAddress string) (order.Order, error) {
	o, err := buildOrder(userID, items, shippingAddress)
	if err != nil {
		return order.Order{}, err
	}

	err = s.tx.InTx(ctx, func(tx repository.DBTX) error {
		return s.reserve(ctx, tx, &o)
	})
	if err != nil {
		return order.Order{}, err
	}

	s.invalidatePets(ctx, petIDs(o.Items))
	return o, nil
}

// CreatePaymentSession runs the same reservation transaction as CreateOrder
// and additionally creates a gateway checkout session before committing. A
// gateway failure rolls the whole reservation back, so no pet stays pending
// for a session that never existed.
func (s *OrderService) CreatePaymentSession(ctx context.Context, userID uuid.UUID, items []OrderItemInput, shippingAddress string) (PaymentSession, error) {
	if s.gateway == nil || !s.gateway.Configured() {
		return PaymentSession{}, pawmart_errors.ErrServiceUnavailable
	}

	o, err := buildOrder(userID, items, shippingAddress)
	if err != nil {
		return PaymentSession{}, err
	}

	var session payments.CheckoutSession
	err = s.tx.InTx(ctx, func(tx repository.DBTX) error {
		buyer, err := s.users.GetByID(ctx, tx, userID)
		if err != nil {
			return err
		}

		pets, err := s.pets.GetByIDs(ctx, tx, petIDs(o.Items))
		if err != nil {
			return err
		}
		if len(pets) != len(o.Items) {
			return pawmart_errors.ErrNotFound
		}
		names := make(map[uuid.UUID]string, len(pets))
		for _, p := range pets {
			names[p.ID] = p.Name
		}

		if err := s.reserve(ctx, tx, &o); err != nil {
			return err
		}

		checkoutItems := make([]payments.CheckoutItem, 0, len(o.Items))
		for _, it := range o.Items {
			checkoutItems = append(checkoutItems, payments.CheckoutItem{
				PetID: it.PetID,
				Name:  names[it.PetID],
				Price: it.Price,
			})
		}
		session, err = s.gateway.CreateCheckoutSession(ctx, payments.CheckoutParams{
			Items:           checkoutItems,
			ShippingAddress: shippingAddress,
			OrderID:         o.ID,
			UserID:          userID,
			CustomerEmail:   buyer.Email,
		})
		if err != nil {
			return err
		}

		return s.orders.SetStripeSession(ctx, tx, o.ID, session.ID)
	})
	if err != nil {
		return PaymentSession{}, err
	}

	s.invalidatePets(ctx, petIDs(o.Items))
	return PaymentSession{SessionID: session.ID, URL: session.URL, OrderID: o.ID}, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (order.Order, error) {
	return s.orders.GetByID(ctx, nil, id)
}

// reserve inserts the order aggregate and marks every pet pending. Must run
// inside the caller's transaction.
func (s *OrderService) reserve(ctx context.Context, tx repository.DBTX, o *order.Order) error {
	if err := s.orders.Create(ctx, tx, o); err != nil {
		return err
	}
	for _, it := range o.Items {
		if err := s.pets.MarkPending(ctx, tx, it.PetID); err != nil {
			return err
		}
	}
	return nil
}

func buildOrder(userID uuid.UUID, items []OrderItemInput, shippingAddress string) (order.Order, error) {
	if userID == uuid.Nil || len(items) == 0 {
		return order.Order{}, pawmart_errors.ErrInvalidInput
	}
	o := order.Order{
		UserID:          userID,
		Status:          order.StatusPending,
		PaymentStatus:   order.PaymentPending,
		ShippingAddress: shippingAddress,
	}
	seen := make(map[uuid.UUID]bool, len(items))
	for _, in := range items {
		if in.PetID == uuid.Nil || in.Price.IsNegative() || seen[in.PetID] {
			return order.Order{}, pawmart_errors.ErrInvalidInput
		}
		seen[in.PetID] = true
		o.Items = append(o.Items, order.OrderItem{PetID: in.PetID, Price: in.Price})
	}
	o.TotalPrice = order.Total(o.Items)
	return o, nil
}

func petIDs(items []order.OrderItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.PetID
	}
	return ids
}

// invalidatePets is best effort; a failed invalidation only delays cache
// freshness until TTL.
func (s *OrderService) invalidatePets(ctx context.Context, ids []uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePets(ctx, ids); err != nil && s.logger != nil {
		s.logger.Warnf("pet cache invalidation failed: %v", err)
	}
}
