package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"pawmart/internal/domain/order"
	"pawmart/internal/payments"
	mock_payments "pawmart/internal/payments/mocks"
	"pawmart/internal/repository"
	mock_repository "pawmart/internal/repository/mocks"
	pawmart_errors "pawmart/pkg/errors"
)

// stubTxRunner executes the transactional closure directly, with no real
// transaction underneath. Repositories receive a nil tx, which their mocks
// accept via gomock.Any().
type stubTxRunner struct{ err error }

func (r stubTxRunner) InTx(_ context.Context, fn func(tx repository.DBTX) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(nil)
}

func TestCreateOrder(t *testing.T) {
	userID := uuid.New()
	petA := uuid.New()
	petB := uuid.New()

	t.Run("reserves every pet and totals the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, o *order.Order) error {
				o.ID = uuid.New()
				return nil
			})
		pets.EXPECT().MarkPending(gomock.Any(), gomock.Any(), petA).Return(nil)
		pets.EXPECT().MarkPending(gomock.Any(), gomock.Any(), petB).Return(nil)

		svc := NewOrderService(stubTxRunner{}, orders, pets, nil, nil, nil, nil)
		got, err := svc.CreateOrder(context.Background(), userID, []OrderItemInput{
			{PetID: petA, Price: decimal.RequireFromString("250.00")},
			{PetID: petB, Price: decimal.RequireFromString("99.50")},
		}, "12 Bark Lane")
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		if got.ID == uuid.Nil {
			t.Fatal("order ID not assigned")
		}
		if want := decimal.RequireFromString("349.50"); !got.TotalPrice.Equal(want) {
			t.Fatalf("total = %s, want %s", got.TotalPrice, want)
		}
		if got.Status != order.StatusPending || got.PaymentStatus != order.PaymentPending {
			t.Fatalf("unexpected initial statuses: %s / %s", got.Status, got.PaymentStatus)
		}
	})

	t.Run("rejects bad input before opening a transaction", func(t *testing.T) {
		svc := NewOrderService(stubTxRunner{err: errors.New("must not run")}, nil, nil, nil, nil, nil, nil)

		cases := map[string][]OrderItemInput{
			"no items":       {},
			"nil pet":        {{PetID: uuid.Nil, Price: decimal.NewFromInt(10)}},
			"negative price": {{PetID: petA, Price: decimal.NewFromInt(-1)}},
			"duplicate pet":  {{PetID: petA, Price: decimal.NewFromInt(10)}, {PetID: petA, Price: decimal.NewFromInt(10)}},
		}
		for name, items := range cases {
			if _, err := svc.CreateOrder(context.Background(), userID, items, ""); !errors.Is(err, pawmart_errors.ErrInvalidInput) {
				t.Fatalf("%s: err = %v, want ErrInvalidInput", name, err)
			}
		}
		if _, err := svc.CreateOrder(context.Background(), uuid.Nil, cases["negative price"], ""); !errors.Is(err, pawmart_errors.ErrInvalidInput) {
			t.Fatalf("nil user: err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("reservation failure aborts the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		pets.EXPECT().MarkPending(gomock.Any(), gomock.Any(), petA).Return(errors.New("db down"))

		svc := NewOrderService(stubTxRunner{}, orders, pets, nil, nil, nil, nil)
		if _, err := svc.CreateOrder(context.Background(), userID, []OrderItemInput{
			{PetID: petA, Price: decimal.NewFromInt(100)},
		}, ""); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestCreatePaymentSession(t *testing.T) {
	userID := uuid.New()
	petID := uuid.New()
	items := []OrderItemInput{{PetID: petID, Price: decimal.RequireFromString("120.00")}}

	t.Run("unconfigured gateway fails fast", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_payments.NewMockGateway(ctrl)
		gateway.EXPECT().Configured().Return(false)

		svc := NewOrderService(stubTxRunner{err: errors.New("must not run")}, nil, nil, nil, gateway, nil, nil)
		if _, err := svc.CreatePaymentSession(context.Background(), userID, items, ""); !errors.Is(err, pawmart_errors.ErrServiceUnavailable) {
			t.Fatalf("err = %v, want ErrServiceUnavailable", err)
		}
	})

	t.Run("nil gateway fails fast", func(t *testing.T) {
		svc := NewOrderService(stubTxRunner{}, nil, nil, nil, nil, nil, nil)
		if _, err := svc.CreatePaymentSession(context.Background(), userID, items, ""); !errors.Is(err, pawmart_errors.ErrServiceUnavailable) {
			t.Fatalf("err = %v, want ErrServiceUnavailable", err)
		}
	})

	t.Run("unknown pet aborts before reserving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)
		users := mock_repository.NewMockUserRepository(ctrl)
		gateway := mock_payments.NewMockGateway(ctrl)

		gateway.EXPECT().Configured().Return(true)
		users.EXPECT().GetByID(gomock.Any(), gomock.Any(), userID).Return(userFixture(userID), nil)
		pets.EXPECT().GetByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{petID}).Return(nil, nil)

		svc := NewOrderService(stubTxRunner{}, orders, pets, users, gateway, nil, nil)
		if _, err := svc.CreatePaymentSession(context.Background(), userID, items, ""); !errors.Is(err, pawmart_errors.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("creates the session inside the reservation transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)
		users := mock_repository.NewMockUserRepository(ctrl)
		gateway := mock_payments.NewMockGateway(ctrl)

		var orderID uuid.UUID
		gateway.EXPECT().Configured().Return(true)
		users.EXPECT().GetByID(gomock.Any(), gomock.Any(), userID).Return(userFixture(userID), nil)
		pets.EXPECT().GetByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{petID}).Return(petFixtures(petID), nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, o *order.Order) error {
				o.ID = uuid.New()
				orderID = o.ID
				return nil
			})
		pets.EXPECT().MarkPending(gomock.Any(), gomock.Any(), petID).Return(nil)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p payments.CheckoutParams) (payments.CheckoutSession, error) {
				if p.OrderID != orderID || p.UserID != userID {
					t.Fatalf("session metadata mismatch: %s / %s", p.OrderID, p.UserID)
				}
				if len(p.Items) != 1 || p.Items[0].Name != "Biscuit" {
					t.Fatalf("unexpected checkout items: %+v", p.Items)
				}
				return payments.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}, nil
			})
		orders.EXPECT().SetStripeSession(gomock.Any(), gomock.Any(), gomock.Any(), "cs_test_1").Return(nil)

		svc := NewOrderService(stubTxRunner{}, orders, pets, users, gateway, nil, nil)
		got, err := svc.CreatePaymentSession(context.Background(), userID, items, "12 Bark Lane")
		if err != nil {
			t.Fatalf("CreatePaymentSession: %v", err)
		}
		if got.SessionID != "cs_test_1" || got.OrderID != orderID {
			t.Fatalf("unexpected session: %+v", got)
		}
	})

	t.Run("gateway failure rolls the reservation back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_repository.NewMockOrderRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)
		users := mock_repository.NewMockUserRepository(ctrl)
		gateway := mock_payments.NewMockGateway(ctrl)

		gateway.EXPECT().Configured().Return(true)
		users.EXPECT().GetByID(gomock.Any(), gomock.Any(), userID).Return(userFixture(userID), nil)
		pets.EXPECT().GetByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{petID}).Return(petFixtures(petID), nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		pets.EXPECT().MarkPending(gomock.Any(), gomock.Any(), petID).Return(nil)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(payments.CheckoutSession{}, errors.New("stripe 500"))

		svc := NewOrderService(stubTxRunner{}, orders, pets, users, gateway, nil, nil)
		if _, err := svc.CreatePaymentSession(context.Background(), userID, items, ""); err == nil {
			t.Fatal("expected error")
		}
	})
}
