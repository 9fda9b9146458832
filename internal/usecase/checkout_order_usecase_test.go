package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"flexmode/internal/domain/entities"
	mock_interfaces "flexmode/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderTotalPaise(t *testing.T) {
	// Rule fixed here: 18% GST in float, a single rounding at the end into
	// integer paise.
	cases := []struct {
		price int64
		want  int64
	}{
		{499, 58882},
		{699, 82482},
		{899, 106082},
		{399, 47082},
		{1199, 141482},
		{1999, 235882},
	}
	for _, tc := range cases {
		if got := OrderTotalPaise(tc.price); got != tc.want {
			t.Fatalf("OrderTotalPaise(%d) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestCheckoutOrderUseCase_CreateOrder_InvalidProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewCheckoutOrderUseCase(gateway)

	// No gateway expectations: an unknown id must never reach the provider.
	_, err := uc.CreateOrder(context.Background(), "no-such-product")
	if !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}

	_, err = uc.CreateOrder(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct for blank id, got %v", err)
	}
}

func TestCheckoutOrderUseCase_CreateOrder_GatewayNotConfigured(t *testing.T) {
	uc := NewCheckoutOrderUseCase(nil)
	_, err := uc.CreateOrder(context.Background(), "beginner-program")
	if err == nil || err.Error() != "payment gateway not configured" {
		t.Fatalf("expected gateway not configured error, got %v", err)
	}
}

func TestCheckoutOrderUseCase_CreateOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewCheckoutOrderUseCase(gateway)

	var receipts []string
	gateway.EXPECT().
		CreateOrder(gomock.Any(), int64(58882), "INR", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, amountPaise int64, currency, receipt string, notes map[string]interface{}) (entities.CheckoutOrder, error) {
			if !strings.HasPrefix(receipt, "flexmode_beginner-program_") {
				t.Fatalf("receipt %q does not embed the product id", receipt)
			}
			if notes["productId"] != "beginner-program" || notes["productName"] != "FlexMode Beginner Program" {
				t.Fatalf("unexpected notes: %v", notes)
			}
			receipts = append(receipts, receipt)
			return entities.CheckoutOrder{OrderID: "order_abc", Amount: amountPaise, Currency: currency, Receipt: receipt}, nil
		}).
		Times(2)

	order, err := uc.CreateOrder(context.Background(), "beginner-program")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderID != "order_abc" {
		t.Fatalf("expected order_abc, got %q", order.OrderID)
	}
	if order.Amount != 58882 {
		t.Fatalf("expected 58882 paise, got %d", order.Amount)
	}
	if order.ProductID != "beginner-program" || order.ProductName != "FlexMode Beginner Program" {
		t.Fatalf("expected product echo on order, got %+v", order)
	}

	if _, err := uc.CreateOrder(context.Background(), "beginner-program"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(receipts) != 2 || receipts[0] == receipts[1] {
		t.Fatalf("expected two distinct receipts, got %v", receipts)
	}
}

func TestCheckoutOrderUseCase_CreateOrder_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewCheckoutOrderUseCase(gateway)

	gateway.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.CheckoutOrder{}, errors.New("BAD_REQUEST_ERROR: amount too small"))

	_, err := uc.CreateOrder(context.Background(), "nutrition-guide")
	if !errors.Is(err, ErrGatewayFailure) {
		t.Fatalf("expected ErrGatewayFailure, got %v", err)
	}
	if !strings.Contains(err.Error(), "amount too small") {
		t.Fatalf("expected provider detail surfaced, got %v", err)
	}
}
