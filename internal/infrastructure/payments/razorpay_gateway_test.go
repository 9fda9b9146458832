package payments

import (
	"context"
	"errors"
	"testing"
)

func TestNewRazorpayGateway_MissingCredentials(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("RAZORPAY_MOCK", "")

	if _, err := NewRazorpayGateway("", ""); !errors.Is(err, ErrMissingRazorpayCredentials) {
		t.Fatalf("expected ErrMissingRazorpayCredentials, got %v", err)
	}
	if _, err := NewRazorpayGateway("rzp_test_key", ""); !errors.Is(err, ErrMissingRazorpayCredentials) {
		t.Fatalf("expected ErrMissingRazorpayCredentials, got %v", err)
	}
}

func TestRazorpayGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	g, err := NewRazorpayGateway("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := g.CreateOrder(context.Background(), 58882, "INR", "flexmode_beginner-program_1_aaaa", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderID == "" {
		t.Fatal("expected a mock order id")
	}
	if order.Amount != 58882 || order.Currency != "INR" {
		t.Fatalf("mock order must echo amount and currency, got %+v", order)
	}
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("RAZORPAY_MOCK", "")

	g, err := NewRazorpayGateway("rzp_test_key", "test_secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// HMAC-SHA256("test_secret", "order_test_123|pay_test_456"), hex.
	const genuine = "b272703480fdac0ab4f26fe91c1959f257538587c322654319fc83e455f8a95d"

	t.Run("genuine signature", func(t *testing.T) {
		if !g.VerifySignature("order_test_123", "pay_test_456", genuine) {
			t.Fatal("expected genuine signature to verify")
		}
	})

	t.Run("one character flipped", func(t *testing.T) {
		tampered := "a" + genuine[1:]
		if g.VerifySignature("order_test_123", "pay_test_456", tampered) {
			t.Fatal("expected tampered signature to fail")
		}
	})

	t.Run("swapped order and payment ids", func(t *testing.T) {
		if g.VerifySignature("pay_test_456", "order_test_123", genuine) {
			t.Fatal("expected swapped message to fail")
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		if g.VerifySignature("order_test_123", "pay_test_456", "") {
			t.Fatal("expected empty signature to fail")
		}
	})

	t.Run("no secret configured", func(t *testing.T) {
		bare := &RazorpayGateway{}
		if bare.VerifySignature("order_test_123", "pay_test_456", genuine) {
			t.Fatal("expected verification to fail without a secret")
		}
	})
}
