package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"flexmode/internal/domain/entities"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	mockMode  bool
}

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{keySecret: keySecret, mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[payment][gateway] razorpay client initialized")
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret), keySecret: keySecret}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]interface{}) (entities.CheckoutOrder, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("order_mock_%d", time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock create success order_id=%s amount_paise=%d", id, amountPaise)
		return entities.CheckoutOrder{
			OrderID:  id,
			Amount:   amountPaise,
			Currency: currency,
			Receipt:  receipt,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.CheckoutOrder{}, ErrRazorpayGatewayNotConfigured
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	log.Printf("[payment][gateway] create start amount_paise=%d receipt=%s", amountPaise, receipt)

	// The SDK does not take a context, so the call runs aside and the
	// caller's deadline is enforced here.
	type orderResult struct {
		body map[string]interface{}
		err  error
	}
	ch := make(chan orderResult, 1)
	go func() {
		body, err := g.client.Order.Create(data, nil)
		ch <- orderResult{body: body, err: err}
	}()

	var body map[string]interface{}
	select {
	case <-ctx.Done():
		log.Printf("[payment][gateway] create cancelled err=%v", ctx.Err())
		return entities.CheckoutOrder{}, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			log.Printf("[payment][gateway] sdk create failed err=%v", res.err)
			return entities.CheckoutOrder{}, res.err
		}
		body = res.body
	}

	order := entities.CheckoutOrder{
		OrderID:  stringField(body, "id"),
		Amount:   int64Field(body, "amount"),
		Currency: stringField(body, "currency"),
		Receipt:  stringField(body, "receipt"),
	}
	if order.OrderID == "" {
		log.Printf("[payment][gateway] sdk response missing order id")
		return entities.CheckoutOrder{}, errors.New("razorpay response missing order id")
	}

	log.Printf("[payment][gateway] create success order_id=%s amount_paise=%d", order.OrderID, order.Amount)
	return order, nil
}

// VerifySignature recomputes the callback signature: hex HMAC-SHA256 over
// orderID + "|" + paymentID keyed with the shared key secret. Any deviation
// in delimiter or field order breaks matching.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if g == nil || g.keySecret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
