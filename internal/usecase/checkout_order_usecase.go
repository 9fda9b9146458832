package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"flexmode/internal/domain/entities"
	"flexmode/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	// GST and currency are fixed for this storefront, not configuration.
	gstRate  = 0.18
	currency = "INR"

	gatewayTimeout = 15 * time.Second
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrGatewayFailure = errors.New("failed to create order")
)

// ICheckoutOrderUseCase encapsulates order initiation: price the product with
// GST and ask the payment gateway for a trackable order the browser can hand
// to the hosted checkout widget.
type ICheckoutOrderUseCase interface {
	CreateOrder(ctx context.Context, productID string) (entities.CheckoutOrder, error)
}

type CheckoutOrderUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ ICheckoutOrderUseCase = (*CheckoutOrderUseCase)(nil)

func NewCheckoutOrderUseCase(gateway interfaces.IPaymentGateway) *CheckoutOrderUseCase {
	return &CheckoutOrderUseCase{gateway: gateway}
}

// OrderTotalPaise converts a catalog price in rupees to the tax-inclusive
// total in paise. The GST multiply happens in floating point and the result
// is rounded exactly once, at the end, so totals cannot drift by a paisa.
func OrderTotalPaise(priceRupees int64) int64 {
	price := float64(priceRupees)
	return int64(math.Round((price + price*gstRate) * 100))
}

func (u *CheckoutOrderUseCase) CreateOrder(ctx context.Context, productID string) (entities.CheckoutOrder, error) {
	productID = strings.TrimSpace(productID)
	log.Printf("[checkout][usecase] create-order start product_id=%q", productID)

	product, ok := entities.ProductByID(productID)
	if !ok {
		log.Printf("[checkout][usecase] unknown product product_id=%q", productID)
		return entities.CheckoutOrder{}, ErrInvalidProduct
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured product_id=%s", productID)
		return entities.CheckoutOrder{}, errors.New("payment gateway not configured")
	}

	amount := OrderTotalPaise(product.Price)
	receipt := fmt.Sprintf("flexmode_%s_%d_%s", productID, time.Now().UnixMilli(), uuid.NewString()[:8])
	notes := map[string]interface{}{
		"productId":   product.ID,
		"productName": product.Name,
	}

	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	log.Printf("[checkout][usecase] calling gateway product_id=%s amount_paise=%d receipt=%s", productID, amount, receipt)
	order, err := u.gateway.CreateOrder(ctx, amount, currency, receipt, notes)
	if err != nil {
		log.Printf("[checkout][usecase] gateway create failed product_id=%s err=%v", productID, err)
		return entities.CheckoutOrder{}, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	order.ProductID = product.ID
	order.ProductName = product.Name
	log.Printf("[checkout][usecase] create-order success product_id=%s order_id=%s amount_paise=%d status=%s",
		productID, order.OrderID, order.Amount, entities.CheckoutStatusAwaitingCallback)
	return order, nil
}
