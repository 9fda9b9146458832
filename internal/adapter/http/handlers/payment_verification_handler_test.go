package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flexmode/internal/adapter/http/handlers/mocks"
	"flexmode/internal/domain/entities"
	"flexmode/internal/usecase"
	"flexmode/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const verifyBody = `{
	"razorpay_order_id": "order_test_123",
	"razorpay_payment_id": "pay_test_456",
	"razorpay_signature": "b272703480fdac0ab4f26fe91c1959f257538587c322654319fc83e455f8a95d",
	"productId": "nutrition-guide",
	"customer": {"name": "Asha Verma", "email": "asha@example.com", "phone": "9876543210", "city": "Pune"}
}`

func newVerifyRouter(h *PaymentVerificationHandler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		appErr := pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
	r.POST("/v1/checkout/verify", h.VerifyPayment)
	return r
}

func postVerify(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/checkout/verify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentVerificationHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentVerificationUseCase(ctrl)
		r := newVerifyRouter(NewPaymentVerificationHandler(uc))

		w := postVerify(r, `{"razorpay_order_id":"order_test_123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentVerificationUseCase(ctrl)
		r := newVerifyRouter(NewPaymentVerificationHandler(uc))

		uc.EXPECT().VerifyAndFulfill(gomock.Any(), gomock.Any(), "nutrition-guide", gomock.Any()).
			Return(entities.PaymentConfirmation{}, usecase.ErrInvalidSignature)

		w := postVerify(r, verifyBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json body: %v", err)
		}
		if body["success"] != false || body["error"] != "Invalid payment signature" {
			t.Fatalf("unexpected envelope: %v", body)
		}
		// The rejection stays generic; no detail field.
		if _, ok := body["details"]; ok {
			t.Fatalf("signature rejection must not leak detail: %v", body)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentVerificationUseCase(ctrl)
		r := newVerifyRouter(NewPaymentVerificationHandler(uc))

		uc.EXPECT().VerifyAndFulfill(gomock.Any(), gomock.Any(), "nutrition-guide", gomock.Any()).
			Return(entities.PaymentConfirmation{}, usecase.ErrInvalidProduct)

		w := postVerify(r, verifyBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("fulfillment failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentVerificationUseCase(ctrl)
		r := newVerifyRouter(NewPaymentVerificationHandler(uc))

		mailErr := fmt.Errorf("%w: 550 relay denied", usecase.ErrFulfillmentFailed)
		uc.EXPECT().VerifyAndFulfill(gomock.Any(), gomock.Any(), "nutrition-guide", gomock.Any()).
			Return(entities.PaymentConfirmation{}, mailErr)

		w := postVerify(r, verifyBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json body: %v", err)
		}
		if body["success"] != false || body["details"] == nil {
			t.Fatalf("unexpected envelope: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentVerificationUseCase(ctrl)
		r := newVerifyRouter(NewPaymentVerificationHandler(uc))

		uc.EXPECT().VerifyAndFulfill(gomock.Any(), entities.PaymentProof{
			OrderID:   "order_test_123",
			PaymentID: "pay_test_456",
			Signature: "b272703480fdac0ab4f26fe91c1959f257538587c322654319fc83e455f8a95d",
		}, "nutrition-guide", entities.Customer{
			Name:  "Asha Verma",
			Email: "asha@example.com",
			Phone: "9876543210",
			City:  "Pune",
		}).Return(entities.PaymentConfirmation{
			PaymentID:  "pay_test_456",
			OrderID:    "order_test_123",
			ProductID:  "nutrition-guide",
			Email:      "asha@example.com",
			VerifiedAt: time.Now().UTC(),
		}, nil)

		w := postVerify(r, verifyBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json body: %v", err)
		}
		if body["success"] != true || body["paymentId"] != "pay_test_456" {
			t.Fatalf("unexpected envelope: %v", body)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentVerificationUseCase(ctrl)
		r := newVerifyRouter(NewPaymentVerificationHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", w.Code)
		}
	})
}
