package public

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/northwear-shop/internal/http/response"
	"github.com/northwear-shop/internal/payment/stripe"
	"github.com/northwear-shop/internal/provider"
	"github.com/northwear-shop/internal/service"
	"github.com/northwear-shop/internal/session"

	"github.com/gin-gonic/gin"
)

type failingProcessor struct {
	err error
}

func (p *failingProcessor) CreateEmbeddedSession(ctx context.Context, items []stripe.LineItem) (*stripe.SessionResult, error) {
	return nil, p.err
}

func (p *failingProcessor) RetrieveSession(ctx context.Context, sessionID string) (*stripe.StatusResult, error) {
	return nil, p.err
}

func newCheckoutTestRouter(processor service.PaymentProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(time.Hour)
	checkoutSvc := service.NewCheckoutService(store, nil, nil, nil, nil, processor)
	h := New(&provider.Container{CheckoutService: checkoutSvc})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "sid")
		c.Next()
	})
	r.POST("/checkout/session", h.CreateCheckoutSession)
	r.GET("/checkout/status", h.CheckoutStatus)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp
}

func TestCreateCheckoutSessionReportsProcessorFailure(t *testing.T) {
	procErr := fmt.Errorf("%w: create checkout session status 400", stripe.ErrResponseInvalid)
	r := newCheckoutTestRouter(&failingProcessor{err: procErr})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout/session", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected business code %d, got %d", response.CodeBadRequest, resp.StatusCode)
	}
	if !strings.Contains(resp.Msg, "create checkout session status 400") {
		t.Fatalf("expected processor failure reason in msg, got %q", resp.Msg)
	}
}

func TestCheckoutStatusReportsProcessorFailure(t *testing.T) {
	procErr := fmt.Errorf("%w: connection refused", stripe.ErrRequestFailed)
	r := newCheckoutTestRouter(&failingProcessor{err: procErr})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout/status?session_id=cs_test_1", nil)
	r.ServeHTTP(w, req)

	resp := decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected business code %d, got %d", response.CodeBadRequest, resp.StatusCode)
	}
	if !strings.Contains(resp.Msg, "connection refused") {
		t.Fatalf("expected processor failure reason in msg, got %q", resp.Msg)
	}
}
