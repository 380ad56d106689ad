package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testConfig(apiBaseURL string) Config {
	return Config{
		SecretKey:      "sk_test_123",
		PublishableKey: "pk_test_123",
		APIBaseURL:     apiBaseURL,
		ReturnURL:      "https://shop.example.com/checkout/return?session_id={CHECKOUT_SESSION_ID}",
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	client, err := New(Config{
		SecretKey:          " sk_test_123 ",
		ReturnURL:          "https://shop.example.com/return?session_id={CHECKOUT_SESSION_ID}",
		APIBaseURL:         "https://api.example.com/",
		ShippingCountry:    " dk ",
		PaymentMethodTypes: []string{" Card ", ""},
	})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.cfg.SecretKey != "sk_test_123" {
		t.Fatalf("unexpected secret key: %q", client.cfg.SecretKey)
	}
	if client.cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("unexpected api base url: %q", client.cfg.APIBaseURL)
	}
	if client.cfg.ShippingCountry != "DK" {
		t.Fatalf("unexpected shipping country: %q", client.cfg.ShippingCountry)
	}
	if len(client.cfg.PaymentMethodTypes) != 1 || client.cfg.PaymentMethodTypes[0] != "card" {
		t.Fatalf("unexpected payment method types: %+v", client.cfg.PaymentMethodTypes)
	}
	if client.cfg.TimeoutSeconds != defaultTimeoutSeconds {
		t.Fatalf("unexpected timeout: %d", client.cfg.TimeoutSeconds)
	}
}

func TestNewRejectsMissingSecretKey(t *testing.T) {
	_, err := New(Config{ReturnURL: "https://shop.example.com/return"})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got: %v", err)
	}
}

func TestNewRejectsMissingReturnURL(t *testing.T) {
	_, err := New(Config{SecretKey: "sk_test_123"})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got: %v", err)
	}
}

func TestCreateEmbeddedSessionSendsExpectedForm(t *testing.T) {
	var gotForm map[string][]string
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form failed: %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_abc","client_secret":"cs_test_abc_secret","status":"open"}`))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	result, err := client.CreateEmbeddedSession(context.Background(), []LineItem{
		{PriceID: "price_sweater", Quantity: 2},
		{PriceID: "price_boots", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if result.SessionID != "cs_test_abc" || result.ClientSecret != "cs_test_abc_secret" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Status != "open" {
		t.Fatalf("unexpected status: %s", result.Status)
	}

	if gotAuth != "Bearer sk_test_123" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	expectations := map[string]string{
		"ui_mode":    "embedded",
		"mode":       "payment",
		"return_url": "https://shop.example.com/checkout/return?session_id={CHECKOUT_SESSION_ID}",
		"shipping_address_collection[allowed_countries][0]": "DK",
		"line_items[0][price]":    "price_sweater",
		"line_items[0][quantity]": "2",
		"line_items[1][price]":    "price_boots",
		"line_items[1][quantity]": "1",
		"payment_method_types[]":  "card",
	}
	for key, want := range expectations {
		values := gotForm[key]
		if len(values) == 0 || values[0] != want {
			t.Fatalf("form field %q: expected %q, got %+v", key, want, values)
		}
	}
}

func TestCreateEmbeddedSessionRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"empty line items"}}`))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	_, err = client.CreateEmbeddedSession(context.Background(), nil)
	if !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("expected ErrResponseInvalid, got: %v", err)
	}
}

func TestCreateEmbeddedSessionRejectsMissingClientSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"cs_test_abc"}`))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	_, err = client.CreateEmbeddedSession(context.Background(), []LineItem{{PriceID: "price_x", Quantity: 1}})
	if !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("expected ErrResponseInvalid, got: %v", err)
	}
}

func TestRetrieveSessionReadsStatusAndEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/checkout/sessions/cs_test_abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id":"cs_test_abc","status":"complete","customer_details":{"email":"buyer@example.com"}}`))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	result, err := client.RetrieveSession(context.Background(), "cs_test_abc")
	if err != nil {
		t.Fatalf("retrieve session failed: %v", err)
	}
	if result.Status != "complete" {
		t.Fatalf("unexpected status: %s", result.Status)
	}
	if result.CustomerEmail != "buyer@example.com" {
		t.Fatalf("unexpected customer email: %s", result.CustomerEmail)
	}
}

func TestRetrieveSessionRequiresSessionID(t *testing.T) {
	client, err := New(testConfig("https://api.example.com"))
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	_, err = client.RetrieveSession(context.Background(), "  ")
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got: %v", err)
	}
}
