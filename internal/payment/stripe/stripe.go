package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrConfigInvalid   = errors.New("stripe config invalid")
	ErrRequestFailed   = errors.New("stripe request failed")
	ErrResponseInvalid = errors.New("stripe response invalid")
)

const (
	defaultAPIBaseURL      = "https://api.stripe.com"
	defaultTimeoutSeconds  = 12
	defaultShippingCountry = "DK"
)

// Config Stripe 渠道配置。
type Config struct {
	SecretKey          string   `json:"secret_key"`
	PublishableKey     string   `json:"publishable_key"`
	APIBaseURL         string   `json:"api_base_url"`
	ReturnURL          string   `json:"return_url"`
	ShippingCountry    string   `json:"shipping_country"`
	PaymentMethodTypes []string `json:"payment_method_types"`
	TimeoutSeconds     int      `json:"timeout_seconds"`
}

// LineItem 支付会话行项目（外部价格标识 + 数量）。
type LineItem struct {
	PriceID  string
	Quantity int
}

// SessionResult 创建支付会话返回。
type SessionResult struct {
	SessionID    string
	ClientSecret string
	Status       string
	Raw          map[string]interface{}
}

// StatusResult 查询支付会话返回。
type StatusResult struct {
	SessionID     string
	Status        string
	CustomerEmail string
	Raw           map[string]interface{}
}

// Client Stripe Checkout 客户端。
type Client struct {
	cfg Config
}

// New 创建 Stripe 客户端。
func New(cfg Config) (*Client, error) {
	cfg.normalize()
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Client{cfg: cfg}, nil
}

// PublishableKey 返回前端挂载支付组件所需的公开密钥。
func (c *Client) PublishableKey() string {
	return c.cfg.PublishableKey
}

// CreateEmbeddedSession 创建嵌入式 Checkout Session。
// 行项目可以为空：不做前置校验，空列表由外部服务拒绝并按请求错误返回。
func (c *Client) CreateEmbeddedSession(ctx context.Context, items []LineItem) (*SessionResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	form := url.Values{}
	form.Set("ui_mode", "embedded")
	form.Set("mode", "payment")
	form.Set("return_url", c.cfg.ReturnURL)
	form.Set("shipping_address_collection[allowed_countries][0]", c.cfg.ShippingCountry)
	for i, item := range items {
		form.Set(fmt.Sprintf("line_items[%d][price]", i), item.PriceID)
		form.Set(fmt.Sprintf("line_items[%d][quantity]", i), strconv.Itoa(item.Quantity))
	}
	for _, pmType := range c.cfg.PaymentMethodTypes {
		form.Add("payment_method_types[]", pmType)
	}

	respBody, statusCode, err := c.doFormRequest(ctx, http.MethodPost, "/v1/checkout/sessions", form)
	if err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("%w: create checkout session status %d", ErrResponseInvalid, statusCode)
	}

	raw, err := decodeRawMap(respBody)
	if err != nil {
		return nil, err
	}
	result := &SessionResult{Raw: raw}
	result.SessionID = strings.TrimSpace(readString(raw, "id"))
	result.ClientSecret = strings.TrimSpace(readString(raw, "client_secret"))
	result.Status = strings.TrimSpace(readString(raw, "status"))
	if result.SessionID == "" || result.ClientSecret == "" {
		return nil, fmt.Errorf("%w: missing session id or client secret", ErrResponseInvalid)
	}
	return result, nil
}

// RetrieveSession 查询 Checkout Session 状态与买家邮箱。
func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*StatusResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrConfigInvalid)
	}

	path := fmt.Sprintf("/v1/checkout/sessions/%s", url.PathEscape(sessionID))
	respBody, statusCode, err := c.doJSONRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("%w: query checkout session status %d", ErrResponseInvalid, statusCode)
	}

	raw, err := decodeRawMap(respBody)
	if err != nil {
		return nil, err
	}
	result := &StatusResult{Raw: raw}
	result.SessionID = strings.TrimSpace(readString(raw, "id"))
	result.Status = strings.TrimSpace(readString(raw, "status"))
	if details := readMap(raw, "customer_details"); details != nil {
		result.CustomerEmail = strings.TrimSpace(readString(details, "email"))
	}
	if result.SessionID == "" {
		return nil, fmt.Errorf("%w: missing checkout session id", ErrResponseInvalid)
	}
	return result, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return fmt.Errorf("%w: secret_key is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.ReturnURL) == "" {
		return fmt.Errorf("%w: return_url is required", ErrConfigInvalid)
	}
	if _, err := url.ParseRequestURI(strings.TrimSpace(cfg.APIBaseURL)); err != nil {
		return fmt.Errorf("%w: api_base_url is invalid", ErrConfigInvalid)
	}
	if _, err := url.ParseRequestURI(sanitizeURLForValidation(cfg.ReturnURL)); err != nil {
		return fmt.Errorf("%w: return_url is invalid", ErrConfigInvalid)
	}
	if len(cfg.PaymentMethodTypes) == 0 {
		return fmt.Errorf("%w: payment_method_types is empty", ErrConfigInvalid)
	}
	return nil
}

func sanitizeURLForValidation(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return trimmed
	}
	return strings.ReplaceAll(trimmed, "{CHECKOUT_SESSION_ID}", "cs_test_placeholder")
}

func (c *Config) normalize() {
	c.SecretKey = strings.TrimSpace(c.SecretKey)
	c.PublishableKey = strings.TrimSpace(c.PublishableKey)
	c.ReturnURL = strings.TrimSpace(c.ReturnURL)
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}
	c.ShippingCountry = strings.ToUpper(strings.TrimSpace(c.ShippingCountry))
	if c.ShippingCountry == "" {
		c.ShippingCountry = defaultShippingCountry
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	if len(c.PaymentMethodTypes) == 0 {
		c.PaymentMethodTypes = []string{"card"}
	} else {
		normalized := make([]string, 0, len(c.PaymentMethodTypes))
		for _, item := range c.PaymentMethodTypes {
			trimmed := strings.ToLower(strings.TrimSpace(item))
			if trimmed == "" {
				continue
			}
			normalized = append(normalized, trimmed)
		}
		if len(normalized) == 0 {
			normalized = []string{"card"}
		}
		sort.Strings(normalized)
		c.PaymentMethodTypes = normalized
	}
}

func (c *Client) doFormRequest(ctx context.Context, method, path string, form url.Values) ([]byte, int, error) {
	endpoint := c.cfg.APIBaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: build request failed", ErrRequestFailed)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.doRequest(req)
}

func (c *Client) doJSONRequest(ctx context.Context, method, path string) ([]byte, int, error) {
	endpoint := c.cfg.APIBaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: build request failed", ErrRequestFailed)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	return c.doRequest(req)
}

func (c *Client) doRequest(req *http.Request) ([]byte, int, error) {
	client := &http.Client{Timeout: time.Duration(c.cfg.TimeoutSeconds) * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response failed", ErrResponseInvalid)
	}
	return body, resp.StatusCode, nil
}

func decodeRawMap(body []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode response failed", ErrResponseInvalid)
	}
	return raw, nil
}

func readString(raw map[string]interface{}, key string) string {
	if raw == nil || strings.TrimSpace(key) == "" {
		return ""
	}
	value, ok := raw[key]
	if !ok || value == nil {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case json.Number:
		return strings.TrimSpace(typed.String())
	case float64:
		return strings.TrimSpace(strconv.FormatInt(int64(typed), 10))
	default:
		return ""
	}
}

func readMap(raw map[string]interface{}, key string) map[string]interface{} {
	if raw == nil || strings.TrimSpace(key) == "" {
		return nil
	}
	value, ok := raw[key]
	if !ok || value == nil {
		return nil
	}
	mapped, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}
	return mapped
}
