package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tzpay/payconsole/internal/logging"
	"github.com/tzpay/payconsole/internal/models"
)

// authScheme is the fixed authorization scheme the backend expects:
// "Authorization: Token <token>".
const authScheme = "Token"

const defaultTimeout = 30 * time.Second

// HTTPClient implements Client over the backend's JSON REST API.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenProvider
	log     logging.Logger
}

// New constructs a gateway for the backend at baseURL. A nil tokens provider
// means every request goes out unauthenticated; timeout <= 0 selects the
// default.
func New(baseURL string, timeout time.Duration, tokens TokenProvider, log logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logging.Discard()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// do performs one request: URL assembly, token and request-ID attachment,
// JSON encode/decode, and failure normalization. Every operation funnels
// through here so those concerns are applied uniformly.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return transportErr(fallback, fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return transportErr(fallback, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok && token != "" {
			req.Header.Set("Authorization", authScheme+" "+token)
		}
	}

	c.log.Debug(ctx, "request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return transportErr(fallback, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportErr(fallback, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalize(resp.StatusCode, raw, fallback)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return transportErr(fallback, fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

// normalize folds a non-2xx response into the single error shape: the
// server's structured detail message when present and parseable, the
// operation's fixed fallback otherwise.
func normalize(status int, raw []byte, fallback string) *Error {
	kind := KindAPI
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		kind = KindAuth
	}

	msg := fallback
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		msg = body.Detail
	}
	return &Error{Kind: kind, Message: msg}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", nil, body, &out, "Login failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/", nil, req, &out, "Registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// BusinessProfile fetches the caller's business. The backend returns a list;
// exactly one element is expected, and an empty list yields ErrNoBusiness.
func (c *HTTPClient) BusinessProfile(ctx context.Context) (*models.Business, error) {
	var out []models.Business
	if err := c.do(ctx, http.MethodGet, "/businesses/", nil, nil, &out, "Failed to fetch profile"); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoBusiness
	}
	return &out[0], nil
}

func (c *HTTPClient) UpdateBusinessProfile(ctx context.Context, b models.Business) (*models.Business, error) {
	if b.ID == 0 {
		return nil, &Error{Kind: KindAPI, Message: "business id is required"}
	}
	var out models.Business
	path := fmt.Sprintf("/businesses/%d/", b.ID)
	if err := c.do(ctx, http.MethodPut, path, nil, b, &out, "Failed to update profile"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Payments(ctx context.Context, filters models.PaymentFilters) ([]models.Payment, error) {
	var out []models.Payment
	if err := c.do(ctx, http.MethodGet, "/payments/", filters.Query(), nil, &out, "Failed to fetch payments"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Payment(ctx context.Context, id int) (*models.Payment, error) {
	var out models.Payment
	path := fmt.Sprintf("/payments/%d/", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out, "Failed to fetch payment"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) InitializePayment(ctx context.Context, req models.InitializePaymentRequest) (*models.InitializePaymentResponse, error) {
	var out models.InitializePaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payments/initialize/", nil, req, &out, "Failed to initialize payment"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) VerifyPayment(ctx context.Context, req models.VerifyPaymentRequest) (*models.VerifyPaymentResponse, error) {
	var out models.VerifyPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payments/verify/", nil, req, &out, "Failed to verify payment"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Customers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.do(ctx, http.MethodGet, "/customers/", nil, nil, &out, "Failed to fetch customers"); err != nil {
		return nil, err
	}
	return out, nil
}
