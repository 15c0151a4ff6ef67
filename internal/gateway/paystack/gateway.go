package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/entities"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "paystack"

	defaultBaseURL = "https://api.paystack.co"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrGatewayRejected = errors.New("payment gateway rejected request")

type Gateway struct {
	client    httpClient
	retrier   retrier
	baseURL   string
	secretKey string
}

func New(client httpClient, baseURL, secretKey string) *Gateway {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		client:    client,
		retrier:   backoff_adapter.New(retryConfig),
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

type initializeRequest struct {
	Email     string `json:"email"`
	Amount    string `json:"amount"` // минорные единицы строкой, как требует API
	Currency  string `json:"currency,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    *struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    *struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
	} `json:"data"`
}

func (g *Gateway) InitializeTransaction(ctx context.Context, email string, amount int64, currency, reference string) (*entities.PaymentInit, error) {
	reqBody := initializeRequest{
		Email:     email,
		Amount:    strconv.FormatInt(amount, 10),
		Currency:  currency,
		Reference: reference,
	}

	var resp initializeResponse

	err := g.executeWithMetrics(ctx, "InitializeTransaction", func(ctx context.Context) error {
		return g.post(ctx, "/transaction/initialize", reqBody, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway paystack, initialize transaction: %s: %w", reference, err)
	}

	if !resp.Status || resp.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrGatewayRejected, resp.Message)
	}

	return &entities.PaymentInit{
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
		Reference:        resp.Data.Reference,
	}, nil
}

func (g *Gateway) VerifyTransaction(ctx context.Context, reference string) (*entities.PaymentVerification, error) {
	var resp verifyResponse

	err := g.executeWithMetrics(ctx, "VerifyTransaction", func(ctx context.Context) error {
		return g.get(ctx, "/transaction/verify/"+reference, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway paystack, verify transaction: %s: %w", reference, err)
	}

	if !resp.Status || resp.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrGatewayRejected, resp.Message)
	}

	return &entities.PaymentVerification{
		Reference: resp.Data.Reference,
		Status:    resp.Data.Status,
		Amount:    resp.Data.Amount,
		Currency:  resp.Data.Currency,
	}, nil
}

func (g *Gateway) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, out)
}

func (g *Gateway) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	return g.do(req, out)
}

func (g *Gateway) do(req *http.Request, out any) error {
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &httpStatusError{code: resp.StatusCode}
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return "unexpected http status: " + strconv.Itoa(e.code)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		// 429 и 5xx временные, остальные статусы — нет
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}

	// сетевые ошибки приходят без http-статуса
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}

	return "unknown"
}
