package numbersapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"numclass/internal/config"
	"numclass/internal/domain"
	"numclass/internal/domain/value"
	"numclass/internal/metrics"
	"numclass/pkg/contextx"
	"numclass/pkg/errcodes"
	"numclass/pkg/httpx"
	"numclass/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	headerAPIKey = "X-Api-Key"
	maxBodySize  = 64 << 10
)

// factResponse ответ numbersapi.com при запросе с ?json
type factResponse struct {
	Text   *string `json:"text"`
	Number any     `json:"number"`
	Found  bool    `json:"found"`
	Type   string  `json:"type"`
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	category   string
	apiKey     string
}

// NewClient собирает HTTP клиент: ретраи поверх логирования каждой попытки.
func NewClient(cfg config.NumbersAPI, logFieldMaxLen int) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	transport := httpx.NewRetryRoundTripper(
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
		httpx.WithMaxAttempts(cfg.MaxAttempts),
		httpx.WithAttemptTimeout(cfg.AttemptTimeout),
		httpx.WithBackoff(cfg.BackoffInitial, cfg.BackoffMax, cfg.BackoffMultiple),
	)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.TotalTimeout,
		},
		baseURL:  baseURL,
		category: cfg.Category,
		apiKey:   cfg.APIKey,
	}, nil
}

// Fact никогда не возвращает ошибку: любая неудача превращается в value.Fact.
func (c *Client) Fact(ctx context.Context, abs uint64) value.Fact {
	start := time.Now()

	text, err := c.Lookup(ctx, abs)

	metrics.FactLookupLatency.Observe(time.Since(start).Seconds())

	fact := toFact(text, err)

	metrics.FactLookups.WithLabelValues(string(fact.Outcome)).Inc()

	if err != nil {
		code := domain.CodeOf(err)

		metrics.FactLookupErrors.WithLabelValues(code.String()).Inc()

		logger(ctx).Warn("fact lookup failed",
			slog.Uint64(logx.FieldNumber, abs),
			slog.String(logx.FieldFactOutcome, string(fact.Outcome)),
			slog.String(logx.FieldErrorCode, code.String()),
			logx.Error(err),
		)
	}

	return fact
}

// Lookup возвращает поле text (пустое, если его нет) или доменную ошибку.
func (c *Client) Lookup(ctx context.Context, abs uint64) (string, error) {
	u := c.baseURL.JoinPath(strconv.FormatUint(abs, 10), c.category)
	u.RawQuery = "json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return "", domain.WrapError(err, errcodes.FactLookupFailed, "build request")
	}

	req.Header.Set("Accept", "application/json")

	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(err, errcodes.FactLookupFailed, "request failed")
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.WrapError(&StatusError{StatusCode: resp.StatusCode}, errcodes.FactBadStatus, "numbers api")
	}

	var payload factResponse

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		return "", domain.WrapError(err, errcodes.FactMalformed, "decode response")
	}

	if payload.Text == nil {
		return "", nil
	}

	return *payload.Text, nil
}

// StatusError ответ сервиса с кодом, отличным от 200.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func toFact(text string, err error) value.Fact {
	if err == nil {
		return value.FactFromText(text)
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return value.FactFromStatus(statusErr.StatusCode)
	}

	return value.FactFromError(err)
}
