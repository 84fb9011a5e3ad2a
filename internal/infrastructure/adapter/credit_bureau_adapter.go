package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// ---------------------------------------------------------------------------
// Credit bureau adapter
// ---------------------------------------------------------------------------

// CreditBureauConfig holds configuration for the bureau HTTP adapter.
type CreditBureauConfig struct {
	// BaseURL is the base URL of the bureau aggregator API.
	BaseURL string
	// APIKey authenticates requests to the aggregator.
	APIKey string
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int
	// MaxRetries is the number of retry attempts on transient failures.
	MaxRetries int
	// RetryBackoffMs is the base backoff between retries.
	RetryBackoffMs int
}

// DefaultCreditBureauConfig returns sensible defaults for development.
func DefaultCreditBureauConfig() CreditBureauConfig {
	return CreditBureauConfig{
		BaseURL:        "https://api.bureau.example.com",
		APIKey:         "dev-api-key",
		TimeoutSeconds: 10,
		MaxRetries:     3,
		RetryBackoffMs: 200,
	}
}

// bureauReport is the aggregator's wire representation of a pull.
type bureauReport struct {
	Bureau     string    `json:"bureau"`
	Score      int       `json:"score"`
	ScoreModel string    `json:"score_model"`
	ReportDate time.Time `json:"report_date"`
}

// CreditBureauAdapter pulls scores from an external bureau aggregator over
// HTTP. It implements port.CreditBureauClient. Transient failures are
// retried with exponential backoff and jitter.
type CreditBureauAdapter struct {
	config CreditBureauConfig
	client *http.Client
}

// NewCreditBureauAdapter creates a new adapter with the given configuration.
func NewCreditBureauAdapter(config CreditBureauConfig) *CreditBureauAdapter {
	return &CreditBureauAdapter{
		config: config,
		client: &http.Client{Timeout: time.Duration(config.TimeoutSeconds) * time.Second},
	}
}

// PullScore retrieves the tenant's current bureau score.
func (a *CreditBureauAdapter) PullScore(ctx context.Context, tenantID string) (string, int, error) {
	if tenantID == "" {
		return "", 0, fmt.Errorf("tenant ID is required")
	}

	report, err := a.fetchWithRetry(ctx, tenantID)
	if err != nil {
		return "", 0, fmt.Errorf("credit bureau request failed: %w", err)
	}
	return report.Bureau, report.Score, nil
}

func (a *CreditBureauAdapter) fetchWithRetry(ctx context.Context, tenantID string) (bureauReport, error) {
	var lastErr error

	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(a.config.RetryBackoffMs) * time.Millisecond * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff) / 2))
			select {
			case <-ctx.Done():
				return bureauReport{}, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		report, err := a.fetch(ctx, tenantID)
		if err == nil {
			return report, nil
		}
		lastErr = err
	}

	return bureauReport{}, fmt.Errorf("exhausted %d retries: %w", a.config.MaxRetries, lastErr)
}

func (a *CreditBureauAdapter) fetch(ctx context.Context, tenantID string) (bureauReport, error) {
	endpoint := fmt.Sprintf("%s/v1/reports/%s", a.config.BaseURL, url.PathEscape(tenantID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return bureauReport{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return bureauReport{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return bureauReport{}, fmt.Errorf("bureau returned status %d", resp.StatusCode)
	}

	var report bureauReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return bureauReport{}, fmt.Errorf("decode report: %w", err)
	}
	if report.Score < 300 || report.Score > 900 {
		return bureauReport{}, fmt.Errorf("bureau returned out-of-range score %d", report.Score)
	}
	return report, nil
}
