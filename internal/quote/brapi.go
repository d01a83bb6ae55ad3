package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
)

const defaultBrapiBaseURL = "https://brapi.dev/api"

// BrapiSource fetches B3 quotes from the brapi.dev REST API.
// The API token is passed per request; it is stored fernet-encrypted in the
// setting table and decrypted at startup.
type BrapiSource struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewBrapiSource creates a brapi client with default HTTP settings.
func NewBrapiSource(token string) *BrapiSource {
	return &BrapiSource{
		httpClient: &http.Client{},
		baseURL:    defaultBrapiBaseURL,
		token:      token,
	}
}

// brapiResponse maps the subset of the brapi quote payload we consume.
type brapiResponse struct {
	Results []struct {
		Symbol             string  `json:"symbol"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"results"`
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// FetchPrice returns the latest regular market price for the ticker.
func (s *BrapiSource) FetchPrice(ctx context.Context, ticker string) (float64, error) {
	endpoint := fmt.Sprintf("%s/quote/%s?token=%s", s.baseURL, url.PathEscape(ticker), url.QueryEscape(s.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build quote request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch quote for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrQuoteNotFound, ticker)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("quote request for %s returned status %d", ticker, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read quote response: %w", err)
	}

	var parsed brapiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse quote response: %w", err)
	}

	if parsed.Error {
		return 0, fmt.Errorf("quote provider error for %s: %s", ticker, parsed.Message)
	}
	if len(parsed.Results) == 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrQuoteNotFound, ticker)
	}

	price := parsed.Results[0].RegularMarketPrice
	if price <= 0 {
		return 0, fmt.Errorf("%w: %s returned non-positive price", apperrors.ErrQuoteNotFound, ticker)
	}

	return price, nil
}
