// Package wildberries fetches product cards from the Wildberries card API.
package wildberries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/pricewatch-bot/internal/config"
	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

const (
	appType    = "1"
	spp        = "30"
	retryDelay = 500 * time.Millisecond
	// maxBodySize caps the response read; a card response is a few KB.
	maxBodySize = 4 << 20
)

// Provider fetches product snapshots by code.
type Provider struct {
	baseURL    string
	currency   string
	dest       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from LookupConfig.
func NewProvider(cfg config.LookupConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		currency:   cfg.Currency,
		dest:       cfg.Dest,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "wildberries"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		currency:   "rub",
		dest:       "-1257786",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "wildberries"),
	}
}

// FetchProduct returns the current snapshot of the product with the given code.
// The returned Product has no ID; the snapshot store assigns it.
//
// Errors:
//   - domain.ErrNotFound when the API knows no product with this code.
//   - domain.ErrLookupFailed (wrapped) for transport errors, non-200 status
//     or a malformed body.
func (p *Provider) FetchProduct(ctx context.Context, code string) (domain.Product, error) {
	reqURL, err := p.requestURL(code)
	if err != nil {
		return domain.Product{}, fmt.Errorf("wildberries: %w: build url: %v", domain.ErrLookupFailed, err)
	}

	p.log.DebugContext(ctx, "wildberries request", slog.String("code", code))

	resp, err := p.doWithRetry(ctx, reqURL, code)
	if err != nil {
		p.log.ErrorContext(ctx, "wildberries request failed", slog.String("code", code), slog.String("error", err.Error()))
		return domain.Product{}, fmt.Errorf("wildberries: %w: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Product{}, fmt.Errorf("wildberries: %w: unexpected status %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return domain.Product{}, fmt.Errorf("wildberries: %w: read body: %w", domain.ErrLookupFailed, err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Product{}, fmt.Errorf("wildberries: %w: decode json: %w", domain.ErrLookupFailed, err)
	}

	product, err := mapAPIResponse(payload)
	if err != nil {
		return domain.Product{}, fmt.Errorf("wildberries: code %s: %w", code, err)
	}

	p.log.DebugContext(ctx, "wildberries response",
		slog.String("code", code),
		slog.Int64("price", product.Price),
		slog.Int64("stock_qty", product.StockQty),
	)

	return product, nil
}

func (p *Provider) requestURL(code string) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("appType", appType)
	q.Set("curr", p.currency)
	q.Set("dest", p.dest)
	q.Set("spp", spp)
	q.Set("nm", code)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// doWithRetry executes a GET with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, reqURL, code string) (*http.Response, error) {
	resp, err := p.do(ctx, reqURL)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "wildberries retry", slog.String("code", code), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return p.do(ctx, reqURL)
}

func (p *Provider) do(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return p.httpClient.Do(req)
}

// mapAPIResponse converts the first product card into a domain.Product.
// Stock quantity is summed over every warehouse of every size.
func mapAPIResponse(payload apiResponse) (domain.Product, error) {
	if payload.Data == nil {
		return domain.Product{}, fmt.Errorf("%w: response has no data", domain.ErrLookupFailed)
	}
	if len(payload.Data.Products) == 0 {
		return domain.Product{}, domain.ErrNotFound
	}

	card := payload.Data.Products[0]
	if card.ID == 0 || card.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: incomplete product card", domain.ErrLookupFailed)
	}

	var qty int64
	for _, size := range card.Sizes {
		for _, stock := range size.Stocks {
			qty += stock.Qty
		}
	}

	return domain.Product{
		Code:     strconv.FormatInt(card.ID, 10),
		Name:     card.Name,
		Price:    card.PriceU,
		Rating:   card.ReviewRating,
		StockQty: qty,
	}, nil
}
