package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"PortfolioPulse/internal/model"
)

// MarketAPIFetcher implements Fetcher against a self-hosted market data
// REST service. Unlike Yahoo, such services can expose industry and
// sector P/E figures directly.
type MarketAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewMarketAPIFetcher creates a new fetcher with optional proxy support.
func NewMarketAPIFetcher(baseURL, apiKey, proxyURL string) *MarketAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &MarketAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *MarketAPIFetcher) Name() string { return "marketapi" }

// apiBar is the expected JSON shape of one history entry.
type apiBar struct {
	Timestamp int64   `json:"timestamp"`
	Close     float64 `json:"close"`
}

// apiFundamentals is the expected JSON shape of the fundamentals endpoint.
// Absent metrics are null.
type apiFundamentals struct {
	TrailingPE    *float64 `json:"trailing_pe"`
	IndustryPE    *float64 `json:"industry_pe"`
	SectorPE      *float64 `json:"sector_pe"`
	ForwardPE     *float64 `json:"forward_pe"`
	MarketCap     *float64 `json:"market_cap"`
	DividendYield *float64 `json:"dividend_yield"`
	Beta          *float64 `json:"beta"`
}

// FetchDailyHistory fetches one trailing year of daily closes.
func (f *MarketAPIFetcher) FetchDailyHistory(symbol string) ([]model.PriceBar, error) {
	endpoint := fmt.Sprintf("%s/api/v1/history?symbol=%s&range=1y&interval=1d",
		f.BaseURL, url.QueryEscape(symbol))

	body, err := f.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}

	var apiBars []apiBar
	if err := json.Unmarshal(body, &apiBars); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	bars := make([]model.PriceBar, 0, len(apiBars))
	for _, b := range apiBars {
		if b.Close == 0 {
			continue
		}
		bars = append(bars, model.PriceBar{
			Date:  time.Unix(b.Timestamp, 0),
			Close: b.Close,
		})
	}

	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

// FetchFundamentals fetches the raw fundamentals record.
func (f *MarketAPIFetcher) FetchFundamentals(symbol string) (*model.RawFundamentals, error) {
	endpoint := fmt.Sprintf("%s/api/v1/fundamentals?symbol=%s", f.BaseURL, url.QueryEscape(symbol))

	body, err := f.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch fundamentals: %w", err)
	}

	var af apiFundamentals
	if err := json.Unmarshal(body, &af); err != nil {
		return nil, fmt.Errorf("decode fundamentals: %w", err)
	}

	return &model.RawFundamentals{
		TrailingPE:    af.TrailingPE,
		IndustryPE:    af.IndustryPE,
		SectorPE:      af.SectorPE,
		ForwardPE:     af.ForwardPE,
		MarketCap:     af.MarketCap,
		DividendYield: af.DividendYield,
		Beta:          af.Beta,
	}, nil
}

func (f *MarketAPIFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
