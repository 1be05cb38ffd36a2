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

// YahooFetcher implements Fetcher using Yahoo Finance public APIs.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchDailyHistory fetches one trailing year of daily closes.
func (f *YahooFetcher) FetchDailyHistory(symbol string) ([]model.PriceBar, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1y",
		url.PathEscape(symbol))

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}
	return parseChart(body)
}

func parseChart(body []byte) ([]model.PriceBar, error) {
	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data returned")
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.PriceBar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		c := toFloat(quote.Close[i])
		if c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.PriceBar{
			Date:  time.Unix(ts, 0),
			Close: c,
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

// rawValue is Yahoo's {"raw": ..., "fmt": ...} number wrapper; the whole
// object is omitted when the metric is unavailable.
type rawValue struct {
	Raw float64 `json:"raw"`
}

// yahooQuoteSummary is the response structure from the quoteSummary API.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail struct {
				TrailingPE    *rawValue `json:"trailingPE"`
				ForwardPE     *rawValue `json:"forwardPE"`
				MarketCap     *rawValue `json:"marketCap"`
				DividendYield *rawValue `json:"dividendYield"`
				Beta          *rawValue `json:"beta"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				Beta *rawValue `json:"beta"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchFundamentals fetches raw valuation metrics from the quoteSummary API.
// Yahoo carries no industry or sector P/E; those stay nil and the extractor
// falls through to the forward P/E.
func (f *YahooFetcher) FetchFundamentals(symbol string) (*model.RawFundamentals, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=summaryDetail,defaultKeyStatistics,financialData",
		url.PathEscape(symbol))

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}
	return parseQuoteSummary(body)
}

func parseQuoteSummary(body []byte) (*model.RawFundamentals, error) {
	var qs yahooQuoteSummary
	if err := json.Unmarshal(body, &qs); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no fundamentals returned")
	}

	res := qs.QuoteSummary.Result[0]
	raw := &model.RawFundamentals{
		TrailingPE:    unwrap(res.SummaryDetail.TrailingPE),
		ForwardPE:     unwrap(res.SummaryDetail.ForwardPE),
		MarketCap:     unwrap(res.SummaryDetail.MarketCap),
		DividendYield: unwrap(res.SummaryDetail.DividendYield),
		Beta:          unwrap(res.SummaryDetail.Beta),
	}
	if raw.Beta == nil {
		raw.Beta = unwrap(res.DefaultKeyStatistics.Beta)
	}
	return raw, nil
}

func unwrap(v *rawValue) *float64 {
	if v == nil {
		return nil
	}
	return &v.Raw
}

func (f *YahooFetcher) get(u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
