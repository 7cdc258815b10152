package binance

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
)

// Client fetches spot prices from the public Binance ticker endpoint. No
// api key required.
type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

const defaultBaseUrl = "https://api.binance.com"

func NewClient(httpClient *http.Client) Client {
	return Client{
		HttpClient: httpClient,
		BaseUrl:    defaultBaseUrl,
	}
}

type tickerPriceResponse struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// GetSpotPrice returns the current USDT price for a canonical crypto ticker,
// e.g. "BTC" queries the BTCUSDT pair.
func (c Client) GetSpotPrice(symbol string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%sUSDT", c.BaseUrl, symbol)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get spot price for %s: %w", symbol, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("received status code %d from binance: %s", response.StatusCode, string(responseBytes))
	}

	var responseJson tickerPriceResponse
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse binance response: %w", err)
	}
	if responseJson.Price.IsZero() {
		return decimal.Zero, fmt.Errorf("got 0 price for %s", symbol)
	}

	return responseJson.Price, nil
}
