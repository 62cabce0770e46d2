package tronscan

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const apiKeyHeader = "TRON-PRO-API-KEY"

// Config holds Tronscan client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// StatusError is returned for non-2xx upstream responses.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tronscan: %s returned status %d", e.Path, e.StatusCode)
}

// Client issues read-only requests against the Tronscan REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Tronscan API client.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://apilist.tronscanapi.com/api"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
	}
}

func (c *Client) get(path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Path: path}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tronscan: decode %s response: %w", path, err)
	}
	return nil
}

// GetAccountTokens returns the token balances held by an address.
func (c *Client) GetAccountTokens(address string) ([]TokenBalance, error) {
	params := url.Values{}
	params.Set("address", address)

	var resp accountTokensResponse
	if err := c.get("/account/tokens", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetAccount returns account-level counters for an address.
func (c *Client) GetAccount(address string) (*Account, error) {
	params := url.Values{}
	params.Set("address", address)

	var acc Account
	if err := c.get("/account", params, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// GetTransactions returns the most recent transactions of an address.
func (c *Client) GetTransactions(address string, limit int) (*TransactionList, error) {
	params := url.Values{}
	params.Set("sort", "timestamp")
	params.Set("count", "true")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("start", "0")
	params.Set("address", address)

	var list TransactionList
	if err := c.get("/transaction", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetTRC20Transfers returns TRC20 transfers related to an address, filtered
// to one contract. If the filtered query fails, one unfiltered attempt is
// made before giving up; there are no retries beyond that.
func (c *Client) GetTRC20Transfers(address, contract string, limit int) (*TransferList, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("start", "0")
	params.Set("relatedAddress", address)
	if contract != "" {
		params.Set("trc20Id", contract)
	}

	var list TransferList
	err := c.get("/token_trc20/transfers", params, &list)
	if err == nil {
		return &list, nil
	}
	if contract == "" {
		return nil, err
	}

	params.Del("trc20Id")
	var fallback TransferList
	if err := c.get("/token_trc20/transfers", params, &fallback); err != nil {
		return nil, err
	}
	return &fallback, nil
}
