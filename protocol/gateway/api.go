package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	DEFAULT_GATEWAY_URL = "https://gateway-api-testnet.circle.com"

	// Gateway error bodies are passed through for diagnostics but
	// truncated to keep logs bounded.
	MAX_ERROR_BODY = 512
)

type AttestationRequestError struct {
	StatusCode int
	Body       string
}

func (e *AttestationRequestError) Error() string {
	return fmt.Sprintf("gateway request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the Gateway attestation service over HTTP.
type Client struct {
	baseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DEFAULT_GATEWAY_URL
	}
	return &Client{
		baseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type infoResponse struct {
	Domains []DomainInfo `json:"domains"`
}

// DomainInfo fetches the per-domain processed and burn-intent expiration
// heights the service currently reports.
func (c *Client) DomainInfo(ctx context.Context) ([]DomainInfo, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/info", nil)
	if err != nil {
		return nil, err
	}

	r := new(infoResponse)
	if err := json.Unmarshal(body, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return r.Domains, nil
}

type balancesRequest struct {
	Token   string          `json:"token"`
	Sources []DepositSource `json:"sources"`
}

type balancesResponse struct {
	Balances []struct {
		Domain  uint32 `json:"domain"`
		Balance string `json:"balance"`
	} `json:"balances"`
}

// Balances queries how much of the depositor's escrowed funds the service
// recognizes per domain. This lags the underlying chain until the service
// observes finality.
func (c *Client) Balances(ctx context.Context, token string, sources []DepositSource) ([]DomainBalance, error) {
	payload, err := json.Marshal(balancesRequest{Token: token, Sources: sources})
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, "/v1/balances", payload)
	if err != nil {
		return nil, err
	}

	r := new(balancesResponse)
	if err := json.Unmarshal(body, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	balances := make([]DomainBalance, 0, len(r.Balances))
	for _, b := range r.Balances {
		balance, ok := new(big.Int).SetString(b.Balance, 10)
		if !ok {
			return nil, fmt.Errorf("invalid balance '%s' for domain %d", b.Balance, b.Domain)
		}
		balances = append(balances, DomainBalance{Domain: b.Domain, Balance: balance})
	}

	return balances, nil
}

type transferResponse struct {
	TransferID        string        `json:"transferId"`
	Attestation       hexutil.Bytes `json:"attestation"`
	OperatorSignature hexutil.Bytes `json:"operatorSignature"`
	Fees              *struct {
		Total string `json:"total"`
		Token string `json:"token"`
	} `json:"fees"`
}

// SubmitTransfer submits one or more signed burn intents and returns the
// attestation and operator signature needed for the destination mint.
func (c *Client) SubmitTransfer(ctx context.Context, intents []SignedBurnIntent) (*TransferResult, error) {
	payload, err := json.Marshal(intents)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, "/v1/transfer", payload)
	if err != nil {
		return nil, err
	}

	r := new(transferResponse)
	if err := json.Unmarshal(body, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	result := &TransferResult{
		TransferID:        r.TransferID,
		Attestation:       r.Attestation,
		OperatorSignature: r.OperatorSignature,
		IssuedAt:          time.Now(),
	}
	if r.Fees != nil {
		total, ok := new(big.Int).SetString(r.Fees.Total, 10)
		if !ok {
			return nil, fmt.Errorf("invalid fee total '%s'", r.Fees.Total)
		}
		result.Fees = &Fees{Total: total, Token: r.Fees.Token}
	}

	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > MAX_ERROR_BODY {
			body = body[:MAX_ERROR_BODY]
		}
		return nil, &AttestationRequestError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
