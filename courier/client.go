// Package courier places consignments with the delivery provider's
// token-based HTTP API: issue a bearer token, then create a consignment
// per order.
package courier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// Config is read from the environment and carries every credential the
// provider needs.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	StoreID      string
}

func ConfigFromEnv() (Config, error) {
	cfg := Config{
		BaseURL:      os.Getenv("COURIER_API_URL"),
		ClientID:     os.Getenv("COURIER_CLIENT_ID"),
		ClientSecret: os.Getenv("COURIER_CLIENT_SECRET"),
		StoreID:      os.Getenv("COURIER_STORE_ID"),
	}
	if cfg.BaseURL == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
		return Config{}, fmt.Errorf("courier configuration missing")
	}
	return cfg, nil
}

type Client struct {
	cfg  Config
	http *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

// IssueToken fetches a bearer token, reusing a cached one until shortly
// before expiry.
func (c *Client) IssueToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.token, nil
	}

	payload := map[string]string{
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"grant_type":    "client_credentials",
	}
	body, status, err := c.post(c.cfg.BaseURL+"/issue-token", "", payload)
	if err != nil {
		return "", fmt.Errorf("failed to reach courier: %v", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("courier token error (%d): %s", status, string(body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("failed to parse token response: %v", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("courier returned empty token")
	}

	c.token = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return c.token, nil
}

// ConsignmentRequest carries the order fields the provider needs.
type ConsignmentRequest struct {
	OrderRef        string  `json:"merchant_order_id"`
	RecipientName   string  `json:"recipient_name"`
	RecipientPhone  string  `json:"recipient_phone"`
	Address         string  `json:"recipient_address"`
	WeightKG        float64 `json:"item_weight"`
	Quantity        int     `json:"item_quantity"`
	AmountToCollect float64 `json:"amount_to_collect"` // zero for prepaid orders
	Description     string  `json:"item_description"`
}

// Consignment is the provider's handle on a placed delivery.
type Consignment struct {
	ConsignmentID string `json:"consignment_id"`
	TrackingCode  string `json:"tracking_code"`
	Status        string `json:"order_status"`
}

type consignmentResponse struct {
	Consignment
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateConsignment registers a delivery with the provider.
func (c *Client) CreateConsignment(req ConsignmentRequest) (*Consignment, error) {
	token, err := c.IssueToken()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"store_id":          c.cfg.StoreID,
		"merchant_order_id": req.OrderRef,
		"recipient_name":    req.RecipientName,
		"recipient_phone":   req.RecipientPhone,
		"recipient_address": req.Address,
		"item_weight":       req.WeightKG,
		"item_quantity":     req.Quantity,
		"amount_to_collect": req.AmountToCollect,
		"item_description":  req.Description,
	}
	body, status, err := c.post(c.cfg.BaseURL+"/consignments", token, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to reach courier: %v", err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, fmt.Errorf("courier API error (%d): %s", status, string(body))
	}

	var cr consignmentResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse courier response: %v", err)
	}
	if cr.Error != nil {
		return nil, fmt.Errorf("courier error: %s", cr.Error.Message)
	}
	if cr.ConsignmentID == "" {
		return nil, fmt.Errorf("courier returned empty consignment id")
	}
	return &cr.Consignment, nil
}

func (c *Client) post(url, token string, payload interface{}) ([]byte, int, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode, nil
}
