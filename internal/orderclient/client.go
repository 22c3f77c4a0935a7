// Package orderclient is the typed REST client for the external order
// service. Orders are owned by that service; this client only reads the
// collection and pushes status changes.
package orderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"vendora/internal/domain"
	apperrors "vendora/internal/errors"
)

// RawOrder mirrors the loose wire shape the order service returns.
// Nested fields may be absent; the board's transformer owns the defaulting.
type RawOrder struct {
	ID        string       `json:"id"`
	CreatedAt string       `json:"created_at"`
	Customer  *RawCustomer `json:"customer"`
	Total     *float64     `json:"total_amount"`
	Status    string       `json:"status"`
	Origin    string       `json:"origin"`
	Products  []RawProduct `json:"products"`
}

type RawCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RawProduct struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
	Total     *float64 `json:"total"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// List fetches the entire order collection. The order service does the
// sorting; the result is passed through in its returned order.
func (c *Client) List(ctx context.Context) ([]RawOrder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders", nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperrors.NewRemoteError("order service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.remoteError(resp)
	}

	var orders []RawOrder
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, apperrors.NewRemoteError("decoding order list", err)
	}

	c.logger.Debug("fetched orders", zap.Int("count", len(orders)))
	return orders, nil
}

// UpdateStatus asks the order service to move one order to the target
// status and returns the authoritative updated record.
func (c *Client) UpdateStatus(ctx context.Context, id string, status domain.Status) (*RawOrder, error) {
	body, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return nil, fmt.Errorf("encoding status update: %w", err)
	}

	url := fmt.Sprintf("%s/orders/%s/status", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building status update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperrors.NewRemoteError("order service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.remoteError(resp)
	}

	var updated RawOrder
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, apperrors.NewRemoteError("decoding updated order", err)
	}

	return &updated, nil
}

// remoteError extracts the server's message when the error payload has
// one, falling back to a generic string.
func (c *Client) remoteError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var payload errorPayload
		if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
			return apperrors.NewRemoteError(payload.Message, nil)
		}
	}
	return apperrors.NewRemoteError(
		fmt.Sprintf("order service returned status %d", resp.StatusCode), nil,
	)
}
