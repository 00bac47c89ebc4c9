package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/backend"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/cart"
)

// Error is a failure reported by the order backend (success=false).
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "order rejected: " + e.Message
}

// Confirmation is what the backend returns for a persisted order. Used
// only for rendering; nothing here is stored locally.
type Confirmation struct {
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	Summary     string  `json:"summary"`
	VoiceURL    string  `json:"voice_url,omitempty"`
}

type request struct {
	Items        []requestItem `json:"items"`
	UserLanguage string        `json:"user_language"`
}

type requestItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type response struct {
	Success     bool    `json:"success"`
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	Summary     string  `json:"summary"`
	VoiceURL    string  `json:"voice_url"`
	Error       string  `json:"error"`
}

// Client submits the selection to the order backend.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Submit posts the selected lines as a JSON order. The caller guarantees
// the selection is non-empty; an empty order never reaches the network.
func (c *Client) Submit(ctx context.Context, lines []cart.SelectedLine, language string) (*Confirmation, error) {
	payload := request{
		Items:        make([]requestItem, len(lines)),
		UserLanguage: language,
	}
	for i, l := range lines {
		payload.Items[i] = requestItem{
			Name:     l.DisplayName,
			Quantity: l.Quantity,
			Price:    l.Price,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &backend.TransportError{Op: "order", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, &backend.TransportError{Op: "order", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &backend.TransportError{Op: "order", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &backend.TransportError{Op: "order", Err: err}
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &backend.TransportError{
			Op:  "order",
			Err: fmt.Errorf("non-JSON body (status %d): %w", resp.StatusCode, err),
		}
	}

	if !parsed.Success {
		msg := parsed.Error
		if msg == "" {
			msg = fmt.Sprintf("backend returned status %d without a message", resp.StatusCode)
		}
		return nil, &Error{Message: msg}
	}

	return &Confirmation{
		OrderID:     parsed.OrderID,
		TotalAmount: parsed.TotalAmount,
		Summary:     parsed.Summary,
		VoiceURL:    parsed.VoiceURL,
	}, nil
}
