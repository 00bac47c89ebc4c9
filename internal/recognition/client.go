package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/backend"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/cart"
)

// Error is a failure reported by the recognition backend itself
// (success=false with a message). Transport problems are
// *backend.TransportError instead.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "recognition failed: " + e.Message
}

type response struct {
	Success   bool           `json:"success"`
	MenuItems []responseItem `json:"menu_items"`
	Error     string         `json:"error"`
}

type responseItem struct {
	Name           string   `json:"name"`
	TranslatedName string   `json:"translated_name"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price"`
}

// Client uploads a menu photo and gets back structured items.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: log,
	}
}

// Recognize sends the image plus target language as multipart form data
// and returns the recognized menu. The caller installs the items into
// the cart, so a failure here provably leaves existing state untouched.
func (c *Client) Recognize(ctx context.Context, image io.Reader, filename, targetLang string) ([]cart.MenuItem, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, &backend.TransportError{Op: "recognition", Err: err}
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, &backend.TransportError{Op: "recognition", Err: err}
	}
	if err := w.WriteField("target_lang", targetLang); err != nil {
		return nil, &backend.TransportError{Op: "recognition", Err: err}
	}
	if err := w.Close(); err != nil {
		return nil, &backend.TransportError{Op: "recognition", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &buf)
	if err != nil {
		return nil, &backend.TransportError{Op: "recognition", Err: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &backend.TransportError{Op: "recognition", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &backend.TransportError{Op: "recognition", Err: err}
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &backend.TransportError{
			Op:  "recognition",
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

	return c.sanitize(parsed.MenuItems), nil
}

// sanitize drops entries the backend should never have sent: no name, or
// a price that is negative or not a number. Keeping them would let NaN
// leak into totals. A missing price decodes as 0 and is kept.
func (c *Client) sanitize(raw []responseItem) []cart.MenuItem {
	items := make([]cart.MenuItem, 0, len(raw))
	for i, r := range raw {
		var price float64
		if r.Price != nil {
			price = *r.Price
		}
		if r.Name == "" || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			c.log.Warn("dropping malformed menu item",
				"index", i,
				"name", r.Name,
			)
			continue
		}
		items = append(items, cart.MenuItem{
			Name:           r.Name,
			TranslatedName: r.TranslatedName,
			Description:    r.Description,
			Price:          price,
		})
	}
	return items
}
