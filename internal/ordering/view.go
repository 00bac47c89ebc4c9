package ordering

import (
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/cart"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/order"
)

// Row is one rendered cart line: what the frontend shows next to the
// +/- steppers.
type Row struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// CartView is the whole rendered cart with the running total.
type CartView struct {
	Rows  []Row   `json:"rows"`
	Total float64 `json:"total"`
}

// ConfirmationView renders a placed order. Summary is the backend's
// opaque text, passed through untouched.
type ConfirmationView struct {
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	Summary     string  `json:"summary"`
	VoiceURL    string  `json:"voice_url,omitempty"`
}

// BuildCartView renders the cart. An empty cart renders as zero rows,
// never as an error.
func BuildCartView(c *cart.Cart) CartView {
	lines := c.Lines()
	rows := make([]Row, len(lines))
	for i, l := range lines {
		rows[i] = Row{
			Key:         l.Key,
			DisplayName: l.Item.DisplayName(),
			Description: l.Item.Description,
			Price:       l.Item.Price,
			Quantity:    l.Quantity,
		}
	}
	return CartView{Rows: rows, Total: c.Total()}
}

func BuildConfirmationView(conf *order.Confirmation) ConfirmationView {
	return ConfirmationView{
		OrderID:     conf.OrderID,
		TotalAmount: conf.TotalAmount,
		Summary:     conf.Summary,
		VoiceURL:    conf.VoiceURL,
	}
}
