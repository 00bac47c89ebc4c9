package ordering

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/backend"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/order"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/recognition"
)

type Handler struct {
	app *App
}

func NewHandler(app *App) *Handler {
	return &Handler{app: app}
}

// RegisterRoutes mounts the ordering surface on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/menu/recognize", h.Recognize)
	r.GET("/cart", h.GetCart)
	r.POST("/cart/lines/:key/increment", h.IncrementLine)
	r.POST("/cart/lines/:key/decrement", h.DecrementLine)
	r.PUT("/language", h.SetLanguage)
	r.POST("/orders", h.SubmitOrder)
}

// --------------------------------------------------
// Diner uploads a menu photo
// --------------------------------------------------
func (h *Handler) Recognize(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	if err := ValidatePhotoExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetLang := c.PostForm("target_lang")

	_, err = h.app.RecognizeMenu(c.Request.Context(), file, header.Filename, targetLang)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, BuildCartView(h.app.Cart))
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, BuildCartView(h.app.Cart))
}

// --------------------------------------------------
// Quantity steppers
// --------------------------------------------------
func (h *Handler) IncrementLine(c *gin.Context) {
	key := c.Param("key")
	if _, ok := h.app.Cart.Increment(key); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such cart line"})
		return
	}
	c.JSON(http.StatusOK, BuildCartView(h.app.Cart))
}

func (h *Handler) DecrementLine(c *gin.Context) {
	key := c.Param("key")
	if _, ok := h.app.Cart.Decrement(key); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such cart line"})
		return
	}
	c.JSON(http.StatusOK, BuildCartView(h.app.Cart))
}

// --------------------------------------------------
// Session language (applies to the NEXT recognition)
// --------------------------------------------------
func (h *Handler) SetLanguage(c *gin.Context) {
	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language is required"})
		return
	}

	h.app.SetLanguage(req.Language)
	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}

// --------------------------------------------------
// Submit the selection as an order
// --------------------------------------------------
func (h *Handler) SubmitOrder(c *gin.Context) {
	conf, err := h.app.SubmitOrder(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, BuildConfirmationView(conf))
}

// renderError maps failures to a blocking JSON notice. Backend and
// transport failures surface with their message and never crash the
// process; the diner retries explicitly.
func (h *Handler) renderError(c *gin.Context, err error) {
	var (
		recErr   *recognition.Error
		ordErr   *order.Error
		transErr *backend.TransportError
	)

	switch {
	case errors.Is(err, ErrEmptySelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &recErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": recErr.Message})
	case errors.As(err, &ordErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": ordErr.Message})
	case errors.As(err, &transErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": transErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
