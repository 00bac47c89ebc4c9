package ordering

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/cart"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/order"
)

var (
	// ErrEmptySelection blocks a submit with nothing selected. Handled
	// locally as a notice; the order backend is never contacted.
	ErrEmptySelection = errors.New("select at least one item before ordering")

	// ErrSubmitInFlight rejects a second submit while one is awaiting
	// the backend. A double click would otherwise place two orders.
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
)

// Recognizer converts a menu photo into structured items.
type Recognizer interface {
	Recognize(ctx context.Context, image io.Reader, filename, targetLang string) ([]cart.MenuItem, error)
}

// Submitter places an order with the backend.
type Submitter interface {
	Submit(ctx context.Context, lines []cart.SelectedLine, language string) (*order.Confirmation, error)
}

// Archiver keeps a copy of the uploaded photo in object storage.
type Archiver interface {
	Archive(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
}

// App is the ordering session: one cart, one language, one diner.
// Built once in main and passed to the handlers explicitly — state is
// owned here, not by package-level variables.
type App struct {
	Cart *cart.Cart

	recognizer Recognizer
	orders     Submitter
	archive    Archiver // nil disables photo archival
	log        *slog.Logger

	langMu   sync.Mutex
	language string

	submitting atomic.Bool
}

func NewApp(recognizer Recognizer, orders Submitter, archive Archiver, defaultLang string, log *slog.Logger) *App {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &App{
		Cart:       cart.New(),
		recognizer: recognizer,
		orders:     orders,
		archive:    archive,
		language:   defaultLang,
		log:        log,
	}
}

// Language returns the session language code.
func (a *App) Language() string {
	a.langMu.Lock()
	defer a.langMu.Unlock()
	return a.language
}

// SetLanguage changes the session language. Items already in the cart
// keep their translations; the new code applies to the next recognition.
func (a *App) SetLanguage(code string) {
	a.langMu.Lock()
	defer a.langMu.Unlock()
	a.language = code
}

// RecognizeMenu uploads the photo, installs the recognized items and
// returns them. On any failure the existing cart is left untouched —
// the swap happens only after a successful reply. An explicit
// targetLang overrides the session language for this call only.
func (a *App) RecognizeMenu(ctx context.Context, image io.Reader, filename, targetLang string) ([]cart.MenuItem, error) {
	if targetLang == "" {
		targetLang = a.Language()
	}

	// The photo is read once and replayed, both to the archive and to
	// the recognition backend.
	data, err := io.ReadAll(image)
	if err != nil {
		return nil, err
	}

	a.archivePhoto(ctx, filename, data)

	items, err := a.recognizer.Recognize(ctx, bytes.NewReader(data), filename, targetLang)
	if err != nil {
		a.log.Error("menu recognition failed", "err", err, "target_lang", targetLang)
		return nil, err
	}

	a.Cart.ReplaceItems(items)
	a.log.Info("menu recognized", "items", len(items), "target_lang", targetLang)
	return items, nil
}

// archivePhoto is best effort: a storage hiccup must not cost the diner
// their recognition round-trip.
func (a *App) archivePhoto(ctx context.Context, filename string, data []byte) {
	if a.archive == nil {
		return
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := "photos/" + uuid.New().String() + ext

	url, err := a.archive.Archive(ctx, key, bytes.NewReader(data), contentTypeFor(ext))
	if err != nil {
		a.log.Warn("photo archival failed", "err", err, "key", key)
		return
	}
	a.log.Info("photo archived", "url", url)
}

func contentTypeFor(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	default:
		return "image/jpeg"
	}
}

// SubmitOrder sends the current selection to the order backend. The
// cart keeps its quantities afterwards; only the diner resets it by
// photographing a new menu.
func (a *App) SubmitOrder(ctx context.Context) (*order.Confirmation, error) {
	lines := a.Cart.SelectedLines()
	if len(lines) == 0 {
		return nil, ErrEmptySelection
	}

	if !a.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer a.submitting.Store(false)

	conf, err := a.orders.Submit(ctx, lines, a.Language())
	if err != nil {
		a.log.Error("order submission failed", "err", err, "lines", len(lines))
		return nil, err
	}

	a.log.Info("order placed",
		"order_id", conf.OrderID,
		"total", conf.TotalAmount,
		"lines", len(lines),
	)
	return conf, nil
}
