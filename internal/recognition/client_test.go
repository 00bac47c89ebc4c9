package recognition

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/backend"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecognizeSendsMultipartFields(t *testing.T) {
	var gotLang, gotImage string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("expected multipart request: %v", err)
		}
		gotLang = r.FormValue("target_lang")

		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("expected image part: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotImage = string(data)

		if header.Filename != "menu.jpg" {
			t.Fatalf("expected filename menu.jpg, got %q", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "menu_items": [
			{"name": "茶", "translated_name": "Tea", "price": 2},
			{"name": "Rice", "description": "steamed", "price": 5}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLogger())
	items, err := client.Recognize(context.Background(), strings.NewReader("jpegbytes"), "menu.jpg", "de")
	if err != nil {
		t.Fatal(err)
	}

	if gotLang != "de" {
		t.Fatalf("expected target_lang=de, got %q", gotLang)
	}
	if gotImage != "jpegbytes" {
		t.Fatalf("image bytes not forwarded, got %q", gotImage)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].DisplayName() != "Tea" || items[0].Price != 2 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Description != "steamed" {
		t.Fatalf("description lost: %+v", items[1])
	}
}

func TestRecognizeDropsMalformedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "menu_items": [
			{"name": "", "price": 3},
			{"name": "Broken", "price": -1},
			{"name": "Water"},
			{"name": "Rice", "price": 5}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLogger())
	items, err := client.Recognize(context.Background(), strings.NewReader("x"), "m.jpg", "en")
	if err != nil {
		t.Fatal(err)
	}

	// Nameless and negative-priced entries dropped; missing price kept as 0.
	if len(items) != 2 {
		t.Fatalf("expected 2 surviving items, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Water" || items[0].Price != 0 {
		t.Fatalf("missing price should decode to 0: %+v", items[0])
	}
	if items[1].Name != "Rice" {
		t.Fatalf("unexpected item: %+v", items[1])
	}
}

func TestRecognizeServerReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error": "image too blurry"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLogger())
	_, err := client.Recognize(context.Background(), strings.NewReader("x"), "m.jpg", "en")

	var recErr *Error
	if !errors.As(err, &recErr) {
		t.Fatalf("expected *recognition.Error, got %T: %v", err, err)
	}
	if recErr.Message != "image too blurry" {
		t.Fatalf("server message lost: %q", recErr.Message)
	}
}

func TestRecognizeNonJSONBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream exploded</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLogger())
	_, err := client.Recognize(context.Background(), strings.NewReader("x"), "m.jpg", "en")

	var tErr *backend.TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *backend.TransportError, got %T: %v", err, err)
	}
	if tErr.Op != "recognition" {
		t.Fatalf("unexpected op: %q", tErr.Op)
	}
}

func TestRecognizeConnectionFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, testLogger())
	_, err := client.Recognize(context.Background(), strings.NewReader("x"), "m.jpg", "en")

	var tErr *backend.TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *backend.TransportError, got %T: %v", err, err)
	}
}
