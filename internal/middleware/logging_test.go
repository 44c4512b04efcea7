// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// captureLogs routes the default slog logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestLogger(t *testing.T) {
	t.Run("calls next handler and logs the request", func(t *testing.T) {
		buf := captureLogs(t)

		var called bool
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.Write([]byte("hello"))
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blog/posts", nil)
		rr := httptest.NewRecorder()
		Logger(inner).ServeHTTP(rr, req)

		if !called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusOK || rr.Body.String() != "hello" {
			t.Errorf("response: got %d %q", rr.Code, rr.Body.String())
		}

		entry := decodeLogLine(t, buf)
		if entry["level"] != "INFO" {
			t.Errorf("level: got %v, want INFO", entry["level"])
		}
		if entry["path"] != "/api/v1/blog/posts" || entry["method"] != "GET" {
			t.Errorf("request fields: got %v %v", entry["method"], entry["path"])
		}
		if entry["status"] != float64(200) || entry["bytes"] != float64(5) {
			t.Errorf("status/bytes: got %v/%v", entry["status"], entry["bytes"])
		}
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		buf := captureLogs(t)

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		rr := httptest.NewRecorder()
		Logger(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
		if entry := decodeLogLine(t, buf); entry["level"] != "WARN" {
			t.Errorf("level: got %v, want WARN", entry["level"])
		}
	})

	t.Run("server errors log at error", func(t *testing.T) {
		buf := captureLogs(t)

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		Logger(inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/blog/posts", nil))

		if entry := decodeLogLine(t, buf); entry["level"] != "ERROR" {
			t.Errorf("level: got %v, want ERROR", entry["level"])
		}
	})

	t.Run("includes request id", func(t *testing.T) {
		buf := captureLogs(t)

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		handler := chimw.RequestID(Logger(inner))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/blog/tags/x", nil))

		entry := decodeLogLine(t, buf)
		if id, _ := entry["request_id"].(string); id == "" {
			t.Error("request_id should be set when RequestID runs first")
		}
	})
}

func TestStatusRecorder(t *testing.T) {
	t.Run("WriteHeader only captures first call", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

		rec.WriteHeader(http.StatusNotFound)
		rec.WriteHeader(http.StatusInternalServerError)

		if rec.status != http.StatusNotFound {
			t.Errorf("status: got %d, want 404 (first call)", rec.status)
		}
		if !rec.written {
			t.Error("written should be true after WriteHeader")
		}
	})

	t.Run("Write counts bytes and keeps explicit status", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

		rec.WriteHeader(http.StatusCreated)
		rec.Write([]byte("created"))
		rec.Write([]byte("!"))

		if rec.status != http.StatusCreated {
			t.Errorf("status: got %d, want 201", rec.status)
		}
		if rec.bytes != 8 {
			t.Errorf("bytes: got %d, want 8", rec.bytes)
		}
	})
}
